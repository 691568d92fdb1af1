package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRef_UnmarshalJSON_BareID(t *testing.T) {
	var ref Ref[Seller]
	require.NoError(t, json.Unmarshal([]byte(`"65a1b2c3"`), &ref))

	assert.False(t, ref.IsZero())
	assert.False(t, ref.Resolved())
	assert.Equal(t, "65a1b2c3", ref.ID())
	assert.Nil(t, ref.Record())
}

func TestRef_UnmarshalJSON_PopulatedRecord(t *testing.T) {
	var ref Ref[Seller]
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"65a1b2c3","shopName":"Fresh Mart","pincode":"560001"}`), &ref))

	assert.True(t, ref.Resolved())
	assert.Equal(t, "65a1b2c3", ref.ID())

	record := ref.Record()
	require.NotNil(t, record)
	assert.Equal(t, "Fresh Mart", record.ShopName)
	assert.Equal(t, "560001", record.Pincode)
}

func TestRef_UnmarshalJSON_Null(t *testing.T) {
	ref := RefID[Seller]("old")
	require.NoError(t, json.Unmarshal([]byte(`null`), &ref))

	assert.True(t, ref.IsZero())
	assert.Empty(t, ref.ID())
}

func TestRef_UnmarshalJSON_Malformed(t *testing.T) {
	var ref Ref[Seller]
	assert.Error(t, json.Unmarshal([]byte(`{"_id":42}`), &ref))
}

func TestRef_MarshalJSON_RoundTrip(t *testing.T) {
	// An unresolved ref writes back the bare identifier, a resolved one the
	// document, an empty one null. This is what the backend itself produces.
	bare, err := json.Marshal(RefID[Seller]("65a1b2c3"))
	require.NoError(t, err)
	assert.JSONEq(t, `"65a1b2c3"`, string(bare))

	resolved, err := json.Marshal(RefOf(&Seller{ID: "65a1b2c3", ShopName: "Fresh Mart"}))
	require.NoError(t, err)
	assert.Contains(t, string(resolved), `"shopName":"Fresh Mart"`)

	empty, err := json.Marshal(Ref[Seller]{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(empty))
}

func TestRef_Resolve(t *testing.T) {
	seller := &Seller{ID: "s1", ShopName: "Fresh Mart"}

	got, ok := RefOf(seller).Resolve(func(string) (*Seller, bool) {
		t.Fatal("resolved ref must not hit the lookup")
		return nil, false
	})
	require.True(t, ok)
	assert.Equal(t, seller, got)

	got, ok = RefID[Seller]("s1").Resolve(func(id string) (*Seller, bool) {
		assert.Equal(t, "s1", id)
		return seller, true
	})
	require.True(t, ok)
	assert.Equal(t, seller, got)

	_, ok = Ref[Seller]{}.Resolve(func(string) (*Seller, bool) { return seller, true })
	assert.False(t, ok)

	_, ok = RefID[Seller]("s1").Resolve(nil)
	assert.False(t, ok)
}
