package entity

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// Identifiable is implemented by every entity that can sit behind a Ref.
type Identifiable interface {
	EntityID() string
}

// Ref is a tagged reference to a related record. The backend is inconsistent
// about population: the same field sometimes carries a bare identifier and
// sometimes the full document. Ref keeps both shapes behind one type instead
// of shape-sniffing at every call site.
type Ref[T Identifiable] struct {
	id     string
	record *T
}

// RefID builds an unresolved reference from a bare identifier.
func RefID[T Identifiable](id string) Ref[T] {
	return Ref[T]{id: id}
}

// RefOf builds a resolved reference from a populated record.
func RefOf[T Identifiable](record *T) Ref[T] {
	return Ref[T]{record: record}
}

// IsZero reports whether the reference points at nothing (null/absent field).
func (r Ref[T]) IsZero() bool {
	return r.id == "" && r.record == nil
}

// Resolved reports whether the full record is held locally.
func (r Ref[T]) Resolved() bool {
	return r.record != nil
}

// ID returns the referenced identifier regardless of resolution state.
func (r Ref[T]) ID() string {
	if r.record != nil {
		return (*r.record).EntityID()
	}

	return r.id
}

// Record returns the populated record, or nil when unresolved.
func (r Ref[T]) Record() *T {
	return r.record
}

// Resolve returns the held record, or looks the identifier up through the
// supplied function. This is the single resolution point for heterogeneous
// reference shapes.
func (r Ref[T]) Resolve(lookup func(id string) (*T, bool)) (*T, bool) {
	if r.record != nil {
		return r.record, true
	}
	if r.id == "" || lookup == nil {
		return nil, false
	}

	return lookup(r.id)
}

// UnmarshalJSON accepts null, a bare identifier string, or a populated object.
func (r *Ref[T]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*r = Ref[T]{}

		return nil
	}

	if trimmed[0] == '"' {
		var id string
		if err := json.Unmarshal(trimmed, &id); err != nil {
			return errors.Wrap(err, "decode reference id")
		}
		*r = Ref[T]{id: id}

		return nil
	}

	record := new(T)
	if err := json.Unmarshal(trimmed, record); err != nil {
		return errors.Wrap(err, "decode referenced record")
	}
	*r = Ref[T]{record: record}

	return nil
}

// MarshalJSON writes null when empty, the populated record when resolved,
// and the bare identifier otherwise, mirroring what the backend produces.
func (r Ref[T]) MarshalJSON() ([]byte, error) {
	switch {
	case r.record != nil:
		return json.Marshal(r.record)
	case r.id != "":
		return json.Marshal(r.id)
	default:
		return []byte("null"), nil
	}
}
