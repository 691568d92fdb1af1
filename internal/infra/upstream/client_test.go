package upstream

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ketalog/config"
	"ketalog/internal/domain/entity"
	domainerrors "ketalog/internal/domain/errors"
	"ketalog/internal/domain/upstream"
	mockService "ketalog/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler, token string) *Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	sessions := mockService.NewMockSessionService(t)
	sessions.EXPECT().Token().Return(token).Maybe()

	cfg := config.UpstreamConfig{
		BaseURL: server.URL + "/",
		Timeout: 5 * time.Second,
	}

	return NewClient(cfg, sessions, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestClient_ListOrders(t *testing.T) {
	var gotAuth, gotPath string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`[{"_id":"o1","totalAmount":350},{"_id":"o2"}]`))
	})

	client := newTestClient(t, handler, "backend-token")

	orders, err := client.ListOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "o1", orders[0].ID)
	assert.Equal(t, float64(350), orders[0].TotalAmount)
	assert.Equal(t, "Bearer backend-token", gotAuth)
	assert.Equal(t, "/admin/orders", gotPath)
}

func TestClient_NoSessionSendsNoAuthHeader(t *testing.T) {
	var gotAuth string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	})

	client := newTestClient(t, handler, "")

	_, err := client.ListOrders(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClient_AssignPartnerSendsBody(t *testing.T) {
	var gotBody map[string]string
	var gotMethod, gotPath string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_, _ = w.Write([]byte(`{"_id":"o1","deliveryPartner":"dp1"}`))
	})

	client := newTestClient(t, handler, "backend-token")

	order, err := client.AssignPartner(context.Background(), "o1", "dp1")
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/admin/orders/o1/assign", gotPath)
	assert.Equal(t, map[string]string{"partnerId": "dp1"}, gotBody)
	assert.Equal(t, "dp1", order.DeliveryPartner.ID())
}

func TestClient_UnassignPartnerSendsNullPartner(t *testing.T) {
	var gotBody map[string]any
	var gotMethod, gotPath string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"_id":"o1"}`))
	})

	client := newTestClient(t, handler, "backend-token")

	order, err := client.UnassignPartner(context.Background(), "o1")
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/admin/orders/o1/assign", gotPath)
	require.Contains(t, gotBody, "partnerId")
	assert.Nil(t, gotBody["partnerId"])
	assert.Equal(t, "o1", order.ID)
}

func TestClient_UpdateStatusPath(t *testing.T) {
	var gotBody map[string]string
	var gotMethod, gotPath string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"_id":"o1","orderStatus":"delivered"}`))
	})

	client := newTestClient(t, handler, "backend-token")

	order, err := client.UpdateStatus(context.Background(), "o1", entity.StatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/admin/orders/o1/status", gotPath)
	assert.Equal(t, map[string]string{"status": entity.StatusDelivered}, gotBody)
	assert.Equal(t, entity.StatusDelivered, order.OrderStatus)
}

func TestClient_LoginCarriesTokenPair(t *testing.T) {
	var gotPath string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"accessToken":"at-1","refreshToken":"rt-1","admin":{"name":"Asha","email":"asha@example.com"}}`))
	})

	client := newTestClient(t, handler, "")

	result, err := client.Login(context.Background(), "asha@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "/admin/login", gotPath)
	assert.Equal(t, "at-1", result.AccessToken)
	assert.Equal(t, "rt-1", result.RefreshToken)
	assert.Equal(t, "Asha", result.Admin.Name)
}

func TestClient_Unauthorized(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"token expired"}`))
	})

	client := newTestClient(t, handler, "stale-token")

	_, err := client.ListOrders(context.Background())
	assert.ErrorIs(t, err, upstream.ErrUnauthorized)
	assert.Contains(t, err.Error(), "token expired")
}

func TestClient_UnauthorizedWithoutBody(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	client := newTestClient(t, handler, "stale-token")

	_, err := client.ListOrders(context.Background())
	assert.ErrorIs(t, err, upstream.ErrUnauthorized)
}

func TestClient_NotFound(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	client := newTestClient(t, handler, "backend-token")

	_, err := client.GetOrder(context.Background(), "missing")
	assert.ErrorIs(t, err, upstream.ErrNotFound)
}

func TestClient_BackendErrorCarriesMessage(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error":"seller has open orders"}`))
	})

	client := newTestClient(t, handler, "backend-token")

	err := client.DeleteSeller(context.Background(), "s1")
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.HTTPCode())
	assert.Equal(t, "seller has open orders", appErr.Message())
}

func TestClient_BackendUnreachable(t *testing.T) {
	sessions := mockService.NewMockSessionService(t)
	sessions.EXPECT().Token().Return("").Maybe()

	cfg := config.UpstreamConfig{
		BaseURL: "http://127.0.0.1:1", // nothing listens here
		Timeout: time.Second,
	}
	client := NewClient(cfg, sessions, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := client.ListOrders(context.Background())
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadGateway, appErr.HTTPCode())
}

func TestClient_ExportLedgerCSV(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/analytics/download/csv", r.URL.Path)
		assert.Equal(t, "custom", r.URL.Query().Get("filter"))
		assert.Equal(t, "2026-03-01", r.URL.Query().Get("date"))
		assert.Equal(t, "o1", r.URL.Query().Get("search"))
		_, _ = w.Write([]byte("orderId,revenue\no1,350\n"))
	})

	client := newTestClient(t, handler, "backend-token")

	data, err := client.ExportLedgerCSV(context.Background(), "custom", "2026-03-01", "o1")
	require.NoError(t, err)
	assert.Equal(t, "orderId,revenue\no1,350\n", string(data))
}

func TestClient_ExportLedgerCSV_OmitsEmptyParams(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/analytics/download/csv", r.URL.Path)
		assert.Equal(t, "filter=all_time", r.URL.RawQuery)
		_, _ = w.Write([]byte("orderId,revenue\n"))
	})

	client := newTestClient(t, handler, "backend-token")

	_, err := client.ExportLedgerCSV(context.Background(), "all_time", "", "")
	require.NoError(t, err)
}

func TestClient_UpdatePaymentStatusMapsFlagToStatus(t *testing.T) {
	var gotBody map[string]string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"_id":"l1","platformCommissionStatus":"COMPLETED"}`))
	})

	client := newTestClient(t, handler, "backend-token")

	record, err := client.UpdatePaymentStatus(context.Background(), "l1", "platformCommissionStatus", true)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"platformCommissionStatus": entity.PaymentCompleted}, gotBody)
	assert.Equal(t, "l1", record.ID)
}
