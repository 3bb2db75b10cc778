package orderapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"brewshop/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrder_PostsJSON(t *testing.T) {
	var gotPath string
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":1}`))
	}))
	defer srv.Close()

	c := New(srv.URL+"/", nil, nil)
	err := c.CreateOrder(context.Background(), domain.OrderRequest{
		Amount:   decimal.RequireFromString("8.50"),
		Products: []domain.CartEntry{{Product: domain.Brew{Name: "Latte"}, Quantity: 1}},
		Address:  "1 Roast St",
		Zip:      "97201",
		City:     "Portland",
		Token:    "tok_visa",
	})
	require.NoError(t, err)
	assert.Equal(t, "/orders", gotPath)
	assert.Equal(t, 8.5, got["amount"])
	assert.Equal(t, "tok_visa", got["token"])
	assert.Len(t, got["products"], 1)
}

func TestNew_DefaultClientHasNoTimeout(t *testing.T) {
	c := New("http://orders.local", nil, nil)
	assert.Zero(t, c.http.Timeout)

	custom := &http.Client{}
	assert.Same(t, custom, New("http://orders.local", custom, nil).http)
}

func TestSendOrderEmail(t *testing.T) {
	var got domain.OrderEmail
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/email", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	err := New(srv.URL, nil, nil).SendOrderEmail(context.Background(), domain.OrderEmail{To: "a@example.com", Subject: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", got.To)
}

func TestErrors_UseBackendMessage(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"message field", http.StatusBadRequest, `{"message":"Invalid token"}`, "Invalid token"},
		{"error string", http.StatusBadRequest, `{"error":"Bad Request"}`, "Bad Request"},
		{"nested error", http.StatusBadRequest, `{"error":{"status":400,"message":"amount must be positive"}}`, "amount must be positive"},
		{"no body", http.StatusBadGateway, ``, "Bad Gateway"},
		{"html body", http.StatusInternalServerError, `<html>oops</html>`, "Internal Server Error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			err := New(srv.URL, nil, nil).CreateOrder(context.Background(), domain.OrderRequest{})
			require.Error(t, err)
			assert.Equal(t, tc.want, err.Error())
		})
	}
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	err := New(srv.URL, nil, nil).CreateOrder(context.Background(), domain.OrderRequest{})
	assert.Error(t, err)
}
