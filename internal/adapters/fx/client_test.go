package fx_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyago/trip_planner_app/internal/adapters/fx"
)

func TestClient_FetchRate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/latest", r.URL.Path)
		assert.Equal(t, "USD", r.URL.Query().Get("base"))
		assert.Equal(t, "EUR", r.URL.Query().Get("symbols"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"base":"USD","rates":{"EUR":0.9132}}`))
	}))
	defer server.Close()

	client := fx.NewClient(server.URL, 2*time.Second)
	rate, err := client.FetchRate(context.Background(), "USD", "EUR")

	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("0.9132")), "got %s", rate)
}

func TestClient_FetchRate_MissingSymbol(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"base":"USD","rates":{}}`))
	}))
	defer server.Close()

	client := fx.NewClient(server.URL, 2*time.Second)
	_, err := client.FetchRate(context.Background(), "USD", "XXX")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no rate for XXX")
}

func TestClient_FetchRate_NonPositiveRate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"base":"USD","rates":{"EUR":0}}`))
	}))
	defer server.Close()

	client := fx.NewClient(server.URL, 2*time.Second)
	_, err := client.FetchRate(context.Background(), "USD", "EUR")

	require.Error(t, err)
}

func TestClient_FetchRate_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := fx.NewClient(server.URL, 2*time.Second)
	_, err := client.FetchRate(context.Background(), "USD", "EUR")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}
