package ipapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_Success(t *testing.T) {
	var requestedPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestedPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"city": "Austin",
			"region": "Texas",
			"country_name": "United States",
			"latitude": 30.2672,
			"longitude": -97.7431
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 2*time.Second)
	loc, err := client.Resolve(context.Background(), "203.0.113.7")

	require.NoError(t, err)
	require.NotNil(t, loc)
	assert.Equal(t, "/203.0.113.7/json/", requestedPath)
	assert.Equal(t, "Austin", loc.City)
	assert.Equal(t, "Texas", loc.State)
	assert.Equal(t, "United States", loc.Country)
	assert.InDelta(t, 30.2672, loc.Latitude, 0.0001)
	assert.InDelta(t, -97.7431, loc.Longitude, 0.0001)
}

func TestResolve_ServiceReportedError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error": true, "reason": "Reserved IP Address"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 2*time.Second)
	loc, err := client.Resolve(context.Background(), "10.0.0.1")

	require.Error(t, err)
	assert.Nil(t, loc)
	assert.Contains(t, err.Error(), "Reserved IP Address")
}

func TestResolve_SkipsUnknownAddress(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	client := NewClient(server.URL, 2*time.Second)

	for _, address := range []string{"", "unknown"} {
		loc, err := client.Resolve(context.Background(), address)
		require.NoError(t, err)
		assert.Nil(t, loc)
	}
	assert.Zero(t, calls, "bilinmeyen adres için ağ çağrısı yapılmamalı")
}

func TestResolve_Non200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(server.URL, 2*time.Second)
	loc, err := client.Resolve(context.Background(), "203.0.113.7")

	require.Error(t, err)
	assert.Nil(t, loc)
}

func TestResolve_Timeout(t *testing.T) {
	block := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer server.Close()
	defer close(block)

	client := NewClient(server.URL, 50*time.Millisecond)
	loc, err := client.Resolve(context.Background(), "203.0.113.7")

	require.Error(t, err)
	assert.Nil(t, loc)
}

func TestResolve_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not-json`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 2*time.Second)
	loc, err := client.Resolve(context.Background(), "203.0.113.7")

	require.Error(t, err)
	assert.Nil(t, loc)
}
