package statussheet

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchStatuses(t *testing.T) {
	var gotReq StatusRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[
			{"company":"Acme Corp","status":"Shortlisted"},
			{"company":"Globex","status":"Rejected"}
		]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	statuses, err := client.FetchStatuses(context.Background(), StatusRequest{
		UID:   "21BCS-1001",
		Email: "asha.verma@cuchd.in",
		Phone: "9876543210",
	})
	require.NoError(t, err)

	assert.Equal(t, "21BCS-1001", gotReq.UID)
	assert.Equal(t, "asha.verma@cuchd.in", gotReq.Email)
	assert.Equal(t, "9876543210", gotReq.Phone)

	assert.Equal(t, map[string]string{
		"Acme Corp": "Shortlisted",
		"Globex":    "Rejected",
	}, statuses)
}

func TestFetchStatuses_EmptyData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	statuses, err := client.FetchStatuses(context.Background(), StatusRequest{})
	require.NoError(t, err)
	assert.Empty(t, statuses)
}

func TestFetchStatuses_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	_, err := client.FetchStatuses(context.Background(), StatusRequest{})
	assert.Error(t, err)
}

func TestFetchStatuses_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	_, err := client.FetchStatuses(context.Background(), StatusRequest{})
	assert.Error(t, err)
}

func TestFetchStatuses_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 20*time.Millisecond)
	_, err := client.FetchStatuses(context.Background(), StatusRequest{})
	assert.Error(t, err)
}

func TestFetchStatuses_NoURL(t *testing.T) {
	client := NewClient("", time.Second)
	_, err := client.FetchStatuses(context.Background(), StatusRequest{})
	assert.Error(t, err)
}

func TestNewClient_DefaultTimeout(t *testing.T) {
	client := NewClient("http://example.invalid", 0)
	assert.Equal(t, DefaultTimeout, client.httpClient.Timeout)
}
