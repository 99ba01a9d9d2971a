package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Alex-mur/MIFI-Hotel-Booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(baseURL string) *ManagementClient {
	return NewManagementClient(utils.ManagementConfig{BaseURL: baseURL, TimeoutSeconds: 2}, zap.NewNop())
}

func mustParseDate(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := utils.ParseDate(value)
	require.NoError(t, err)
	return d
}

func TestConfirmRoomAvailabilitySuccess(t *testing.T) {
	roomID := uuid.New()
	requestID := uuid.New().String()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, fmt.Sprintf("/api/room/%s/confirm", roomID), r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, requestID, body["request_id"])
		assert.Equal(t, "2026-09-01", body["date_start"])
		assert.Equal(t, "2026-09-05", body["date_end"])

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "Room booking locked for dates"})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	result, err := c.ConfirmRoomAvailability(context.Background(), roomID, requestID,
		mustParseDate(t, "2026-09-01"), mustParseDate(t, "2026-09-05"))
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "Room booking locked for dates", result.Message)
}

func TestConfirmRejectionIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "Dates are temporary locked by another booking"})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	result, err := c.ConfirmRoomAvailability(context.Background(), uuid.New(), uuid.New().String(),
		mustParseDate(t, "2026-09-01"), mustParseDate(t, "2026-09-05"))
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Dates are temporary locked by another booking", result.Message)
}

func TestConfirmNon200IsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	result, err := c.ConfirmRoomAvailability(context.Background(), uuid.New(), uuid.New().String(),
		mustParseDate(t, "2026-09-01"), mustParseDate(t, "2026-09-05"))
	require.Error(t, err)
	assert.Nil(t, result)
}

func TestConfirmUndecodableBodyIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.ConfirmRoomAvailability(context.Background(), uuid.New(), uuid.New().String(),
		mustParseDate(t, "2026-09-01"), mustParseDate(t, "2026-09-05"))
	require.Error(t, err)
}

func TestConfirmUnreachableService(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.ConfirmRoomAvailability(context.Background(), uuid.New(), uuid.New().String(),
		mustParseDate(t, "2026-09-01"), mustParseDate(t, "2026-09-05"))
	require.Error(t, err)
}

func TestReleaseRoom(t *testing.T) {
	roomID := uuid.New()
	requestID := uuid.New().String()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, fmt.Sprintf("/api/room/%s/release", roomID), r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, requestID, body["request_id"])

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	require.NoError(t, c.ReleaseRoom(context.Background(), roomID, requestID))
}

func TestReleaseRoomMissingLock(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	err := c.ReleaseRoom(context.Background(), uuid.New(), uuid.New().String())
	require.Error(t, err)
}
