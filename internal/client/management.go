package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Alex-mur/MIFI-Hotel-Booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ConfirmResult is the business outcome of a confirm call. A transport
// failure is reported as an error instead, so the coordinator can tell
// "could not reach the service" apart from "reached and answered no".
type ConfirmResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ManagementClient talks to the management service over HTTP. Every call
// carries the configured bounded timeout; a timeout is a transport
// failure like any other.
type ManagementClient struct {
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger
}

func NewManagementClient(cfg utils.ManagementConfig, log *zap.Logger) *ManagementClient {
	return &ManagementClient{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		log: log.With(zap.String("client", "management")),
	}
}

type confirmRequest struct {
	RequestID string `json:"request_id"`
	DateStart string `json:"date_start"`
	DateEnd   string `json:"date_end"`
}

type releaseRequest struct {
	RequestID string `json:"request_id"`
}

// ConfirmRoomAvailability asks the management service to hold the room
// for the inclusive date range. The service answers HTTP 200 for every
// business outcome; any other status or an unreadable body is a
// transport failure.
func (c *ManagementClient) ConfirmRoomAvailability(ctx context.Context, roomID uuid.UUID, requestID string, dateStart, dateEnd time.Time) (*ConfirmResult, error) {
	body := confirmRequest{
		RequestID: requestID,
		DateStart: utils.FormatDate(dateStart),
		DateEnd:   utils.FormatDate(dateEnd),
	}

	path := fmt.Sprintf("/api/room/%s/confirm", roomID.String())

	resp, err := c.post(ctx, path, body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("confirm room %s: unexpected status %d", roomID.String(), resp.StatusCode)
	}

	var result ConfirmResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("confirm room %s: decode response: %w", roomID.String(), err)
	}

	c.log.Debug("Confirm call answered",
		zap.String("room_id", roomID.String()),
		zap.String("request_id", requestID),
		zap.Bool("success", result.Success),
		zap.String("message", result.Message),
	)

	return &result, nil
}

// ReleaseRoom drops the hold identified by requestID. Any non-2xx status
// is returned as an error; the caller decides whether that is fatal.
func (c *ManagementClient) ReleaseRoom(ctx context.Context, roomID uuid.UUID, requestID string) error {
	path := fmt.Sprintf("/api/room/%s/release", roomID.String())

	resp, err := c.post(ctx, path, releaseRequest{RequestID: requestID})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("release room %s: unexpected status %d", roomID.String(), resp.StatusCode)
	}

	return nil
}

func (c *ManagementClient) post(ctx context.Context, path string, body any) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("management request failed: %w", err)
	}

	return resp, nil
}
