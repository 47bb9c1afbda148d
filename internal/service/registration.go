package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"cadastro/internal/model"
)

const registrationPath = "/api/cadastro"

// RejectedError is returned when the save endpoint answers success=false.
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	return e.Message
}

// RegistrationClient posts registrations to the save endpoint.
type RegistrationClient struct {
	baseURL string
	client  *http.Client
}

func NewRegistrationClient(baseURL string, timeout time.Duration) *RegistrationClient {
	return &RegistrationClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// Save posts reg as JSON. The response body is decoded whatever the status
// code: the endpoint reports validation failures as success=false with a
// 4xx status.
func (c *RegistrationClient) Save(ctx context.Context, reg model.Registration) error {
	body, err := json.Marshal(reg)
	if err != nil {
		return fmt.Errorf("encode registration: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+registrationPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	var res model.RegistrationResult
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err)
	}

	slog.Info("registration answered",
		"request_id", requestID,
		"status", resp.StatusCode,
		"success", res.Success,
	)

	if !res.Success {
		return &RejectedError{Message: res.Message}
	}
	return nil
}
