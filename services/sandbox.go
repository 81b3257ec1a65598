// Package services provides the sandbox service for Daytona API operations.
//
// This file implements the SandboxService which handles the full sandbox
// lifecycle: creating sandboxes from a parameter bag, fetching and listing
// them, starting and stopping, resolving preview links for ports exposed
// inside a sandbox, waiting for a sandbox to report started, and deleting.
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"daytona-workspace/models"
)

// ClientInterface defines the methods needed from the API client
type ClientInterface interface {
	NewRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error)
	Do(req *http.Request) (*http.Response, error)
	GetBaseURL() string
}

// pollInterval is the delay between readiness polls in WaitForStart.
var pollInterval = time.Second

type SandboxService struct {
	client ClientInterface
}

func NewSandboxService(client ClientInterface) *SandboxService {
	return &SandboxService{
		client: client,
	}
}

// apiError extracts a readable message from a non-2xx response body.
func apiError(statusCode int, body []byte) error {
	var errResp struct {
		Error   string `json:"error"`
		Message string `json:"message"`
		Detail  string `json:"detail"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil {
		if errResp.Error != "" {
			return fmt.Errorf("API error (%d): %s", statusCode, errResp.Error)
		}
		if errResp.Message != "" {
			return fmt.Errorf("API error (%d): %s", statusCode, errResp.Message)
		}
		if errResp.Detail != "" {
			return fmt.Errorf("API error (%d): %s", statusCode, errResp.Detail)
		}
	}
	return fmt.Errorf("API error (%d): %s", statusCode, string(body))
}

// Create provisions a new sandbox from the given parameter bag. Fields
// absent from params are left to server defaults.
func (s *SandboxService) Create(ctx context.Context, params *models.CreateSandboxParams) (*models.Sandbox, error) {
	if params == nil {
		params = &models.CreateSandboxParams{}
	}

	body, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := s.client.NewRequest(ctx, "POST", "/sandbox", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, apiError(resp.StatusCode, bodyBytes)
	}

	var sandbox models.Sandbox
	if err := json.NewDecoder(resp.Body).Decode(&sandbox); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &sandbox, nil
}

// Get retrieves a sandbox by ID
func (s *SandboxService) Get(ctx context.Context, id string) (*models.Sandbox, error) {
	req, err := s.client.NewRequest(ctx, "GET", fmt.Sprintf("/sandbox/%s", id), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, apiError(resp.StatusCode, bodyBytes)
	}

	var sandbox models.Sandbox
	if err := json.NewDecoder(resp.Body).Decode(&sandbox); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &sandbox, nil
}

// List retrieves all sandboxes visible to the API key
func (s *SandboxService) List(ctx context.Context) ([]*models.Sandbox, error) {
	req, err := s.client.NewRequest(ctx, "GET", "/sandbox", nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, apiError(resp.StatusCode, bodyBytes)
	}

	var sandboxes []*models.Sandbox
	if err := json.NewDecoder(resp.Body).Decode(&sandboxes); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return sandboxes, nil
}

// Start starts a stopped sandbox
func (s *SandboxService) Start(ctx context.Context, id string) error {
	return s.postAction(ctx, id, "start")
}

// Stop stops a running sandbox
func (s *SandboxService) Stop(ctx context.Context, id string) error {
	return s.postAction(ctx, id, "stop")
}

func (s *SandboxService) postAction(ctx context.Context, id, action string) error {
	req, err := s.client.NewRequest(ctx, "POST", fmt.Sprintf("/sandbox/%s/%s", id, action), nil)
	if err != nil {
		return err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return apiError(resp.StatusCode, bodyBytes)
	}

	return nil
}

// Delete removes a sandbox unconditionally
func (s *SandboxService) Delete(ctx context.Context, id string) error {
	req, err := s.client.NewRequest(ctx, "DELETE", fmt.Sprintf("/sandbox/%s?force=true", id), nil)
	if err != nil {
		return err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return apiError(resp.StatusCode, bodyBytes)
	}

	return nil
}

// PreviewLink resolves the externally reachable address for a port inside
// the sandbox.
func (s *SandboxService) PreviewLink(ctx context.Context, id string, port int) (*models.PreviewLink, error) {
	req, err := s.client.NewRequest(ctx, "GET", fmt.Sprintf("/sandbox/%s/ports/%d/preview-url", id, port), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, apiError(resp.StatusCode, bodyBytes)
	}

	var link models.PreviewLink
	if err := json.NewDecoder(resp.Body).Decode(&link); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &link, nil
}

// WaitForStart blocks until the sandbox reports the started state. It
// polls the sandbox at a fixed cadence and returns an error if the
// sandbox enters the error state or the timeout elapses first.
func (s *SandboxService) WaitForStart(ctx context.Context, id string, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	for {
		sandbox, err := s.Get(ctx, id)
		if err != nil {
			if ctx.Err() != nil {
				return fmt.Errorf("timed out after %s waiting for sandbox %s to start", timeout, id)
			}
			return err
		}

		switch sandbox.State {
		case models.SandboxStateStarted:
			return nil
		case models.SandboxStateError:
			reason := sandbox.ErrorReason
			if reason == "" {
				reason = "unknown error"
			}
			return fmt.Errorf("sandbox %s failed to start: %s", id, reason)
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("timed out after %s waiting for sandbox %s to start", timeout, id)
		case <-time.After(pollInterval):
		}
	}
}
