package order

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// Submitter hands a composed order to the remote order service.
// Submission is a single best-effort call; retrying is the caller's
// concern, not the engine's.
type Submitter interface {
	Submit(ctx context.Context, ro RemoteOrder) error
}

// HTTPClient talks to the remote order service over JSON.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

func NewHTTPClient() *HTTPClient {
	return &HTTPClient{
		baseURL: os.Getenv("ORDER_API_URL"),
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) Submit(ctx context.Context, ro RemoteOrder) error {
	if c.baseURL == "" {
		return errors.New("missing ORDER_API_URL")
	}

	body, err := json.Marshal(ro)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/orders",
		bytes.NewBuffer(body),
	)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("order api error (%d): %s", resp.StatusCode, string(raw))
	}
	return nil
}

// Fetch retrieves a submitted order, used to rebuild cart entries for
// reordering.
func (c *HTTPClient) Fetch(ctx context.Context, orderID int64) (*RemoteOrderRecord, error) {
	if c.baseURL == "" {
		return nil, errors.New("missing ORDER_API_URL")
	}

	url := fmt.Sprintf("%s/orders/%d", c.baseURL, orderID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("order api error (%d): %s", resp.StatusCode, string(raw))
	}

	var rec RemoteOrderRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// UpdateStatus asks the remote service to move an order through the
// kitchen lifecycle. The transition is validated before the call.
func (c *HTTPClient) UpdateStatus(ctx context.Context, orderID int64, from, to Status) error {
	if !ValidTransition(from, to) {
		return fmt.Errorf("invalid status transition %s -> %s", from, to)
	}
	if c.baseURL == "" {
		return errors.New("missing ORDER_API_URL")
	}

	body, err := json.Marshal(map[string]string{"status": string(to)})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/orders/%d/status", c.baseURL, orderID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("order api error (%d): %s", resp.StatusCode, string(raw))
	}
	return nil
}
