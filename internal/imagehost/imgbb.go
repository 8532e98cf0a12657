// Package imagehost uploads course images to an ImgBB-compatible image host.
package imagehost

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const maxErrorBody = 512

var (
	ErrEmptyImage    = errors.New("image payload is empty")
	ErrMissingAPIKey = errors.New("image host API key is not configured")
)

// Observer receives upload outcomes, typically a metrics collector
type Observer interface {
	RecordImageUpload(outcome string, duration time.Duration)
}

// Client submits base64 images and returns their public URL.
// There is no retry; a failed call fails the caller's request.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	observer   Observer
}

// NewClient creates a client. A zero timeout leaves the HTTP client without a deadline.
func NewClient(endpoint, apiKey string, timeout time.Duration, observer Observer) *Client {
	return &Client{
		endpoint:   endpoint,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		observer:   observer,
	}
}

// uploadResponse is the subset of the ImgBB response we read
type uploadResponse struct {
	Success bool `json:"success"`
	Status  int  `json:"status"`
	Data    struct {
		URL        string `json:"url"`
		DisplayURL string `json:"display_url"`
	} `json:"data"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload hosts the image and returns its URL
func (c *Client) Upload(ctx context.Context, imageBase64 string) (string, error) {
	start := time.Now()
	hostedURL, err := c.upload(ctx, imageBase64)
	if c.observer != nil {
		outcome := "success"
		if err != nil {
			outcome = "failure"
		}
		c.observer.RecordImageUpload(outcome, time.Since(start))
	}
	return hostedURL, err
}

func (c *Client) upload(ctx context.Context, imageBase64 string) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	payload := stripDataURI(imageBase64)
	if payload == "" {
		return "", ErrEmptyImage
	}

	endpoint, err := url.Parse(c.endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid image host url: %w", err)
	}
	q := endpoint.Query()
	q.Set("key", c.apiKey)
	endpoint.RawQuery = q.Encode()

	form := url.Values{"image": {payload}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create upload request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read upload response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("image host returned status %d: %s", resp.StatusCode, truncate(string(body), maxErrorBody))
	}

	var out uploadResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("failed to parse upload response: %w", err)
	}

	if !out.Success {
		return "", fmt.Errorf("image host rejected upload: %s", out.Error.Message)
	}

	hostedURL := out.Data.URL
	if hostedURL == "" {
		hostedURL = out.Data.DisplayURL
	}
	if hostedURL == "" {
		return "", fmt.Errorf("image host response has no url")
	}

	return hostedURL, nil
}

// stripDataURI removes a "data:image/...;base64," prefix when present
func stripDataURI(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "data:") {
		if i := strings.Index(s, ","); i >= 0 {
			return s[i+1:]
		}
	}
	return s
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
