package figma

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// ClientConfig is read from the environment. The token is the personal
// access token of the design tool account.
type ClientConfig struct {
	Token   string        `envconfig:"LOOM_API_TOKEN"`
	BaseURL string        `envconfig:"LOOM_API_URL" default:"https://api.figma.com"`
	Timeout time.Duration `envconfig:"LOOM_API_TIMEOUT" default:"30s"`
}

// LoadClientConfig reads the client configuration from the environment.
func LoadClientConfig() (*ClientConfig, error) {
	var cfg ClientConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load client config: %w", err)
	}
	return &cfg, nil
}

// Client fetches documents and image URLs from the design tool API.
// Retries with exponential backoff on rate limiting and server errors.
type Client struct {
	cfg  ClientConfig
	http *http.Client

	// MaxRetries bounds the retry loop. Defaults to 3.
	MaxRetries int
}

// NewClient creates a Client from cfg.
func NewClient(cfg ClientConfig) *Client {
	return &Client{
		cfg:        cfg,
		http:       &http.Client{Timeout: cfg.Timeout},
		MaxRetries: 3,
	}
}

// GetFile fetches one document by its file key.
func (c *Client) GetFile(ctx context.Context, key string) (*File, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/v1/files/%s", c.cfg.BaseURL, key))
	if err != nil {
		return nil, err
	}

	var f File
	if err := json.Unmarshal(body, &f); err != nil {
		return nil, fmt.Errorf("decode file %s: %w", key, err)
	}
	return &f, nil
}

// imageResponse is the envelope of the image-URL endpoint.
type imageResponse struct {
	Error  bool              `json:"error"`
	Images map[string]string `json:"images"`
	Meta   struct {
		Images map[string]string `json:"images"`
	} `json:"meta"`
}

// GetImageURLs resolves the download URLs for the image refs used in a
// document. Refs unknown to the server are absent from the result.
func (c *Client) GetImageURLs(ctx context.Context, key string) (map[string]string, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/v1/files/%s/images", c.cfg.BaseURL, key))
	if err != nil {
		return nil, err
	}

	var resp imageResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode image urls for %s: %w", key, err)
	}
	if resp.Meta.Images != nil {
		return resp.Meta.Images, nil
	}
	return resp.Images, nil
}

// Download fetches raw bytes from an already resolved asset URL.
func (c *Client) Download(ctx context.Context, url string) ([]byte, error) {
	return c.get(ctx, url)
}

// get performs one GET with auth and bounded backoff.
//
// 429 responses honor Retry-After when present; 5xx responses retry on
// an exponential schedule. Any other non-200 fails immediately.
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	backoff := time.Second
	var lastErr error

	for attempt := 0; attempt <= c.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		if c.cfg.Token != "" {
			req.Header.Set("X-Figma-Token", c.cfg.Token)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		switch {
		case resp.StatusCode == http.StatusOK:
			body, err := io.ReadAll(resp.Body)
			resp.Body.Close()
			if err != nil {
				return nil, fmt.Errorf("read response: %w", err)
			}
			return body, nil

		case resp.StatusCode == http.StatusTooManyRequests:
			if wait := retryAfter(resp); wait > 0 {
				backoff = wait
			}
			resp.Body.Close()
			lastErr = fmt.Errorf("rate limited: %s", url)

		case resp.StatusCode >= 500:
			resp.Body.Close()
			lastErr = fmt.Errorf("server error %d: %s", resp.StatusCode, url)

		default:
			resp.Body.Close()
			return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, url)
		}
	}

	return nil, fmt.Errorf("giving up after %d attempts: %w", c.MaxRetries+1, lastErr)
}

// retryAfter parses the Retry-After header, in seconds.
func retryAfter(resp *http.Response) time.Duration {
	h := resp.Header.Get("Retry-After")
	if h == "" {
		return 0
	}
	secs, err := strconv.Atoi(h)
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
