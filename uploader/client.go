package uploader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ClientConfig configures the blob transfer target. BaseURL is the bucket or
// container endpoint; Prefix is prepended to the artifact filename to form the
// object key.
type ClientConfig struct {
	BaseURL   string
	Prefix    string
	Token     string
	UserAgent string
	Timeout   time.Duration
}

type Client struct {
	cfg        ClientConfig
	httpClient *http.Client
}

func NewClient(cfg ClientConfig) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, fmt.Errorf("upload base URL is required")
	}
	if _, err := url.ParseRequestURI(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid upload base URL %q: %w", cfg.BaseURL, err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// Upload transfers the file at filePath to the configured endpoint via PUT and
// returns the object key it was stored under.
func (c *Client) Upload(ctx context.Context, filePath string) (string, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return "", fmt.Errorf("stat upload file: %w", err)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("open upload file: %w", err)
	}
	defer file.Close()

	key := c.objectKey(filepath.Base(filePath))
	target := strings.TrimSuffix(c.cfg.BaseURL, "/") + "/" + key

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, target, file)
	if err != nil {
		return "", fmt.Errorf("build upload request: %w", err)
	}
	req.ContentLength = info.Size()
	req.Header.Set("Content-Type", xlsxContentType)
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("upload %s: unexpected status %d: %s", key, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return key, nil
}

func (c *Client) objectKey(filename string) string {
	prefix := strings.TrimSpace(c.cfg.Prefix)
	if prefix == "" {
		return filename
	}
	return path.Join(strings.Trim(prefix, "/"), filename)
}
