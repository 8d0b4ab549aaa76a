package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	pkgerrors "github.com/angelmondragon/partdepot-backend/pkg/errors"
)

const (
	defaultBaseURL             = "https://assist.partdepot.io/v1"
	errorBodyReadLimit   int64 = 1024
	vinLength                  = 17
)

var (
	errAPIKeyRequired = errors.New("assist api key is required")
)

// Client wraps the hosted generative service used for listing auto-fill. The
// service is a black box: each call sends a structured request and maps the
// documented key set back, nothing more.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithBaseURL overrides the configured service base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		trimmed := strings.TrimSpace(baseURL)
		if trimmed != "" {
			c.baseURL = trimmed
		}
	}
}

// NewClient builds the assist client given an API key.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	trimmedKey := strings.TrimSpace(apiKey)
	if trimmedKey == "" {
		return nil, errAPIKeyRequired
	}

	client := &Client{
		apiKey:     trimmedKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if client.baseURL == "" {
		client.baseURL = defaultBaseURL
	}

	return client, nil
}

// VINDecodeResult holds the vehicle data decoded from a VIN.
type VINDecodeResult struct {
	Make  string `json:"make"`
	Model string `json:"model"`
	Year  int    `json:"year"`
}

// PartIdentification holds the listing draft fields inferred from a part
// photo.
type PartIdentification struct {
	Name     string `json:"name"`
	Make     string `json:"make"`
	Model    string `json:"model"`
	Category string `json:"category"`
}

// SEOContent holds a generated marketing article for a keyword.
type SEOContent struct {
	Title    string   `json:"title"`
	Slug     string   `json:"slug"`
	Content  string   `json:"content"`
	Keywords []string `json:"keywords"`
}

// DecodeVIN resolves make/model/year for a 17-character VIN.
func (c *Client) DecodeVIN(ctx context.Context, vin string) (*VINDecodeResult, error) {
	if c == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "assist client not configured")
	}
	trimmed := strings.ToUpper(strings.TrimSpace(vin))
	if len(trimmed) != vinLength {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "vin must be 17 characters")
	}

	var result VINDecodeResult
	if err := c.post(ctx, "vin:decode", map[string]string{"vin": trimmed}, &result); err != nil {
		return nil, err
	}
	if result.Make == "" || result.Model == "" || result.Year == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "vin decode response missing required keys")
	}
	return &result, nil
}

// IdentifyPart infers listing draft fields from an uploaded part photo. The
// image is passed as an opaque reference handle.
func (c *Client) IdentifyPart(ctx context.Context, imageRef string) (*PartIdentification, error) {
	if c == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "assist client not configured")
	}
	trimmed := strings.TrimSpace(imageRef)
	if trimmed == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "image reference is required")
	}

	var result PartIdentification
	if err := c.post(ctx, "parts:identify", map[string]string{"image_ref": trimmed}, &result); err != nil {
		return nil, err
	}
	if result.Name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "part identification response missing name")
	}
	return &result, nil
}

// GenerateSEOContent produces a marketing article for the given keyword.
func (c *Client) GenerateSEOContent(ctx context.Context, keyword string) (*SEOContent, error) {
	if c == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "assist client not configured")
	}
	trimmed := strings.TrimSpace(keyword)
	if trimmed == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "keyword is required")
	}

	var result SEOContent
	if err := c.post(ctx, "content:generate", map[string]string{"keyword": trimmed}, &result); err != nil {
		return nil, err
	}
	if result.Title == "" || result.Content == "" {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "content response missing required keys")
	}
	return &result, nil
}

func (c *Client) post(ctx context.Context, path string, body any, dest any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "marshal assist request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.buildURL(path), bytes.NewReader(payload))
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "build assist request")
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "execute assist request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyReadLimit))
		return pkgerrors.Wrap(pkgerrors.CodeDependency, fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg))), "assist request failed")
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode assist response")
	}
	return nil
}

func (c *Client) buildURL(path string) string {
	trimmed := strings.TrimRight(c.baseURL, "/")
	path = strings.TrimLeft(path, "/")
	return fmt.Sprintf("%s/%s", trimmed, path)
}
