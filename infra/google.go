package infra

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"maps-gateway/model"
)

const (
	DirectionsPath = "/maps/api/directions/json"
	TextSearchPath = "/maps/api/place/textsearch/json"
)

// Google Web Service 的 status 值
const (
	GoogleStatusOK          = "OK"
	GoogleStatusZeroResults = "ZERO_RESULTS"
)

type GoogleConfig struct {
	APIKey  string
	BaseURL string
}

// GoogleClient 只持有 API key 與 http.Client，可被多個請求同時使用
type GoogleClient struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

func NewGoogleClient(config GoogleConfig) *GoogleClient {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultGoogleBaseURL
	}
	return &GoogleClient{
		APIKey:     config.APIKey,
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{},
	}
}

func (g *GoogleClient) BuildURL(path string, params url.Values) string {
	q := url.Values{}
	for k, v := range params {
		q[k] = v
	}
	q.Set("key", g.APIKey)
	return g.BaseURL + path + "?" + q.Encode()
}

// GoogleEnvelope Google 回應共同的外層欄位，其餘欄位保留原始 JSON
type GoogleEnvelope struct {
	Status       string          `json:"status"`
	ErrorMessage string          `json:"error_message,omitempty"`
	Body         json.RawMessage `json:"-"`
}

// GetJSON 發出 GET 請求並檢查 HTTP 與 Google status；ZERO_RESULTS 不是錯誤
func (g *GoogleClient) GetJSON(ctx context.Context, api, path string, params url.Values) (*GoogleEnvelope, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.BuildURL(path, params), nil)
	if err != nil {
		return nil, &model.ProviderError{API: api, Err: g.redactURL(err, path)}
	}

	resp, err := g.HTTPClient.Do(req)
	if err != nil {
		return nil, &model.ProviderError{API: api, Err: g.redactURL(err, path)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &model.ProviderError{API: api, Err: fmt.Errorf("read body: %w", err)}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &model.ProviderError{API: api, Status: resp.Status, Message: truncate(string(body), 256)}
	}

	env := &GoogleEnvelope{}
	if err := json.Unmarshal(body, env); err != nil {
		return nil, &model.ProviderError{API: api, Err: fmt.Errorf("decode envelope: %w", err)}
	}
	env.Body = body

	switch env.Status {
	case GoogleStatusOK, GoogleStatusZeroResults:
		return env, nil
	default:
		return nil, &model.ProviderError{API: api, Status: env.Status, Message: env.ErrorMessage}
	}
}

// redactURL 把錯誤中的完整 URL（含 API key）換成不帶 query 的 endpoint，保留原本的 error chain
func (g *GoogleClient) redactURL(err error, path string) error {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return err
	}
	return &url.Error{Op: urlErr.Op, URL: g.BaseURL + path, Err: urlErr.Err}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
