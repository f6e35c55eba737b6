package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/landbridge/michrazim/internal/metrics"
)

// DefaultBaseURL is the public Michrazim API root.
const DefaultBaseURL = "https://apps.land.gov.il/MichrazimSite/api"

// requiredHeaders are attached to every request. The upstream rejects
// calls without the exact Origin/Referer pair of its own front end.
var requiredHeaders = map[string]string{
	"User-Agent":   "datagov-external-client",
	"Content-Type": "application/json",
	"Origin":       "https://apps.land.gov.il",
	"Referer":      "https://apps.land.gov.il/MichrazimSite/",
}

// RawResponse carries what came back over the wire before any domain
// decoding.
type RawResponse struct {
	StatusCode int
	Body       []byte
}

// JSON decodes the body into v. Empty bodies decode to nothing.
func (r *RawResponse) JSON(v any) error {
	if len(r.Body) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decode upstream body: %w", err)
	}
	return nil
}

// Transport performs signed HTTP calls against the upstream API with
// connection reuse and structured error classification. It holds no
// request state beyond the shared http.Client.
type Transport struct {
	baseURL    string
	httpClient *http.Client
}

// NewTransport creates a Transport for the given API root.
func NewTransport(baseURL string, timeout time.Duration) *Transport {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Transport{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// Get performs a GET for path with the given query parameters.
func (t *Transport) Get(ctx context.Context, path string, query url.Values) (*RawResponse, error) {
	u := t.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return t.send(ctx, http.MethodGet, u, nil)
}

// Post performs a POST for path with a JSON body.
func (t *Transport) Post(ctx context.Context, path string, body any) (*RawResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	return t.send(ctx, http.MethodPost, t.baseURL+path, payload)
}

func (t *Transport) send(ctx context.Context, method, u string, body []byte) (*RawResponse, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	for k, v := range requiredHeaders {
		req.Header.Set(k, v)
	}

	requestID := uuid.NewString()
	start := time.Now()

	resp, err := t.httpClient.Do(req)
	if err != nil {
		terr := classifyNetErr(err)
		metrics.UpstreamErrors.WithLabelValues(method, terr.Kind.String()).Inc()
		slog.Debug("upstream call failed",
			"request_id", requestID, "method", method, "url", u, "error", err)
		return nil, terr
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		terr := classifyNetErr(err)
		metrics.UpstreamErrors.WithLabelValues(method, terr.Kind.String()).Inc()
		return nil, terr
	}

	latency := time.Since(start)
	metrics.UpstreamRequests.WithLabelValues(method, fmt.Sprintf("%d", resp.StatusCode)).Inc()
	metrics.UpstreamLatency.WithLabelValues(method).Observe(latency.Seconds())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.UpstreamErrors.WithLabelValues(method, KindHTTPStatus.String()).Inc()
		slog.Debug("upstream non-2xx",
			"request_id", requestID, "method", method, "url", u,
			"status", resp.StatusCode, "latency", latency)
		return nil, &TransportError{
			Kind:       KindHTTPStatus,
			StatusCode: resp.StatusCode,
			Body:       string(raw),
		}
	}

	slog.Debug("upstream call",
		"request_id", requestID, "method", method, "url", u,
		"status", resp.StatusCode, "latency", latency, "bytes", len(raw))

	return &RawResponse{StatusCode: resp.StatusCode, Body: raw}, nil
}

// Close releases pooled connections.
func (t *Transport) Close() {
	t.httpClient.CloseIdleConnections()
}
