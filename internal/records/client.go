// Package records is the boundary to the remote record store: a thin HTTP
// client for the backend proxy that fronts the hosted base. The dashboard
// consumes it as a generic table/record CRUD surface and knows nothing
// about the proxy's internals.
package records

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/lumenmd/lead-dashboard/pkg/logging"
)

var tracer = otel.Tracer("leaddash/records")

const defaultTimeout = 20 * time.Second

// ErrNotFound is returned when the proxy reports a missing table or record
var ErrNotFound = errors.New("record not found")

// Record is one row from the remote base.
type Record struct {
	ID     string         `json:"id"`
	Fields map[string]any `json:"fields"`
}

// StringField returns a field's value as a trimmed string, tolerating
// missing or non-string values.
func (r *Record) StringField(name string) string {
	if r == nil || r.Fields == nil {
		return ""
	}
	if v, ok := r.Fields[name].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

// Client is the CRUD surface the dashboard consumes.
type Client interface {
	Get(ctx context.Context, table, id string) (*Record, error)
	List(ctx context.Context, table, filter string) ([]Record, error)
	Update(ctx context.Context, table, id string, fields map[string]any) error
}

// HTTPClient implements Client against the backend proxy.
type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *logging.Logger
}

// NewHTTPClient creates a record store client. A zero timeout falls back to
// the default.
func NewHTTPClient(baseURL, apiKey string, timeout time.Duration, logger *logging.Logger) *HTTPClient {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Get fetches a single record by table and id.
func (c *HTTPClient) Get(ctx context.Context, table, id string) (*Record, error) {
	ctx, span := tracer.Start(ctx, "records.get")
	defer span.End()
	span.SetAttributes(attribute.String("records.table", table), attribute.String("records.id", id))

	var rec Record
	path := fmt.Sprintf("/tables/%s/records/%s", url.PathEscape(table), url.PathEscape(id))
	if err := c.do(ctx, http.MethodGet, path, nil, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// List fetches records from a table, optionally narrowed by a filter
// expression the proxy understands.
func (c *HTTPClient) List(ctx context.Context, table, filter string) ([]Record, error) {
	ctx, span := tracer.Start(ctx, "records.list")
	defer span.End()
	span.SetAttributes(attribute.String("records.table", table))

	path := fmt.Sprintf("/tables/%s/records", url.PathEscape(table))
	if strings.TrimSpace(filter) != "" {
		path += "?filter=" + url.QueryEscape(filter)
	}
	var out struct {
		Records []Record `json:"records"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Records, nil
}

// Update patches a record's fields. Fields not named keep their value.
func (c *HTTPClient) Update(ctx context.Context, table, id string, fields map[string]any) error {
	ctx, span := tracer.Start(ctx, "records.update")
	defer span.End()
	span.SetAttributes(attribute.String("records.table", table), attribute.String("records.id", id))

	path := fmt.Sprintf("/tables/%s/records/%s", url.PathEscape(table), url.PathEscape(id))
	body := map[string]any{"fields": fields}
	return c.do(ctx, http.MethodPatch, path, body, nil)
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	if strings.TrimSpace(c.baseURL) == "" {
		return fmt.Errorf("records: missing base url")
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("records: marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("records: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("records: http request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("records: read response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("records: %w: %s", ErrNotFound, errorMessage(respBody))
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("records: status %d: %s", resp.StatusCode, errorMessage(respBody))
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("records: unmarshal response: %w", err)
		}
	}
	return nil
}

// errorMessage pulls the proxy's error message out of a failure body,
// falling back to the truncated raw payload.
func errorMessage(body []byte) string {
	var envelope struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Error != "" {
			return envelope.Error
		}
		if envelope.Message != "" {
			return envelope.Message
		}
	}
	msg := string(body)
	if len(msg) > 300 {
		msg = msg[:300]
	}
	return msg
}
