package recordstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	applog "github.com/yukikurage/project-dashboard-api/internal/logger"
	"golang.org/x/time/rate"
)

const (
	defaultTimeout = 10 * time.Second
	maxBodyBytes   = 10 << 20
)

// Config holds the connection settings for the hosted record-storage API
type Config struct {
	BaseURL           string
	ProjectID         string
	PublicKey         string
	Timeout           time.Duration
	RequestsPerSecond float64

	// HTTPClient overrides the default client, mainly for tests
	HTTPClient *http.Client
}

// Client talks to the hosted record-storage API. It is safe for concurrent use.
type Client struct {
	baseURL   string
	projectID string
	publicKey string
	http      *http.Client
	limiter   *rate.Limiter
}

// NewClient creates a client. A non-positive RequestsPerSecond disables throttling.
func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.RequestsPerSecond > 0 {
		burst := int(cfg.RequestsPerSecond)
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}

	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		projectID: cfg.ProjectID,
		publicKey: cfg.PublicKey,
		http:      httpClient,
		limiter:   limiter,
	}
}

// FetchRecords queries a table. It returns an empty slice when nothing matches.
func (c *Client) FetchRecords(ctx context.Context, table string, params FetchParams) ([]Record, error) {
	env, err := c.do(ctx, "fetch", table, http.MethodPost, "/query", params)
	if err != nil {
		return nil, err
	}

	records := []Record{}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return records, nil
	}
	if err := decode(env.Data, &records); err != nil {
		return nil, &TransportError{Op: "fetch", Table: table, Err: fmt.Errorf("decode records: %w", err)}
	}
	return records, nil
}

// GetRecordByID fetches one record. It returns a nil record when the id does not exist.
func (c *Client) GetRecordByID(ctx context.Context, table string, id uint64, fields []FieldRef) (Record, error) {
	path := "/" + strconv.FormatUint(id, 10) + "/query"
	env, err := c.do(ctx, "get", table, http.MethodPost, path, getPayload{Fields: fields})
	if err != nil {
		var te *TransportError
		if errors.As(err, &te) && te.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}

	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil, nil
	}
	var record Record
	if err := decode(env.Data, &record); err != nil {
		return nil, &TransportError{Op: "get", Table: table, Err: fmt.Errorf("decode record: %w", err)}
	}
	if len(record) == 0 {
		return nil, nil
	}
	return record, nil
}

// CreateRecords inserts records and returns them as stored
func (c *Client) CreateRecords(ctx context.Context, table string, records []Record) ([]Record, error) {
	env, err := c.do(ctx, "create", table, http.MethodPost, "", recordsPayload{Records: records})
	if err != nil {
		return nil, err
	}
	return collect("create", table, env.Results)
}

// UpdateRecords patches records. Each record carries its "Id" and only the fields to change.
func (c *Client) UpdateRecords(ctx context.Context, table string, records []Record) ([]Record, error) {
	env, err := c.do(ctx, "update", table, http.MethodPatch, "", recordsPayload{Records: records})
	if err != nil {
		return nil, err
	}
	return collect("update", table, env.Results)
}

// DeleteRecords removes records by id
func (c *Client) DeleteRecords(ctx context.Context, table string, ids []uint64) error {
	env, err := c.do(ctx, "delete", table, http.MethodDelete, "", deletePayload{RecordIDs: ids})
	if err != nil {
		return err
	}
	_, err = collect("delete", table, env.Results)
	return err
}

// collect splits batch results, logging every failure and reporting the first one
func collect(op, table string, results []Result) ([]Record, error) {
	var failures []Result
	records := make([]Record, 0, len(results))
	for _, r := range results {
		if !r.Success {
			failures = append(failures, r)
			continue
		}
		records = append(records, r.Data)
	}

	if len(failures) > 0 {
		for _, f := range failures {
			applog.Log.WithFields(logrus.Fields{
				"op":      op,
				"table":   table,
				"message": f.Message,
			}).Error("record store rejected record")
		}
		return nil, &BatchError{Op: op, Table: table, Failures: failures}
	}
	return records, nil
}

func (c *Client) do(ctx context.Context, op, table, method, path string, payload any) (*envelope, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &TransportError{Op: op, Table: table, Err: err}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &TransportError{Op: op, Table: table, Err: fmt.Errorf("encode request: %w", err)}
	}

	endpoint := c.baseURL + "/v1/tables/" + url.PathEscape(table) + "/records" + path
	req, err := http.NewRequestWithContext(ctx, method, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &TransportError{Op: op, Table: table, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Project-Id", c.projectID)
	req.Header.Set("X-Public-Key", c.publicKey)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		applog.Log.WithFields(logrus.Fields{"op": op, "table": table, "error": err}).Error("record store call failed")
		return nil, &TransportError{Op: op, Table: table, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &TransportError{Op: op, Table: table, StatusCode: resp.StatusCode, Err: err}
	}

	applog.Log.WithFields(logrus.Fields{
		"op":      op,
		"table":   table,
		"status":  resp.StatusCode,
		"latency": time.Since(start).String(),
	}).Debug("record store call")

	var env envelope
	decodeErr := decode(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &TransportError{Op: op, Table: table, StatusCode: resp.StatusCode, Message: errorMessage(raw)}
	}
	if decodeErr != nil {
		return nil, &TransportError{Op: op, Table: table, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", decodeErr)}
	}
	if !env.Success {
		message := env.Message
		if message == "" {
			message = errorMessage(raw)
		}
		applog.Log.WithFields(logrus.Fields{"op": op, "table": table, "message": message}).Error("record store call unsuccessful")
		return nil, &TransportError{Op: op, Table: table, StatusCode: resp.StatusCode, Message: message}
	}
	return &env, nil
}

// errorMessage pulls a message out of an error payload: top-level "message",
// then "data.message", then "error" as a string or an object with a message.
func errorMessage(raw []byte) string {
	var payload struct {
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
		Error   json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	for _, nested := range []json.RawMessage{payload.Data, payload.Error} {
		if len(nested) == 0 {
			continue
		}
		var text string
		if err := json.Unmarshal(nested, &text); err == nil && text != "" {
			return text
		}
		var obj struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(nested, &obj); err == nil && obj.Message != "" {
			return obj.Message
		}
	}
	return ""
}

func decode(raw []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	return dec.Decode(v)
}
