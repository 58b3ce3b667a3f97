// Package docstore is the HTTP client for the hash-keyed certificate document
// store. It hydrates records for events that arrive with only a hash and
// persists the out-of-band halves of the two write paths.
package docstore

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

	"go.uber.org/ratelimit"

	"github.com/lab10-coop/meth-cert-poc/internal/cert/model"
)

type (
	// Metrics tracks document store calls.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// RequestDoc is the body of POST /certrequest.
type RequestDoc struct {
	Hash string          `json:"hash"`
	Tx   string          `json:"tx"`
	Data model.FieldList `json:"data"`
}

// ConfirmDoc is the body of POST /certconfirm.
type ConfirmDoc struct {
	Hash     string `json:"hash"`
	Tx       string `json:"tx"`
	Reviewer string `json:"reviewer"`
}

// Client talks to the document store. Hydration reads are rate limited so an
// event replay after restart cannot hammer the store.
type Client struct {
	baseURL string
	http    *http.Client
	rl      ratelimit.Limiter
	metrics Metrics
}

// NewClient builds a Client for the given base URL.
func NewClient(baseURL string, timeout time.Duration, readRPS int, metrics Metrics) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("docstore base url is required")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("parse docstore base url: %w", err)
	}
	if metrics == nil {
		return nil, errors.New("docstore metrics is required")
	}
	if readRPS <= 0 {
		readRPS = 10
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		rl:      ratelimit.New(readRPS),
		metrics: metrics,
	}, nil
}

// CertData fetches the original field list persisted for a hash, together with
// the request transaction id it was stored with.
func (c *Client) CertData(ctx context.Context, hash string) (model.FieldList, string, error) {
	start := time.Now()
	var err error
	defer func() {
		c.metrics.Observe("cert_data", err, start)
	}()

	c.rl.Take()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/certdata?hash="+url.QueryEscape(hash), nil)
	if err != nil {
		return nil, "", fmt.Errorf("build certdata request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("get certdata for %s: %w", hash, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err = fmt.Errorf("certdata for %s: store returned %d", hash, resp.StatusCode)
		return nil, "", err
	}

	var doc RequestDoc
	if err = json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, "", fmt.Errorf("decode certdata for %s: %w", hash, err)
	}
	return doc.Data, doc.Tx, nil
}

// PutRequest persists the full request document after the ledger write.
func (c *Client) PutRequest(ctx context.Context, doc RequestDoc) error {
	start := time.Now()
	err := c.post(ctx, "/certrequest", doc, nil)
	c.metrics.Observe("put_request", err, start)
	return err
}

// PutConfirm persists the confirmation document. On success the store echoes
// the hash as plain text; the echoed hash keys the caller's promotion.
func (c *Client) PutConfirm(ctx context.Context, doc ConfirmDoc) (string, error) {
	start := time.Now()
	var echoed string
	err := c.post(ctx, "/certconfirm", doc, &echoed)
	c.metrics.Observe("put_confirm", err, start)
	if err != nil {
		return "", err
	}
	return echoed, nil
}

func (c *Client) post(ctx context.Context, path string, body any, textOut *string) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal %s body: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build %s request: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("post %s: %w", path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("post %s: store returned %d", path, resp.StatusCode)
	}

	if textOut != nil {
		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("read %s response: %w", path, err)
		}
		*textOut = strings.TrimSpace(string(raw))
	}
	return nil
}
