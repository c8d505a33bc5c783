// Package rest implements the bill store contract against the remote record
// store's REST API.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"encore.app/bills/model"
	"encore.app/bills/store"
)

// Client is an HTTP implementation of store.BillStore.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

var _ store.BillStore = (*Client)(nil)

// NewClient creates a store client for the given base URL. token, when
// non-empty, is sent as a bearer token on every request.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// List fetches all bill records visible to the current session.
func (c *Client) List(ctx context.Context) ([]model.BillRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/bills", nil)
	if err != nil {
		return nil, err
	}

	var records []model.BillRecord
	if err := c.do(req, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Create uploads the supporting document as multipart form data and returns
// the storage key, file URL and draft record id assigned by the store.
func (c *Client) Create(ctx context.Context, params store.CreateParams) (store.CreateResult, error) {
	var body bytes.Buffer
	form := multipart.NewWriter(&body)

	part, err := form.CreateFormFile("file", params.FileName)
	if err != nil {
		return store.CreateResult{}, err
	}
	if _, err := part.Write(params.Data); err != nil {
		return store.CreateResult{}, err
	}
	if err := form.WriteField("email", params.Email); err != nil {
		return store.CreateResult{}, err
	}
	if err := form.Close(); err != nil {
		return store.CreateResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/bills", &body)
	if err != nil {
		return store.CreateResult{}, err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	var result store.CreateResult
	if err := c.do(req, &result); err != nil {
		return store.CreateResult{}, err
	}
	return result, nil
}

// Update merges patch into the record identified by billID.
func (c *Client) Update(ctx context.Context, billID string, patch store.UpdatePatch) (model.BillRecord, error) {
	payload, err := json.Marshal(patch)
	if err != nil {
		return model.BillRecord{}, err
	}

	endpoint := c.baseURL + "/bills/" + url.PathEscape(billID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, endpoint, bytes.NewReader(payload))
	if err != nil {
		return model.BillRecord{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	var record model.BillRecord
	if err := c.do(req, &record); err != nil {
		return model.BillRecord{}, err
	}
	return record, nil
}

// do executes the request and decodes the JSON response body into out. Any
// non-2xx response becomes a TransportError carrying the upstream status.
func (c *Client) do(req *http.Request, out any) error {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &store.TransportError{Status: resp.StatusCode}
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
