// Package backend provides an HTTP adapter for the RAG backend API.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/envint-labs/envint-cli/internal/core/domain"
	"github.com/envint-labs/envint-cli/internal/core/ports/driven"
	"github.com/envint-labs/envint-cli/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.Backend = (*Client)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "http://localhost:8000"

	// DefaultTimeout covers query and explanation calls, which run LLM
	// inference server-side and can take a while.
	DefaultTimeout = 120 * time.Second
)

// Config holds configuration for the backend client.
type Config struct {
	// BaseURL is the backend base URL (default: http://localhost:8000).
	BaseURL string

	// Timeout is the request timeout (default: 120s).
	Timeout time.Duration
}

// Client talks to the retrieval backend over HTTP.
type Client struct {
	client  *http.Client
	baseURL string
}

// queryRequest is the /api/query request format.
type queryRequest struct {
	Query string `json:"query"`
}

// explainRequest is the /api/explain-chunks request format.
type explainRequest struct {
	Query  string                 `json:"query"`
	Chunks []domain.EvidenceChunk `json:"chunks"`
}

// explainResponse is the /api/explain-chunks response format.
type explainResponse struct {
	Explanations []domain.ChunkExplanation `json:"explanations"`
}

// NewClient creates a new backend client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
	}
}

// Query submits a question and returns the backend's full answer payload.
// Payload-level failures arrive as a QueryResult with Error set, not as a
// Go error; only transport and decoding failures return an error.
func (c *Client) Query(ctx context.Context, question string) (*domain.QueryResult, error) {
	var result domain.QueryResult
	if err := c.postJSON(ctx, "/api/query", queryRequest{Query: question}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ExplainChunks asks the backend to explain why the given chunks matter for
// the question. The backend analyses at most the first three chunks.
func (c *Client) ExplainChunks(
	ctx context.Context, question string, chunks []domain.EvidenceChunk,
) ([]domain.ChunkExplanation, error) {
	req := explainRequest{Query: question, Chunks: chunks}
	var resp explainResponse
	if err := c.postJSON(ctx, "/api/explain-chunks", req, &resp); err != nil {
		return nil, err
	}
	return resp.Explanations, nil
}

// UploadDocument sends the file at path as a multipart upload to be parsed,
// chunked, embedded, and indexed.
func (c *Client) UploadDocument(ctx context.Context, path string) (*domain.ActionStatus, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("copy file contents: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("finalise multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload-file", &buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.doAction(req)
}

// RecreateEmbeddings asks the backend to wipe the index and re-embed every
// document it knows about.
func (c *Client) RecreateEmbeddings(ctx context.Context) (*domain.ActionStatus, error) {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+"/api/recreate-embeddings", http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	return c.doAction(req)
}

// DeleteEmbeddings asks the backend to delete all embeddings from the index.
func (c *Client) DeleteEmbeddings(ctx context.Context) (*domain.ActionStatus, error) {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodDelete, c.baseURL+"/api/delete-embeddings", http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	return c.doAction(req)
}

// Ping validates the backend is reachable via its health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", http.NoBody)
	if err != nil {
		return fmt.Errorf("create ping request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: health check returned status %d", domain.ErrBackendUnavailable, resp.StatusCode)
	}
	return nil
}

// postJSON sends a JSON POST and decodes the response into out.
func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	logger.Debug("POST %s (%d bytes)", path, len(jsonBody))

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("backend returned status %d: %s", resp.StatusCode, string(respBody))
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// doAction executes a maintenance request and decodes the status payload.
func (c *Client) doAction(req *http.Request) (*domain.ActionStatus, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("backend returned status %d: %s", resp.StatusCode, string(body))
	}

	var status domain.ActionStatus
	if err := json.Unmarshal(body, &status); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &status, nil
}
