package appwrite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/GoSim-25-26J-441/project-relay/config"
	"github.com/GoSim-25-26J-441/project-relay/internal/logging"
	"github.com/GoSim-25-26J-441/project-relay/internal/projects/domain"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"golang.org/x/time/rate"
)

// uniqueID asks the store to generate the document ID.
const uniqueID = "unique()"

// CredentialsFunc supplies the store credentials for a single call.
type CredentialsFunc func() (config.AppwriteCredentials, error)

// Client handles communication with the Appwrite databases API
type Client struct {
	baseURL     string
	httpClient  *http.Client
	credentials CredentialsFunc
	limiter     *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithCredentials replaces the environment lookup done on every call.
func WithCredentials(fn CredentialsFunc) Option {
	return func(c *Client) { c.credentials = fn }
}

// WithRateLimit caps outbound calls per second. A limit of zero disables it.
func WithRateLimit(limit float64, burst int) Option {
	return func(c *Client) {
		if limit <= 0 {
			c.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(limit), burst)
	}
}

// NewClient creates a new document store client
func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		credentials: config.LoadAppwrite,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// documentBody is the payload shape the store expects on writes.
type documentBody struct {
	DocumentID string                `json:"documentId,omitempty"`
	Data       domain.ProjectRequest `json:"data"`
}

// Create stores a new project and returns the assigned identifiers.
func (c *Client) Create(ctx context.Context, p domain.ProjectRequest) (*domain.ProjectResponse, error) {
	var out writeResult
	body := documentBody{DocumentID: uniqueID, Data: p}
	if err := c.do(ctx, "create_project", http.MethodPost, "", body, &out); err != nil {
		return nil, err
	}
	return out.response(), nil
}

// Get fetches a project by document ID.
func (c *Client) Get(ctx context.Context, id string) (*domain.Project, error) {
	var out projectDocument
	if err := c.do(ctx, "get_project", http.MethodGet, id, nil, &out); err != nil {
		return nil, err
	}
	return out.project(), nil
}

// Update patches name and description of an existing project.
func (c *Client) Update(ctx context.Context, id string, p domain.ProjectRequest) (*domain.ProjectResponse, error) {
	var out writeResult
	if err := c.do(ctx, "update_project", http.MethodPatch, id, documentBody{Data: p}, &out); err != nil {
		return nil, err
	}
	return out.response(), nil
}

// Delete removes a project and returns a confirmation message.
func (c *Client) Delete(ctx context.Context, id string) (string, error) {
	if err := c.do(ctx, "delete_project", http.MethodDelete, id, nil, nil); err != nil {
		return "", err
	}
	return domain.DeletedMessage(id), nil
}

func (c *Client) documentsURL(creds config.AppwriteCredentials, documentID string) string {
	u := fmt.Sprintf("%s/databases/%s/collections/%s/documents",
		c.baseURL, url.PathEscape(creds.DatabaseID), url.PathEscape(creds.CollectionID))
	if documentID != "" {
		u += "/" + url.PathEscape(documentID)
	}
	return u
}

// do performs exactly one outbound call. out may be nil when the response
// body is not needed; otherwise the decoded body must pass out.Validate.
func (c *Client) do(ctx context.Context, operation, method, documentID string, in any, out validation.Validatable) error {
	logger := logging.FromContext(ctx)

	creds, err := c.credentials()
	if err != nil {
		logger.LogError(operation, err)
		return err
	}

	var body io.Reader
	if in != nil {
		jsonData, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.documentsURL(creds, documentID), body)
	if err != nil {
		logger.LogError(operation, err)
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-Appwrite-Key", creds.APIKey)
	req.Header.Set("X-Appwrite-Project", creds.ProjectID)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			logger.LogError(operation, err)
			return fmt.Errorf("rate limit wait: %w", err)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		recordUpstreamCall(operation, time.Since(start), err)
		logger.LogError(operation, err)
		return fmt.Errorf("failed to call appwrite: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	duration := time.Since(start)
	if err != nil {
		recordUpstreamCall(operation, duration, err)
		logger.LogError(operation, err)
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := parseAPIError(resp.StatusCode, respBody)
		recordUpstreamCall(operation, duration, apiErr)
		logger.LogWarnf(operation, "appwrite returned status %d", resp.StatusCode)
		return apiErr
	}
	recordUpstreamCall(operation, duration, nil)
	logger.LogDebugf(operation, "appwrite returned status %d in %s", resp.StatusCode, duration)

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		logger.LogError(operation, err)
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if err := out.Validate(); err != nil {
		logger.LogError(operation, err)
		return fmt.Errorf("failed to unmarshal response: unexpected document shape: %w", err)
	}
	return nil
}
