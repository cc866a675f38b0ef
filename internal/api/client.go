// Package api speaks the TasksGodzilla orchestrator's JSON HTTP surface.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tasksgodzilla/godzilla-tui/internal/logging/events"
)

// Client is a thin typed wrapper over the orchestrator REST endpoints.
// Both tokens are optional; absent tokens simply omit their headers.
type Client struct {
	baseURL      string
	token        string
	projectToken string
	httpClient   *http.Client
}

// NewClient builds a client for the given base URL. Trailing slashes on the
// base are dropped so path joins stay predictable.
func NewClient(baseURL, token, projectToken string, timeout time.Duration) *Client {
	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		token:        token,
		projectToken: projectToken,
		httpClient:   &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the normalized gateway base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// HasToken reports whether an API bearer token is configured.
func (c *Client) HasToken() bool { return c.token != "" }

// HasProjectToken reports whether a project token is configured.
func (c *Client) HasProjectToken() bool { return c.projectToken != "" }

func (c *Client) endpoint(path string) string {
	if strings.HasPrefix(path, "http") {
		return path
	}
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

// do runs one round trip and decodes the success body into out. Non-2xx
// responses become *StatusError carrying the raw body; failures before a
// response become *TransportError; undecodable success bodies become
// ErrUnexpectedShape.
func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	events.Gateway.Request(method, path)
	var body io.Reader
	if method != http.MethodGet {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path), body)
	if err != nil {
		return &TransportError{Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if c.projectToken != "" {
		req.Header.Set("X-Project-Token", c.projectToken)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		message := "request failed"
		if data, err := io.ReadAll(resp.Body); err == nil {
			message = string(data)
		}
		return &StatusError{Code: resp.StatusCode, Status: resp.Status, Message: message}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return ErrUnexpectedShape
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, payload, out any) error {
	return c.do(ctx, http.MethodPost, path, payload, out)
}

// Projects lists every registered project.
func (c *Client) Projects(ctx context.Context) ([]Project, error) {
	var out []Project
	if err := c.get(ctx, "/projects", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Protocols lists the protocol runs of one project.
func (c *Client) Protocols(ctx context.Context, projectID int64) ([]ProtocolRun, error) {
	var out []ProtocolRun
	if err := c.get(ctx, fmt.Sprintf("/projects/%d/protocols", projectID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Steps lists the step runs of one protocol run.
func (c *Client) Steps(ctx context.Context, protocolID int64) ([]StepRun, error) {
	var out []StepRun
	if err := c.get(ctx, fmt.Sprintf("/protocols/%d/steps", protocolID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Events lists the event feed of one protocol run.
func (c *Client) Events(ctx context.Context, protocolID int64) ([]Event, error) {
	var out []Event
	if err := c.get(ctx, fmt.Sprintf("/protocols/%d/events", protocolID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RecentEvents lists the newest events across all projects.
func (c *Client) RecentEvents(ctx context.Context, limit int) ([]Event, error) {
	var out []Event
	if err := c.get(ctx, fmt.Sprintf("/events?limit=%d", limit), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// QueueStats fetches the queue counters as raw JSON; the shape is
// deployment-defined so it is rendered verbatim.
func (c *Client) QueueStats(ctx context.Context) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.get(ctx, "/queues", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// QueueJobs lists queue jobs, optionally narrowed to one status.
func (c *Client) QueueJobs(ctx context.Context, status string) ([]QueueJob, error) {
	path := "/queues/jobs"
	if status != "" {
		path = "/queues/jobs?status=" + url.QueryEscape(status)
	}
	var out []QueueJob
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Branches lists the git branches of one project.
func (c *Client) Branches(ctx context.Context, projectID int64) ([]string, error) {
	var out branchList
	if err := c.get(ctx, fmt.Sprintf("/projects/%d/branches", projectID), &out); err != nil {
		return nil, err
	}
	return out.Branches, nil
}

// CreateProject registers a new project.
func (c *Client) CreateProject(ctx context.Context, name, gitURL, baseBranch string) (Project, error) {
	payload := struct {
		Name       string `json:"name"`
		GitURL     string `json:"git_url"`
		BaseBranch string `json:"base_branch"`
	}{name, gitURL, baseBranch}
	var out Project
	if err := c.post(ctx, "/projects", payload, &out); err != nil {
		return Project{}, err
	}
	return out, nil
}

// CreateProtocol starts a new pending protocol run inside a project. A nil
// description is sent as JSON null.
func (c *Client) CreateProtocol(ctx context.Context, projectID int64, protocolName, baseBranch string, description *string) (ProtocolRun, error) {
	payload := struct {
		ProtocolName string  `json:"protocol_name"`
		BaseBranch   string  `json:"base_branch"`
		Description  *string `json:"description"`
		Status       string  `json:"status"`
	}{protocolName, baseBranch, description, "pending"}
	var out ProtocolRun
	if err := c.post(ctx, fmt.Sprintf("/projects/%d/protocols", projectID), payload, &out); err != nil {
		return ProtocolRun{}, err
	}
	return out, nil
}

// DeleteBranch asks the orchestrator to delete a remote branch.
func (c *Client) DeleteBranch(ctx context.Context, projectID int64, branch string) error {
	payload := struct {
		Confirm bool `json:"confirm"`
	}{true}
	var out json.RawMessage
	path := fmt.Sprintf("/projects/%d/branches/%s/delete", projectID, url.PathEscape(branch))
	return c.post(ctx, path, payload, &out)
}

// ProtocolAction posts a lifecycle action (start, pause, resume, cancel)
// against a protocol run.
func (c *Client) ProtocolAction(ctx context.Context, protocolID int64, action string) error {
	var out json.RawMessage
	path := fmt.Sprintf("/protocols/%d/actions/%s", protocolID, url.PathEscape(action))
	return c.post(ctx, path, nil, &out)
}

// ProtocolOpenPR asks the orchestrator to open a pull request for the run.
func (c *Client) ProtocolOpenPR(ctx context.Context, protocolID int64) error {
	var out json.RawMessage
	return c.post(ctx, fmt.Sprintf("/protocols/%d/actions/open_pr", protocolID), nil, &out)
}

// StepRunNext enqueues the next pending step of a protocol run.
func (c *Client) StepRunNext(ctx context.Context, protocolID int64) error {
	var out json.RawMessage
	return c.post(ctx, fmt.Sprintf("/protocols/%d/actions/run_next_step", protocolID), nil, &out)
}

// StepRetryLatest re-enqueues the most recent step of a protocol run.
func (c *Client) StepRetryLatest(ctx context.Context, protocolID int64) error {
	var out json.RawMessage
	return c.post(ctx, fmt.Sprintf("/protocols/%d/actions/retry_latest", protocolID), nil, &out)
}

// StepRunQA enqueues a QA pass for one step.
func (c *Client) StepRunQA(ctx context.Context, stepID int64) error {
	var out json.RawMessage
	return c.post(ctx, fmt.Sprintf("/steps/%d/actions/run_qa", stepID), nil, &out)
}

// StepApprove marks one step as approved.
func (c *Client) StepApprove(ctx context.Context, stepID int64) error {
	var out json.RawMessage
	return c.post(ctx, fmt.Sprintf("/steps/%d/actions/approve", stepID), nil, &out)
}

// SpecAudit enqueues a spec audit. Nil IDs and interval audit everything on
// the server's default cadence.
func (c *Client) SpecAudit(ctx context.Context, projectID, protocolID *int64, backfill bool, intervalSeconds *int64) error {
	payload := struct {
		ProjectID       *int64 `json:"project_id"`
		ProtocolID      *int64 `json:"protocol_id"`
		Backfill        bool   `json:"backfill"`
		IntervalSeconds *int64 `json:"interval_seconds"`
	}{projectID, protocolID, backfill, intervalSeconds}
	var out json.RawMessage
	return c.post(ctx, "/specs/audit", payload, &out)
}

// ImportCodeMachine imports an external CodeMachine workspace as a protocol
// run, optionally enqueueing it immediately.
func (c *Client) ImportCodeMachine(ctx context.Context, projectID int64, protocolName, workspacePath, baseBranch string, description *string, enqueue bool) error {
	payload := struct {
		ProtocolName  string  `json:"protocol_name"`
		WorkspacePath string  `json:"workspace_path"`
		BaseBranch    string  `json:"base_branch"`
		Description   *string `json:"description"`
		Enqueue       bool    `json:"enqueue"`
	}{protocolName, workspacePath, baseBranch, description, enqueue}
	var out json.RawMessage
	return c.post(ctx, fmt.Sprintf("/projects/%d/codemachine/import", projectID), payload, &out)
}
