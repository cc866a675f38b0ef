package api

import "encoding/json"

// Project is a registered repository the orchestrator manages.
type Project struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	GitURL     string `json:"git_url,omitempty"`
	BaseBranch string `json:"base_branch,omitempty"`
	UpdatedAt  string `json:"updated_at,omitempty"`
}

// ProtocolRun is one orchestration run inside a project.
type ProtocolRun struct {
	ID           int64  `json:"id"`
	ProjectID    int64  `json:"project_id"`
	ProtocolName string `json:"protocol_name"`
	Status       string `json:"status,omitempty"`
	BaseBranch   string `json:"base_branch,omitempty"`
	Description  string `json:"description,omitempty"`
	UpdatedAt    string `json:"updated_at,omitempty"`
}

// StepRun is one step of a protocol run.
type StepRun struct {
	ID            int64  `json:"id"`
	ProtocolRunID int64  `json:"protocol_run_id"`
	StepIndex     int64  `json:"step_index"`
	StepName      string `json:"step_name"`
	StepType      string `json:"step_type,omitempty"`
	Status        string `json:"status"`
	Retries       int64  `json:"retries"`
	Summary       string `json:"summary,omitempty"`
}

// Event is a timeline entry emitted by the orchestrator. Metadata is kept
// raw; the detail pane pretty-prints it on demand.
type Event struct {
	ID            int64           `json:"id"`
	ProtocolRunID int64           `json:"protocol_run_id"`
	StepRunID     *int64          `json:"step_run_id,omitempty"`
	EventType     string          `json:"event_type"`
	Message       string          `json:"message"`
	CreatedAt     string          `json:"created_at"`
	Metadata      json.RawMessage `json:"metadata,omitempty"`
	ProtocolName  string          `json:"protocol_name,omitempty"`
	ProjectID     *int64          `json:"project_id,omitempty"`
	ProjectName   string          `json:"project_name,omitempty"`
}

// QueueJob is one entry from the job queue listing. Every field is optional
// on the wire.
type QueueJob struct {
	JobID      string          `json:"job_id,omitempty"`
	Status     string          `json:"status,omitempty"`
	EnqueuedAt string          `json:"enqueued_at,omitempty"`
	StartedAt  string          `json:"started_at,omitempty"`
	EndedAt    string          `json:"ended_at,omitempty"`
	Payload    json.RawMessage `json:"payload,omitempty"`
}

type branchList struct {
	Branches []string `json:"branches"`
}
