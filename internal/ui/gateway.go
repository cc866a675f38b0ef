package ui

import (
	"context"
	"encoding/json"

	"github.com/tasksgodzilla/godzilla-tui/internal/api"
)

// Gateway is the slice of the orchestrator API the controller calls. The
// production implementation is *api.Client; tests substitute a recording
// fake.
type Gateway interface {
	Projects(ctx context.Context) ([]api.Project, error)
	Protocols(ctx context.Context, projectID int64) ([]api.ProtocolRun, error)
	Steps(ctx context.Context, protocolID int64) ([]api.StepRun, error)
	Events(ctx context.Context, protocolID int64) ([]api.Event, error)
	RecentEvents(ctx context.Context, limit int) ([]api.Event, error)
	QueueStats(ctx context.Context) (json.RawMessage, error)
	QueueJobs(ctx context.Context, status string) ([]api.QueueJob, error)
	Branches(ctx context.Context, projectID int64) ([]string, error)

	CreateProject(ctx context.Context, name, gitURL, baseBranch string) (api.Project, error)
	CreateProtocol(ctx context.Context, projectID int64, protocolName, baseBranch string, description *string) (api.ProtocolRun, error)
	DeleteBranch(ctx context.Context, projectID int64, branch string) error
	ProtocolAction(ctx context.Context, protocolID int64, action string) error
	ProtocolOpenPR(ctx context.Context, protocolID int64) error
	StepRunNext(ctx context.Context, protocolID int64) error
	StepRetryLatest(ctx context.Context, protocolID int64) error
	StepRunQA(ctx context.Context, stepID int64) error
	StepApprove(ctx context.Context, stepID int64) error
	SpecAudit(ctx context.Context, projectID, protocolID *int64, backfill bool, intervalSeconds *int64) error
	ImportCodeMachine(ctx context.Context, projectID int64, protocolName, workspacePath, baseBranch string, description *string, enqueue bool) error

	BaseURL() string
	HasToken() bool
	HasProjectToken() bool
}
