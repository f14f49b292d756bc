// Package jobs tracks long-running work items that callers observe by
// polling. A job is created in the running state, mutated only by the
// worker that owns it, and terminal once completed or failed. Entries
// are kept until process exit; there is no eviction.
package jobs

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Kind labels what a job is doing.
type Kind string

const (
	KindIndexBuild Kind = "index_build"
	KindEvaluation Kind = "evaluation"
)

// Status is the job lifecycle state.
type Status string

const (
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusError     Status = "error"
)

// ErrNotFound is returned when polling or updating an unknown job id.
var ErrNotFound = errors.New("job not found")

// Job is one tracked work item. Get returns value copies, so callers
// can never mutate tracker state through a snapshot. Result is shared
// by reference and must be treated as read-only once set.
type Job struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	Status    Status    `json:"status"`
	Progress  int       `json:"progress"`
	Step      string    `json:"step,omitempty"`
	Message   string    `json:"message,omitempty"`
	Result    any       `json:"result,omitempty"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Tracker is the process-wide job table. Safe for concurrent use.
type Tracker struct {
	mu   sync.RWMutex
	jobs map[string]*Job
	now  func() time.Time
}

// NewTracker builds an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{
		jobs: make(map[string]*Job),
		now:  time.Now,
	}
}

// Create registers a new running job with progress 0 and returns its id.
func (t *Tracker) Create(kind Kind) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := uuid.NewString()
	ts := t.now()
	t.jobs[id] = &Job{
		ID:        id,
		Kind:      kind,
		Status:    StatusRunning,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	return id
}

// Update records worker progress. Progress is expected to be
// non-decreasing; the tracker does not enforce it. Updates to a
// terminal job are ignored.
func (t *Tracker) Update(id string, progress int, step, message string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	job, ok := t.jobs[id]
	if !ok {
		return ErrNotFound
	}
	if job.Status != StatusRunning {
		return nil
	}
	job.Progress = progress
	job.Step = step
	job.Message = message
	job.UpdatedAt = t.now()
	return nil
}

// Complete marks the job completed with progress 100 and stores its
// result payload.
func (t *Tracker) Complete(id string, result any) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	job, ok := t.jobs[id]
	if !ok {
		return ErrNotFound
	}
	job.Status = StatusCompleted
	job.Progress = 100
	job.Result = result
	job.UpdatedAt = t.now()
	return nil
}

// Fail marks the job failed and records the error text. The failure
// never propagates to the submitter; it is only visible by polling.
func (t *Tracker) Fail(id string, cause error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	job, ok := t.jobs[id]
	if !ok {
		return ErrNotFound
	}
	job.Status = StatusError
	if cause != nil {
		job.Error = cause.Error()
	}
	job.UpdatedAt = t.now()
	return nil
}

// Get returns a snapshot of the job, or ErrNotFound.
func (t *Tracker) Get(id string) (Job, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	job, ok := t.jobs[id]
	if !ok {
		return Job{}, ErrNotFound
	}
	return *job, nil
}
