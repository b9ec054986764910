package screen

import (
	"context"
	"time"
)

// Status is the fetch status of a screen.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusError   Status = "error"
	StatusReady   Status = "ready"
)

// Query is what a screen asks its Source for.
type Query struct {
	Page        int
	Limit       int
	AccessToken string
	Search      string
}

// Source fetches one remote page of records.
type Source[T any] interface {
	Fetch(ctx context.Context, q Query) ([]T, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc[T any] func(ctx context.Context, q Query) ([]T, error)

func (f SourceFunc[T]) Fetch(ctx context.Context, q Query) ([]T, error) {
	return f(ctx, q)
}

// State is a snapshot of a Fetcher.
type State[T any] struct {
	Status     Status
	Message    string
	Err        error
	Records    []T
	Generation uint64
}

// Action is a record-level operation offered by a screen.
type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
	ActionDelete  Action = "delete"
	ActionUpdate  Action = "update"
)

// ParseAction validates a raw action name.
func ParseAction(s string) (Action, error) {
	switch a := Action(s); a {
	case ActionApprove, ActionReject, ActionDelete, ActionUpdate:
		return a, nil
	default:
		return "", ErrUnknownAction
	}
}

// Destructive reports whether a must be confirmed before it runs.
func (a Action) Destructive() bool {
	return a == ActionDelete || a == ActionUpdate
}

// Mutator performs a record-level action against the backend.
type Mutator interface {
	Mutate(ctx context.Context, token, recordID string, action Action) error
}

// MutatorFunc adapts a function to Mutator.
type MutatorFunc func(ctx context.Context, token, recordID string, action Action) error

func (f MutatorFunc) Mutate(ctx context.Context, token, recordID string, action Action) error {
	return f(ctx, token, recordID, action)
}

// NoticeLevel is the severity of a transient notice.
type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeError   NoticeLevel = "error"
)

// Notice is a transient message shown once to the user.
type Notice struct {
	ID        string      `json:"id"`
	Level     NoticeLevel `json:"level"`
	Message   string      `json:"message"`
	CreatedAt time.Time   `json:"created_at"`
}

// Confirmation is a destructive action waiting for the user to confirm it.
type Confirmation struct {
	ID        string    `json:"id"`
	RecordID  string    `json:"record_id"`
	Action    Action    `json:"action"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Outcome is what happened after an action ran (or failed to).
type Outcome struct {
	RecordID    string  `json:"record_id"`
	Action      Action  `json:"action"`
	Refresh     bool    `json:"refresh"`
	CloseDetail bool    `json:"close_detail"`
	NavigateTo  string  `json:"navigate_to,omitempty"`
	Notice      *Notice `json:"notice,omitempty"`
	Err         error   `json:"-"`
}

// OK reports whether the action succeeded.
func (o Outcome) OK() bool {
	return o.Err == nil
}
