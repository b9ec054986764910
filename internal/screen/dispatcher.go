package screen

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"social-admin-dashboard/pkg/backend"
	"social-admin-dashboard/pkg/log"
)

// DefaultConfirmTTL is how long a confirmation stays valid.
const DefaultConfirmTTL = 5 * time.Minute

// DispatcherOptions configures a Dispatcher.
type DispatcherOptions struct {
	// Label is the capitalised record noun used in notices, e.g. "Content".
	Label string
	// UpdatePath builds the update form location for a record.
	UpdatePath func(recordID string) string
	ConfirmTTL time.Duration
	Logger     log.Logger
	Now        func() time.Time
}

// Dispatcher turns (record, action) pairs into backend mutations and holds
// destructive actions until they are confirmed.
type Dispatcher struct {
	mutator Mutator
	opts    DispatcherOptions

	mu      sync.Mutex
	pending map[string]Confirmation
}

// NewDispatcher returns a Dispatcher backed by m.
func NewDispatcher(m Mutator, opts DispatcherOptions) *Dispatcher {
	if opts.Label == "" {
		opts.Label = "Record"
	}
	if opts.ConfirmTTL <= 0 {
		opts.ConfirmTTL = DefaultConfirmTTL
	}
	if opts.Logger == nil {
		opts.Logger = log.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.UpdatePath == nil {
		opts.UpdatePath = func(id string) string { return "/update/" + id }
	}
	return &Dispatcher{
		mutator: m,
		opts:    opts,
		pending: make(map[string]Confirmation),
	}
}

// Request parks a destructive action and returns the confirmation the user
// has to accept.
func (d *Dispatcher) Request(recordID string, action Action) (Confirmation, error) {
	if !action.Destructive() {
		return Confirmation{}, ErrConfirmationNotRequired
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.sweep()

	c := Confirmation{
		ID:        uuid.NewString(),
		RecordID:  recordID,
		Action:    action,
		ExpiresAt: d.opts.Now().Add(d.opts.ConfirmTTL),
	}
	d.pending[c.ID] = c
	return c, nil
}

// Take removes and returns a pending confirmation.
func (d *Dispatcher) Take(id string) (Confirmation, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	c, ok := d.pending[id]
	if !ok {
		return Confirmation{}, ErrConfirmationNotFound
	}
	delete(d.pending, id)
	if d.opts.Now().After(c.ExpiresAt) {
		return Confirmation{}, ErrConfirmationExpired
	}
	return c, nil
}

// Cancel drops a pending confirmation.
func (d *Dispatcher) Cancel(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.pending[id]; !ok {
		return ErrConfirmationNotFound
	}
	delete(d.pending, id)
	return nil
}

// Pending lists the confirmations still waiting.
func (d *Dispatcher) Pending() []Confirmation {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sweep()
	out := make([]Confirmation, 0, len(d.pending))
	for _, c := range d.pending {
		out = append(out, c)
	}
	return out
}

// Perform runs action on recordID. Confirmation is the caller's job.
// Failures are reported in the Outcome, never as a panic.
func (d *Dispatcher) Perform(ctx context.Context, token, recordID string, action Action) Outcome {
	out := Outcome{RecordID: recordID, Action: action}

	if action == ActionUpdate {
		out.NavigateTo = d.opts.UpdatePath(recordID)
		return out
	}
	if token == "" {
		return d.fail(out, ErrAuthMissing)
	}
	if d.mutator == nil {
		return d.fail(out, ErrReadOnly)
	}

	if err := d.mutator.Mutate(ctx, token, recordID, action); err != nil {
		d.opts.Logger.Errorf(ctx, "screen.Dispatcher %s %s: %v", action, recordID, err)
		return d.fail(out, err)
	}

	out.Refresh = true
	out.CloseDetail = action == ActionDelete
	out.Notice = d.notice(NoticeSuccess, fmt.Sprintf("%s %s successfully", d.opts.Label, pastTense(action)))
	return out
}

// Submit runs an in-place update (a form submit) for recordID.
func (d *Dispatcher) Submit(ctx context.Context, token, recordID string, fn func(ctx context.Context) error) Outcome {
	out := Outcome{RecordID: recordID, Action: ActionUpdate}
	if token == "" {
		return d.fail(out, ErrAuthMissing)
	}
	if err := fn(ctx); err != nil {
		d.opts.Logger.Errorf(ctx, "screen.Dispatcher submit %s: %v", recordID, err)
		return d.fail(out, err)
	}
	out.Refresh = true
	out.CloseDetail = true
	out.Notice = d.notice(NoticeSuccess, fmt.Sprintf("%s updated successfully", d.opts.Label))
	return out
}

func (d *Dispatcher) fail(out Outcome, err error) Outcome {
	out.Err = err
	msg := fmt.Sprintf("Failed to %s %s", out.Action, strings.ToLower(d.opts.Label))
	if he, ok := backend.AsHTTPError(err); ok && he.Message != "" {
		msg = fmt.Sprintf("%s: %s", msg, he.Message)
	} else if errors.Is(err, ErrAuthMissing) {
		msg = fmt.Sprintf("%s: please log in", msg)
	} else {
		msg = fmt.Sprintf("%s: %v", msg, err)
	}
	out.Notice = d.notice(NoticeError, msg)
	return out
}

func (d *Dispatcher) notice(level NoticeLevel, msg string) *Notice {
	return &Notice{
		ID:        uuid.NewString(),
		Level:     level,
		Message:   msg,
		CreatedAt: d.opts.Now(),
	}
}

// sweep drops expired confirmations. Caller holds d.mu.
func (d *Dispatcher) sweep() {
	now := d.opts.Now()
	for id, c := range d.pending {
		if now.After(c.ExpiresAt) {
			delete(d.pending, id)
		}
	}
}

func pastTense(a Action) string {
	switch a {
	case ActionApprove:
		return "approved"
	case ActionReject:
		return "rejected"
	case ActionDelete:
		return "deleted"
	default:
		return "updated"
	}
}
