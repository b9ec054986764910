package screen

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"social-admin-dashboard/pkg/backend"
	"social-admin-dashboard/pkg/log"
)

// FetcherOptions configures a Fetcher.
type FetcherOptions struct {
	// Label names the collection in error messages, e.g. "content".
	Label string
	// AuthMessage is shown when a load is attempted without a token.
	AuthMessage string
	Logger      log.Logger
}

// Fetcher loads remote pages and keeps the tri-state fetch status.
//
// Every Load starts a new generation. A result is applied only while its
// generation is still the latest and the fetcher is open; anything else is
// dropped.
type Fetcher[T any] struct {
	src  Source[T]
	opts FetcherOptions

	mu     sync.Mutex
	gen    uint64
	state  State[T]
	cancel context.CancelFunc
	done   chan struct{}
	closed bool
}

// NewFetcher returns an idle Fetcher over src.
func NewFetcher[T any](src Source[T], opts FetcherOptions) *Fetcher[T] {
	if opts.Label == "" {
		opts.Label = "data"
	}
	if opts.AuthMessage == "" {
		opts.AuthMessage = fmt.Sprintf("Please log in to view %s", opts.Label)
	}
	if opts.Logger == nil {
		opts.Logger = log.NewNop()
	}
	return &Fetcher[T]{
		src:   src,
		opts:  opts,
		state: State[T]{Status: StatusIdle},
	}
}

// Load starts a new generation for q and returns a channel that is closed
// once that generation has settled, whether applied or discarded.
//
// The request keeps ctx's values but not its cancellation: it outlives the
// call that started it and ends only when superseded or closed.
//
// Without an access token the fetcher moves straight to the error state and
// the source is never called.
func (f *Fetcher[T]) Load(ctx context.Context, q Query) <-chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()

	done := make(chan struct{})
	if f.closed {
		close(done)
		return done
	}

	f.gen++
	gen := f.gen
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	f.done = done

	if q.AccessToken == "" {
		f.state = State[T]{Status: StatusError, Message: f.opts.AuthMessage, Err: ErrAuthMissing, Generation: gen}
		close(done)
		return done
	}

	f.state = State[T]{Status: StatusLoading, Generation: gen}
	ctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	f.cancel = cancel

	go f.run(ctx, cancel, gen, q, done)
	return done
}

func (f *Fetcher[T]) run(ctx context.Context, cancel context.CancelFunc, gen uint64, q Query, done chan struct{}) {
	defer close(done)
	defer cancel()

	recs, err := f.src.Fetch(ctx, q)

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed || gen != f.gen {
		f.opts.Logger.Debugf(ctx, "screen.Fetcher discarded %s generation %d (current %d)", f.opts.Label, gen, f.gen)
		return
	}
	f.cancel = nil

	if err != nil {
		f.opts.Logger.Warnf(ctx, "screen.Fetcher %s page=%d limit=%d: %v", f.opts.Label, q.Page, q.Limit, err)
		f.state = State[T]{Status: StatusError, Message: f.describe(err), Err: err, Generation: gen}
		return
	}
	if recs == nil {
		recs = []T{}
	}
	f.state = State[T]{Status: StatusReady, Records: recs, Generation: gen}
}

// State returns the current fetch state.
func (f *Fetcher[T]) State() State[T] {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Await blocks until the latest generation has settled or ctx is done.
func (f *Fetcher[T]) Await(ctx context.Context) (State[T], error) {
	for {
		f.mu.Lock()
		done, gen := f.done, f.gen
		f.mu.Unlock()

		if done == nil {
			return f.State(), nil
		}
		select {
		case <-done:
		case <-ctx.Done():
			return f.State(), ctx.Err()
		}

		f.mu.Lock()
		if f.gen == gen || f.closed {
			s := f.state
			f.mu.Unlock()
			return s, nil
		}
		f.mu.Unlock()
	}
}

// Close cancels any in-flight request. Results arriving later are ignored.
func (f *Fetcher[T]) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.closed = true
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
}

func (f *Fetcher[T]) describe(err error) string {
	if he, ok := backend.AsHTTPError(err); ok {
		if he.Message != "" {
			return fmt.Sprintf("Failed to fetch %s: %s (%s)", f.opts.Label, he.StatusText(), he.Message)
		}
		return fmt.Sprintf("Failed to fetch %s: %s", f.opts.Label, he.StatusText())
	}
	if errors.Is(err, backend.ErrMalformedResponse) {
		return fmt.Sprintf("Failed to fetch %s: unexpected response format", f.opts.Label)
	}
	return fmt.Sprintf("Failed to fetch %s: %v", f.opts.Label, err)
}
