package screen

import (
	"context"
	"errors"
	"sync"
	"time"

	"social-admin-dashboard/pkg/listing"
	"social-admin-dashboard/pkg/log"
)

// DefaultRemoteLimit is how many records a screen asks the backend for.
const DefaultRemoteLimit = 100

// Options configures a Screen.
type Options[T any] struct {
	Name   string
	Config listing.Config[T]
	Source Source[T]
	// ID returns the stable identifier of a record.
	ID func(T) string

	// Mutator is optional; a screen without one is read-only.
	Mutator Mutator

	// Label names the collection in messages ("content").
	Label string
	// NoticeLabel names one record in notices ("Content").
	NoticeLabel string
	AuthMessage string
	UpdatePath  func(recordID string) string

	RemoteLimit int
	Debounce    time.Duration
	ConfirmTTL  time.Duration
	Logger      log.Logger
}

// View is a rendered snapshot of a Screen.
type View[T any] struct {
	Screen       string              `json:"screen"`
	Status       Status              `json:"status"`
	Message      string              `json:"message,omitempty"`
	Generation   uint64              `json:"generation"`
	Items        []T                 `json:"items"`
	Page         int                 `json:"page"`
	PageSize     int                 `json:"page_size"`
	TotalPages   int                 `json:"total_pages"`
	TotalItems   int                 `json:"total_items"`
	FetchedItems int                 `json:"fetched_items"`
	RemotePage   int                 `json:"remote_page"`
	RemoteLimit  int                 `json:"remote_limit"`
	Filters      listing.FilterState `json:"filters"`
	Links        []int               `json:"links"`
	Detail       *T                  `json:"detail,omitempty"`
	Notices      []Notice            `json:"notices"`
	Pending      []Confirmation      `json:"pending_confirmations"`
}

// ActResult is what a user action returns: either a confirmation to accept
// or the outcome of an action that ran immediately.
type ActResult struct {
	Confirmation *Confirmation `json:"confirmation,omitempty"`
	Outcome      *Outcome      `json:"outcome,omitempty"`
}

// Screen is the server-held state of one list screen: filters, page window,
// fetch state, open detail view and pending notices.
type Screen[T any] struct {
	opts       Options[T]
	fetcher    *Fetcher[T]
	dispatcher *Dispatcher
	debouncer  *Debouncer
	l          log.Logger

	mu          sync.Mutex
	filters     listing.FilterState
	window      listing.Window
	remotePage  int
	remoteLimit int
	token       string
	detailID    string
	notices     []Notice
	mounted     bool
	closed      bool
}

// New builds a Screen. Nothing is fetched until Mount.
func New[T any](opts Options[T]) *Screen[T] {
	if opts.Logger == nil {
		opts.Logger = log.NewNop()
	}
	if opts.RemoteLimit <= 0 {
		opts.RemoteLimit = DefaultRemoteLimit
	}
	if opts.Label == "" {
		opts.Label = opts.Name
	}
	if opts.NoticeLabel == "" {
		opts.NoticeLabel = "Record"
	}

	return &Screen[T]{
		opts: opts,
		fetcher: NewFetcher(opts.Source, FetcherOptions{
			Label:       opts.Label,
			AuthMessage: opts.AuthMessage,
			Logger:      opts.Logger,
		}),
		dispatcher: NewDispatcher(opts.Mutator, DispatcherOptions{
			Label:      opts.NoticeLabel,
			UpdatePath: opts.UpdatePath,
			ConfirmTTL: opts.ConfirmTTL,
			Logger:     opts.Logger,
		}),
		debouncer:   NewDebouncer(opts.Debounce),
		l:           opts.Logger,
		filters:     listing.FilterState{Values: map[string]string{}},
		window:      listing.NewWindow(opts.Config.PageSize),
		remotePage:  1,
		remoteLimit: opts.RemoteLimit,
	}
}

// Mount binds the access token and issues the first fetch.
func (s *Screen[T]) Mount(ctx context.Context, token string) <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mounted = true
	s.token = token
	return s.reload(ctx)
}

// SetToken reloads when the token changes, e.g. becomes available.
func (s *Screen[T]) SetToken(ctx context.Context, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token == s.token && s.mounted {
		return
	}
	s.token = token
	s.mounted = true
	s.reload(ctx)
}

// Reload re-issues the current query. Failed loads are only retried here.
func (s *Screen[T]) Reload(ctx context.Context) <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reload(ctx)
}

// SetFilter selects value for one categorical filter and resets to page 1.
func (s *Screen[T]) SetFilter(name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.filters.With(name, value)
	if err := s.opts.Config.Validate(next); err != nil {
		return err
	}
	s.filters = next
	s.window = s.window.Reset()
	return nil
}

// SetFilters replaces the whole filter state at once.
func (s *Screen[T]) SetFilters(ctx context.Context, state listing.FilterState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.opts.Config.Validate(state); err != nil {
		return err
	}
	searchChanged := state.Search != s.filters.Search
	s.filters = state.WithSearch(state.Search)
	s.window = s.window.Reset()
	if searchChanged {
		s.searchChanged(ctx)
	}
	return nil
}

// SetSearch replaces the search text and resets to page 1. With server-side
// search the reload is debounced.
func (s *Screen[T]) SetSearch(ctx context.Context, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if text == s.filters.Search {
		return
	}
	s.filters = s.filters.WithSearch(text)
	s.window = s.window.Reset()
	s.searchChanged(ctx)
}

// SetPage jumps to local page n, clamped into range.
func (s *Screen[T]) SetPage(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.window = s.window.GoTo(n, len(s.filtered()))
}

// NextPage advances one local page.
func (s *Screen[T]) NextPage() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.window = s.window.Next(len(s.filtered()))
}

// PrevPage goes back one local page.
func (s *Screen[T]) PrevPage() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.window = s.window.Prev()
}

// SetPageSize changes the local page size and resets to page 1.
func (s *Screen[T]) SetPageSize(size int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, err := s.window.Resize(size, s.opts.Config.PageSizes)
	if err != nil {
		return err
	}
	s.window = w
	return nil
}

// SetRemote changes the backend page and limit; a change triggers a reload.
func (s *Screen[T]) SetRemote(ctx context.Context, page, limit int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = s.opts.RemoteLimit
	}
	if page == s.remotePage && limit == s.remoteLimit {
		return
	}
	s.remotePage, s.remoteLimit = page, limit
	s.window = s.window.Reset()
	s.reload(ctx)
}

// OpenDetail opens the detail view for a record of the current fetch.
func (s *Screen[T]) OpenDetail(id string) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.find(id)
	if !ok {
		var zero T
		return zero, ErrRecordNotFound
	}
	s.detailID = id
	return rec, nil
}

// CloseDetail closes the detail view.
func (s *Screen[T]) CloseDetail() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.detailID = ""
}

// Act starts action on a record. Destructive actions return a confirmation
// and run only after Confirm; the rest run right away.
func (s *Screen[T]) Act(ctx context.Context, recordID string, action Action) (ActResult, error) {
	if s.isClosed() {
		return ActResult{}, ErrClosed
	}
	if action.Destructive() {
		c, err := s.dispatcher.Request(recordID, action)
		if err != nil {
			return ActResult{}, err
		}
		return ActResult{Confirmation: &c}, nil
	}

	out := s.dispatcher.Perform(ctx, s.currentToken(), recordID, action)
	s.apply(ctx, out)
	return ActResult{Outcome: &out}, nil
}

// Confirm runs a previously requested destructive action.
func (s *Screen[T]) Confirm(ctx context.Context, confirmationID string) (Outcome, error) {
	if s.isClosed() {
		return Outcome{}, ErrClosed
	}
	c, err := s.dispatcher.Take(confirmationID)
	if err != nil {
		return Outcome{}, err
	}
	out := s.dispatcher.Perform(ctx, s.currentToken(), c.RecordID, c.Action)
	s.apply(ctx, out)
	return out, nil
}

// Cancel drops a pending confirmation.
func (s *Screen[T]) Cancel(confirmationID string) error {
	return s.dispatcher.Cancel(confirmationID)
}

// Submit runs an in-place update through fn and applies refetch-after-write.
func (s *Screen[T]) Submit(ctx context.Context, recordID string, fn func(ctx context.Context, token string) error) Outcome {
	token := s.currentToken()
	out := s.dispatcher.Submit(ctx, token, recordID, func(ctx context.Context) error {
		return fn(ctx, token)
	})
	s.apply(ctx, out)
	return out
}

// Filters returns the current filter state.
func (s *Screen[T]) Filters() listing.FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters.WithSearch(s.filters.Search)
}

// Token returns the access token bound to the screen.
func (s *Screen[T]) Token() string {
	return s.currentToken()
}

// Snapshot renders the current view. Notices are handed out once.
func (s *Screen[T]) Snapshot() View[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.fetcher.State()
	filtered := s.opts.Config.Apply(st.Records, s.filters)
	page := listing.Paginate(filtered, s.window.Page, s.window.PageSize)
	// Only a settled fetch may clamp the window; a refetch keeps the page.
	if st.Status == StatusReady {
		s.window.Page = page.Page
	} else {
		page.Page = s.window.Page
	}

	v := View[T]{
		Screen:       s.opts.Name,
		Status:       st.Status,
		Message:      st.Message,
		Generation:   st.Generation,
		Items:        page.Items,
		Page:         page.Page,
		PageSize:     page.PageSize,
		TotalPages:   page.TotalPages,
		TotalItems:   page.TotalItems,
		FetchedItems: len(st.Records),
		RemotePage:   s.remotePage,
		RemoteLimit:  s.remoteLimit,
		Filters:      s.filters.WithSearch(s.filters.Search),
		Links:        s.window.Links(len(filtered)),
		Notices:      s.notices,
		Pending:      s.dispatcher.Pending(),
	}
	if v.Notices == nil {
		v.Notices = []Notice{}
	}
	s.notices = nil

	if s.detailID != "" {
		if rec, ok := s.find(s.detailID); ok {
			v.Detail = &rec
		}
	}
	return v
}

// State returns the raw fetch state.
func (s *Screen[T]) State() State[T] {
	return s.fetcher.State()
}

// DetailID returns the id of the open detail view, if any.
func (s *Screen[T]) DetailID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.detailID
}

// Await blocks until the latest fetch generation has settled.
func (s *Screen[T]) Await(ctx context.Context) error {
	_, err := s.fetcher.Await(ctx)
	return err
}

// Close unmounts the screen; in-flight and debounced loads are dropped.
func (s *Screen[T]) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.debouncer.Stop()
	s.fetcher.Close()
}

// reload issues a fetch for the current query. Caller holds s.mu.
func (s *Screen[T]) reload(ctx context.Context) <-chan struct{} {
	q := Query{
		Page:        s.remotePage,
		Limit:       s.remoteLimit,
		AccessToken: s.token,
	}
	if s.opts.Config.ServerSideSearch {
		q.Search = s.filters.Search
	}
	return s.fetcher.Load(ctx, q)
}

// searchChanged schedules the debounced reload. Caller holds s.mu.
func (s *Screen[T]) searchChanged(ctx context.Context) {
	if !s.opts.Config.ServerSideSearch || !s.mounted {
		return
	}
	s.debouncer.Trigger(func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed {
			return
		}
		s.reload(ctx)
	})
}

func (s *Screen[T]) apply(ctx context.Context, out Outcome) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if out.Notice != nil {
		s.notices = append(s.notices, *out.Notice)
	}
	if !out.OK() {
		return
	}
	if out.CloseDetail && s.detailID == out.RecordID {
		s.detailID = ""
	}
	if out.Refresh && !s.closed {
		s.reload(ctx)
	}
}

// filtered returns the filtered records of the current fetch. Caller holds s.mu.
func (s *Screen[T]) filtered() []T {
	return s.opts.Config.Apply(s.fetcher.State().Records, s.filters)
}

// find looks a record up in the current fetch. Caller holds s.mu.
func (s *Screen[T]) find(id string) (T, bool) {
	var zero T
	if s.opts.ID == nil || id == "" {
		return zero, false
	}
	for _, rec := range s.fetcher.State().Records {
		if s.opts.ID(rec) == id {
			return rec, true
		}
	}
	return zero, false
}

func (s *Screen[T]) currentToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *Screen[T]) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// IsAuthMissing reports whether err is the missing-token failure.
func IsAuthMissing(err error) bool {
	return errors.Is(err, ErrAuthMissing)
}
