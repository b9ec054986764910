package usecase

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"social-admin-dashboard/internal/content"
	contentRepo "social-admin-dashboard/internal/content/repository"
	"social-admin-dashboard/internal/model"
	"social-admin-dashboard/internal/screen"
	"social-admin-dashboard/internal/token"
	tokenRepo "social-admin-dashboard/internal/token/repository"
	"social-admin-dashboard/internal/user"
	"social-admin-dashboard/internal/user/repository"
	"social-admin-dashboard/pkg/log"
)

type mockRepo struct {
	mu    sync.Mutex
	users []user.User
	calls []repository.ListUsersOptions
}

func (m *mockRepo) ListUsers(ctx context.Context, opt repository.ListUsersOptions) ([]user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, opt)
	if opt.Search == "" {
		return append([]user.User(nil), m.users...), nil
	}
	var out []user.User
	for _, u := range m.users {
		if strings.Contains(strings.ToLower(u.FirstName), strings.ToLower(opt.Search)) {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *mockRepo) GetUser(ctx context.Context, opt repository.GetUserOptions) (user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ID == opt.ID {
			return u, nil
		}
	}
	return user.User{}, repository.ErrNotFound
}

func (m *mockRepo) searches() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.calls))
	for i, c := range m.calls {
		out[i] = c.Search
	}
	return out
}

func seed() []user.User {
	return []user.User{
		{ID: "u1", FirstName: "Daniel", Role: "User", Email: "dan@example.com"},
		{ID: "u2", FirstName: "Jane", Role: "Suspended", Email: "jane@example.com"},
		{ID: "u3", FirstName: "Ada", Role: "Admin", Email: "ada@example.com"},
	}
}

type fakeReels struct {
	items  []content.ContentItem
	limits []int
	err    error
}

func (f *fakeReels) ListReels(ctx context.Context, opt contentRepo.ListReelsOptions) ([]content.ContentItem, int, error) {
	f.limits = append(f.limits, opt.Limit)
	if f.err != nil {
		return nil, 0, f.err
	}
	return f.items, len(f.items), nil
}

func (f *fakeReels) GetReel(ctx context.Context, opt contentRepo.GetReelOptions) (content.ContentItem, error) {
	return content.ContentItem{}, contentRepo.ErrNotFound
}

func (f *fakeReels) PatchReel(ctx context.Context, opt contentRepo.PatchReelOptions) error { return nil }

func (f *fakeReels) DeleteReel(ctx context.Context, opt contentRepo.DeleteReelOptions) error { return nil }

type fakeLedger struct {
	txs []token.Transaction
}

func (f *fakeLedger) GetStats(ctx context.Context) (token.Stats, error) { return token.Stats{}, nil }

func (f *fakeLedger) ListTransactions(ctx context.Context, opt tokenRepo.ListTransactionsOptions) ([]token.Transaction, error) {
	return f.txs, nil
}

func (f *fakeLedger) ApplySupply(ctx context.Context, opt tokenRepo.ApplySupplyOptions) (token.Transaction, token.Stats, error) {
	return token.Transaction{}, token.Stats{}, nil
}

func (f *fakeLedger) SetTransactionStatus(ctx context.Context, opt tokenRepo.SetTransactionStatusOptions) error {
	return nil
}

func newTestUseCase(r *mockRepo) user.UseCase {
	return newProfileUseCase(r, &fakeReels{}, &fakeLedger{})
}

func newProfileUseCase(r *mockRepo, reels *fakeReels, ledger *fakeLedger) user.UseCase {
	return New(r, reels, ledger, log.NewNop(), Options{Debounce: 20 * time.Millisecond, RegistrySize: 10, RegistryTTL: time.Minute})
}

func TestDerivedStatusFilter(t *testing.T) {
	uc := newTestUseCase(&mockRepo{users: seed()})
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	s := uc.Bind(context.Background(), model.Scope{SessionID: "s1", AccessToken: "tok"})
	require.NoError(t, s.Await(ctx))

	tests := []struct {
		status string
		want   []string
	}{
		{status: "All", want: []string{"u1", "u2", "u3"}},
		{status: user.StatusActive, want: []string{"u1", "u3"}},
		{status: user.StatusSuspended, want: []string{"u2"}},
		{status: user.StatusVerified, want: []string{"u3"}},
	}
	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			require.NoError(t, s.SetFilter("status", tt.status))
			require.NoError(t, s.SetPageSize(20))
			var got []string
			for _, u := range s.Snapshot().Items {
				got = append(got, u.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPageSizes(t *testing.T) {
	uc := newTestUseCase(&mockRepo{users: seed()})
	s := uc.Bind(context.Background(), model.Scope{SessionID: "s1", AccessToken: "tok"})

	assert.Equal(t, 5, s.Snapshot().PageSize)
	assert.NoError(t, s.SetPageSize(10))
	assert.Error(t, s.SetPageSize(7))
}

func TestSearchIsDebouncedToBackend(t *testing.T) {
	r := &mockRepo{users: seed()}
	uc := newTestUseCase(r)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	s := uc.Bind(context.Background(), model.Scope{SessionID: "s1", AccessToken: "tok"})
	require.NoError(t, s.Await(ctx))

	s.SetSearch(context.Background(), "d")
	s.SetSearch(context.Background(), "da")
	s.SetSearch(context.Background(), "dan")

	assert.Eventually(t, func() bool {
		return len(r.searches()) == 2
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"", "dan"}, r.searches())

	require.NoError(t, s.Await(ctx))
	v := s.Snapshot()
	assert.Equal(t, screen.StatusReady, v.Status)
	require.Len(t, v.Items, 1)
	assert.Equal(t, "u1", v.Items[0].ID)
}

func TestReadOnly(t *testing.T) {
	uc := newTestUseCase(&mockRepo{users: seed()})
	s := uc.Bind(context.Background(), model.Scope{SessionID: "s1", AccessToken: "tok"})

	res, err := s.Act(context.Background(), "u1", screen.ActionApprove)
	require.NoError(t, err)
	require.NotNil(t, res.Outcome)
	assert.ErrorIs(t, res.Outcome.Err, screen.ErrReadOnly)
}
