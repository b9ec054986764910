package screen_test

import (
	"context"
	"sync"

	"social-admin-dashboard/internal/screen"
	"social-admin-dashboard/pkg/listing"
)

type row struct {
	ID     string
	Name   string
	Role   string
	Status string
}

func rowID(r row) string { return r.ID }

func rowConfig(serverSearch bool) listing.Config[row] {
	return listing.Config[row]{
		SearchFields: []listing.SearchField[row]{
			{Name: "name", Get: func(r row) string { return r.Name }},
		},
		Filters: []listing.Filter[row]{
			{Name: "status", Value: func(r row) string { return r.Status }},
			{
				Name: "role",
				Derived: map[string]func(row) bool{
					"Active":    func(r row) bool { return r.Role != "Suspended" },
					"Suspended": func(r row) bool { return r.Role == "Suspended" },
				},
			},
		},
		PageSize:         2,
		PageSizes:        []int{2, 5},
		ServerSideSearch: serverSearch,
	}
}

// store is a fake backend collection that counts fetches.
type store struct {
	mu      sync.Mutex
	rows    []row
	calls   []screen.Query
	fetchFn func(q screen.Query) ([]row, error)
	mutErr  error
	mutated []string
}

func (s *store) Fetch(ctx context.Context, q screen.Query) ([]row, error) {
	s.mu.Lock()
	s.calls = append(s.calls, q)
	fn := s.fetchFn
	out := append([]row(nil), s.rows...)
	s.mu.Unlock()

	if fn != nil {
		return fn(q)
	}
	return out, nil
}

func (s *store) Mutate(ctx context.Context, token, id string, action screen.Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mutErr != nil {
		return s.mutErr
	}
	s.mutated = append(s.mutated, string(action)+":"+id)
	switch action {
	case screen.ActionDelete:
		kept := s.rows[:0]
		for _, r := range s.rows {
			if r.ID != id {
				kept = append(kept, r)
			}
		}
		s.rows = kept
	case screen.ActionApprove, screen.ActionReject:
		for i := range s.rows {
			if s.rows[i].ID == id {
				s.rows[i].Status = string(action) + "d"
			}
		}
	}
	return nil
}

func (s *store) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func (s *store) lastCall() screen.Query {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[len(s.calls)-1]
}

func newScreen(st *store, serverSearch bool) *screen.Screen[row] {
	return screen.New(screen.Options[row]{
		Name:        "content",
		Config:      rowConfig(serverSearch),
		Source:      st,
		Mutator:     st,
		ID:          rowID,
		Label:       "content",
		NoticeLabel: "Content",
		AuthMessage: "Please log in to view content",
		UpdatePath:  func(id string) string { return "/content-management/update/" + id },
		RemoteLimit: 100,
	})
}
