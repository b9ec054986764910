package listing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"social-admin-dashboard/pkg/listing"
)

type profile struct {
	Name string
}

type person struct {
	ID      string
	Name    string
	Email   string
	Role    string
	Kind    string
	Profile *profile
}

func peopleConfig() listing.Config[person] {
	return listing.Config[person]{
		SearchFields: []listing.SearchField[person]{
			{Name: "name", Get: func(p person) string { return p.Name }},
			{Name: "email", Get: func(p person) string { return p.Email }},
			{Name: "profile.name", Get: func(p person) string {
				if p.Profile == nil {
					return ""
				}
				return p.Profile.Name
			}},
		},
		Filters: []listing.Filter[person]{
			{
				Name: "status",
				Derived: map[string]func(person) bool{
					"Active":    func(p person) bool { return p.Role != "Suspended" },
					"Suspended": func(p person) bool { return p.Role == "Suspended" },
					"Verified":  func(p person) bool { return p.Role == "Admin" },
				},
				Options: []string{"Active", "Suspended", "Verified"},
			},
			{Name: "kind", Value: func(p person) string { return p.Kind }},
		},
		PageSize: 5,
	}
}

func TestMatches(t *testing.T) {
	cfg := peopleConfig()
	daniel := person{ID: "1", Name: "Daniel", Role: "User"}
	jane := person{ID: "2", Name: "Jane", Role: "Suspended"}
	recs := []person{daniel, jane}

	t.Run("Active excludes suspended", func(t *testing.T) {
		got := cfg.Apply(recs, listing.FilterState{Values: map[string]string{"status": "Active"}})
		assert.Equal(t, []person{daniel}, got)
	})

	t.Run("Search is case-insensitive substring", func(t *testing.T) {
		got := cfg.Apply(recs, listing.FilterState{Search: "dan"})
		assert.Equal(t, []person{daniel}, got)

		got = cfg.Apply(recs, listing.FilterState{Search: "DAN"})
		assert.Equal(t, []person{daniel}, got)
	})

	t.Run("Sentinel all in any case", func(t *testing.T) {
		for _, v := range []string{"all", "All", "ALL", ""} {
			got := cfg.Apply(recs, listing.FilterState{Values: map[string]string{"status": v, "kind": v}})
			assert.Len(t, got, 2, "value %q", v)
		}
	})

	t.Run("Verified derives from admin role", func(t *testing.T) {
		admin := person{ID: "3", Name: "Root", Role: "Admin"}
		got := cfg.Apply([]person{daniel, jane, admin}, listing.FilterState{Values: map[string]string{"status": "Verified"}})
		assert.Equal(t, []person{admin}, got)
	})

	t.Run("Categorical equality is case-sensitive", func(t *testing.T) {
		video := person{ID: "4", Name: "V", Kind: "video"}
		assert.True(t, cfg.Matches(video, listing.FilterState{Values: map[string]string{"kind": "video"}}))
		assert.False(t, cfg.Matches(video, listing.FilterState{Values: map[string]string{"kind": "Video"}}))
	})

	t.Run("Missing nested field never matches and never panics", func(t *testing.T) {
		orphan := person{ID: "5", Name: "", Profile: nil}
		named := person{ID: "6", Profile: &profile{Name: "Danielle"}}
		got := cfg.Apply([]person{orphan, named}, listing.FilterState{Search: "dan"})
		assert.Equal(t, []person{named}, got)
	})

	t.Run("AND across predicates", func(t *testing.T) {
		got := cfg.Apply(recs, listing.FilterState{Search: "jane", Values: map[string]string{"status": "Active"}})
		assert.Empty(t, got)
	})
}

func TestApply(t *testing.T) {
	cfg := peopleConfig()

	t.Run("Empty input gives empty non-nil result", func(t *testing.T) {
		got := cfg.Apply(nil, listing.FilterState{Search: "x"})
		require.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("Idempotent subsequence", func(t *testing.T) {
		recs := []person{
			{ID: "1", Name: "Ann", Role: "User", Kind: "a"},
			{ID: "2", Name: "Bob", Role: "Suspended", Kind: "b"},
			{ID: "3", Name: "Annie", Role: "Admin", Kind: "a"},
			{ID: "4", Name: "Carl", Role: "User", Kind: "a"},
		}
		states := []listing.FilterState{
			{},
			{Search: "ann"},
			{Values: map[string]string{"kind": "a"}},
			{Search: "a", Values: map[string]string{"status": "Active", "kind": "a"}},
			{Values: map[string]string{"status": "Suspended"}},
		}
		for _, s := range states {
			once := cfg.Apply(recs, s)
			twice := cfg.Apply(once, s)
			assert.Equal(t, once, twice)

			// order-preserving subsequence of recs
			i := 0
			for _, r := range once {
				for i < len(recs) && recs[i].ID != r.ID {
					i++
				}
				require.Less(t, i, len(recs), "record %s not in source order", r.ID)
				i++
			}
		}
	})

	t.Run("Does not mutate input or state", func(t *testing.T) {
		recs := []person{{ID: "1", Name: "Ann"}, {ID: "2", Name: "Bob"}}
		state := listing.FilterState{Search: "bob", Values: map[string]string{"kind": "all"}}
		_ = cfg.Apply(recs, state)
		assert.Equal(t, "Ann", recs[0].Name)
		assert.Equal(t, "all", state.Values["kind"])
	})
}

func TestFilterStateWith(t *testing.T) {
	base := listing.FilterState{Search: "x", Values: map[string]string{"status": "Active"}}
	next := base.With("kind", "video")

	assert.Equal(t, "video", next.Value("kind"))
	assert.Equal(t, listing.AllValue, base.Value("kind"))
	assert.Equal(t, "x", next.Search)

	searched := base.WithSearch("y")
	assert.Equal(t, "y", searched.Search)
	assert.Equal(t, "x", base.Search)
}

func TestValidate(t *testing.T) {
	cfg := peopleConfig()

	assert.NoError(t, cfg.Validate(listing.FilterState{Values: map[string]string{"status": "Active", "kind": "anything"}}))
	assert.NoError(t, cfg.Validate(listing.FilterState{Values: map[string]string{"status": "All"}}))
	assert.ErrorIs(t, cfg.Validate(listing.FilterState{Values: map[string]string{"color": "red"}}), listing.ErrUnknownFilter)
	assert.ErrorIs(t, cfg.Validate(listing.FilterState{Values: map[string]string{"status": "Banned"}}), listing.ErrInvalidFilterValue)
}
