package listing

import (
	"fmt"
	"strings"
)

// IsAll reports whether v is the "no constraint" sentinel.
func IsAll(v string) bool {
	return v == "" || strings.EqualFold(v, AllValue)
}

// Value returns the selected value for name, or AllValue when unset.
func (s FilterState) Value(name string) string {
	if v, ok := s.Values[name]; ok && v != "" {
		return v
	}
	return AllValue
}

// With returns a copy of s with name set to value.
func (s FilterState) With(name, value string) FilterState {
	values := make(map[string]string, len(s.Values)+1)
	for k, v := range s.Values {
		values[k] = v
	}
	values[name] = value
	return FilterState{Search: s.Search, Values: values}
}

// WithSearch returns a copy of s with the search text replaced.
func (s FilterState) WithSearch(search string) FilterState {
	values := make(map[string]string, len(s.Values))
	for k, v := range s.Values {
		values[k] = v
	}
	return FilterState{Search: search, Values: values}
}

// Validate checks that every selected value names a known filter and, when
// the filter lists its options, is one of them.
func (c Config[T]) Validate(s FilterState) error {
	for name, v := range s.Values {
		f, ok := c.filter(name)
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownFilter, name)
		}
		if IsAll(v) || len(f.Options) == 0 {
			continue
		}
		if !contains(f.Options, v) {
			return fmt.Errorf("%w: %s=%s", ErrInvalidFilterValue, name, v)
		}
	}
	return nil
}

// Matches reports whether rec passes the search predicate and every
// constrained categorical predicate.
func (c Config[T]) Matches(rec T, s FilterState) bool {
	if !c.matchSearch(rec, s.Search) {
		return false
	}
	for _, f := range c.Filters {
		v := s.Value(f.Name)
		if IsAll(v) {
			continue
		}
		if pred, ok := f.Derived[v]; ok {
			if !pred(rec) {
				return false
			}
			continue
		}
		if f.Value == nil || f.Value(rec) != v {
			return false
		}
	}
	return true
}

// Apply returns the records of recs that match s, in their original order.
// The result is never nil and recs is left untouched.
func (c Config[T]) Apply(recs []T, s FilterState) []T {
	out := make([]T, 0, len(recs))
	for _, rec := range recs {
		if c.Matches(rec, s) {
			out = append(out, rec)
		}
	}
	return out
}

func (c Config[T]) matchSearch(rec T, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	for _, f := range c.SearchFields {
		if f.Get == nil {
			continue
		}
		if hay := f.Get(rec); hay != "" && strings.Contains(strings.ToLower(hay), needle) {
			return true
		}
	}
	return false
}

func (c Config[T]) filter(name string) (Filter[T], bool) {
	for _, f := range c.Filters {
		if f.Name == name {
			return f, true
		}
	}
	return Filter[T]{}, false
}

func contains(list []string, v string) bool {
	for _, o := range list {
		if o == v {
			return true
		}
	}
	return false
}
