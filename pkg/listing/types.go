package listing

// AllValue is the sentinel filter value meaning "no constraint".
const AllValue = "all"

// DefaultPageSize is used when a config or window carries no page size.
const DefaultPageSize = 10

// SearchField is a free-text field of T that the search text is matched against.
// Get must tolerate missing nested data and return "" for it.
type SearchField[T any] struct {
	Name string
	Get  func(T) string
}

// Filter is one categorical dimension of T.
//
// By default a record passes when Value(record) equals the selected value
// exactly. When Derived holds an entry for the selected value, that predicate
// is used instead of the equality rule.
type Filter[T any] struct {
	Name    string
	Value   func(T) string
	Derived map[string]func(T) bool
	Options []string
}

// Config describes one list screen: what is searchable, what can be
// filtered, how many rows a page shows and whether the search text is also
// sent to the backend.
type Config[T any] struct {
	SearchFields     []SearchField[T]
	Filters          []Filter[T]
	PageSize         int
	PageSizes        []int
	ServerSideSearch bool
}

// FilterState is the user's current selection. A missing key, "", "all" and
// "All" all leave a dimension unconstrained.
type FilterState struct {
	Search string            `json:"search"`
	Values map[string]string `json:"filters"`
}

// Page is one display page of a filtered sequence.
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
	TotalItems int `json:"total_items"`
}
