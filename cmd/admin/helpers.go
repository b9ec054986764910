package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"social-admin-dashboard/internal/screen"
	"social-admin-dashboard/pkg/listing"
)

// cliDebounce is the server-side search window used by the CLI screens.
const cliDebounce = 10 * time.Millisecond

// listFlags are shared by every list command.
type listFlags struct {
	search   string
	filters  []string
	page     int
	pageSize int
}

func (f *listFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.search, "search", "", "search text")
	cmd.Flags().StringArrayVar(&f.filters, "filter", nil, "filter as name=value (repeatable, value \"all\" clears)")
	cmd.Flags().IntVar(&f.page, "page", 1, "page to show")
	cmd.Flags().IntVar(&f.pageSize, "page-size", 0, "rows per page (0 = screen default)")
}

// parseFilters turns --search and --filter flags into a filter state.
func parseFilters(search string, raw []string) (listing.FilterState, error) {
	state := listing.FilterState{Search: strings.TrimSpace(search), Values: map[string]string{}}
	for _, kv := range raw {
		name, value, ok := strings.Cut(kv, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return listing.FilterState{}, fmt.Errorf("invalid --filter %q, want name=value", kv)
		}
		state.Values[name] = strings.TrimSpace(value)
	}
	return state, nil
}

// column is one table column.
type column[T any] struct {
	title string
	value func(T) string
}

// showScreen applies the list flags to s, waits for the data and prints the
// current page.
func showScreen[T any](ctx context.Context, s *screen.Screen[T], f listFlags, cols []column[T]) error {
	if err := s.Await(ctx); err != nil {
		return err
	}

	state, err := parseFilters(f.search, f.filters)
	if err != nil {
		return err
	}
	if err := s.SetFilters(ctx, state); err != nil {
		return err
	}
	if state.Search != "" {
		// Let a debounced server-side search start before waiting on it.
		time.Sleep(2 * cliDebounce)
	}
	if err := s.Await(ctx); err != nil {
		return err
	}

	if f.pageSize > 0 {
		if err := s.SetPageSize(f.pageSize); err != nil {
			return err
		}
	}
	s.SetPage(f.page)

	v := s.Snapshot()
	if v.Status == screen.StatusError {
		return errors.New(v.Message)
	}
	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	printTable(v.Items, cols)
	fmt.Printf("\nPage %d of %d (%d matching, %d fetched)\n", v.Page, v.TotalPages, v.TotalItems, v.FetchedItems)
	return nil
}

func printTable[T any](items []T, cols []column[T]) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	titles := make([]string, len(cols))
	for i, c := range cols {
		titles[i] = c.title
	}
	fmt.Fprintln(w, strings.Join(titles, "\t"))

	for _, item := range items {
		cells := make([]string, len(cols))
		for i, c := range cols {
			cells[i] = c.value(item)
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	w.Flush()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
