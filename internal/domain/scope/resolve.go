package scope

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Item is the capability contract a resource family must satisfy to be
// resolved through the hierarchy. Drills, drill templates and tactics all
// implement it; the resolver itself stays singular.
type Item interface {
	ItemID() string
	ItemName() string
	ItemCategory() string
	DefinitionScope() Reference
	SearchableText() string
	AttributeCodes() []string
}

// Filters narrows the visible set before partitioning. A zero-value clause
// means no constraint. Filters compose by intersection.
type Filters struct {
	// Category keeps items whose category matches case-insensitively (exact).
	Category string
	// SearchTerm keeps items whose searchable text contains the term as a
	// case-insensitive substring.
	SearchTerm string
	// AttributeCodes is an AND filter: every requested code, trimmed and
	// lower-cased, must be present on the item.
	AttributeCodes []string
}

// Result holds the two-group response shape shared by every scoped listing.
type Result[T Item] struct {
	// ScopeItems are defined exactly at the query's deepest level.
	ScopeItems []T
	// InheritedItems are defined at an ancestor level, ordered closer
	// ancestors first (age group definitions before club definitions).
	InheritedItems []T
}

// newNameCollator builds the case-insensitive, locale-aware comparator used
// for listing order. Collators are not safe for concurrent use, so one is
// created per resolve call.
func newNameCollator() *collate.Collator {
	return collate.New(language.Und, collate.IgnoreCase)
}

// Resolve computes the visible subset of items for the query scope, applies
// the filters, and partitions the survivors into own-scope and inherited
// groups with a stable name ordering. An empty result is valid; the resolver
// never validates identifier syntax.
func Resolve[T Item](items []T, query Reference, filters Filters) Result[T] {
	wantCodes := normalizeCodes(filters.AttributeCodes)
	searchTerm := strings.ToLower(strings.TrimSpace(filters.SearchTerm))
	category := strings.TrimSpace(filters.Category)

	out := Result[T]{
		ScopeItems:     make([]T, 0, len(items)),
		InheritedItems: make([]T, 0, len(items)),
	}

	for _, item := range items {
		definedAt := item.DefinitionScope()
		if !definedAt.VisibleAt(query) {
			continue
		}
		if category != "" && !strings.EqualFold(item.ItemCategory(), category) {
			continue
		}
		if searchTerm != "" && !strings.Contains(strings.ToLower(item.SearchableText()), searchTerm) {
			continue
		}
		if !hasAllCodes(item.AttributeCodes(), wantCodes) {
			continue
		}

		if definedAt.Level() == query.Level() {
			out.ScopeItems = append(out.ScopeItems, item)
		} else {
			out.InheritedItems = append(out.InheritedItems, item)
		}
	}

	coll := newNameCollator()
	sortByName(coll, out.ScopeItems)
	sortInherited(coll, out.InheritedItems)

	return out
}

func normalizeCodes(codes []string) []string {
	out := make([]string, 0, len(codes))
	for _, code := range codes {
		code = strings.ToLower(strings.TrimSpace(code))
		if code == "" {
			continue
		}
		out = append(out, code)
	}
	return out
}

func hasAllCodes(have, want []string) bool {
	if len(want) == 0 {
		return true
	}

	haveSet := make(map[string]struct{}, len(have))
	for _, code := range have {
		haveSet[strings.ToLower(strings.TrimSpace(code))] = struct{}{}
	}
	for _, code := range want {
		if _, ok := haveSet[code]; !ok {
			return false
		}
	}
	return true
}

func sortByName[T Item](coll *collate.Collator, items []T) {
	sort.SliceStable(items, func(i, j int) bool {
		return coll.CompareString(items[i].ItemName(), items[j].ItemName()) < 0
	})
}

// sortInherited orders inherited items with closer ancestors first: age group
// definitions precede club definitions, ties broken by name.
func sortInherited[T Item](coll *collate.Collator, items []T) {
	sort.SliceStable(items, func(i, j int) bool {
		li := items[i].DefinitionScope().Level()
		lj := items[j].DefinitionScope().Level()
		if li != lj {
			return li > lj
		}
		return coll.CompareString(items[i].ItemName(), items[j].ItemName()) < 0
	})
}
