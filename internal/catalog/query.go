package catalog

import (
	"sort"
	"strings"
	"time"

	"motodesign/pkg/models"
)

// SortMethod enumerates the listing sort orders.
type SortMethod string

const (
	SortNewest    SortMethod = "newest"
	SortPriceAsc  SortMethod = "price_asc"
	SortPriceDesc SortMethod = "price_desc"
	SortYearAsc   SortMethod = "year_asc"
	SortYearDesc  SortMethod = "year_desc"
)

// ConditionAll matches every condition.
const ConditionAll = "all"

// Criteria is one user filter/sort selection, rebuilt on every
// interaction and consumed once per query.
type Criteria struct {
	Brands     []string
	Categories []string
	Condition  string // ConditionAll imposes no constraint
	YearMin    int    // 0 means unbounded
	YearMax    int
	PriceMin   int
	PriceMax   int
	EngineCc   int    // exact match; 0 means no constraint
	Search     string // case-insensitive substring over title/model/brand
	Sort       SortMethod

	// Lang selects which title the text search matches against.
	// Session state, never serialized to the URL.
	Lang string
}

// NewCriteria returns the neutral criteria: everything passes,
// newest first.
func NewCriteria() Criteria {
	return Criteria{Condition: ConditionAll, Sort: SortNewest}
}

// Apply filters the collection by the criteria and sorts the result.
// It never mutates the input; an inactive criterion imposes no constraint.
func Apply(collection []models.Record, c Criteria) []models.Record {
	query := strings.ToLower(strings.TrimSpace(c.Search))

	out := make([]models.Record, 0, len(collection))
	for _, r := range collection {
		if matches(r, c, query) {
			out = append(out, r)
		}
	}

	sortRecords(out, c.Sort)
	return out
}

func matches(r models.Record, c Criteria, query string) bool {
	if len(c.Brands) > 0 && !contains(c.Brands, r.Brand) {
		return false
	}
	if len(c.Categories) > 0 && !contains(c.Categories, r.Category) {
		return false
	}
	if c.Condition != "" && c.Condition != ConditionAll && r.Condition != c.Condition {
		return false
	}

	if c.YearMin > 0 && r.Year < c.YearMin {
		return false
	}
	if c.YearMax > 0 && r.Year > c.YearMax {
		return false
	}
	if c.PriceMin > 0 && r.Price < c.PriceMin {
		return false
	}
	if c.PriceMax > 0 && r.Price > c.PriceMax {
		return false
	}

	if c.EngineCc > 0 && r.EngineCc != c.EngineCc {
		return false
	}

	if query != "" {
		title := strings.ToLower(LocalizedField(r, "title", c.Lang))
		model := strings.ToLower(r.Model)
		brand := strings.ToLower(r.Brand)

		if !strings.Contains(title, query) &&
			!strings.Contains(model, query) &&
			!strings.Contains(brand, query) {
			return false
		}
	}

	return true
}

// sortRecords orders in place, stable so equal keys keep their
// incoming order.
func sortRecords(records []models.Record, method SortMethod) {
	switch method {
	case SortPriceAsc:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Price < records[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Price > records[j].Price
		})
	case SortYearAsc:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Year < records[j].Year
		})
	case SortYearDesc:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Year > records[j].Year
		})
	default: // SortNewest; records without a timestamp sort last
		sort.SliceStable(records, func(i, j int) bool {
			return createdAt(records[i]).After(createdAt(records[j]))
		})
	}
}

func createdAt(r models.Record) time.Time {
	if r.CreatedAt == nil {
		return time.Time{}
	}
	return *r.CreatedAt
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// Featured picks up to n featured listings for the homepage carousel,
// falling back to the head of the collection when none are flagged.
func Featured(collection []models.Record, n int) []models.Record {
	if n <= 0 {
		return []models.Record{}
	}

	out := make([]models.Record, 0, n)
	for _, r := range collection {
		if r.Featured {
			out = append(out, r)
			if len(out) == n {
				return out
			}
		}
	}

	if len(out) == 0 {
		for _, r := range collection {
			out = append(out, r)
			if len(out) == n {
				break
			}
		}
	}
	return out
}
