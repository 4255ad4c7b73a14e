package catalog

import (
	"sort"

	"motodesign/pkg/models"
)

// FilterOptions are the facets the filter sidebar is built from:
// distinct values and numeric ranges derived from the live collection.
type FilterOptions struct {
	Brands     []string `json:"brands"`
	Categories []string `json:"categories"`
	Conditions []string `json:"conditions"`
	YearMin    int      `json:"year_min"`
	YearMax    int      `json:"year_max"`
	PriceMin   int      `json:"price_min"`
	PriceMax   int      `json:"price_max"`
	EngineCcs  []int    `json:"engine_ccs"`
}

// Facets derives the filter options from a collection. Empty strings and
// zero values are skipped; lists come back sorted.
func Facets(collection []models.Record) FilterOptions {
	brands := map[string]bool{}
	categories := map[string]bool{}
	conditions := map[string]bool{}
	ccs := map[int]bool{}

	opts := FilterOptions{}

	for _, r := range collection {
		if r.Brand != "" {
			brands[r.Brand] = true
		}
		if r.Category != "" {
			categories[r.Category] = true
		}
		if r.Condition != "" {
			conditions[r.Condition] = true
		}
		if r.EngineCc > 0 {
			ccs[r.EngineCc] = true
		}

		if r.Year > 0 {
			if opts.YearMin == 0 || r.Year < opts.YearMin {
				opts.YearMin = r.Year
			}
			if r.Year > opts.YearMax {
				opts.YearMax = r.Year
			}
		}
		if r.Price > 0 {
			if opts.PriceMin == 0 || r.Price < opts.PriceMin {
				opts.PriceMin = r.Price
			}
			if r.Price > opts.PriceMax {
				opts.PriceMax = r.Price
			}
		}
	}

	opts.Brands = sortedKeys(brands)
	opts.Categories = sortedKeys(categories)
	opts.Conditions = sortedKeys(conditions)

	opts.EngineCcs = make([]int, 0, len(ccs))
	for cc := range ccs {
		opts.EngineCcs = append(opts.EngineCcs, cc)
	}
	sort.Ints(opts.EngineCcs)

	return opts
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
