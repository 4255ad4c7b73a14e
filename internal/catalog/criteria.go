package catalog

import (
	"net/url"
	"strconv"
	"strings"
)

// Values serializes the active criteria for the shareable query string.
// Inactive criteria are omitted; multi-selects join with a comma; the
// default sort is implicit.
func (c Criteria) Values() url.Values {
	v := url.Values{}

	if len(c.Brands) > 0 {
		v.Set("brand", strings.Join(c.Brands, ","))
	}
	if len(c.Categories) > 0 {
		v.Set("category", strings.Join(c.Categories, ","))
	}
	if c.Condition != "" && c.Condition != ConditionAll {
		v.Set("condition", c.Condition)
	}
	if c.YearMin > 0 {
		v.Set("yearMin", strconv.Itoa(c.YearMin))
	}
	if c.YearMax > 0 {
		v.Set("yearMax", strconv.Itoa(c.YearMax))
	}
	if c.PriceMin > 0 {
		v.Set("priceMin", strconv.Itoa(c.PriceMin))
	}
	if c.PriceMax > 0 {
		v.Set("priceMax", strconv.Itoa(c.PriceMax))
	}
	if c.EngineCc > 0 {
		v.Set("engineCC", strconv.Itoa(c.EngineCc))
	}
	if strings.TrimSpace(c.Search) != "" {
		v.Set("search", c.Search)
	}
	if c.Sort != "" && c.Sort != SortNewest {
		v.Set("sort", string(c.Sort))
	}

	return v
}

// ParseCriteria restores criteria from a query string. Unknown or
// malformed values degrade to the inactive state, so a mangled shared
// URL still loads.
func ParseCriteria(v url.Values) Criteria {
	c := NewCriteria()

	if s := v.Get("brand"); s != "" {
		c.Brands = splitList(s)
	}
	if s := v.Get("category"); s != "" {
		c.Categories = splitList(s)
	}
	if s := v.Get("condition"); s != "" {
		c.Condition = s
	}

	c.YearMin = parseBound(v.Get("yearMin"))
	c.YearMax = parseBound(v.Get("yearMax"))
	c.PriceMin = parseBound(v.Get("priceMin"))
	c.PriceMax = parseBound(v.Get("priceMax"))
	c.EngineCc = parseBound(v.Get("engineCC"))

	c.Search = v.Get("search")

	switch SortMethod(v.Get("sort")) {
	case SortPriceAsc, SortPriceDesc, SortYearAsc, SortYearDesc:
		c.Sort = SortMethod(v.Get("sort"))
	}

	return c
}

// ActiveCount is the number of independently active criteria, shown as
// the filter badge. Each checked brand/category counts on its own.
func (c Criteria) ActiveCount() int {
	count := len(c.Brands) + len(c.Categories)

	if c.Condition != "" && c.Condition != ConditionAll {
		count++
	}
	for _, bound := range []int{c.YearMin, c.YearMax, c.PriceMin, c.PriceMax} {
		if bound > 0 {
			count++
		}
	}
	if c.EngineCc > 0 {
		count++
	}
	if strings.TrimSpace(c.Search) != "" {
		count++
	}

	return count
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseBound(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
