package models

import (
	"sort"
	"strings"
)

// CollegeSort is the requested ordering of a college listing
type CollegeSort string

const (
	// SortNatural keeps the store's natural order.
	SortNatural CollegeSort = ""
	// SortFeeAsc orders by fee, cheapest first.
	SortFeeAsc CollegeSort = "fee-asc"
	// SortFeeDesc orders by fee, most expensive first.
	SortFeeDesc CollegeSort = "fee-desc"
)

// ParseCollegeSort maps a sortBy value to a CollegeSort. Unknown values mean natural order.
func ParseCollegeSort(s string) CollegeSort {
	switch CollegeSort(s) {
	case SortFeeAsc, SortFeeDesc:
		return CollegeSort(s)
	default:
		return SortNatural
	}
}

// CollegeQuery holds the filters of a college listing. Zero values impose no constraint.
// Every store translates the same query, and Matches is the reference semantics.
type CollegeQuery struct {
	Location string
	Course   string
	MinFee   *int64
	MaxFee   *int64
	Search   string
	SortBy   CollegeSort
}

// Matches reports whether c satisfies every filter of q
func (q CollegeQuery) Matches(c *College) bool {
	if c == nil {
		return false
	}
	if q.Location != "" && c.Location != q.Location {
		return false
	}
	if q.Course != "" && c.Course != q.Course {
		return false
	}
	if q.MinFee != nil && c.Fee < *q.MinFee {
		return false
	}
	if q.MaxFee != nil && c.Fee > *q.MaxFee {
		return false
	}
	if q.Search != "" && !strings.Contains(strings.ToLower(c.Name), strings.ToLower(q.Search)) {
		return false
	}
	return true
}

// Apply filters colleges by q and orders the result. The input order is kept for
// natural order and for fee ties.
func (q CollegeQuery) Apply(colleges []*College) []*College {
	result := make([]*College, 0, len(colleges))
	for _, c := range colleges {
		if q.Matches(c) {
			result = append(result, c)
		}
	}

	switch q.SortBy {
	case SortFeeAsc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Fee < result[j].Fee })
	case SortFeeDesc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Fee > result[j].Fee })
	}

	return result
}
