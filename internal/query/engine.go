// Package query turns a directory snapshot and a set of query parameters into
// one deterministic page of advocates. Everything here is pure: no I/O, no
// timers, and the input collection is never modified.
package query

import (
	"slices"
	"strconv"
	"strings"

	"advocate-directory/internal/domain/entity"

	"golang.org/x/text/cases"
)

// Page is one window of the filtered, sorted directory plus pagination metadata.
type Page struct {
	Records     []entity.Advocate
	TotalItems  int
	TotalPages  int
	CurrentPage int
	PageSize    int
}

// Run applies filter, sort and pagination, strictly in that order, so that
// totals reflect the search and every page is a contiguous window of one ordering.
func Run(collection []entity.Advocate, params entity.AdvocateQuery) Page {
	params = params.Normalize()
	// cases.Caser keeps state and is not safe to share between goroutines.
	folder := cases.Fold()

	matched := Filter(folder, collection, params.SearchTerm)
	if params.Sorted() {
		Sort(folder, matched, params.SortField, params.SortOrder)
	}

	window := Paginate(len(matched), params.Page, params.PageSize)
	records := make([]entity.Advocate, window.End-window.Start)
	copy(records, matched[window.Start:window.End])

	return Page{
		Records:     records,
		TotalItems:  len(matched),
		TotalPages:  window.TotalPages,
		CurrentPage: params.Page,
		PageSize:    params.PageSize,
	}
}

// Filter returns a new slice holding the advocates that match term. An
// empty or blank term matches everything.
func Filter(folder cases.Caser, collection []entity.Advocate, term string) []entity.Advocate {
	needle := folder.String(strings.TrimSpace(term))
	if needle == "" {
		return slices.Clone(collection)
	}

	matched := make([]entity.Advocate, 0, len(collection))
	for _, advocate := range collection {
		if Matches(folder, advocate, needle) {
			matched = append(matched, advocate)
		}
	}
	return matched
}

// Matches reports whether the already folded needle occurs in any searchable field.
func Matches(folder cases.Caser, advocate entity.Advocate, needle string) bool {
	contains := func(value string) bool {
		return strings.Contains(folder.String(value), needle)
	}

	if contains(advocate.FirstName) ||
		contains(advocate.LastName) ||
		contains(advocate.City) ||
		contains(advocate.Degree) ||
		contains(strconv.Itoa(advocate.YearsOfExperience)) ||
		contains(advocate.PhoneNumber) {
		return true
	}

	for _, specialty := range advocate.Specialties {
		if contains(specialty) {
			return true
		}
	}
	return false
}

// Sort orders advocates in place by field. The sort is stable and desc
// negates the comparison, so equal keys keep their input order either way.
func Sort(folder cases.Caser, advocates []entity.Advocate, field entity.SortField, order entity.SortOrder) {
	compare := comparator(folder, field)
	if order == entity.SortOrderDesc {
		asc := compare
		compare = func(a, b entity.Advocate) int { return asc(b, a) }
	}
	slices.SortStableFunc(advocates, compare)
}
