package entity

import (
	"strconv"
	"strings"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// SortField names an advocate field the directory can be ordered by.
type SortField string

const (
	SortFieldNone              SortField = ""
	SortFieldFirstName         SortField = "firstName"
	SortFieldLastName          SortField = "lastName"
	SortFieldCity              SortField = "city"
	SortFieldDegree            SortField = "degree"
	SortFieldSpecialties       SortField = "specialties"
	SortFieldYearsOfExperience SortField = "yearsOfExperience"
	SortFieldPhoneNumber       SortField = "phoneNumber"
)

// SortFields lists every recognised sort field in column order.
var SortFields = []SortField{
	SortFieldFirstName,
	SortFieldLastName,
	SortFieldCity,
	SortFieldDegree,
	SortFieldSpecialties,
	SortFieldYearsOfExperience,
	SortFieldPhoneNumber,
}

// Known reports whether f names a field of Advocate.
func (f SortField) Known() bool {
	for _, known := range SortFields {
		if f == known {
			return true
		}
	}
	return false
}

type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

// ParseSortOrder maps "desc" (any case) to SortOrderDesc and anything else to SortOrderAsc.
func ParseSortOrder(s string) SortOrder {
	if strings.EqualFold(strings.TrimSpace(s), string(SortOrderDesc)) {
		return SortOrderDesc
	}
	return SortOrderAsc
}

// AdvocateQuery is a domain-level query over the advocate directory.
// Used by the query engine and the client coordinator to avoid coupling with delivery DTOs.
type AdvocateQuery struct {
	Page       int
	PageSize   int
	SearchTerm string
	SortField  SortField
	SortOrder  SortOrder
}

// RawAdvocateQuery holds query values exactly as received from a caller.
type RawAdvocateQuery struct {
	Page       string
	PageSize   string
	SearchTerm string
	SortField  string
	SortOrder  string
}

// DefaultAdvocateQuery returns the first page with no search and no sort.
func DefaultAdvocateQuery() AdvocateQuery {
	return AdvocateQuery{
		Page:      DefaultPage,
		PageSize:  DefaultPageSize,
		SortOrder: SortOrderAsc,
	}
}

// NewAdvocateQuery coerces raw values into a usable query. It never fails:
// malformed numbers fall back to their defaults.
func NewAdvocateQuery(raw RawAdvocateQuery) AdvocateQuery {
	return AdvocateQuery{
		Page:       parsePositive(raw.Page, DefaultPage),
		PageSize:   parsePositive(raw.PageSize, DefaultPageSize),
		SearchTerm: raw.SearchTerm,
		SortField:  SortField(strings.TrimSpace(raw.SortField)),
		SortOrder:  ParseSortOrder(raw.SortOrder),
	}
}

// Normalize replaces out-of-range values with their defaults.
func (q AdvocateQuery) Normalize() AdvocateQuery {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}
	if q.SortOrder != SortOrderDesc {
		q.SortOrder = SortOrderAsc
	}
	return q
}

// Sorted reports whether a sort field was requested.
func (q AdvocateQuery) Sorted() bool {
	return q.SortField != SortFieldNone
}

func parsePositive(s string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
