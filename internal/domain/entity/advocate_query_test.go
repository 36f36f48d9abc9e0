package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"advocate-directory/internal/domain/entity"
)

func Test_NewAdvocateQuery(t *testing.T) {
	tests := []struct {
		name     string
		raw      entity.RawAdvocateQuery
		expected entity.AdvocateQuery
	}{
		{
			name:     "empty_uses_defaults",
			raw:      entity.RawAdvocateQuery{},
			expected: entity.DefaultAdvocateQuery(),
		},
		{
			name: "all_values",
			raw:  entity.RawAdvocateQuery{Page: "3", PageSize: "25", SearchTerm: "cardio", SortField: "city", SortOrder: "desc"},
			expected: entity.AdvocateQuery{
				Page: 3, PageSize: 25, SearchTerm: "cardio", SortField: entity.SortFieldCity, SortOrder: entity.SortOrderDesc,
			},
		},
		{
			name:     "non_numeric_paging",
			raw:      entity.RawAdvocateQuery{Page: "two", PageSize: "1.5"},
			expected: entity.DefaultAdvocateQuery(),
		},
		{
			name:     "non_positive_paging",
			raw:      entity.RawAdvocateQuery{Page: "0", PageSize: "-10"},
			expected: entity.DefaultAdvocateQuery(),
		},
		{
			name: "padded_numbers",
			raw:  entity.RawAdvocateQuery{Page: " 2 ", PageSize: " 50"},
			expected: entity.AdvocateQuery{
				Page: 2, PageSize: 50, SortOrder: entity.SortOrderAsc,
			},
		},
		{
			name: "sort_order_case_insensitive",
			raw:  entity.RawAdvocateQuery{SortField: "lastName", SortOrder: "DESC"},
			expected: entity.AdvocateQuery{
				Page: 1, PageSize: 10, SortField: entity.SortFieldLastName, SortOrder: entity.SortOrderDesc,
			},
		},
		{
			name: "unrecognised_sort_order_is_ascending",
			raw:  entity.RawAdvocateQuery{SortField: "lastName", SortOrder: "descending"},
			expected: entity.AdvocateQuery{
				Page: 1, PageSize: 10, SortField: entity.SortFieldLastName, SortOrder: entity.SortOrderAsc,
			},
		},
		{
			name: "search_term_kept_verbatim",
			raw:  entity.RawAdvocateQuery{SearchTerm: "  New York "},
			expected: entity.AdvocateQuery{
				Page: 1, PageSize: 10, SearchTerm: "  New York ", SortOrder: entity.SortOrderAsc,
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, entity.NewAdvocateQuery(tc.raw))
		})
	}
}

func Test_AdvocateQuery_Normalize(t *testing.T) {
	q := entity.AdvocateQuery{Page: -2, PageSize: 0, SortOrder: "sideways", SortField: entity.SortFieldDegree}.Normalize()

	assert.Equal(t, entity.DefaultPage, q.Page)
	assert.Equal(t, entity.DefaultPageSize, q.PageSize)
	assert.Equal(t, entity.SortOrderAsc, q.SortOrder)
	assert.True(t, q.Sorted())
	assert.False(t, entity.DefaultAdvocateQuery().Sorted())
}

func Test_SortField_Known(t *testing.T) {
	for _, f := range entity.SortFields {
		assert.True(t, f.Known(), f)
	}
	assert.False(t, entity.SortFieldNone.Known())
	assert.False(t, entity.SortField("FirstName").Known())
	assert.False(t, entity.SortField("id").Known())
}

func Test_Advocate_Key(t *testing.T) {
	a := entity.Advocate{LastName: "Doe", PhoneNumber: "5551234567"}

	assert.Equal(t, "5551234567-Doe", a.Key())
}
