package query

import (
	"cmp"
	"strings"

	"advocate-directory/internal/domain/entity"

	"golang.org/x/text/cases"
)

type compareFunc func(a, b entity.Advocate) int

// comparator returns the ascending comparison for field. Unrecognised
// fields compare every pair as equal, which leaves a stable sort a no-op.
func comparator(folder cases.Caser, field entity.SortField) compareFunc {
	text := func(get func(entity.Advocate) string) compareFunc {
		return func(a, b entity.Advocate) int {
			return strings.Compare(folder.String(get(a)), folder.String(get(b)))
		}
	}

	switch field {
	case entity.SortFieldFirstName:
		return text(func(a entity.Advocate) string { return a.FirstName })
	case entity.SortFieldLastName:
		return text(func(a entity.Advocate) string { return a.LastName })
	case entity.SortFieldCity:
		return text(func(a entity.Advocate) string { return a.City })
	case entity.SortFieldDegree:
		return text(func(a entity.Advocate) string { return a.Degree })
	case entity.SortFieldPhoneNumber:
		return text(func(a entity.Advocate) string { return a.PhoneNumber })
	case entity.SortFieldYearsOfExperience:
		return func(a, b entity.Advocate) int {
			return cmp.Compare(a.YearsOfExperience, b.YearsOfExperience)
		}
	case entity.SortFieldSpecialties:
		return func(a, b entity.Advocate) int {
			for i := 0; i < len(a.Specialties) && i < len(b.Specialties); i++ {
				if c := strings.Compare(folder.String(a.Specialties[i]), folder.String(b.Specialties[i])); c != 0 {
					return c
				}
			}
			return cmp.Compare(len(a.Specialties), len(b.Specialties))
		}
	default:
		return func(entity.Advocate, entity.Advocate) int { return 0 }
	}
}
