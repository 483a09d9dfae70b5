package app

import (
	"sort"

	"art-quiz-service/internal/domain"
)

// View derives the teacher-facing subset of submissions for a filter.
// A submission is kept iff both the school and class predicates match
// (domain.FilterAll matches everything). The result is a fresh slice sorted
// by timestamp descending; submissions with identical timestamps keep their
// store order, so the displayed table and the exported file always agree.
func View(all []domain.Submission, filter domain.Filter) []domain.Submission {
	out := make([]domain.Submission, 0, len(all))
	for _, s := range all {
		if filter.School != domain.FilterAll && s.School != filter.School {
			continue
		}
		if filter.ClassName != domain.FilterAll && s.ClassName != filter.ClassName {
			continue
		}
		out = append(out, s)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp > out[j].Timestamp
	})
	return out
}

// AvailableClasses lists the class names selectable under a school filter:
// the school's own roster, or the de-duplicated union of every roster when
// the school filter is the wildcard. Roster order is preserved.
func AvailableClasses(school string) []string {
	if school != domain.FilterAll {
		return append([]string(nil), domain.ClassesBySchool[school]...)
	}
	seen := make(map[string]struct{})
	var out []string
	for _, s := range domain.Schools {
		for _, c := range domain.ClassesBySchool[s] {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}
	return out
}

// NormalizeFilter resets the class filter to the wildcard when the selected
// class is not available under the selected school.
func NormalizeFilter(filter domain.Filter) domain.Filter {
	if filter.School == "" {
		filter.School = domain.FilterAll
	}
	if filter.ClassName == "" {
		filter.ClassName = domain.FilterAll
	}
	if filter.ClassName == domain.FilterAll {
		return filter
	}
	for _, c := range AvailableClasses(filter.School) {
		if c == filter.ClassName {
			return filter
		}
	}
	filter.ClassName = domain.FilterAll
	return filter
}
