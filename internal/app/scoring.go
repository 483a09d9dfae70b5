package app

import "art-quiz-service/internal/domain"

// PointsPerQuestion is the fixed value of every correctly answered question.
// There is no partial credit and no negative scoring.
const PointsPerQuestion = 10

// Score walks the catalog in order and awards PointsPerQuestion for each
// question whose recorded answer exactly equals its correct option id.
// Unanswered (absent or nil) and mismatched questions contribute 0, so the
// total is always a multiple of 10 in [0, 10*len(catalog.Questions)].
// Pure: identical inputs always yield identical output.
func Score(catalog domain.Catalog, answers map[int]*string) int {
	total := 0
	for _, q := range catalog.Questions {
		selected, ok := answers[q.ID]
		if !ok || selected == nil {
			continue
		}
		if *selected == q.CorrectAnswerID {
			total += PointsPerQuestion
		}
	}
	return total
}
