package assembly

import (
	"math/rand"
	"teateach_backend/internal/model"
)

// EnsureCoverage appends, for each knowledge point in required that no
// selected question carries, one random catalog question that carries it and
// is not already selected. Points without such a candidate stay uncovered.
//
// The covered set is computed once from the incoming selection; questions
// appended here do not mark further points as covered.
func EnsureCoverage(rng *rand.Rand, selected, catalog []model.Question, required []uint) []model.Question {
	covered := make(map[uint]struct{})
	chosen := make(map[uint]struct{}, len(selected))
	for _, q := range selected {
		chosen[q.ID] = struct{}{}
		for _, kp := range q.KnowledgePointIDs {
			covered[kp] = struct{}{}
		}
	}

	for _, kp := range required {
		if _, ok := covered[kp]; ok {
			continue
		}
		candidates := filter(catalog, func(q *model.Question) bool {
			if _, taken := chosen[q.ID]; taken {
				return false
			}
			return q.HasKnowledgePoint(kp)
		})
		if len(candidates) == 0 {
			continue
		}
		pick := candidates[rng.Intn(len(candidates))]
		selected = append(selected, pick)
		chosen[pick.ID] = struct{}{}
	}
	return selected
}

// Uncovered reports which of required are carried by no question in selected.
func Uncovered(selected []model.Question, required []uint) []uint {
	covered := make(map[uint]struct{})
	for _, q := range selected {
		for _, kp := range q.KnowledgePointIDs {
			covered[kp] = struct{}{}
		}
	}
	missing := make([]uint, 0)
	for _, kp := range required {
		if _, ok := covered[kp]; !ok {
			missing = append(missing, kp)
		}
	}
	return missing
}
