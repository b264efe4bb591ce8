package assembly

import (
	"math/rand"
	"sort"
	"teateach_backend/internal/model"
)

func selectRandom(rng *rand.Rand, catalog []model.Question, req *model.GenerationRequest) []model.Question {
	var candidates []model.Question
	if len(req.QuestionTypes) > 0 {
		allowed := make(map[model.QuestionType]struct{}, len(req.QuestionTypes))
		for _, t := range req.QuestionTypes {
			allowed[t] = struct{}{}
		}
		candidates = filter(catalog, func(q *model.Question) bool {
			_, ok := allowed[q.QuestionType]
			return ok
		})
	} else {
		candidates = append([]model.Question(nil), catalog...)
	}

	shuffle(rng, candidates)
	return take(candidates, req.TotalQuestions)
}

// selectByKnowledgePoint runs one independent pass per requested knowledge
// point. A question tagged with several requested points may be picked once
// per pass.
func selectByKnowledgePoint(rng *rand.Rand, catalog []model.Question, req *model.GenerationRequest) []model.Question {
	selected := make([]model.Question, 0)
	for _, kp := range req.KnowledgePointIDs {
		candidates := filter(catalog, func(q *model.Question) bool {
			return q.HasKnowledgePoint(kp)
		})
		shuffle(rng, candidates)
		selected = append(selected, take(candidates, countFor(req.KnowledgePointQuestionCounts, kp))...)
	}
	return selected
}

func selectByDifficulty(rng *rand.Rand, catalog []model.Question, req *model.GenerationRequest) []model.Question {
	selected := make([]model.Question, 0)
	for _, difficulty := range req.Difficulties {
		candidates := filter(catalog, func(q *model.Question) bool {
			return q.Difficulty == difficulty
		})
		shuffle(rng, candidates)
		selected = append(selected, take(candidates, countFor(req.DifficultyQuestionCounts, difficulty))...)
	}
	return selected
}

func selectBalanced(rng *rand.Rand, catalog []model.Question, req *model.GenerationRequest) []model.Question {
	selected := make([]model.Question, 0)

	for _, qt := range distributionOrder(req.QuestionTypeDistribution) {
		candidates := filter(catalog, func(q *model.Question) bool {
			return q.QuestionType == qt
		})
		if req.DifficultyWeights != nil {
			candidates = applyDifficultyWeights(rng, candidates, req.DifficultyWeights)
		}
		shuffle(rng, candidates)
		selected = append(selected, take(candidates, req.QuestionTypeDistribution[qt])...)
	}

	if req.IncludeAllKnowledgePoints && len(req.KnowledgePointIDs) > 0 {
		selected = EnsureCoverage(rng, selected, catalog, req.KnowledgePointIDs)
	}
	return selected
}

// applyDifficultyWeights keeps each question with probability equal to the
// weight of its difficulty. Difficulties missing from weights are dropped
// without drawing.
func applyDifficultyWeights(rng *rand.Rand, questions []model.Question, weights map[string]float64) []model.Question {
	kept := questions[:0]
	for _, q := range questions {
		w, ok := weights[q.Difficulty]
		if ok && rng.Float64() < w {
			kept = append(kept, q)
		}
	}
	return kept
}

// distributionOrder fixes the iteration order of the type distribution so a
// seeded run is reproducible.
func distributionOrder(dist map[model.QuestionType]int) []model.QuestionType {
	types := make([]model.QuestionType, 0, len(dist))
	for qt := range dist {
		types = append(types, qt)
	}
	sort.Slice(types, func(i, j int) bool {
		oi, oj := types[i].Order(), types[j].Order()
		if oi != oj {
			return oi < oj
		}
		return types[i] < types[j]
	})
	return types
}

// filter returns a fresh slice; callers may shuffle it in place.
func filter(catalog []model.Question, keep func(q *model.Question) bool) []model.Question {
	out := make([]model.Question, 0)
	for i := range catalog {
		if keep(&catalog[i]) {
			out = append(out, catalog[i])
		}
	}
	return out
}

func shuffle(rng *rand.Rand, questions []model.Question) {
	rng.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
}

func take(questions []model.Question, n int) []model.Question {
	if n < 0 {
		n = 0
	}
	if n > len(questions) {
		n = len(questions)
	}
	return questions[:n]
}

// countFor defaults to 1 when the key (or the whole map) is absent.
func countFor[K comparable](counts map[K]int, key K) int {
	if n, ok := counts[key]; ok {
		return n
	}
	return 1
}
