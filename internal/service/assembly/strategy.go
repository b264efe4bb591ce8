// Package assembly selects questions for a test paper from an in-memory
// question catalog. Selection is pure: it reads the catalog, draws from the
// supplied random source, and never touches storage.
package assembly

import (
	"fmt"
	"math/rand"
	"strings"
	"teateach_backend/internal/model"
	"teateach_backend/internal/util"
)

// Selector picks questions from catalog for req. The catalog slice is never
// modified.
type Selector func(rng *rand.Rand, catalog []model.Question, req *model.GenerationRequest) []model.Question

var selectors = map[model.GenerationMethod]Selector{
	model.GenerateRandom:           selectRandom,
	model.GenerateByKnowledgePoint: selectByKnowledgePoint,
	model.GenerateByDifficulty:     selectByDifficulty,
	model.GenerateBalanced:         selectBalanced,
}

// Methods lists the supported generation methods.
func Methods() []model.GenerationMethod {
	return []model.GenerationMethod{
		model.GenerateRandom,
		model.GenerateByKnowledgePoint,
		model.GenerateByDifficulty,
		model.GenerateBalanced,
	}
}

func supportedMethods() string {
	names := make([]string, 0, len(selectors))
	for _, m := range Methods() {
		names = append(names, string(m))
	}
	return strings.Join(names, ", ")
}

// Resolve returns the selector for method. Matching is exact.
func Resolve(method model.GenerationMethod) (Selector, error) {
	sel, ok := selectors[method]
	if !ok {
		return nil, fmt.Errorf("%w: %q (supported: %s)", util.ErrUnknownGenerationMethod, string(method), supportedMethods())
	}
	return sel, nil
}

// Select validates req, resolves its strategy and runs it against catalog.
func Select(rng *rand.Rand, catalog []model.Question, req *model.GenerationRequest) ([]model.Question, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}
	sel, err := Resolve(req.GenerationMethod)
	if err != nil {
		return nil, err
	}
	return sel(rng, catalog, req), nil
}
