package assembly

import (
	"fmt"
	"teateach_backend/internal/model"
	"teateach_backend/internal/util"
)

// Validate rejects requests that no strategy should run. An unknown method is
// reported as util.ErrUnknownGenerationMethod, everything else as
// util.ErrInvalidGenerationRequest. Absent optional maps are fine.
func Validate(req *model.GenerationRequest) error {
	if req == nil {
		return fmt.Errorf("%w: empty request", util.ErrInvalidGenerationRequest)
	}
	if _, err := Resolve(req.GenerationMethod); err != nil {
		return err
	}

	if req.TotalQuestions < 0 {
		return invalid("totalQuestions must not be negative")
	}
	for kp, n := range req.KnowledgePointQuestionCounts {
		if n < 0 {
			return invalid("question count for knowledge point %d must not be negative", kp)
		}
	}
	for d, n := range req.DifficultyQuestionCounts {
		if n < 0 {
			return invalid("question count for difficulty %s must not be negative", d)
		}
	}
	for qt, n := range req.QuestionTypeDistribution {
		if n < 0 {
			return invalid("question count for type %s must not be negative", qt)
		}
	}
	for d, w := range req.DifficultyWeights {
		if w < 0 || w > 1 {
			return invalid("weight for difficulty %s must be within [0,1], got %v", d, w)
		}
	}
	return nil
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{util.ErrInvalidGenerationRequest}, args...)...)
}
