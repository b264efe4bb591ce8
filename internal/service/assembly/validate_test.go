package assembly

import (
	"teateach_backend/internal/model"
	"teateach_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     *model.GenerationRequest
		wantErr error
	}{
		{
			name:    "nil request",
			req:     nil,
			wantErr: util.ErrInvalidGenerationRequest,
		},
		{
			name:    "unknown method",
			req:     &model.GenerationRequest{GenerationMethod: "SMART"},
			wantErr: util.ErrUnknownGenerationMethod,
		},
		{
			name:    "negative total",
			req:     &model.GenerationRequest{GenerationMethod: model.GenerateRandom, TotalQuestions: -1},
			wantErr: util.ErrInvalidGenerationRequest,
		},
		{
			name: "negative knowledge point count",
			req: &model.GenerationRequest{
				GenerationMethod:             model.GenerateByKnowledgePoint,
				KnowledgePointIDs:            []uint{1},
				KnowledgePointQuestionCounts: map[uint]int{1: -2},
			},
			wantErr: util.ErrInvalidGenerationRequest,
		},
		{
			name: "negative difficulty count",
			req: &model.GenerationRequest{
				GenerationMethod:         model.GenerateByDifficulty,
				DifficultyQuestionCounts: map[string]int{model.DifficultyEasy: -1},
			},
			wantErr: util.ErrInvalidGenerationRequest,
		},
		{
			name: "negative type count",
			req: &model.GenerationRequest{
				GenerationMethod:         model.GenerateBalanced,
				QuestionTypeDistribution: map[model.QuestionType]int{model.QuestionShortAnswer: -3},
			},
			wantErr: util.ErrInvalidGenerationRequest,
		},
		{
			name: "weight above one",
			req: &model.GenerationRequest{
				GenerationMethod:  model.GenerateBalanced,
				DifficultyWeights: map[string]float64{model.DifficultyHard: 1.5},
			},
			wantErr: util.ErrInvalidGenerationRequest,
		},
		{
			name: "boundary weights",
			req: &model.GenerationRequest{
				GenerationMethod:  model.GenerateBalanced,
				DifficultyWeights: map[string]float64{model.DifficultyHard: 1, model.DifficultyEasy: 0},
			},
		},
		{
			name: "bare by-difficulty request",
			req:  &model.GenerationRequest{GenerationMethod: model.GenerateByDifficulty},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestResolve_CoversEveryMethod(t *testing.T) {
	for _, m := range Methods() {
		sel, err := Resolve(m)
		assert.NoError(t, err)
		assert.NotNil(t, sel)
	}
}
