package assembly

import (
	"teateach_backend/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_BalancedCoverageFillsGaps(t *testing.T) {
	req := &model.GenerationRequest{
		GenerationMethod:          model.GenerateBalanced,
		QuestionTypeDistribution:  map[model.QuestionType]int{model.QuestionProgramming: 1},
		IncludeAllKnowledgePoints: true,
		KnowledgePointIDs:         []uint{1, 2, 3},
	}

	for seed := int64(0); seed < 20; seed++ {
		got, err := Select(newRand(seed), sampleCatalog(), req)
		require.NoError(t, err)
		require.Len(t, got, 3, "q5 covers KP2; KP1 and KP3 each get one top-up")
		assert.Equal(t, uint(5), got[0].ID)
		assert.True(t, got[1].HasKnowledgePoint(1))
		assert.True(t, got[2].HasKnowledgePoint(3))
		assert.NotEqual(t, got[1].ID, got[2].ID)
		assert.Empty(t, Uncovered(got, req.KnowledgePointIDs))
	}
}

func TestSelect_BalancedCoverageRequiresFlag(t *testing.T) {
	req := &model.GenerationRequest{
		GenerationMethod:         model.GenerateBalanced,
		QuestionTypeDistribution: map[model.QuestionType]int{model.QuestionProgramming: 1},
		KnowledgePointIDs:        []uint{1, 3},
	}

	got, err := Select(newRand(1), sampleCatalog(), req)
	require.NoError(t, err)
	assert.Equal(t, []uint{5}, ids(got))
}

func TestEnsureCoverage_LeavesImpossiblePointsUncovered(t *testing.T) {
	catalog := sampleCatalog()
	selected := []model.Question{catalog[4]}

	got := EnsureCoverage(newRand(1), selected, catalog, []uint{99, 2})
	assert.Equal(t, []uint{5}, ids(got))
	assert.Equal(t, []uint{99}, Uncovered(got, []uint{99, 2}))
}

func TestEnsureCoverage_NeverReusesSelectedQuestion(t *testing.T) {
	catalog := sampleCatalog()
	selected := []model.Question{catalog[4]}

	got := EnsureCoverage(newRand(8), selected, catalog, []uint{1, 1})
	require.Len(t, got, 3, "the covered set is not refreshed, so a repeated id is topped up twice")
	assert.True(t, got[1].HasKnowledgePoint(1))
	assert.True(t, got[2].HasKnowledgePoint(1))
	assert.NotEqual(t, got[1].ID, got[2].ID)
}

func TestEnsureCoverage_RunsOutOfCandidates(t *testing.T) {
	catalog := []model.Question{
		newQuestion(1, model.QuestionSingleChoice, model.DifficultyEasy, 7),
		newQuestion(2, model.QuestionSingleChoice, model.DifficultyEasy),
	}

	got := EnsureCoverage(newRand(3), nil, catalog, []uint{7, 7, 7})
	assert.Equal(t, []uint{1}, ids(got))
}
