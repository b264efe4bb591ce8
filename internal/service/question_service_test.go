package service

import (
	"context"
	"encoding/json"
	"errors"
	"teateach_backend/internal/model"
	"teateach_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newQuestionFixture() (*QuestionService, *MockQuestionStore, *MockQuestionCatalog) {
	repo := new(MockQuestionStore)
	catalog := new(MockQuestionCatalog)
	return NewQuestionService(repo, catalog, 12), repo, catalog
}

func TestCreateQuestion_InvalidatesCatalog(t *testing.T) {
	svc, repo, catalog := newQuestionFixture()
	repo.On("Create", mock.AnythingOfType("*model.Question")).Return(nil).Once()
	catalog.On("Invalidate", mock.Anything).Return(nil).Once()

	q, err := svc.CreateQuestion(context.Background(), 6, QuestionRequest{
		QuestionText:      "下列哪些是 Go 的内置类型？",
		QuestionType:      model.QuestionMultipleChoice,
		Options:           json.RawMessage(`["int","string","list"]`),
		Difficulty:        " easy ",
		KnowledgePointIDs: []uint{1, 2},
	})
	require.NoError(t, err)
	assert.Equal(t, uint(6), q.CreatedBy)
	assert.Equal(t, model.DifficultyEasy, q.Difficulty)
	assert.True(t, q.IsActive)
	assert.True(t, q.HasKnowledgePoint(2))

	repo.AssertExpectations(t)
	catalog.AssertExpectations(t)
}

func TestCreateQuestion_Rejects(t *testing.T) {
	tests := []struct {
		name string
		req  QuestionRequest
	}{
		{name: "unknown type", req: QuestionRequest{QuestionText: "x", QuestionType: "ESSAY"}},
		{name: "blank text", req: QuestionRequest{QuestionText: "  ", QuestionType: model.QuestionShortAnswer}},
		{name: "malformed options", req: QuestionRequest{QuestionText: "x", QuestionType: model.QuestionSingleChoice, Options: json.RawMessage(`[1,`)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, catalog := newQuestionFixture()

			_, err := svc.CreateQuestion(context.Background(), 1, tt.req)
			assert.ErrorIs(t, err, util.ErrInvalidQuestion)
			repo.AssertNotCalled(t, "Create", mock.Anything)
			catalog.AssertNotCalled(t, "Invalidate", mock.Anything)
		})
	}
}

func TestCreateQuestion_InvalidateFailureDoesNotFailWrite(t *testing.T) {
	svc, repo, catalog := newQuestionFixture()
	repo.On("Create", mock.Anything).Return(nil)
	catalog.On("Invalidate", mock.Anything).Return(errors.New("redis down"))

	_, err := svc.CreateQuestion(context.Background(), 1, QuestionRequest{QuestionText: "1+1=2", QuestionType: model.QuestionTrueFalse})
	assert.NoError(t, err)
}

func TestUpdateQuestion(t *testing.T) {
	t.Run("id mismatch", func(t *testing.T) {
		svc, repo, _ := newQuestionFixture()
		_, err := svc.UpdateQuestion(context.Background(), 2, QuestionRequest{ID: 3, QuestionText: "x", QuestionType: model.QuestionShortAnswer})
		assert.ErrorIs(t, err, util.ErrIDMismatch)
		repo.AssertNotCalled(t, "FindByID", mock.Anything)
	})

	t.Run("not found", func(t *testing.T) {
		svc, repo, catalog := newQuestionFixture()
		repo.On("FindByID", uint(2)).Return(nil, util.ErrQuestionNotFound)

		_, err := svc.UpdateQuestion(context.Background(), 2, QuestionRequest{QuestionText: "x", QuestionType: model.QuestionShortAnswer})
		assert.ErrorIs(t, err, util.ErrQuestionNotFound)
		catalog.AssertNotCalled(t, "Invalidate", mock.Anything)
	})

	t.Run("updates fields and invalidates", func(t *testing.T) {
		svc, repo, catalog := newQuestionFixture()
		existing := question(2, model.QuestionShortAnswer, model.DifficultyHard, 3)
		existing.IsActive = true
		repo.On("FindByID", uint(2)).Return(&existing, nil)
		repo.On("Update", &existing).Return(nil).Once()
		catalog.On("Invalidate", mock.Anything).Return(nil).Once()

		q, err := svc.UpdateQuestion(context.Background(), 2, QuestionRequest{
			ID:                2,
			QuestionText:      "解释 goroutine 与线程的区别",
			QuestionType:      model.QuestionShortAnswer,
			Difficulty:        "medium",
			KnowledgePointIDs: []uint{4},
		})
		require.NoError(t, err)
		assert.Equal(t, model.DifficultyMedium, q.Difficulty)
		assert.Equal(t, []uint{4}, []uint(q.KnowledgePointIDs))
		assert.True(t, q.IsActive)
		repo.AssertExpectations(t)
		catalog.AssertExpectations(t)
	})
}

func TestDeleteQuestion(t *testing.T) {
	svc, repo, catalog := newQuestionFixture()
	repo.On("FindByID", uint(5)).Return(&model.Question{}, nil)
	repo.On("Delete", uint(5)).Return(nil).Once()
	catalog.On("Invalidate", mock.Anything).Return(nil).Once()

	require.NoError(t, svc.DeleteQuestion(context.Background(), 5))
	repo.AssertExpectations(t)
	catalog.AssertExpectations(t)
}

func TestFilterQuestions(t *testing.T) {
	svc, repo, _ := newQuestionFixture()
	repo.On("FindByTypeAndDifficulty", "PROGRAMMING", "HARD").Return(catalogFixture()[4:], nil).Once()

	qs, err := svc.FilterQuestions(model.QuestionProgramming, "hard")
	require.NoError(t, err)
	assert.Equal(t, []uint{5}, questionIDs(qs))

	_, err = svc.FilterQuestions("ESSAY", "")
	assert.ErrorIs(t, err, util.ErrInvalidQuestion)
	repo.AssertExpectations(t)
}

func TestListQuestions_Paging(t *testing.T) {
	svc, repo, _ := newQuestionFixture()
	repo.On("List", 24, 12, "指针").Return([]model.Question{}, nil).Once()

	_, page, size, err := svc.ListQuestions(2, 0, "指针")
	require.NoError(t, err)
	assert.Equal(t, 2, page)
	assert.Equal(t, 12, size)
	repo.AssertExpectations(t)
}
