package service

import (
	"context"
	"teateach_backend/internal/model"

	"github.com/stretchr/testify/mock"
)

// MockTestPaperStore 实现 TestPaperStore
type MockTestPaperStore struct {
	mock.Mock
}

func (m *MockTestPaperStore) Create(p *model.TestPaper) error {
	args := m.Called(p)
	return args.Error(0)
}

func (m *MockTestPaperStore) FindByID(id uint) (*model.TestPaper, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TestPaper), args.Error(1)
}

func (m *MockTestPaperStore) Update(p *model.TestPaper) error {
	args := m.Called(p)
	return args.Error(0)
}

func (m *MockTestPaperStore) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockTestPaperStore) List(offset, limit int, search string) ([]model.TestPaper, error) {
	args := m.Called(offset, limit, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TestPaper), args.Error(1)
}

func (m *MockTestPaperStore) ListByCourse(courseID uint) ([]model.TestPaper, error) {
	args := m.Called(courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TestPaper), args.Error(1)
}

func (m *MockTestPaperStore) ListByInstructor(instructorID uint) ([]model.TestPaper, error) {
	args := m.Called(instructorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TestPaper), args.Error(1)
}

func (m *MockTestPaperStore) ListByQuestion(questionID uint) ([]model.TestPaper, error) {
	args := m.Called(questionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TestPaper), args.Error(1)
}

// MockQuestionCatalog 实现 QuestionCatalog 和 CatalogInvalidator
type MockQuestionCatalog struct {
	mock.Mock
}

func (m *MockQuestionCatalog) FetchAll(ctx context.Context) ([]model.Question, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Question), args.Error(1)
}

func (m *MockQuestionCatalog) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockQuestionStore 实现 QuestionStore 和 QuestionLookup
type MockQuestionStore struct {
	mock.Mock
}

func (m *MockQuestionStore) Create(q *model.Question) error {
	args := m.Called(q)
	return args.Error(0)
}

func (m *MockQuestionStore) FindByID(id uint) (*model.Question, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Question), args.Error(1)
}

func (m *MockQuestionStore) FindByIDs(ids []uint) ([]model.Question, error) {
	args := m.Called(ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Question), args.Error(1)
}

func (m *MockQuestionStore) Update(q *model.Question) error {
	args := m.Called(q)
	return args.Error(0)
}

func (m *MockQuestionStore) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockQuestionStore) List(offset, limit int, search string) ([]model.Question, error) {
	args := m.Called(offset, limit, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Question), args.Error(1)
}

func (m *MockQuestionStore) FindByTypeAndDifficulty(questionType, difficulty string) ([]model.Question, error) {
	args := m.Called(questionType, difficulty)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Question), args.Error(1)
}

func (m *MockQuestionStore) FindByKnowledgePoint(knowledgePointID uint) ([]model.Question, error) {
	args := m.Called(knowledgePointID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Question), args.Error(1)
}

// MockObjectStore 实现 ObjectStore
type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	args := m.Called(ctx, key, data, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockObjectStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
