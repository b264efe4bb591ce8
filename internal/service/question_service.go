package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"teateach_backend/internal/model"
	"teateach_backend/internal/util"
	"teateach_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/datatypes"
)

type QuestionStore interface {
	Create(q *model.Question) error
	FindByID(id uint) (*model.Question, error)
	Update(q *model.Question) error
	Delete(id uint) error
	List(offset, limit int, search string) ([]model.Question, error)
	FindByTypeAndDifficulty(questionType, difficulty string) ([]model.Question, error)
	FindByKnowledgePoint(knowledgePointID uint) ([]model.Question, error)
}

// CatalogInvalidator 题库写入后清除组卷快照
type CatalogInvalidator interface {
	Invalidate(ctx context.Context) error
}

type QuestionService struct {
	Repo     QuestionStore
	Catalog  CatalogInvalidator
	PageSize int
}

func NewQuestionService(repo QuestionStore, catalog CatalogInvalidator, pageSize int) *QuestionService {
	return &QuestionService{Repo: repo, Catalog: catalog, PageSize: pageSize}
}

type QuestionRequest struct {
	ID                  uint               `json:"id"`
	QuestionText        string             `json:"questionText" binding:"required"`
	QuestionType        model.QuestionType `json:"questionType" binding:"required"`
	Options             json.RawMessage    `json:"options"`
	CorrectAnswer       string             `json:"correctAnswer"`
	Explanation         string             `json:"explanation"`
	Difficulty          string             `json:"difficulty"`
	KnowledgePointIDs   []uint             `json:"knowledgePointIds"`
	ProgrammingLanguage string             `json:"programmingLanguage"`
	TemplateCode        string             `json:"templateCode"`
	TestCases           string             `json:"testCases"`
	Points              float64            `json:"points"`
	Tags                []string           `json:"tags"`
	IsActive            *bool              `json:"isActive"`
}

func (r *QuestionRequest) validate() error {
	if !r.QuestionType.Valid() {
		return fmt.Errorf("%w: unsupported question type %q", util.ErrInvalidQuestion, string(r.QuestionType))
	}
	if strings.TrimSpace(r.QuestionText) == "" {
		return fmt.Errorf("%w: questionText is required", util.ErrInvalidQuestion)
	}
	if len(r.Options) > 0 && !json.Valid(r.Options) {
		return fmt.Errorf("%w: options must be valid JSON", util.ErrInvalidQuestion)
	}
	return nil
}

func (r *QuestionRequest) applyTo(q *model.Question) {
	q.QuestionText = r.QuestionText
	q.QuestionType = r.QuestionType
	q.Options = datatypes.JSON(r.Options)
	q.CorrectAnswer = r.CorrectAnswer
	q.Explanation = r.Explanation
	q.Difficulty = strings.ToUpper(strings.TrimSpace(r.Difficulty))
	q.KnowledgePointIDs = r.KnowledgePointIDs
	q.ProgrammingLanguage = r.ProgrammingLanguage
	q.TemplateCode = r.TemplateCode
	q.TestCases = r.TestCases
	q.Points = r.Points
	q.Tags = r.Tags
	if r.IsActive != nil {
		q.IsActive = *r.IsActive
	}
}

func (s *QuestionService) CreateQuestion(ctx context.Context, creatorID uint, req QuestionRequest) (*model.Question, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	q := &model.Question{CreatedBy: creatorID, IsActive: true}
	req.applyTo(q)
	if err := s.Repo.Create(q); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return q, nil
}

func (s *QuestionService) GetQuestion(id uint) (*model.Question, error) {
	return s.Repo.FindByID(id)
}

func (s *QuestionService) ListQuestions(page, size int, search string) ([]model.Question, int, int, error) {
	page, size = normalizePage(page, size, s.PageSize)
	qs, err := s.Repo.List(page*size, size, strings.TrimSpace(search))
	return qs, page, size, err
}

// FilterQuestions 按题型和难度筛选，参数为空时不过滤
func (s *QuestionService) FilterQuestions(questionType model.QuestionType, difficulty string) ([]model.Question, error) {
	if questionType != "" && !questionType.Valid() {
		return nil, fmt.Errorf("%w: unsupported question type %q", util.ErrInvalidQuestion, string(questionType))
	}
	return s.Repo.FindByTypeAndDifficulty(string(questionType), strings.ToUpper(strings.TrimSpace(difficulty)))
}

func (s *QuestionService) ListByKnowledgePoint(knowledgePointID uint) ([]model.Question, error) {
	return s.Repo.FindByKnowledgePoint(knowledgePointID)
}

func (s *QuestionService) UpdateQuestion(ctx context.Context, id uint, req QuestionRequest) (*model.Question, error) {
	if req.ID != 0 && req.ID != id {
		return nil, util.ErrIDMismatch
	}
	if err := req.validate(); err != nil {
		return nil, err
	}

	q, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	req.applyTo(q)
	if err := s.Repo.Update(q); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return q, nil
}

func (s *QuestionService) DeleteQuestion(ctx context.Context, id uint) error {
	if _, err := s.Repo.FindByID(id); err != nil {
		return err
	}
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// invalidate 失败时快照最多在 TTL 内过期，不影响写入结果
func (s *QuestionService) invalidate(ctx context.Context) {
	if s.Catalog == nil {
		return
	}
	if err := s.Catalog.Invalidate(ctx); err != nil {
		logger.Log.Warn("清除题库缓存失败", zap.Error(err))
	}
}
