package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"teateach_backend/internal/model"
	"teateach_backend/internal/service/assembly"
	"teateach_backend/internal/util"
	"teateach_backend/pkg/logger"
	"teateach_backend/pkg/monitoring"
	"teateach_backend/pkg/tracing"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

type TestPaperStore interface {
	Create(p *model.TestPaper) error
	FindByID(id uint) (*model.TestPaper, error)
	Update(p *model.TestPaper) error
	Delete(id uint) error
	List(offset, limit int, search string) ([]model.TestPaper, error)
	ListByCourse(courseID uint) ([]model.TestPaper, error)
	ListByInstructor(instructorID uint) ([]model.TestPaper, error)
	ListByQuestion(questionID uint) ([]model.TestPaper, error)
}

// QuestionCatalog 组卷使用的题库快照
type QuestionCatalog interface {
	FetchAll(ctx context.Context) ([]model.Question, error)
}

type QuestionLookup interface {
	FindByIDs(ids []uint) ([]model.Question, error)
}

type TestPaperService struct {
	Papers    TestPaperStore
	Catalog   QuestionCatalog
	Questions QuestionLookup
	Storage   ObjectStore
	PageSize  int

	// Seeds 未指定 seed 时为每次组卷生成随机种子
	Seeds func() int64
	Now   func() time.Time
}

func NewTestPaperService(papers TestPaperStore, catalog QuestionCatalog, questions QuestionLookup, storage ObjectStore, pageSize int) *TestPaperService {
	return &TestPaperService{
		Papers:    papers,
		Catalog:   catalog,
		Questions: questions,
		Storage:   storage,
		PageSize:  pageSize,
		Seeds:     func() int64 { return time.Now().UnixNano() },
		Now:       time.Now,
	}
}

// TestPaperRequest 手动创建或更新试卷
type TestPaperRequest struct {
	ID               uint                   `json:"id"`
	PaperName        string                 `json:"paperName" binding:"required"`
	CourseID         uint                   `json:"courseId"`
	InstructorID     uint                   `json:"instructorId"`
	QuestionIDs      []uint                 `json:"questionIds"`
	TotalScore       float64                `json:"totalScore"`
	DurationMinutes  int                    `json:"durationMinutes"`
	GenerationMethod model.GenerationMethod `json:"generationMethod"`
}

type ExportResult struct {
	URL                string `json:"url"`
	Key                string `json:"key"`
	QuestionCount      int    `json:"questionCount"`
	MissingQuestionIDs []uint `json:"missingQuestionIds"`
}

type paperExport struct {
	Paper              *model.TestPaper `json:"paper"`
	Questions          []model.Question `json:"questions"`
	MissingQuestionIDs []uint           `json:"missingQuestionIds"`
	ExportedAt         time.Time        `json:"exportedAt"`
}

// Generate 自动组卷并保存，成功时恰好写入一张试卷
func (s *TestPaperService) Generate(ctx context.Context, req *model.GenerationRequest) (*model.TestPaper, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.PaperName) == "" {
		monitoring.GenerationRejected.WithLabelValues("invalid_request").Inc()
		return nil, fmt.Errorf("%w: paperName is required", util.ErrInvalidGenerationRequest)
	}

	questions, err := s.selectQuestions(ctx, req)
	if err != nil {
		return nil, err
	}

	questionIDs := make([]uint, len(questions))
	for i, q := range questions {
		questionIDs[i] = q.ID
	}

	paper := &model.TestPaper{
		PaperName:        req.PaperName,
		CourseID:         req.CourseID,
		InstructorID:     req.InstructorID,
		QuestionIDs:      questionIDs,
		TotalScore:       req.TotalScore,
		DurationMinutes:  req.DurationMinutes,
		GenerationMethod: req.GenerationMethod,
	}
	paper.CreatedAt = s.Now()

	if err := s.Papers.Create(paper); err != nil {
		return nil, err
	}

	monitoring.PapersGenerated.WithLabelValues(string(req.GenerationMethod)).Inc()
	logger.Log.Info("试卷生成成功",
		zap.Uint("paperId", paper.ID),
		zap.String("method", string(req.GenerationMethod)),
		zap.Int("selected", len(questionIDs)),
	)
	return paper, nil
}

// Preview 与 Generate 相同的选题流程，不保存
func (s *TestPaperService) Preview(ctx context.Context, req *model.GenerationRequest) ([]model.Question, error) {
	return s.selectQuestions(ctx, req)
}

// validate 在读取题库之前拒绝无效请求
func (s *TestPaperService) validate(req *model.GenerationRequest) error {
	err := assembly.Validate(req)
	if err == nil {
		return nil
	}
	reason := "invalid_request"
	if errors.Is(err, util.ErrUnknownGenerationMethod) {
		reason = "unknown_method"
	}
	monitoring.GenerationRejected.WithLabelValues(reason).Inc()
	return err
}

func (s *TestPaperService) selectQuestions(ctx context.Context, req *model.GenerationRequest) ([]model.Question, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	catalog, err := s.Catalog.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch question catalog: %w", err)
	}

	rng, seed := s.newRand(req)

	_, span := tracing.Tracer.Start(ctx, "assembly.select")
	defer span.End()
	span.SetAttributes(
		attribute.String("method", string(req.GenerationMethod)),
		attribute.Int("catalog", len(catalog)),
		attribute.Int64("seed", seed),
	)

	questions, err := assembly.Select(rng, catalog, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("selected", len(questions)))
	if req.IncludeAllKnowledgePoints && req.GenerationMethod == model.GenerateBalanced {
		if missing := assembly.Uncovered(questions, req.KnowledgePointIDs); len(missing) > 0 {
			logger.Log.Warn("部分知识点在题库中没有可用题目", zap.Uints("knowledgePoints", missing))
		}
	}
	monitoring.SelectionSize.WithLabelValues(string(req.GenerationMethod)).Observe(float64(len(questions)))

	logger.Log.Debug("组卷选题完成",
		zap.String("method", string(req.GenerationMethod)),
		zap.Int64("seed", seed),
		zap.Int("catalog", len(catalog)),
		zap.Int("selected", len(questions)),
	)
	return questions, nil
}

// newRand 每次调用使用独立的随机源
func (s *TestPaperService) newRand(req *model.GenerationRequest) (*rand.Rand, int64) {
	seed := s.Seeds()
	if req.Seed != nil {
		seed = *req.Seed
	}
	return rand.New(rand.NewSource(seed)), seed
}

func (s *TestPaperService) CreateTestPaper(req TestPaperRequest) (*model.TestPaper, error) {
	method := req.GenerationMethod
	if method == "" {
		method = model.GenerateManual
	}
	paper := &model.TestPaper{
		PaperName:        req.PaperName,
		CourseID:         req.CourseID,
		InstructorID:     req.InstructorID,
		QuestionIDs:      req.QuestionIDs,
		TotalScore:       req.TotalScore,
		DurationMinutes:  req.DurationMinutes,
		GenerationMethod: method,
	}
	paper.CreatedAt = s.Now()

	if err := s.Papers.Create(paper); err != nil {
		return nil, err
	}
	return paper, nil
}

func (s *TestPaperService) GetTestPaper(id uint) (*model.TestPaper, error) {
	return s.Papers.FindByID(id)
}

// ListTestPapers page 从 0 开始
func (s *TestPaperService) ListTestPapers(page, size int, search string) ([]model.TestPaper, int, int, error) {
	page, size = normalizePage(page, size, s.PageSize)
	papers, err := s.Papers.List(page*size, size, strings.TrimSpace(search))
	return papers, page, size, err
}

// normalizePage 页码从 0 开始，size 超出上限时截断
func normalizePage(page, size, defaultSize int) (int, int) {
	if page < 0 {
		page = util.DefaultPage
	}
	if size <= 0 {
		size = defaultSize
		if size <= 0 {
			size = util.DefaultPageSize
		}
	}
	if size > util.MaxPageSize {
		size = util.MaxPageSize
	}
	return page, size
}

func (s *TestPaperService) ListByCourse(courseID uint) ([]model.TestPaper, error) {
	return s.Papers.ListByCourse(courseID)
}

func (s *TestPaperService) ListByInstructor(instructorID uint) ([]model.TestPaper, error) {
	return s.Papers.ListByInstructor(instructorID)
}

func (s *TestPaperService) ListByQuestion(questionID uint) ([]model.TestPaper, error) {
	return s.Papers.ListByQuestion(questionID)
}

// UpdateTestPaper 请求体中的 id 必须与路径 id 一致，创建时间保持不变
func (s *TestPaperService) UpdateTestPaper(id uint, req TestPaperRequest) (*model.TestPaper, error) {
	if req.ID != id {
		return nil, util.ErrIDMismatch
	}

	paper, err := s.Papers.FindByID(id)
	if err != nil {
		return nil, err
	}

	paper.PaperName = req.PaperName
	paper.CourseID = req.CourseID
	paper.InstructorID = req.InstructorID
	paper.QuestionIDs = req.QuestionIDs
	paper.TotalScore = req.TotalScore
	paper.DurationMinutes = req.DurationMinutes
	if req.GenerationMethod != "" {
		paper.GenerationMethod = req.GenerationMethod
	}

	if err := s.Papers.Update(paper); err != nil {
		return nil, err
	}
	return paper, nil
}

func (s *TestPaperService) DeleteTestPaper(id uint) error {
	if _, err := s.Papers.FindByID(id); err != nil {
		return err
	}
	return s.Papers.Delete(id)
}

// Export 导出试卷及题目为 JSON 并上传，已删除的题目跳过并在结果中列出
func (s *TestPaperService) Export(ctx context.Context, id uint) (*ExportResult, error) {
	paper, err := s.Papers.FindByID(id)
	if err != nil {
		return nil, err
	}

	found, err := s.Questions.FindByIDs(uniqueIDs(paper.QuestionIDs))
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]model.Question, len(found))
	for _, q := range found {
		byID[q.ID] = q
	}

	questions := make([]model.Question, 0, len(paper.QuestionIDs))
	missing := make([]uint, 0)
	reported := make(map[uint]bool)
	for _, qid := range paper.QuestionIDs {
		if q, ok := byID[qid]; ok {
			questions = append(questions, q)
			continue
		}
		if !reported[qid] {
			reported[qid] = true
			missing = append(missing, qid)
		}
	}

	data, err := json.Marshal(paperExport{
		Paper:              paper,
		Questions:          questions,
		MissingQuestionIDs: missing,
		ExportedAt:         s.Now(),
	})
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("test-papers/%d/%s.json", paper.ID, uuid.NewString())
	url, err := s.Storage.Put(ctx, key, data, util.MimeJSON)
	if err != nil {
		return nil, fmt.Errorf("upload export: %w", err)
	}

	if len(missing) > 0 {
		logger.Log.Warn("导出试卷时部分题目已不存在", zap.Uint("paperId", paper.ID), zap.Uints("missing", missing))
	}
	return &ExportResult{
		URL:                url,
		Key:                key,
		QuestionCount:      len(questions),
		MissingQuestionIDs: missing,
	}, nil
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
