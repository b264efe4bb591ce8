package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"teateach_backend/internal/model"
	"teateach_backend/internal/service"
	"teateach_backend/internal/util"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryPapers 内存中的试卷存储
type memoryPapers struct {
	mu     sync.Mutex
	nextID uint
	rows   map[uint]model.TestPaper
}

func newMemoryPapers() *memoryPapers {
	return &memoryPapers{nextID: 1, rows: make(map[uint]model.TestPaper)}
}

func (m *memoryPapers) Create(p *model.TestPaper) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ID = m.nextID
	m.nextID++
	m.rows[p.ID] = *p
	return nil
}

func (m *memoryPapers) FindByID(id uint) (*model.TestPaper, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.rows[id]
	if !ok {
		return nil, util.ErrTestPaperNotFound
	}
	return &p, nil
}

func (m *memoryPapers) Update(p *model.TestPaper) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[p.ID] = *p
	return nil
}

func (m *memoryPapers) Delete(id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rows, id)
	return nil
}

func (m *memoryPapers) all(keep func(p model.TestPaper) bool) []model.TestPaper {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.TestPaper, 0, len(m.rows))
	for _, p := range m.rows {
		if keep(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

func (m *memoryPapers) List(offset, limit int, search string) ([]model.TestPaper, error) {
	ps := m.all(func(model.TestPaper) bool { return true })
	if offset >= len(ps) {
		return []model.TestPaper{}, nil
	}
	end := offset + limit
	if end > len(ps) {
		end = len(ps)
	}
	return ps[offset:end], nil
}

func (m *memoryPapers) ListByCourse(courseID uint) ([]model.TestPaper, error) {
	return m.all(func(p model.TestPaper) bool { return p.CourseID == courseID }), nil
}

func (m *memoryPapers) ListByInstructor(instructorID uint) ([]model.TestPaper, error) {
	return m.all(func(p model.TestPaper) bool { return p.InstructorID == instructorID }), nil
}

func (m *memoryPapers) ListByQuestion(questionID uint) ([]model.TestPaper, error) {
	return m.all(func(p model.TestPaper) bool {
		for _, id := range p.QuestionIDs {
			if id == questionID {
				return true
			}
		}
		return false
	}), nil
}

func (m *memoryPapers) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}

type staticCatalog []model.Question

func (c staticCatalog) FetchAll(ctx context.Context) ([]model.Question, error) {
	return []model.Question(c), nil
}

func (c staticCatalog) FindByIDs(ids []uint) ([]model.Question, error) {
	var out []model.Question
	for _, q := range c {
		for _, id := range ids {
			if q.ID == id {
				out = append(out, q)
			}
		}
	}
	return out, nil
}

type discardStore struct{}

func (discardStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	return "/exports/" + key, nil
}

func (discardStore) Delete(ctx context.Context, key string) error { return nil }

func testCatalog() staticCatalog {
	mk := func(id uint, qt model.QuestionType, d string, kps ...uint) model.Question {
		q := model.Question{QuestionType: qt, Difficulty: d, KnowledgePointIDs: kps}
		q.ID = id
		return q
	}
	return staticCatalog{
		mk(1, model.QuestionMultipleChoice, model.DifficultyEasy, 1, 2),
		mk(2, model.QuestionFillInTheBlank, model.DifficultyMedium, 2, 3),
		mk(3, model.QuestionShortAnswer, model.DifficultyHard, 1, 3),
		mk(4, model.QuestionMultipleChoice, model.DifficultyEasy, 1),
		mk(5, model.QuestionProgramming, model.DifficultyHard, 2),
	}
}

func withUser(userID uint, role model.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user", &util.Claims{UserID: userID, Role: role})
		c.Next()
	}
}

func setupPaperRouter(t *testing.T) (*gin.Engine, *memoryPapers) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	papers := newMemoryPapers()
	catalog := testCatalog()
	svc := service.NewTestPaperService(papers, catalog, catalog, discardStore{}, 12)
	svc.Now = func() time.Time { return time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC) }
	ctrl := NewTestPaperController(svc)

	r := gin.New()
	g := r.Group("/api/test-papers", withUser(42, model.Teacher))
	g.POST("", ctrl.Create)
	g.GET("", ctrl.List)
	g.POST("/generate", ctrl.Generate)
	g.POST("/preview", ctrl.Preview)
	g.GET("/course/:courseId", ctrl.ListByCourse)
	g.GET("/instructor/:instructorId", ctrl.ListByInstructor)
	g.GET("/question/:questionId", ctrl.ListByQuestion)
	g.GET("/:id", ctrl.Get)
	g.PUT("/:id", ctrl.Update)
	g.DELETE("/:id", ctrl.Delete)
	g.POST("/:id/export", ctrl.Export)
	return r, papers
}

func doJSON(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.NoError(t, json.Unmarshal(env.Data, out))
}

func TestGenerateEndpoint_Created(t *testing.T) {
	r, papers := setupPaperRouter(t)

	w := doJSON(r, http.MethodPost, "/api/test-papers/generate", gin.H{
		"paperName":                "第一单元测验",
		"courseId":                 9,
		"generationMethod":         "BY_DIFFICULTY",
		"difficulties":             []string{"EASY", "MEDIUM"},
		"difficultyQuestionCounts": gin.H{"EASY": 2, "MEDIUM": 1},
		"seed":                     7,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var paper model.TestPaper
	decodeData(t, w, &paper)
	assert.Equal(t, uint(42), paper.InstructorID, "instructor defaults to the caller")
	assert.Equal(t, model.GenerateByDifficulty, paper.GenerationMethod)
	assert.Len(t, paper.QuestionIDs, 3)
	assert.Equal(t, 1, papers.count())
}

func TestGenerateEndpoint_UnknownMethod(t *testing.T) {
	r, papers := setupPaperRouter(t)

	w := doJSON(r, http.MethodPost, "/api/test-papers/generate", gin.H{
		"paperName":        "x",
		"generationMethod": "random",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown generation method")
	assert.Contains(t, w.Body.String(), "supported: RANDOM, BY_KNOWLEDGE_POINT, BY_DIFFICULTY, BALANCED")
	assert.Equal(t, 0, papers.count())
}

func TestPreviewEndpoint_DoesNotPersist(t *testing.T) {
	r, papers := setupPaperRouter(t)

	w := doJSON(r, http.MethodPost, "/api/test-papers/preview", gin.H{
		"generationMethod":             "BY_KNOWLEDGE_POINT",
		"knowledgePointIds":            []uint{1},
		"knowledgePointQuestionCounts": gin.H{"1": 5},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var qs []model.Question
	decodeData(t, w, &qs)
	ids := make([]uint, len(qs))
	for i, q := range qs {
		ids[i] = q.ID
	}
	assert.ElementsMatch(t, []uint{1, 3, 4}, ids)
	assert.Equal(t, 0, papers.count())
}

func TestTestPaperEndpoints_CRUD(t *testing.T) {
	r, papers := setupPaperRouter(t)

	w := doJSON(r, http.MethodPost, "/api/test-papers", gin.H{
		"paperName":   "手动组卷",
		"courseId":    3,
		"questionIds": []uint{2, 5},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created model.TestPaper
	decodeData(t, w, &created)
	assert.Equal(t, model.GenerateManual, created.GenerationMethod)

	w = doJSON(r, http.MethodGet, "/api/test-papers/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/test-papers/course/3", nil)
	var byCourse []model.TestPaper
	decodeData(t, w, &byCourse)
	assert.Len(t, byCourse, 1)

	w = doJSON(r, http.MethodGet, "/api/test-papers/question/5", nil)
	var byQuestion []model.TestPaper
	decodeData(t, w, &byQuestion)
	assert.Len(t, byQuestion, 1)

	w = doJSON(r, http.MethodPut, "/api/test-papers/1", gin.H{"id": 2, "paperName": "改名"})
	assert.Equal(t, http.StatusBadRequest, w.Code, "body id differs from path id")

	w = doJSON(r, http.MethodPut, "/api/test-papers/1", gin.H{"id": 1, "paperName": "改名", "questionIds": []uint{1}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated model.TestPaper
	decodeData(t, w, &updated)
	assert.Equal(t, "改名", updated.PaperName)

	w = doJSON(r, http.MethodPost, "/api/test-papers/1/export", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var export service.ExportResult
	decodeData(t, w, &export)
	assert.Equal(t, 1, export.QuestionCount)
	assert.Empty(t, export.MissingQuestionIDs)

	w = doJSON(r, http.MethodDelete, "/api/test-papers/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, 0, papers.count())

	w = doJSON(r, http.MethodDelete, "/api/test-papers/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTestPaperEndpoints_BadInput(t *testing.T) {
	r, _ := setupPaperRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   interface{}
		want   int
	}{
		{name: "non-numeric id", method: http.MethodGet, path: "/api/test-papers/abc", want: http.StatusBadRequest},
		{name: "zero id", method: http.MethodGet, path: "/api/test-papers/0", want: http.StatusBadRequest},
		{name: "missing paper", method: http.MethodGet, path: "/api/test-papers/99", want: http.StatusNotFound},
		{name: "create without name", method: http.MethodPost, path: "/api/test-papers", body: gin.H{"courseId": 1}, want: http.StatusBadRequest},
		{name: "weight out of range", method: http.MethodPost, path: "/api/test-papers/preview", body: gin.H{
			"generationMethod":         "BALANCED",
			"questionTypeDistribution": gin.H{"PROGRAMMING": 1},
			"difficultyWeights":        gin.H{"HARD": 1.5},
		}, want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(r, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.want, w.Code, w.Body.String())
		})
	}
}

func TestListEndpoint_Paging(t *testing.T) {
	r, _ := setupPaperRouter(t)
	for i := 0; i < 3; i++ {
		w := doJSON(r, http.MethodPost, "/api/test-papers", gin.H{"paperName": "卷"})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(r, http.MethodGet, "/api/test-papers?page=1&size=2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var page struct {
		List []model.TestPaper `json:"list"`
		Page int               `json:"page"`
		Size int               `json:"size"`
	}
	decodeData(t, w, &page)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 2, page.Size)
	require.Len(t, page.List, 1)
	assert.Equal(t, uint(1), page.List[0].ID)
}
