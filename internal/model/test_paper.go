package model

import "gorm.io/datatypes"

type GenerationMethod string

const (
	GenerateRandom           GenerationMethod = "RANDOM"
	GenerateByKnowledgePoint GenerationMethod = "BY_KNOWLEDGE_POINT"
	GenerateByDifficulty     GenerationMethod = "BY_DIFFICULTY"
	GenerateBalanced         GenerationMethod = "BALANCED"
	// GenerateManual 手动创建的试卷
	GenerateManual GenerationMethod = "MANUAL"
)

// swagger:model TestPaper
type TestPaper struct {
	BaseModel
	PaperName        string                    `gorm:"size:255;not null;index" json:"paperName"`
	CourseID         uint                      `gorm:"index;type:bigint unsigned" json:"courseId"`
	InstructorID     uint                      `gorm:"index;type:bigint unsigned" json:"instructorId"`
	QuestionIDs      datatypes.JSONSlice[uint] `gorm:"type:json" json:"questionIds"` // 按组卷顺序，可能包含重复
	TotalScore       float64                   `gorm:"default:0" json:"totalScore"`
	DurationMinutes  int                       `gorm:"default:0" json:"durationMinutes"`
	GenerationMethod GenerationMethod          `gorm:"size:32" json:"generationMethod"`
}

func (TestPaper) TableName() string {
	return "test_papers"
}

// GenerationRequest 自动组卷请求，按 GenerationMethod 使用对应的参数
// swagger:model GenerationRequest
type GenerationRequest struct {
	PaperName        string           `json:"paperName"`
	CourseID         uint             `json:"courseId"`
	InstructorID     uint             `json:"instructorId"`
	GenerationMethod GenerationMethod `json:"generationMethod"`
	TotalQuestions   int              `json:"totalQuestions"`
	DurationMinutes  int              `json:"durationMinutes"`
	TotalScore       float64          `json:"totalScore"`

	// Seed 固定随机种子，相同种子和题库得到相同结果
	Seed *int64 `json:"seed,omitempty"`

	// RANDOM
	QuestionTypes []QuestionType `json:"questionTypes,omitempty"`

	// BY_KNOWLEDGE_POINT，BALANCED 的覆盖检查也使用 KnowledgePointIDs
	KnowledgePointIDs            []uint       `json:"knowledgePointIds,omitempty"`
	KnowledgePointQuestionCounts map[uint]int `json:"knowledgePointQuestionCounts,omitempty"`

	// BY_DIFFICULTY
	Difficulties             []string       `json:"difficulties,omitempty"`
	DifficultyQuestionCounts map[string]int `json:"difficultyQuestionCounts,omitempty"`

	// BALANCED
	QuestionTypeDistribution  map[QuestionType]int `json:"questionTypeDistribution,omitempty"`
	DifficultyWeights         map[string]float64   `json:"difficultyWeights,omitempty"` // 0.0-1.0
	IncludeAllKnowledgePoints bool                 `json:"includeAllKnowledgePoints,omitempty"`
}
