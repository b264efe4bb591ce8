package model

import "gorm.io/datatypes"

type QuestionType string

const (
	QuestionSingleChoice   QuestionType = "SINGLE_CHOICE"
	QuestionMultipleChoice QuestionType = "MULTIPLE_CHOICE"
	QuestionTrueFalse      QuestionType = "TRUE_FALSE"
	QuestionFillInTheBlank QuestionType = "FILL_IN_THE_BLANK"
	QuestionShortAnswer    QuestionType = "SHORT_ANSWER"
	QuestionProgramming    QuestionType = "PROGRAMMING"
)

// QuestionTypes 题型的固定顺序，均衡组卷按此顺序遍历题型分布
var QuestionTypes = []QuestionType{
	QuestionSingleChoice,
	QuestionMultipleChoice,
	QuestionTrueFalse,
	QuestionFillInTheBlank,
	QuestionShortAnswer,
	QuestionProgramming,
}

var questionTypeDescriptions = map[QuestionType]string{
	QuestionSingleChoice:   "单选题",
	QuestionMultipleChoice: "多选题",
	QuestionTrueFalse:      "判断题",
	QuestionFillInTheBlank: "填空题",
	QuestionShortAnswer:    "简答题",
	QuestionProgramming:    "编程题",
}

func (t QuestionType) Valid() bool {
	_, ok := questionTypeDescriptions[t]
	return ok
}

func (t QuestionType) Description() string {
	return questionTypeDescriptions[t]
}

// Order 返回题型在 QuestionTypes 中的位置，未知题型排在最后
func (t QuestionType) Order() int {
	for i, qt := range QuestionTypes {
		if qt == t {
			return i
		}
	}
	return len(QuestionTypes)
}

const (
	DifficultyEasy   = "EASY"
	DifficultyMedium = "MEDIUM"
	DifficultyHard   = "HARD"
)

// swagger:model Question
type Question struct {
	BaseModel
	QuestionText        string                      `gorm:"type:text;not null" json:"questionText"`
	QuestionType        QuestionType                `gorm:"size:32;not null;index" json:"questionType"`
	Options             datatypes.JSON              `gorm:"type:json" json:"options,omitempty"`
	CorrectAnswer       string                      `gorm:"type:text" json:"correctAnswer"`
	Explanation         string                      `gorm:"type:text" json:"explanation"`
	Difficulty          string                      `gorm:"size:20;index" json:"difficulty"` // EASY, MEDIUM, HARD
	KnowledgePointIDs   datatypes.JSONSlice[uint]   `gorm:"type:json" json:"knowledgePointIds"`
	ProgrammingLanguage string                      `gorm:"size:50" json:"programmingLanguage,omitempty"`
	TemplateCode        string                      `gorm:"type:text" json:"templateCode,omitempty"`
	TestCases           string                      `gorm:"type:text" json:"testCases,omitempty"` // JSON
	Points              float64                     `gorm:"default:0" json:"points"`
	Tags                datatypes.JSONSlice[string] `gorm:"type:json" json:"tags,omitempty"`
	CreatedBy           uint                        `gorm:"index" json:"createdBy"`
	IsActive            bool                        `gorm:"default:true" json:"isActive"`
	UsageCount          int                         `gorm:"default:0" json:"usageCount"`
	AverageScore        float64                     `gorm:"default:0" json:"averageScore"`
}

func (Question) TableName() string {
	return "questions"
}

func (q *Question) HasKnowledgePoint(id uint) bool {
	for _, kp := range q.KnowledgePointIDs {
		if kp == id {
			return true
		}
	}
	return false
}

