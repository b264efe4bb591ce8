package repository

import (
	"errors"
	"strconv"
	"teateach_backend/internal/model"
	"teateach_backend/internal/util"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) Create(q *model.Question) error {
	return r.DB.Create(q).Error
}

func (r *QuestionRepository) FindByID(id uint) (*model.Question, error) {
	var q model.Question
	if err := r.DB.First(&q, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}
	return &q, nil
}

// FindByIDs 返回存在的题目，顺序不保证
func (r *QuestionRepository) FindByIDs(ids []uint) ([]model.Question, error) {
	var qs []model.Question
	if len(ids) == 0 {
		return qs, nil
	}
	err := r.DB.Where("id IN ?", ids).Find(&qs).Error
	return qs, err
}

// FindAll 题库全量快照，最新创建的在前
func (r *QuestionRepository) FindAll() ([]model.Question, error) {
	var qs []model.Question
	err := r.DB.Order("created_at desc, id desc").Find(&qs).Error
	return qs, err
}

func (r *QuestionRepository) List(offset, limit int, search string) ([]model.Question, error) {
	var qs []model.Question
	query := r.DB.Model(&model.Question{})
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("question_text LIKE ? OR explanation LIKE ?", like, like)
	}
	err := query.Order("created_at desc, id desc").Offset(offset).Limit(limit).Find(&qs).Error
	return qs, err
}

// FindByTypeAndDifficulty 参数为空时不作为过滤条件
func (r *QuestionRepository) FindByTypeAndDifficulty(questionType, difficulty string) ([]model.Question, error) {
	var qs []model.Question
	query := r.DB.Model(&model.Question{})
	if questionType != "" {
		query = query.Where("question_type = ?", questionType)
	}
	if difficulty != "" {
		query = query.Where("difficulty = ?", difficulty)
	}
	err := query.Order("created_at desc, id desc").Find(&qs).Error
	return qs, err
}

func (r *QuestionRepository) FindByKnowledgePoint(knowledgePointID uint) ([]model.Question, error) {
	var qs []model.Question
	err := r.DB.Where("JSON_CONTAINS(knowledge_point_ids, ?)", strconv.FormatUint(uint64(knowledgePointID), 10)).
		Order("created_at desc, id desc").
		Find(&qs).Error
	return qs, err
}

func (r *QuestionRepository) Update(q *model.Question) error {
	return r.DB.Save(q).Error
}

func (r *QuestionRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Question{}, id).Error
}
