package repository

import (
	"errors"
	"strconv"
	"teateach_backend/internal/model"
	"teateach_backend/internal/util"

	"gorm.io/gorm"
)

type TestPaperRepository struct {
	DB *gorm.DB
}

func NewTestPaperRepository(db *gorm.DB) *TestPaperRepository {
	return &TestPaperRepository{DB: db}
}

func (r *TestPaperRepository) Create(p *model.TestPaper) error {
	return r.DB.Create(p).Error
}

func (r *TestPaperRepository) FindByID(id uint) (*model.TestPaper, error) {
	var p model.TestPaper
	if err := r.DB.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrTestPaperNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *TestPaperRepository) Update(p *model.TestPaper) error {
	return r.DB.Save(p).Error
}

func (r *TestPaperRepository) Delete(id uint) error {
	return r.DB.Delete(&model.TestPaper{}, id).Error
}

// List 分页查询，search 非空时按试卷名称模糊匹配
func (r *TestPaperRepository) List(offset, limit int, search string) ([]model.TestPaper, error) {
	var ps []model.TestPaper
	query := r.DB.Model(&model.TestPaper{})
	if search != "" {
		query = query.Where("paper_name LIKE ?", "%"+search+"%")
	}
	err := query.Order("created_at desc, id desc").Offset(offset).Limit(limit).Find(&ps).Error
	return ps, err
}

func (r *TestPaperRepository) ListByCourse(courseID uint) ([]model.TestPaper, error) {
	var ps []model.TestPaper
	err := r.DB.Where("course_id = ?", courseID).Order("created_at desc, id desc").Find(&ps).Error
	return ps, err
}

func (r *TestPaperRepository) ListByInstructor(instructorID uint) ([]model.TestPaper, error) {
	var ps []model.TestPaper
	err := r.DB.Where("instructor_id = ?", instructorID).Order("created_at desc, id desc").Find(&ps).Error
	return ps, err
}

// ListByQuestion 查询包含指定题目的试卷
func (r *TestPaperRepository) ListByQuestion(questionID uint) ([]model.TestPaper, error) {
	var ps []model.TestPaper
	err := r.DB.Where("JSON_CONTAINS(question_ids, ?)", strconv.FormatUint(uint64(questionID), 10)).
		Order("created_at desc, id desc").
		Find(&ps).Error
	return ps, err
}
