package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/drchoshit/new-weekly-plan-maker/internal/model"
	pkgerrors "github.com/drchoshit/new-weekly-plan-maker/pkg/errors"
)

// StudentRepository 학생 데이터 접근 인터페이스
type StudentRepository interface {
	Create(ctx context.Context, student *model.Student) error
	GetByID(ctx context.Context, id string) (*model.Student, error)
	List(ctx context.Context, keyword string, offset, limit int) ([]model.Student, int64, error)
	ListAll(ctx context.Context) ([]model.Student, error)
	ListNewStudents(ctx context.Context) ([]model.Student, error)
	Update(ctx context.Context, student *model.Student) error
	Delete(ctx context.Context, id string) error
}

type studentRepo struct {
	db *gorm.DB
}

func NewStudentRepo(db *gorm.DB) StudentRepository {
	return &studentRepo{db: db}
}

func (r *studentRepo) Create(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

func (r *studentRepo) GetByID(ctx context.Context, id string) (*model.Student, error) {
	var student model.Student
	err := r.db.WithContext(ctx).
		Where("student_id = ?", id).
		First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepo) List(ctx context.Context, keyword string, offset, limit int) ([]model.Student, int64, error) {
	var (
		students []model.Student
		total    int64
	)
	query := r.db.WithContext(ctx).Model(&model.Student{})
	if keyword != "" {
		query = query.Where("name LIKE ?", "%"+keyword+"%")
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.
		Order("name ASC, created_at ASC").
		Offset(offset).
		Limit(limit).
		Find(&students).Error
	if err != nil {
		return nil, 0, err
	}
	return students, total, nil
}

func (r *studentRepo) ListAll(ctx context.Context) ([]model.Student, error) {
	var students []model.Student
	err := r.db.WithContext(ctx).
		Order("name ASC, created_at ASC").
		Find(&students).Error
	if err != nil {
		return nil, err
	}
	return students, nil
}

func (r *studentRepo) ListNewStudents(ctx context.Context) ([]model.Student, error) {
	var students []model.Student
	err := r.db.WithContext(ctx).
		Where("is_new_student = ?", true).
		Order("name ASC, created_at ASC").
		Find(&students).Error
	if err != nil {
		return nil, err
	}
	return students, nil
}

func (r *studentRepo) Update(ctx context.Context, student *model.Student) error {
	oldVersion := student.Version
	result := r.db.WithContext(ctx).
		Model(student).
		Where("student_id = ? AND version = ?", student.StudentID, oldVersion).
		Updates(map[string]interface{}{
			"name":              student.Name,
			"birth_year":        student.BirthYear,
			"personality":       student.Personality,
			"korean":            student.Korean,
			"math":              student.Math,
			"explore1":          student.Explore1,
			"explore2":          student.Explore2,
			"fixed_mentor":      student.FixedMentor,
			"banned_mentor1":    student.BannedMentor1,
			"banned_mentor2":    student.BannedMentor2,
			"assign_base":       student.AssignBase,
			"is_new_student":    student.IsNewStudent,
			"initial_mentor":    student.InitialMentor,
			"initial_day":       student.InitialDay,
			"initial_period_id": student.InitialPeriodID,
			"updated_by":        student.UpdatedBy,
			"version":           oldVersion + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ErrOptimisticLock
	}
	student.Version = oldVersion + 1
	return nil
}

func (r *studentRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("student_id = ?", id).
		Delete(&model.Student{}).Error
}
