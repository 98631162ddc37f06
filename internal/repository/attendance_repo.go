package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/drchoshit/new-weekly-plan-maker/internal/model"
)

// AttendanceRepository 출결 데이터 접근 인터페이스
type AttendanceRepository interface {
	Upsert(ctx context.Context, entries []model.AttendanceEntry) error
	ListByPeriodStudent(ctx context.Context, periodID, studentID string) ([]model.AttendanceEntry, error)
	ListByPeriod(ctx context.Context, periodID string) ([]model.AttendanceEntry, error)
	DeleteByPeriodStudent(ctx context.Context, periodID, studentID string) error
}

type attendanceRepo struct {
	db *gorm.DB
}

func NewAttendanceRepo(db *gorm.DB) AttendanceRepository {
	return &attendanceRepo{db: db}
}

// Upsert (period_id, student_id, day) 유니크 키 기준으로 덮어쓴다
func (r *attendanceRepo) Upsert(ctx context.Context, entries []model.AttendanceEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "period_id"}, {Name: "student_id"}, {Name: "day"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"start_time", "end_time", "updated_at", "updated_by"}),
		}).
		Create(&entries).Error
}

func (r *attendanceRepo) ListByPeriodStudent(ctx context.Context, periodID, studentID string) ([]model.AttendanceEntry, error) {
	var entries []model.AttendanceEntry
	err := r.db.WithContext(ctx).
		Where("period_id = ? AND student_id = ?", periodID, studentID).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *attendanceRepo) ListByPeriod(ctx context.Context, periodID string) ([]model.AttendanceEntry, error) {
	var entries []model.AttendanceEntry
	err := r.db.WithContext(ctx).
		Where("period_id = ?", periodID).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *attendanceRepo) DeleteByPeriodStudent(ctx context.Context, periodID, studentID string) error {
	return r.db.WithContext(ctx).
		Where("period_id = ? AND student_id = ?", periodID, studentID).
		Delete(&model.AttendanceEntry{}).Error
}
