package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/drchoshit/new-weekly-plan-maker/internal/model"
)

// AssignmentRepository 확정 멘토링 기록 데이터 접근 인터페이스
type AssignmentRepository interface {
	Upsert(ctx context.Context, record *model.MentorAssignment) error
	Get(ctx context.Context, studentID, periodID string) (*model.MentorAssignment, error)
	ListByStudent(ctx context.Context, studentID string) ([]model.MentorAssignment, error)
	ListByPeriod(ctx context.Context, periodID string) ([]model.MentorAssignment, error)
	Update(ctx context.Context, record *model.MentorAssignment) error
	Delete(ctx context.Context, studentID, periodID string) error
}

// DraftRepository 자동배정 임시 결과 데이터 접근 인터페이스
type DraftRepository interface {
	Upsert(ctx context.Context, draft *model.WeeklyMentorDraft) error
	Get(ctx context.Context, studentID, periodID string) (*model.WeeklyMentorDraft, error)
	ListByPeriod(ctx context.Context, periodID string) ([]model.WeeklyMentorDraft, error)
	Delete(ctx context.Context, studentID, periodID string) error
	DeleteByPeriod(ctx context.Context, periodID string) error
}

// ── Assignment Repository 구현 ──

type assignmentRepo struct {
	db *gorm.DB
}

func NewAssignmentRepo(db *gorm.DB) AssignmentRepository {
	return &assignmentRepo{db: db}
}

// Upsert (student_id, period_id) 유니크 키 기준으로 덮어쓴다
func (r *assignmentRepo) Upsert(ctx context.Context, record *model.MentorAssignment) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "student_id"}, {Name: "period_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"mentor", "day", "attended", "auto_rank",
				"missed_day", "missed_carry_over", "actual_mentor",
				"source", "updated_at", "updated_by",
			}),
		}).
		Create(record).Error
}

func (r *assignmentRepo) Get(ctx context.Context, studentID, periodID string) (*model.MentorAssignment, error) {
	var record model.MentorAssignment
	err := r.db.WithContext(ctx).
		Where("student_id = ? AND period_id = ?", studentID, periodID).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *assignmentRepo) ListByStudent(ctx context.Context, studentID string) ([]model.MentorAssignment, error) {
	var records []model.MentorAssignment
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("created_at ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *assignmentRepo) ListByPeriod(ctx context.Context, periodID string) ([]model.MentorAssignment, error) {
	var records []model.MentorAssignment
	err := r.db.WithContext(ctx).
		Where("period_id = ?", periodID).
		Order("created_at ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *assignmentRepo) Update(ctx context.Context, record *model.MentorAssignment) error {
	return r.db.WithContext(ctx).
		Model(record).
		Where("student_id = ? AND period_id = ?", record.StudentID, record.PeriodID).
		Updates(map[string]interface{}{
			"mentor":            record.Mentor,
			"day":               record.Day,
			"attended":          record.Attended,
			"auto_rank":         record.AutoRank,
			"missed_day":        record.MissedDay,
			"missed_carry_over": record.MissedCarryOver,
			"actual_mentor":     record.ActualMentor,
			"source":            record.Source,
			"updated_by":        record.UpdatedBy,
		}).Error
}

func (r *assignmentRepo) Delete(ctx context.Context, studentID, periodID string) error {
	return r.db.WithContext(ctx).
		Where("student_id = ? AND period_id = ?", studentID, periodID).
		Delete(&model.MentorAssignment{}).Error
}

// ── Draft Repository 구현 ──

type draftRepo struct {
	db *gorm.DB
}

func NewDraftRepo(db *gorm.DB) DraftRepository {
	return &draftRepo{db: db}
}

func (r *draftRepo) Upsert(ctx context.Context, draft *model.WeeklyMentorDraft) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "student_id"}, {Name: "period_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"mentor", "day", "auto_rank", "from_day", "to_day", "day_diff",
				"source", "updated_at", "updated_by",
			}),
		}).
		Create(draft).Error
}

func (r *draftRepo) Get(ctx context.Context, studentID, periodID string) (*model.WeeklyMentorDraft, error) {
	var draft model.WeeklyMentorDraft
	err := r.db.WithContext(ctx).
		Where("student_id = ? AND period_id = ?", studentID, periodID).
		First(&draft).Error
	if err != nil {
		return nil, err
	}
	return &draft, nil
}

func (r *draftRepo) ListByPeriod(ctx context.Context, periodID string) ([]model.WeeklyMentorDraft, error) {
	var drafts []model.WeeklyMentorDraft
	err := r.db.WithContext(ctx).
		Where("period_id = ?", periodID).
		Order("created_at ASC").
		Find(&drafts).Error
	if err != nil {
		return nil, err
	}
	return drafts, nil
}

func (r *draftRepo) Delete(ctx context.Context, studentID, periodID string) error {
	return r.db.WithContext(ctx).
		Where("student_id = ? AND period_id = ?", studentID, periodID).
		Delete(&model.WeeklyMentorDraft{}).Error
}

func (r *draftRepo) DeleteByPeriod(ctx context.Context, periodID string) error {
	return r.db.WithContext(ctx).
		Where("period_id = ?", periodID).
		Delete(&model.WeeklyMentorDraft{}).Error
}
