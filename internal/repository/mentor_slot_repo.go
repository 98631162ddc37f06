package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/drchoshit/new-weekly-plan-maker/internal/model"
	pkgerrors "github.com/drchoshit/new-weekly-plan-maker/pkg/errors"
)

// MentorSlotRepository 멘토 근무 슬롯 데이터 접근 인터페이스
type MentorSlotRepository interface {
	Create(ctx context.Context, slot *model.MentorSlot) error
	GetByID(ctx context.Context, id string) (*model.MentorSlot, error)
	List(ctx context.Context, day, keyword string, offset, limit int) ([]model.MentorSlot, int64, error)
	ListAll(ctx context.Context) ([]model.MentorSlot, error)
	ListByDay(ctx context.Context, day string) ([]model.MentorSlot, error)
	Update(ctx context.Context, slot *model.MentorSlot) error
	Delete(ctx context.Context, id string) error
}

type mentorSlotRepo struct {
	db *gorm.DB
}

func NewMentorSlotRepo(db *gorm.DB) MentorSlotRepository {
	return &mentorSlotRepo{db: db}
}

func (r *mentorSlotRepo) Create(ctx context.Context, slot *model.MentorSlot) error {
	return r.db.WithContext(ctx).Create(slot).Error
}

func (r *mentorSlotRepo) GetByID(ctx context.Context, id string) (*model.MentorSlot, error) {
	var slot model.MentorSlot
	err := r.db.WithContext(ctx).
		Where("mentor_slot_id = ?", id).
		First(&slot).Error
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *mentorSlotRepo) List(ctx context.Context, day, keyword string, offset, limit int) ([]model.MentorSlot, int64, error) {
	var (
		slots []model.MentorSlot
		total int64
	)
	query := r.db.WithContext(ctx).Model(&model.MentorSlot{})
	if day != "" {
		query = query.Where("day = ?", day)
	}
	if keyword != "" {
		query = query.Where("name LIKE ?", "%"+keyword+"%")
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.
		Order("day ASC, created_at ASC").
		Offset(offset).
		Limit(limit).
		Find(&slots).Error
	if err != nil {
		return nil, 0, err
	}
	return slots, total, nil
}

func (r *mentorSlotRepo) ListAll(ctx context.Context) ([]model.MentorSlot, error) {
	var slots []model.MentorSlot
	err := r.db.WithContext(ctx).
		Order("day ASC, created_at ASC").
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *mentorSlotRepo) ListByDay(ctx context.Context, day string) ([]model.MentorSlot, error) {
	var slots []model.MentorSlot
	err := r.db.WithContext(ctx).
		Where("day = ?", day).
		Order("created_at ASC").
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *mentorSlotRepo) Update(ctx context.Context, slot *model.MentorSlot) error {
	oldVersion := slot.Version
	result := r.db.WithContext(ctx).
		Model(slot).
		Where("mentor_slot_id = ? AND version = ?", slot.MentorSlotID, oldVersion).
		Updates(map[string]interface{}{
			"day":            slot.Day,
			"name":           slot.Name,
			"work_time":      slot.WorkTime,
			"birth_year":     slot.BirthYear,
			"personality":    slot.Personality,
			"korean_subject": slot.KoreanSubject,
			"math_subject":   slot.MathSubject,
			"explore1":       slot.Explore1,
			"explore2":       slot.Explore2,
			"updated_by":     slot.UpdatedBy,
			"version":        oldVersion + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ErrOptimisticLock
	}
	slot.Version = oldVersion + 1
	return nil
}

func (r *mentorSlotRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("mentor_slot_id = ?", id).
		Delete(&model.MentorSlot{}).Error
}
