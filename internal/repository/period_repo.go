package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/drchoshit/new-weekly-plan-maker/internal/model"
)

// PeriodRepository 주차 데이터 접근 인터페이스
//
// ListOrdered 는 생성 시각 오름차순으로 반환한다. 주차 배정의
// "직전 주차" 탐색이 이 순서에 의존한다.
type PeriodRepository interface {
	Create(ctx context.Context, period *model.Period) error
	GetByID(ctx context.Context, id string) (*model.Period, error)
	ListOrdered(ctx context.Context) ([]model.Period, error)
	Update(ctx context.Context, period *model.Period) error
	Delete(ctx context.Context, id string) error
}

type periodRepo struct {
	db *gorm.DB
}

func NewPeriodRepo(db *gorm.DB) PeriodRepository {
	return &periodRepo{db: db}
}

func (r *periodRepo) Create(ctx context.Context, period *model.Period) error {
	return r.db.WithContext(ctx).Create(period).Error
}

func (r *periodRepo) GetByID(ctx context.Context, id string) (*model.Period, error) {
	var period model.Period
	err := r.db.WithContext(ctx).
		Where("period_id = ?", id).
		First(&period).Error
	if err != nil {
		return nil, err
	}
	return &period, nil
}

func (r *periodRepo) ListOrdered(ctx context.Context) ([]model.Period, error) {
	var periods []model.Period
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&periods).Error
	if err != nil {
		return nil, err
	}
	return periods, nil
}

func (r *periodRepo) Update(ctx context.Context, period *model.Period) error {
	return r.db.WithContext(ctx).
		Model(period).
		Where("period_id = ?", period.PeriodID).
		Updates(map[string]interface{}{
			"name":       period.Name,
			"start_date": period.StartDate,
			"end_date":   period.EndDate,
			"updated_by": period.UpdatedBy,
		}).Error
}

func (r *periodRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("period_id = ?", id).
		Delete(&model.Period{}).Error
}
