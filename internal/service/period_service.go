package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/drchoshit/new-weekly-plan-maker/internal/dto"
	"github.com/drchoshit/new-weekly-plan-maker/internal/model"
	"github.com/drchoshit/new-weekly-plan-maker/internal/repository"
)

// ── 주차 모듈 업무 에러 ──

var (
	ErrPeriodNotFound      = errors.New("주차가 존재하지 않습니다")
	ErrPeriodAlreadyExists = errors.New("이미 존재하는 주차 ID 입니다")
	ErrPeriodDateInvalid   = errors.New("주차 종료일은 시작일보다 빨라야 합니다")
)

// PeriodService 주차 업무 인터페이스
type PeriodService interface {
	Create(ctx context.Context, req *dto.CreatePeriodRequest, operatorID string) (*dto.PeriodResponse, error)
	Get(ctx context.Context, periodID string) (*dto.PeriodResponse, error)
	List(ctx context.Context) ([]dto.PeriodResponse, error)
	Update(ctx context.Context, periodID string, req *dto.UpdatePeriodRequest, operatorID string) (*dto.PeriodResponse, error)
	Delete(ctx context.Context, periodID string) error
}

type periodService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewPeriodService PeriodService 인스턴스 생성
func NewPeriodService(repo *repository.Repository, logger *zap.Logger) PeriodService {
	return &periodService{repo: repo, logger: logger}
}

const dateLayout = "2006-01-02"

func (s *periodService) Create(ctx context.Context, req *dto.CreatePeriodRequest, operatorID string) (*dto.PeriodResponse, error) {
	if _, err := s.repo.Period.GetByID(ctx, req.PeriodID); err == nil {
		return nil, ErrPeriodAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	period := &model.Period{
		PeriodID: req.PeriodID,
		Name:     req.Name,
	}
	period.CreatedBy = &operatorID
	period.UpdatedBy = &operatorID

	if req.StartDate != "" {
		t, err := time.Parse(dateLayout, req.StartDate)
		if err != nil {
			return nil, ErrPeriodDateInvalid
		}
		period.StartDate = &t
	}
	if req.EndDate != "" {
		t, err := time.Parse(dateLayout, req.EndDate)
		if err != nil {
			return nil, ErrPeriodDateInvalid
		}
		period.EndDate = &t
	}
	if period.StartDate != nil && period.EndDate != nil && period.EndDate.Before(*period.StartDate) {
		return nil, ErrPeriodDateInvalid
	}

	if err := s.repo.Period.Create(ctx, period); err != nil {
		return nil, err
	}

	s.logger.Info("주차 생성",
		zap.String("period_id", period.PeriodID),
		zap.String("name", period.Name))

	return toPeriodResponse(period), nil
}

func (s *periodService) Get(ctx context.Context, periodID string) (*dto.PeriodResponse, error) {
	period, err := s.repo.Period.GetByID(ctx, periodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPeriodNotFound
		}
		return nil, err
	}
	return toPeriodResponse(period), nil
}

func (s *periodService) List(ctx context.Context) ([]dto.PeriodResponse, error) {
	periods, err := s.repo.Period.ListOrdered(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PeriodResponse, 0, len(periods))
	for i := range periods {
		out = append(out, *toPeriodResponse(&periods[i]))
	}
	return out, nil
}

func (s *periodService) Update(ctx context.Context, periodID string, req *dto.UpdatePeriodRequest, operatorID string) (*dto.PeriodResponse, error) {
	period, err := s.repo.Period.GetByID(ctx, periodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPeriodNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		period.Name = *req.Name
	}
	if req.StartDate != nil {
		if *req.StartDate == "" {
			period.StartDate = nil
		} else {
			t, err := time.Parse(dateLayout, *req.StartDate)
			if err != nil {
				return nil, ErrPeriodDateInvalid
			}
			period.StartDate = &t
		}
	}
	if req.EndDate != nil {
		if *req.EndDate == "" {
			period.EndDate = nil
		} else {
			t, err := time.Parse(dateLayout, *req.EndDate)
			if err != nil {
				return nil, ErrPeriodDateInvalid
			}
			period.EndDate = &t
		}
	}
	if period.StartDate != nil && period.EndDate != nil && period.EndDate.Before(*period.StartDate) {
		return nil, ErrPeriodDateInvalid
	}
	period.UpdatedBy = &operatorID

	if err := s.repo.Period.Update(ctx, period); err != nil {
		return nil, err
	}
	return toPeriodResponse(period), nil
}

func (s *periodService) Delete(ctx context.Context, periodID string) error {
	if _, err := s.repo.Period.GetByID(ctx, periodID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPeriodNotFound
		}
		return err
	}
	return s.repo.Period.Delete(ctx, periodID)
}

func toPeriodResponse(p *model.Period) *dto.PeriodResponse {
	resp := &dto.PeriodResponse{
		PeriodID:  p.PeriodID,
		Name:      p.Name,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
	if p.StartDate != nil {
		resp.StartDate = p.StartDate.Format(dateLayout)
	}
	if p.EndDate != nil {
		resp.EndDate = p.EndDate.Format(dateLayout)
	}
	return resp
}
