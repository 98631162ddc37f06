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

// ── 멘토 모듈 업무 에러 ──

var (
	ErrMentorSlotNotFound = errors.New("멘토 근무 슬롯이 존재하지 않습니다")
	ErrMentorTimeInvalid  = errors.New("근무시간 형식을 해석할 수 없습니다")
)

// MentorService 멘토 근무표 업무 인터페이스
type MentorService interface {
	Create(ctx context.Context, req *dto.CreateMentorSlotRequest, operatorID string) (*dto.MentorSlotResponse, error)
	Get(ctx context.Context, slotID string) (*dto.MentorSlotResponse, error)
	List(ctx context.Context, req *dto.MentorSlotListRequest) ([]dto.MentorSlotResponse, int64, error)
	Update(ctx context.Context, slotID string, req *dto.UpdateMentorSlotRequest, operatorID string) (*dto.MentorSlotResponse, error)
	Delete(ctx context.Context, slotID string) error

	// RosterByDay 배정 엔진 입력용 요일별 근무표
	RosterByDay(ctx context.Context) (MentorsByDay, error)
}

type mentorService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewMentorService MentorService 인스턴스 생성
func NewMentorService(repo *repository.Repository, logger *zap.Logger) MentorService {
	return &mentorService{repo: repo, logger: logger}
}

func (s *mentorService) Create(ctx context.Context, req *dto.CreateMentorSlotRequest, operatorID string) (*dto.MentorSlotResponse, error) {
	// 근무시간이 입력됐는데 단 한 구간도 해석되지 않으면 거절한다.
	// 빈 값은 허용 (엔진이 매칭 없음으로 처리)
	if req.WorkTime != "" && len(ParseMentorRanges(req.WorkTime)) == 0 {
		return nil, ErrMentorTimeInvalid
	}

	slot := &model.MentorSlot{
		Day:           req.Day,
		Name:          req.Name,
		WorkTime:      req.WorkTime,
		BirthYear:     req.BirthYear,
		Personality:   req.Personality,
		KoreanSubject: req.KoreanSubject,
		MathSubject:   req.MathSubject,
		Explore1:      req.Explore1,
		Explore2:      req.Explore2,
	}
	slot.CreatedBy = &operatorID
	slot.UpdatedBy = &operatorID
	slot.Version = 1

	if err := s.repo.MentorSlot.Create(ctx, slot); err != nil {
		return nil, err
	}

	s.logger.Info("멘토 근무 슬롯 등록",
		zap.String("slot_id", slot.MentorSlotID),
		zap.String("day", slot.Day),
		zap.String("name", slot.Name))

	return toMentorSlotResponse(slot), nil
}

func (s *mentorService) Get(ctx context.Context, slotID string) (*dto.MentorSlotResponse, error) {
	slot, err := s.repo.MentorSlot.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMentorSlotNotFound
		}
		return nil, err
	}
	return toMentorSlotResponse(slot), nil
}

func (s *mentorService) List(ctx context.Context, req *dto.MentorSlotListRequest) ([]dto.MentorSlotResponse, int64, error) {
	offset := (req.GetPage() - 1) * req.GetPageSize()
	slots, total, err := s.repo.MentorSlot.List(ctx, req.Day, req.Keyword, offset, req.GetPageSize())
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.MentorSlotResponse, 0, len(slots))
	for i := range slots {
		out = append(out, *toMentorSlotResponse(&slots[i]))
	}
	return out, total, nil
}

func (s *mentorService) Update(ctx context.Context, slotID string, req *dto.UpdateMentorSlotRequest, operatorID string) (*dto.MentorSlotResponse, error) {
	slot, err := s.repo.MentorSlot.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMentorSlotNotFound
		}
		return nil, err
	}

	if req.Day != nil {
		slot.Day = *req.Day
	}
	if req.Name != nil {
		slot.Name = *req.Name
	}
	if req.WorkTime != nil {
		if *req.WorkTime != "" && len(ParseMentorRanges(*req.WorkTime)) == 0 {
			return nil, ErrMentorTimeInvalid
		}
		slot.WorkTime = *req.WorkTime
	}
	if req.BirthYear != nil {
		slot.BirthYear = *req.BirthYear
	}
	if req.Personality != nil {
		slot.Personality = *req.Personality
	}
	if req.KoreanSubject != nil {
		slot.KoreanSubject = *req.KoreanSubject
	}
	if req.MathSubject != nil {
		slot.MathSubject = *req.MathSubject
	}
	if req.Explore1 != nil {
		slot.Explore1 = *req.Explore1
	}
	if req.Explore2 != nil {
		slot.Explore2 = *req.Explore2
	}

	slot.Version = req.Version
	slot.UpdatedBy = &operatorID

	if err := s.repo.MentorSlot.Update(ctx, slot); err != nil {
		return nil, err
	}
	return toMentorSlotResponse(slot), nil
}

func (s *mentorService) Delete(ctx context.Context, slotID string) error {
	if _, err := s.repo.MentorSlot.GetByID(ctx, slotID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMentorSlotNotFound
		}
		return err
	}
	return s.repo.MentorSlot.Delete(ctx, slotID)
}

func (s *mentorService) RosterByDay(ctx context.Context) (MentorsByDay, error) {
	slots, err := s.repo.MentorSlot.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	roster := make(MentorsByDay, len(Days))
	for _, slot := range slots {
		roster[slot.Day] = append(roster[slot.Day], slot)
	}
	return roster, nil
}

func toMentorSlotResponse(slot *model.MentorSlot) *dto.MentorSlotResponse {
	return &dto.MentorSlotResponse{
		ID:            slot.MentorSlotID,
		Day:           slot.Day,
		Name:          slot.Name,
		WorkTime:      slot.WorkTime,
		BirthYear:     slot.BirthYear,
		Personality:   slot.Personality,
		KoreanSubject: slot.KoreanSubject,
		MathSubject:   slot.MathSubject,
		Explore1:      slot.Explore1,
		Explore2:      slot.Explore2,
		Version:       slot.Version,
		CreatedAt:     slot.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     slot.UpdatedAt.Format(time.RFC3339),
	}
}
