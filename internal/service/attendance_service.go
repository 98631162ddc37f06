package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/drchoshit/new-weekly-plan-maker/internal/dto"
	"github.com/drchoshit/new-weekly-plan-maker/internal/model"
	"github.com/drchoshit/new-weekly-plan-maker/internal/repository"
)

// ── 출결 모듈 업무 에러 ──

var (
	ErrAttendanceTimeInvalid = errors.New("출결 시각 형식을 해석할 수 없습니다")
)

// AttendanceService 출결 업무 인터페이스
//
// 저장 시점에 이질적인 원문 값([s,e] 배열, "s~e" 문자열, 단일 시각)을
// 정규화해 DB 에는 항상 start/end 쌍으로만 남긴다. 배정 엔진은
// 정규화된 값만 본다.
type AttendanceService interface {
	Save(ctx context.Context, periodID, studentID string, req *dto.SaveAttendanceRequest, operatorID string) (*dto.StudentAttendanceResponse, error)
	GetWeek(ctx context.Context, periodID, studentID string) (*dto.StudentAttendanceResponse, error)

	// WeekOf 배정 엔진 입력용 주간 출결
	WeekOf(ctx context.Context, periodID, studentID string) (WeekAttendance, error)
	// WeekByStudent 주차 전체 학생의 주간 출결
	WeekByStudent(ctx context.Context, periodID string) (map[string]WeekAttendance, error)
}

type attendanceService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAttendanceService AttendanceService 인스턴스 생성
func NewAttendanceService(repo *repository.Repository, logger *zap.Logger) AttendanceService {
	return &attendanceService{repo: repo, logger: logger}
}

// normalizeEntry 입력 한 건을 TimePair 로 정규화한다.
// Time 원문 값이 있으면 우선하고, 없으면 start/end 필드를 쓴다.
// 양쪽 모두 비어 있으면 미등원으로 보고 빈 쌍을 돌려준다.
func normalizeEntry(in *dto.AttendanceEntryInput) (TimePair, error) {
	if in.Time != nil {
		pair, ok := NormalizeTimePair(in.Time)
		if ok {
			return pair, nil
		}
		// 인식 불가 형태라도 빈 문자열이면 미등원 처리
		if s, isStr := in.Time.(string); isStr && s == "" {
			return TimePair{}, nil
		}
		return TimePair{}, ErrAttendanceTimeInvalid
	}
	return TimePair{Start: in.StartTime, End: in.EndTime}, nil
}

func (s *attendanceService) Save(ctx context.Context, periodID, studentID string, req *dto.SaveAttendanceRequest, operatorID string) (*dto.StudentAttendanceResponse, error) {
	if _, err := s.repo.Period.GetByID(ctx, periodID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPeriodNotFound
		}
		return nil, err
	}
	if _, err := s.repo.Student.GetByID(ctx, studentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	entries := make([]model.AttendanceEntry, 0, len(req.Entries))
	for i := range req.Entries {
		pair, err := normalizeEntry(&req.Entries[i])
		if err != nil {
			return nil, err
		}
		entry := model.AttendanceEntry{
			PeriodID:  periodID,
			StudentID: studentID,
			Day:       req.Entries[i].Day,
			StartTime: pair.Start,
			EndTime:   pair.End,
		}
		entry.CreatedBy = &operatorID
		entry.UpdatedBy = &operatorID
		entries = append(entries, entry)
	}

	if err := s.repo.Attendance.Upsert(ctx, entries); err != nil {
		return nil, err
	}

	s.logger.Info("출결 저장",
		zap.String("period_id", periodID),
		zap.String("student_id", studentID),
		zap.Int("entries", len(entries)))

	return s.GetWeek(ctx, periodID, studentID)
}

func (s *attendanceService) GetWeek(ctx context.Context, periodID, studentID string) (*dto.StudentAttendanceResponse, error) {
	rows, err := s.repo.Attendance.ListByPeriodStudent(ctx, periodID, studentID)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]model.AttendanceEntry, len(rows))
	for _, row := range rows {
		byDay[row.Day] = row
	}

	resp := &dto.StudentAttendanceResponse{
		StudentID: studentID,
		PeriodID:  periodID,
		Entries:   make([]dto.AttendanceEntryResponse, 0, len(rows)),
	}
	// 요일 고정 순서로 응답
	for _, day := range Days {
		row, ok := byDay[day]
		if !ok {
			continue
		}
		resp.Entries = append(resp.Entries, dto.AttendanceEntryResponse{
			Day:       day,
			StartTime: row.StartTime,
			EndTime:   row.EndTime,
		})
	}
	return resp, nil
}

func (s *attendanceService) WeekOf(ctx context.Context, periodID, studentID string) (WeekAttendance, error) {
	rows, err := s.repo.Attendance.ListByPeriodStudent(ctx, periodID, studentID)
	if err != nil {
		return nil, err
	}
	week := make(WeekAttendance, len(rows))
	for _, row := range rows {
		week[row.Day] = TimePair{Start: row.StartTime, End: row.EndTime}
	}
	return week, nil
}

func (s *attendanceService) WeekByStudent(ctx context.Context, periodID string) (map[string]WeekAttendance, error) {
	rows, err := s.repo.Attendance.ListByPeriod(ctx, periodID)
	if err != nil {
		return nil, err
	}
	out := make(map[string]WeekAttendance)
	for _, row := range rows {
		week, ok := out[row.StudentID]
		if !ok {
			week = make(WeekAttendance)
			out[row.StudentID] = week
		}
		week[row.Day] = TimePair{Start: row.StartTime, End: row.EndTime}
	}
	return out, nil
}
