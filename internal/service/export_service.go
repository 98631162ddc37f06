package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/drchoshit/new-weekly-plan-maker/internal/model"
	"github.com/drchoshit/new-weekly-plan-maker/internal/repository"
)

// ── 내보내기 모듈 업무 에러 ──

var (
	ErrExportNoRecords    = errors.New("해당 주차에 내보낼 기록이 없습니다")
	ErrExportNoStartDate  = errors.New("주차 시작일이 없어 캘린더를 생성할 수 없습니다")
	ErrExportGenerateFail = errors.New("Excel 파일 생성에 실패했습니다")
)

const seoulTimezone = "Asia/Seoul"

// ExportService 내보내기 업무 인터페이스
//
// 설계 메모:
//   - 주간 배정표는 Excel (.xlsx) 한 장으로 내보낸다. Handler 가
//     HTTP 헤더를 설정한 뒤 버퍼를 그대로 흘려보낸다.
//   - 학생별 멘토링 일정은 iCalendar (RFC 5545) 피드로 내보내
//     외부 캘린더 구독이 가능하게 한다. 주차 시작일을 월요일로
//     보고 요일 인덱스만큼 더해 날짜를 계산한다.
type ExportService interface {
	// ExportPeriodSchedule 주차 배정표를 Excel 로 내보낸다
	ExportPeriodSchedule(ctx context.Context, periodID string) (*bytes.Buffer, string, error)
	// StudentCalendar 학생의 확정 멘토링 일정을 ICS 텍스트로 내보낸다
	StudentCalendar(ctx context.Context, periodID, studentID string) (string, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService ExportService 인스턴스 생성
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// ExportPeriodSchedule — 주차 배정표 Excel 내보내기
// ═══════════════════════════════════════════════════════════
//
// 형식:
//   - 행: 학생 한 명
//   - 고정 열: 학생 / 배정 멘토 / 요일 / 출석 / 실제 진행 멘토
//   - 요일 열: 월~토 출결 시간 (start~end)

func (s *exportService) ExportPeriodSchedule(ctx context.Context, periodID string) (*bytes.Buffer, string, error) {
	period, err := s.repo.Period.GetByID(ctx, periodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrPeriodNotFound
		}
		s.logger.Error("주차 조회 실패", zap.Error(err))
		return nil, "", err
	}

	records, err := s.repo.Assignment.ListByPeriod(ctx, periodID)
	if err != nil {
		s.logger.Error("확정 기록 조회 실패", zap.Error(err))
		return nil, "", err
	}
	if len(records) == 0 {
		return nil, "", ErrExportNoRecords
	}

	students, err := s.repo.Student.ListAll(ctx)
	if err != nil {
		return nil, "", err
	}
	nameByID := make(map[string]string, len(students))
	for _, st := range students {
		nameByID[st.StudentID] = st.Name
	}

	attRows, err := s.repo.Attendance.ListByPeriod(ctx, periodID)
	if err != nil {
		return nil, "", err
	}
	weeks := buildWeeks(attRows)

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "주간 배정표"
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 14)
	f.SetColWidth(sheetName, "B", "B", 14)
	f.SetColWidth(sheetName, "C", "E", 10)
	f.SetColWidth(sheetName, "F", "K", 14)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 제목 행
	f.SetCellValue(sheetName, "A1", fmt.Sprintf("%s — 주간 멘토 배정표", period.Name))
	f.MergeCell(sheetName, "A1", "K1")

	// 헤더 행
	headers := []string{"학생", "배정 멘토", "요일", "출석", "실제 진행 멘토"}
	headers = append(headers, Days...)
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		f.SetCellValue(sheetName, cell, h)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, record := range records {
		row := rowIdx + 3

		attended := "O"
		if !record.Attended {
			attended = "X"
			if record.MissedDay != "" {
				attended = "X (" + record.MissedDay + ")"
			}
		}

		values := []interface{}{
			nameByID[record.StudentID],
			record.Mentor,
			record.Day,
			attended,
			record.ActualMentor,
		}
		week := weeks[record.StudentID]
		for _, day := range Days {
			pair := week[day]
			cellText := ""
			if pair.Start != "" || pair.End != "" {
				cellText = pair.Start + "~" + pair.End
			}
			values = append(values, cellText)
		}

		for colIdx, v := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, row)
			f.SetCellValue(sheetName, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("Excel 버퍼 생성 실패", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("%s_배정표.xlsx", period.Name)

	s.logger.Info("주차 배정표 내보내기",
		zap.String("period_id", periodID),
		zap.Int("records", len(records)))

	return buf, filename, nil
}

// ═══════════════════════════════════════════════════════════
// StudentCalendar — 학생 멘토링 일정 ICS 내보내기
// ═══════════════════════════════════════════════════════════

func (s *exportService) StudentCalendar(ctx context.Context, periodID, studentID string) (string, string, error) {
	period, err := s.repo.Period.GetByID(ctx, periodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", ErrPeriodNotFound
		}
		return "", "", err
	}
	if period.StartDate == nil {
		return "", "", ErrExportNoStartDate
	}

	student, err := s.repo.Student.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", ErrStudentNotFound
		}
		return "", "", err
	}

	record, err := s.repo.Assignment.Get(ctx, studentID, periodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", ErrExportNoRecords
		}
		return "", "", err
	}
	if record.Mentor == "" || record.Day == "" {
		return "", "", ErrExportNoRecords
	}

	loc, err := time.LoadLocation(seoulTimezone)
	if err != nil {
		loc = time.Local
	}

	dayIdx := DayIndex(record.Day)
	if dayIdx < 0 {
		return "", "", ErrExportNoRecords
	}
	// 주차 시작일을 월요일로 보고 요일만큼 이동
	date := period.StartDate.In(loc).AddDate(0, 0, dayIdx)

	startMin, endMin := s.sessionWindow(ctx, record, periodID, studentID)
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc).
		Add(time.Duration(startMin) * time.Minute)
	end := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc).
		Add(time.Duration(endMin) * time.Minute)

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	event := cal.AddEvent(fmt.Sprintf("%s-%s@weekly-plan-maker", studentID, periodID))
	event.SetCreatedTime(time.Now())
	event.SetStartAt(start)
	event.SetEndAt(end)
	event.SetSummary(fmt.Sprintf("멘토링: %s × %s", student.Name, record.Mentor))
	event.SetDescription(fmt.Sprintf("%s 주차 멘토링 (%s요일)", period.Name, record.Day))

	filename := fmt.Sprintf("%s_%s_멘토링.ics", period.Name, student.Name)
	return cal.Serialize(), filename, nil
}

// sessionWindow 멘토링 세션의 시작·종료 분.
// 학생 출결 → 해당 요일 멘토 근무 첫 구간 → 기본값(14:00~15:00)
// 순서로 결정한다.
func (s *exportService) sessionWindow(ctx context.Context, record *model.MentorAssignment, periodID, studentID string) (int, int) {
	attRows, err := s.repo.Attendance.ListByPeriodStudent(ctx, periodID, studentID)
	if err == nil {
		for _, row := range attRows {
			if row.Day != record.Day {
				continue
			}
			stMin, ok1 := ToMinutes(row.StartTime)
			enMin, ok2 := ToMinutes(row.EndTime)
			if ok1 && ok2 {
				if enMin < stMin {
					enMin += 1440
				}
				return stMin, enMin
			}
		}
	}

	slots, err := s.repo.MentorSlot.ListByDay(ctx, record.Day)
	if err == nil {
		for _, slot := range slots {
			if slot.Name != record.Mentor {
				continue
			}
			if ranges := ParseMentorRanges(slot.WorkTime); len(ranges) > 0 {
				return ranges[0].StartMin, ranges[0].EndMin
			}
		}
	}

	return 14 * 60, 15 * 60
}
