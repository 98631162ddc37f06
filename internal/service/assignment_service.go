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

// ── 배정 모듈 업무 에러 ──

var (
	ErrAssignmentNotFound = errors.New("확정 멘토링 기록이 존재하지 않습니다")
	ErrNoMentorToToggle   = errors.New("누락 처리할 멘토 기록이 없습니다")
	ErrNoDraftToConfirm   = errors.New("확정할 자동배정 결과가 없습니다")
)

// unassignableLabel 후보 없음을 UI 에 그대로 노출하는 표기
const unassignableLabel = "배정불가"

// AssignmentService 배정 수명주기 업무 인터페이스
//
// 순수 계산(RankMentorsForStudents / AssignWeekly)을 감싸
// 기준점 해석 → 엔진 실행 → draft 저장 → 확정 → 누락 관리의
// 전체 흐름을 담당한다. 같은 학생에 대한 "기준 해석 → 배정 →
// 기록 저장"은 호출 측에서 직렬로 수행해야 한다.
type AssignmentService interface {
	// RankNewStudents 신규생 멘토 추천 랭킹
	RankNewStudents(ctx context.Context, req *dto.RankMentorsRequest) ([]dto.RankResultResponse, error)

	// AutoAssignPeriod 주차 전체 재학생 자동배정 (draft 생성)
	AutoAssignPeriod(ctx context.Context, periodID, operatorID string) ([]dto.DraftResponse, error)
	// AutoAssignOne 학생 한 명 자동배정
	AutoAssignOne(ctx context.Context, periodID, studentID, operatorID string) (*dto.DraftResponse, error)
	// ListDrafts 주차의 draft 목록
	ListDrafts(ctx context.Context, periodID string) ([]dto.DraftResponse, error)

	// Confirm draft 를 확정 기록으로 승격
	Confirm(ctx context.Context, req *dto.ConfirmAssignRequest, operatorID string) ([]dto.AssignmentResponse, error)
	// ManualAssign 확정 기록 직접 입력
	ManualAssign(ctx context.Context, studentID string, req *dto.ManualAssignRequest, operatorID string) (*dto.AssignmentResponse, error)

	// ToggleMissed 멘토링 누락/이월 토글
	ToggleMissed(ctx context.Context, studentID string, req *dto.ToggleMissedRequest, operatorID string) (*dto.AssignmentResponse, error)
	// SetActualMentor 실제 진행 멘토 기록
	SetActualMentor(ctx context.Context, studentID string, req *dto.SetActualMentorRequest, operatorID string) (*dto.AssignmentResponse, error)
	// MissedSummary 주차별 누락/이월 요약
	MissedSummary(ctx context.Context, periodID string) (*dto.MissedSummaryResponse, error)

	// ListHistory 학생의 주차별 확정 기록
	ListHistory(ctx context.Context, studentID string) ([]dto.AssignmentResponse, error)
	// ListPeriodHistory 주차의 전체 확정 기록
	ListPeriodHistory(ctx context.Context, periodID string) ([]dto.AssignmentResponse, error)
}

type assignmentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAssignmentService AssignmentService 인스턴스 생성
func NewAssignmentService(repo *repository.Repository, logger *zap.Logger) AssignmentService {
	return &assignmentService{repo: repo, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// 기준점(anchor) 해석
// ═══════════════════════════════════════════════════════════

// assignAnchor 연속성 배정의 기준이 되는 과거 멘토·요일
type assignAnchor struct {
	Mentor   string
	Day      string
	PeriodID string
}

// resolveInitialAnchor 최초 멘토 기준점.
// 학생에 고정된 initialMentor 가 있으면 그걸 쓰고,
// 없으면 주차 순서상 가장 오래된 멘토+요일 기록을 쓴다.
func resolveInitialAnchor(student *model.Student, periods []model.Period, history map[string]*model.MentorAssignment) *assignAnchor {
	if student.InitialMentor != "" {
		return &assignAnchor{
			Mentor:   student.InitialMentor,
			Day:      student.InitialDay,
			PeriodID: student.InitialPeriodID,
		}
	}
	for _, p := range periods {
		record, ok := history[p.PeriodID]
		if ok && record.Mentor != "" && record.Day != "" {
			return &assignAnchor{Mentor: record.Mentor, Day: record.Day, PeriodID: p.PeriodID}
		}
	}
	return nil
}

// resolveLatestAnchor 최근 멘토 기준점.
// 선택 주차 직전부터 역방향으로 가장 최근의 유효 멘토 기록을 찾고,
// 없으면 최초 멘토로 대체한다.
func resolveLatestAnchor(student *model.Student, periods []model.Period, history map[string]*model.MentorAssignment, selectedPeriodID string) *assignAnchor {
	idx := -1
	for i, p := range periods {
		if p.PeriodID == selectedPeriodID {
			idx = i
			break
		}
	}
	if idx >= 0 {
		for i := idx - 1; i >= 0; i-- {
			record, ok := history[periods[i].PeriodID]
			if ok && record.Mentor != "" {
				return &assignAnchor{Mentor: record.Mentor, Day: record.Day, PeriodID: periods[i].PeriodID}
			}
		}
	}
	return resolveInitialAnchor(student, periods, history)
}

// resolveAnchor 배정 기준(assignBase)에 따른 기준점 선택.
// "initial" 만 최초 멘토를 직접 쓰고, 나머지("", "latest", "fixed")는
// 최근 멘토 → 최초 멘토 순으로 해석한다.
func resolveAnchor(student *model.Student, periods []model.Period, history map[string]*model.MentorAssignment, selectedPeriodID string) *assignAnchor {
	if student.AssignBase == "initial" {
		return resolveInitialAnchor(student, periods, history)
	}
	return resolveLatestAnchor(student, periods, history, selectedPeriodID)
}

// ── 엔진 입력 구성 헬퍼 ──

func buildRoster(slots []model.MentorSlot) MentorsByDay {
	roster := make(MentorsByDay, len(Days))
	for _, slot := range slots {
		roster[slot.Day] = append(roster[slot.Day], slot)
	}
	return roster
}

func buildWeeks(rows []model.AttendanceEntry) map[string]WeekAttendance {
	out := make(map[string]WeekAttendance)
	for _, row := range rows {
		week, ok := out[row.StudentID]
		if !ok {
			week = make(WeekAttendance)
			out[row.StudentID] = week
		}
		week[row.Day] = TimePair{Start: row.StartTime, End: row.EndTime}
	}
	return out
}

func historyByPeriod(records []model.MentorAssignment) map[string]*model.MentorAssignment {
	out := make(map[string]*model.MentorAssignment, len(records))
	for i := range records {
		out[records[i].PeriodID] = &records[i]
	}
	return out
}

// mentorWorkingDays 멘토가 출근하는 요일 목록 (월~토 순)
func mentorWorkingDays(name string, roster MentorsByDay) []string {
	if name == "" {
		return nil
	}
	var days []string
	for _, d := range Days {
		if _, found := findSlotByName(roster[d], name); found {
			days = append(days, d)
		}
	}
	return days
}

// ═══════════════════════════════════════════════════════════
// RankNewStudents — 신규생 멘토 추천 랭킹
// ═══════════════════════════════════════════════════════════

func (s *assignmentService) RankNewStudents(ctx context.Context, req *dto.RankMentorsRequest) ([]dto.RankResultResponse, error) {
	if _, err := s.repo.Period.GetByID(ctx, req.PeriodID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPeriodNotFound
		}
		return nil, err
	}

	var students []model.Student
	if len(req.StudentIDs) > 0 {
		for _, id := range req.StudentIDs {
			st, err := s.repo.Student.GetByID(ctx, id)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, ErrStudentNotFound
				}
				return nil, err
			}
			students = append(students, *st)
		}
	} else {
		var err error
		students, err = s.repo.Student.ListNewStudents(ctx)
		if err != nil {
			return nil, err
		}
	}

	slots, err := s.repo.MentorSlot.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.Attendance.ListByPeriod(ctx, req.PeriodID)
	if err != nil {
		return nil, err
	}

	results := RankMentorsForStudents(RankInput{
		Students:           students,
		MentorsByDay:       buildRoster(slots),
		AttendanceByPeriod: AttendanceByPeriod{req.PeriodID: buildWeeks(rows)},
		CurrentPeriodID:    req.PeriodID,
	})

	nameByID := make(map[string]string, len(students))
	for _, st := range students {
		nameByID[st.StudentID] = st.Name
	}

	out := make([]dto.RankResultResponse, 0, len(results))
	for _, r := range results {
		item := dto.RankResultResponse{
			StudentID:   r.StudentID,
			StudentName: nameByID[r.StudentID],
			First:       r.First,
			Second:      r.Second,
			Third:       r.Third,
			Reasons: dto.RankReasons{
				First:  r.Reasons.First,
				Second: r.Reasons.Second,
				Third:  r.Reasons.Third,
			},
		}
		if !r.Assigned {
			item.First = unassignableLabel
		}
		out = append(out, item)
	}

	s.logger.Info("신규생 멘토 추천 실행",
		zap.String("period_id", req.PeriodID),
		zap.Int("students", len(students)))

	return out, nil
}

// ═══════════════════════════════════════════════════════════
// AutoAssignPeriod / AutoAssignOne — 재학생 주차 자동배정
// ═══════════════════════════════════════════════════════════
//
// 흐름: 주차 순서 로드 → 학생별 기준점 해석 → 엔진 실행 →
// draft 저장. 전체 배정은 기준 멘토가 전혀 없는 학생을
// 엔진에 넣지 않고 빈 draft 로 남긴다 (신규생 추천 대상).

func (s *assignmentService) AutoAssignPeriod(ctx context.Context, periodID, operatorID string) ([]dto.DraftResponse, error) {
	if _, err := s.repo.Period.GetByID(ctx, periodID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPeriodNotFound
		}
		return nil, err
	}

	students, err := s.repo.Student.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	periods, err := s.repo.Period.ListOrdered(ctx)
	if err != nil {
		return nil, err
	}
	slots, err := s.repo.MentorSlot.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.Attendance.ListByPeriod(ctx, periodID)
	if err != nil {
		return nil, err
	}

	roster := buildRoster(slots)
	weeks := buildWeeks(rows)

	out := make([]dto.DraftResponse, 0, len(students))
	for i := range students {
		student := &students[i]

		records, err := s.repo.Assignment.ListByStudent(ctx, student.StudentID)
		if err != nil {
			return nil, err
		}
		anchor := resolveAnchor(student, periods, historyByPeriod(records), periodID)

		var draft WeeklyDraft
		if anchor == nil || anchor.Mentor == "" {
			// 기준 멘토 없음: 엔진을 돌리지 않고 빈 draft
			draft = WeeklyDraft{Assigned: false}
		} else {
			draft = AssignWeekly(WeeklyInput{
				Student:      *student,
				Attendance:   weeks[student.StudentID],
				MentorsByDay: roster,
				Prev:         &PrevRecord{Mentor: anchor.Mentor, Day: anchor.Day},
			})
		}

		row, err := s.storeDraft(ctx, student.StudentID, periodID, draft, operatorID)
		if err != nil {
			return nil, err
		}
		resp := toDraftResponse(row)
		resp.StudentName = student.Name
		out = append(out, *resp)
	}

	s.logger.Info("주차 자동배정 실행",
		zap.String("period_id", periodID),
		zap.Int("students", len(students)))

	return out, nil
}

func (s *assignmentService) AutoAssignOne(ctx context.Context, periodID, studentID, operatorID string) (*dto.DraftResponse, error) {
	if _, err := s.repo.Period.GetByID(ctx, periodID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPeriodNotFound
		}
		return nil, err
	}
	student, err := s.repo.Student.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	periods, err := s.repo.Period.ListOrdered(ctx)
	if err != nil {
		return nil, err
	}
	slots, err := s.repo.MentorSlot.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	attRows, err := s.repo.Attendance.ListByPeriodStudent(ctx, periodID, studentID)
	if err != nil {
		return nil, err
	}
	records, err := s.repo.Assignment.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	week := make(WeekAttendance, len(attRows))
	for _, row := range attRows {
		week[row.Day] = TimePair{Start: row.StartTime, End: row.EndTime}
	}

	// 개별 배정은 기준 멘토가 없어도 엔진을 실행한다.
	// 엔진이 출결 기준으로 기준 요일을 새로 잡는다.
	var prev *PrevRecord
	if anchor := resolveAnchor(student, periods, historyByPeriod(records), periodID); anchor != nil {
		prev = &PrevRecord{Mentor: anchor.Mentor, Day: anchor.Day}
	}

	draft := AssignWeekly(WeeklyInput{
		Student:      *student,
		Attendance:   week,
		MentorsByDay: buildRoster(slots),
		Prev:         prev,
	})

	row, err := s.storeDraft(ctx, studentID, periodID, draft, operatorID)
	if err != nil {
		return nil, err
	}
	resp := toDraftResponse(row)
	resp.StudentName = student.Name
	return resp, nil
}

// storeDraft 엔진 결과를 draft 행으로 저장한다.
// 배정 불가 결과도 행으로 남겨 "미배정" 상태를 조회 가능하게 한다.
func (s *assignmentService) storeDraft(ctx context.Context, studentID, periodID string, draft WeeklyDraft, operatorID string) (*model.WeeklyMentorDraft, error) {
	row := &model.WeeklyMentorDraft{
		StudentID: studentID,
		PeriodID:  periodID,
		Source:    "auto",
	}
	row.CreatedBy = &operatorID
	row.UpdatedBy = &operatorID

	if draft.Assigned {
		mentor, day, toDay := draft.Mentor, draft.Day, draft.ToDay
		autoRank, dayDiff := draft.AutoRank, draft.DayDiff
		row.Mentor = &mentor
		row.Day = &day
		row.ToDay = &toDay
		row.AutoRank = &autoRank
		row.DayDiff = &dayDiff
	}
	if draft.FromDay != "" {
		fromDay := draft.FromDay
		row.FromDay = &fromDay
	}

	if err := s.repo.Draft.Upsert(ctx, row); err != nil {
		return nil, err
	}
	return row, nil
}

func (s *assignmentService) ListDrafts(ctx context.Context, periodID string) ([]dto.DraftResponse, error) {
	drafts, err := s.repo.Draft.ListByPeriod(ctx, periodID)
	if err != nil {
		return nil, err
	}
	nameByID, err := s.studentNames(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DraftResponse, 0, len(drafts))
	for i := range drafts {
		resp := toDraftResponse(&drafts[i])
		resp.StudentName = nameByID[drafts[i].StudentID]
		out = append(out, *resp)
	}
	return out, nil
}

// ═══════════════════════════════════════════════════════════
// Confirm — draft 를 확정 기록으로 승격
// ═══════════════════════════════════════════════════════════
//
// 멘토가 배정된 draft 만 확정한다. 요일이 비어 있으면 해당
// 멘토의 첫 출근 요일을 채운다. 학생의 최초 멘토는 비어 있을
// 때 딱 한 번만 이 시점에 고정된다. 확정된 draft 는 삭제한다.

func (s *assignmentService) Confirm(ctx context.Context, req *dto.ConfirmAssignRequest, operatorID string) ([]dto.AssignmentResponse, error) {
	drafts, err := s.repo.Draft.ListByPeriod(ctx, req.PeriodID)
	if err != nil {
		return nil, err
	}

	// 지정된 학생만 골라낸다 (비어 있으면 전체)
	if len(req.StudentIDs) > 0 {
		wanted := make(map[string]bool, len(req.StudentIDs))
		for _, id := range req.StudentIDs {
			wanted[id] = true
		}
		filtered := drafts[:0]
		for _, d := range drafts {
			if wanted[d.StudentID] {
				filtered = append(filtered, d)
			}
		}
		drafts = filtered
	}

	slots, err := s.repo.MentorSlot.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	roster := buildRoster(slots)

	out := make([]dto.AssignmentResponse, 0, len(drafts))
	confirmed := 0
	for i := range drafts {
		draft := &drafts[i]
		if draft.Mentor == nil || *draft.Mentor == "" {
			continue
		}

		day := ""
		if draft.Day != nil {
			day = *draft.Day
		}
		if day == "" {
			if workingDays := mentorWorkingDays(*draft.Mentor, roster); len(workingDays) > 0 {
				day = workingDays[0]
			}
		}

		autoRank := 0
		if draft.AutoRank != nil {
			autoRank = *draft.AutoRank
		}

		record := &model.MentorAssignment{
			StudentID: draft.StudentID,
			PeriodID:  req.PeriodID,
			Mentor:    *draft.Mentor,
			Day:       day,
			Attended:  true,
			AutoRank:  &autoRank,
			Source:    draft.Source,
		}
		record.CreatedBy = &operatorID
		record.UpdatedBy = &operatorID

		// 기존 기록의 실제 진행 멘토는 보존한다
		if prev, err := s.repo.Assignment.Get(ctx, draft.StudentID, req.PeriodID); err == nil {
			record.ActualMentor = prev.ActualMentor
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		if err := s.repo.Assignment.Upsert(ctx, record); err != nil {
			return nil, err
		}

		// 최초 멘토 고정 (한 번만)
		student, err := s.repo.Student.GetByID(ctx, draft.StudentID)
		if err != nil {
			return nil, err
		}
		if student.InitialMentor == "" {
			student.InitialMentor = *draft.Mentor
			student.InitialDay = day
			student.InitialPeriodID = req.PeriodID
			student.UpdatedBy = &operatorID
			if err := s.repo.Student.Update(ctx, student); err != nil {
				return nil, err
			}
		}

		if err := s.repo.Draft.Delete(ctx, draft.StudentID, req.PeriodID); err != nil {
			return nil, err
		}

		resp := toAssignmentResponse(record)
		resp.StudentName = student.Name
		out = append(out, *resp)
		confirmed++
	}

	if confirmed == 0 {
		return nil, ErrNoDraftToConfirm
	}

	s.logger.Info("주차 멘토 확정",
		zap.String("period_id", req.PeriodID),
		zap.Int("confirmed", confirmed))

	return out, nil
}

func (s *assignmentService) ManualAssign(ctx context.Context, studentID string, req *dto.ManualAssignRequest, operatorID string) (*dto.AssignmentResponse, error) {
	student, err := s.repo.Student.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	if _, err := s.repo.Period.GetByID(ctx, req.PeriodID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPeriodNotFound
		}
		return nil, err
	}

	record := &model.MentorAssignment{
		StudentID: studentID,
		PeriodID:  req.PeriodID,
		Mentor:    req.Mentor,
		Day:       req.Day,
		Attended:  true,
		Source:    "manual",
	}
	record.CreatedBy = &operatorID
	record.UpdatedBy = &operatorID

	if prev, err := s.repo.Assignment.Get(ctx, studentID, req.PeriodID); err == nil {
		record.ActualMentor = prev.ActualMentor
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := s.repo.Assignment.Upsert(ctx, record); err != nil {
		return nil, err
	}

	resp := toAssignmentResponse(record)
	resp.StudentName = student.Name
	return resp, nil
}

// ═══════════════════════════════════════════════════════════
// ToggleMissed / SetActualMentor / MissedSummary — 누락 관리
// ═══════════════════════════════════════════════════════════

// ToggleMissed 같은 요일을 다시 토글하면 정상 출석으로 복귀하고
// 실제 진행 멘토 기록도 함께 지운다. 아니면 누락+이월로 표시한다.
// 확정 기록이 없으면 draft 의 멘토로 기록을 강제로 만든다.
func (s *assignmentService) ToggleMissed(ctx context.Context, studentID string, req *dto.ToggleMissedRequest, operatorID string) (*dto.AssignmentResponse, error) {
	record, err := s.repo.Assignment.Get(ctx, studentID, req.PeriodID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	baseMentor := ""
	if record != nil {
		baseMentor = record.Mentor
	}
	if baseMentor == "" {
		if draft, err := s.repo.Draft.Get(ctx, studentID, req.PeriodID); err == nil {
			if draft.Mentor != nil {
				baseMentor = *draft.Mentor
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}
	if baseMentor == "" {
		return nil, ErrNoMentorToToggle
	}

	if record == nil {
		record = &model.MentorAssignment{
			StudentID: studentID,
			PeriodID:  req.PeriodID,
			Attended:  true,
			Source:    "auto",
		}
		record.CreatedBy = &operatorID
	}
	record.Mentor = baseMentor
	record.Day = req.Day
	record.UpdatedBy = &operatorID

	if !record.Attended && record.MissedDay == req.Day {
		// 누락 해제: 정상 출석 복귀 + 실제 진행 멘토 제거
		record.Attended = true
		record.MissedDay = ""
		record.MissedCarryOver = false
		record.ActualMentor = ""
	} else {
		record.Attended = false
		record.MissedDay = req.Day
		record.MissedCarryOver = true
	}

	if err := s.repo.Assignment.Upsert(ctx, record); err != nil {
		return nil, err
	}
	return toAssignmentResponse(record), nil
}

// SetActualMentor 누락 주차에 실제로 세션을 진행한 멘토를 기록한다.
// 확정 멘토(mentor)는 건드리지 않으므로 다음 주 연속성 기준은
// 그대로 유지된다.
func (s *assignmentService) SetActualMentor(ctx context.Context, studentID string, req *dto.SetActualMentorRequest, operatorID string) (*dto.AssignmentResponse, error) {
	record, err := s.repo.Assignment.Get(ctx, studentID, req.PeriodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, err
	}

	record.ActualMentor = req.ActualMentor
	record.Attended = true
	record.MissedCarryOver = false
	record.MissedDay = ""
	record.UpdatedBy = &operatorID

	if err := s.repo.Assignment.Update(ctx, record); err != nil {
		return nil, err
	}
	return toAssignmentResponse(record), nil
}

func (s *assignmentService) MissedSummary(ctx context.Context, periodID string) (*dto.MissedSummaryResponse, error) {
	records, err := s.repo.Assignment.ListByPeriod(ctx, periodID)
	if err != nil {
		return nil, err
	}
	nameByID, err := s.studentNames(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.MissedSummaryResponse{
		PeriodID: periodID,
		Missed:   []dto.MissedStudentItem{},
	}
	for _, record := range records {
		if record.Attended && !record.MissedCarryOver {
			continue
		}
		resp.Missed = append(resp.Missed, dto.MissedStudentItem{
			StudentID:   record.StudentID,
			StudentName: nameByID[record.StudentID],
			Mentor:      record.Mentor,
			MissedDay:   record.MissedDay,
			CarryOver:   record.MissedCarryOver,
		})
	}
	return resp, nil
}

func (s *assignmentService) ListHistory(ctx context.Context, studentID string) ([]dto.AssignmentResponse, error) {
	if _, err := s.repo.Student.GetByID(ctx, studentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	records, err := s.repo.Assignment.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AssignmentResponse, 0, len(records))
	for i := range records {
		out = append(out, *toAssignmentResponse(&records[i]))
	}
	return out, nil
}

func (s *assignmentService) ListPeriodHistory(ctx context.Context, periodID string) ([]dto.AssignmentResponse, error) {
	records, err := s.repo.Assignment.ListByPeriod(ctx, periodID)
	if err != nil {
		return nil, err
	}
	nameByID, err := s.studentNames(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AssignmentResponse, 0, len(records))
	for i := range records {
		resp := toAssignmentResponse(&records[i])
		resp.StudentName = nameByID[records[i].StudentID]
		out = append(out, *resp)
	}
	return out, nil
}

func (s *assignmentService) studentNames(ctx context.Context) (map[string]string, error) {
	students, err := s.repo.Student.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	nameByID := make(map[string]string, len(students))
	for _, st := range students {
		nameByID[st.StudentID] = st.Name
	}
	return nameByID, nil
}

func toDraftResponse(row *model.WeeklyMentorDraft) *dto.DraftResponse {
	return &dto.DraftResponse{
		StudentID: row.StudentID,
		PeriodID:  row.PeriodID,
		Mentor:    row.Mentor,
		Day:       row.Day,
		AutoRank:  row.AutoRank,
		FromDay:   row.FromDay,
		ToDay:     row.ToDay,
		DayDiff:   row.DayDiff,
		Source:    row.Source,
	}
}

func toAssignmentResponse(record *model.MentorAssignment) *dto.AssignmentResponse {
	return &dto.AssignmentResponse{
		StudentID:       record.StudentID,
		PeriodID:        record.PeriodID,
		Mentor:          record.Mentor,
		Day:             record.Day,
		Attended:        record.Attended,
		AutoRank:        record.AutoRank,
		MissedDay:       record.MissedDay,
		MissedCarryOver: record.MissedCarryOver,
		ActualMentor:    record.ActualMentor,
		Source:          record.Source,
	}
}
