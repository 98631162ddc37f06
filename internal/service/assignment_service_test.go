package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/drchoshit/new-weekly-plan-maker/internal/dto"
	"github.com/drchoshit/new-weekly-plan-maker/internal/model"
)

// ── 테스트 픽스처 ──

func newAssignmentFixture() (*testRepos, AssignmentService) {
	repos := newTestRepos()
	svc := NewAssignmentService(repos.toRepository(), zap.NewNop())
	return repos, svc
}

// seedPeriod 생성 시각을 주 단위로 벌려 주차 순서를 고정한다
func seedPeriod(repos *testRepos, id string, weekOffset int) {
	base := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	p := &model.Period{PeriodID: id, Name: id}
	p.CreatedAt = base.AddDate(0, 0, weekOffset*7)
	_ = repos.period.Create(context.Background(), p)
}

func seedStudent(repos *testRepos, s *model.Student) *model.Student {
	s.Version = 1
	_ = repos.student.Create(context.Background(), s)
	return s
}

func seedSlot(repos *testRepos, day, name, workTime string) {
	_ = repos.mentorSlot.Create(context.Background(), &model.MentorSlot{
		Day: day, Name: name, WorkTime: workTime,
	})
}

func seedAttendance(repos *testRepos, periodID, studentID, day, start, end string) {
	_ = repos.attendance.Upsert(context.Background(), []model.AttendanceEntry{
		{PeriodID: periodID, StudentID: studentID, Day: day, StartTime: start, EndTime: end},
	})
}

// ── 기준점(anchor) 해석 ──

func TestResolveInitialAnchor_PrefersStudentField(t *testing.T) {
	student := &model.Student{InitialMentor: "김멘토", InitialDay: "수", InitialPeriodID: "2025-W01"}
	anchor := resolveInitialAnchor(student, nil, nil)
	if anchor == nil || anchor.Mentor != "김멘토" || anchor.Day != "수" {
		t.Fatalf("학생 필드의 최초 멘토를 그대로 써야 합니다: %+v", anchor)
	}
}

func TestResolveInitialAnchor_FallsBackToOldestRecord(t *testing.T) {
	student := &model.Student{}
	periods := []model.Period{{PeriodID: "W01"}, {PeriodID: "W02"}, {PeriodID: "W03"}}
	history := map[string]*model.MentorAssignment{
		// W01 은 요일이 비어 있어 기준이 될 수 없다
		"W01": {Mentor: "박멘토", Day: ""},
		"W02": {Mentor: "이멘토", Day: "목"},
		"W03": {Mentor: "최멘토", Day: "금"},
	}
	anchor := resolveInitialAnchor(student, periods, history)
	if anchor == nil || anchor.Mentor != "이멘토" || anchor.PeriodID != "W02" {
		t.Fatalf("멘토+요일이 모두 있는 가장 오래된 기록이어야 합니다: %+v", anchor)
	}
}

func TestResolveLatestAnchor_WalksBackward(t *testing.T) {
	student := &model.Student{}
	periods := []model.Period{{PeriodID: "W01"}, {PeriodID: "W02"}, {PeriodID: "W03"}}
	history := map[string]*model.MentorAssignment{
		"W01": {Mentor: "박멘토", Day: "화"},
		"W02": {Mentor: "이멘토", Day: "목"},
	}
	anchor := resolveLatestAnchor(student, periods, history, "W03")
	if anchor == nil || anchor.Mentor != "이멘토" {
		t.Fatalf("직전 주차의 멘토를 먼저 찾아야 합니다: %+v", anchor)
	}

	anchor = resolveLatestAnchor(student, periods, history, "W02")
	if anchor == nil || anchor.Mentor != "박멘토" {
		t.Fatalf("선택 주차 이전만 역방향 탐색해야 합니다: %+v", anchor)
	}
}

func TestResolveLatestAnchor_FallsBackToInitial(t *testing.T) {
	student := &model.Student{InitialMentor: "김멘토", InitialDay: "수"}
	periods := []model.Period{{PeriodID: "W01"}, {PeriodID: "W02"}}
	anchor := resolveLatestAnchor(student, periods, nil, "W01")
	if anchor == nil || anchor.Mentor != "김멘토" {
		t.Fatalf("과거 기록이 없으면 최초 멘토로 대체해야 합니다: %+v", anchor)
	}
}

func TestResolveAnchor_AssignBaseSelectsSource(t *testing.T) {
	periods := []model.Period{{PeriodID: "W01"}, {PeriodID: "W02"}}
	history := map[string]*model.MentorAssignment{
		"W01": {Mentor: "이멘토", Day: "목"},
	}
	student := &model.Student{
		InitialMentor: "김멘토", InitialDay: "수",
		AssignBase: "initial",
	}
	anchor := resolveAnchor(student, periods, history, "W02")
	if anchor == nil || anchor.Mentor != "김멘토" {
		t.Fatalf("initial 기준이면 최초 멘토여야 합니다: %+v", anchor)
	}

	student.AssignBase = ""
	anchor = resolveAnchor(student, periods, history, "W02")
	if anchor == nil || anchor.Mentor != "이멘토" {
		t.Fatalf("기본 기준이면 최근 멘토여야 합니다: %+v", anchor)
	}
}

// ── 자동배정 (주차 전체 / 개별) ──

func TestAutoAssignPeriod_StoresDraftPerStudent(t *testing.T) {
	repos, svc := newAssignmentFixture()
	ctx := context.Background()

	seedPeriod(repos, "W01", 0)
	seedPeriod(repos, "W02", 1)
	seedSlot(repos, "수", "김멘토", "14:00~18:00")

	// 기준 멘토가 있는 재학생
	continuing := seedStudent(repos, &model.Student{
		Name: "가재학", InitialMentor: "김멘토", InitialDay: "수",
	})
	seedAttendance(repos, "W02", continuing.StudentID, "수", "14:00", "17:00")

	// 기준 멘토가 전혀 없는 학생: 엔진을 돌리지 않고 빈 draft
	fresh := seedStudent(repos, &model.Student{Name: "나신입", IsNewStudent: true})
	seedAttendance(repos, "W02", fresh.StudentID, "수", "14:00", "17:00")

	drafts, err := svc.AutoAssignPeriod(ctx, "W02", "op-1")
	if err != nil {
		t.Fatalf("AutoAssignPeriod 실패: %v", err)
	}
	if len(drafts) != 2 {
		t.Fatalf("학생 수만큼 draft 가 나와야 합니다: %d", len(drafts))
	}

	row, err := repos.draft.Get(ctx, continuing.StudentID, "W02")
	if err != nil {
		t.Fatalf("재학생 draft 조회 실패: %v", err)
	}
	if row.Mentor == nil || *row.Mentor != "김멘토" {
		t.Fatalf("기준 멘토가 유지되어야 합니다: %+v", row)
	}

	empty, err := repos.draft.Get(ctx, fresh.StudentID, "W02")
	if err != nil {
		t.Fatalf("신입생도 빈 draft 행이 남아야 합니다: %v", err)
	}
	if empty.Mentor != nil {
		t.Fatalf("기준 멘토 없는 학생의 draft 는 멘토가 비어야 합니다: %v", *empty.Mentor)
	}
}

func TestAutoAssignPeriod_PeriodNotFound(t *testing.T) {
	_, svc := newAssignmentFixture()
	if _, err := svc.AutoAssignPeriod(context.Background(), "없음", "op-1"); !errors.Is(err, ErrPeriodNotFound) {
		t.Fatalf("존재하지 않는 주차면 ErrPeriodNotFound, got %v", err)
	}
}

func TestAutoAssignOne_RunsEngineWithoutAnchor(t *testing.T) {
	repos, svc := newAssignmentFixture()
	ctx := context.Background()

	seedPeriod(repos, "W01", 0)
	seedSlot(repos, "수", "김멘토", "14:00~18:00")
	student := seedStudent(repos, &model.Student{Name: "다학생"})
	seedAttendance(repos, "W01", student.StudentID, "수", "14:00", "17:00")

	// 기준 멘토가 없어도 출결 기준으로 엔진이 돈다
	draft, err := svc.AutoAssignOne(ctx, "W01", student.StudentID, "op-1")
	if err != nil {
		t.Fatalf("AutoAssignOne 실패: %v", err)
	}
	if draft.Mentor == nil || *draft.Mentor != "김멘토" {
		t.Fatalf("출결 기반 점수 배정이 되어야 합니다: %+v", draft)
	}
	if draft.AutoRank == nil || *draft.AutoRank != 2 {
		t.Fatalf("일반 점수 탐색 결과는 autoRank=2 여야 합니다: %+v", draft.AutoRank)
	}
}

func TestAutoAssignOne_StudentNotFound(t *testing.T) {
	repos, svc := newAssignmentFixture()
	seedPeriod(repos, "W01", 0)
	if _, err := svc.AutoAssignOne(context.Background(), "W01", "없는학생", "op-1"); !errors.Is(err, ErrStudentNotFound) {
		t.Fatalf("존재하지 않는 학생이면 ErrStudentNotFound, got %v", err)
	}
}

// ── 확정 ──

func TestConfirm_PromotesDraftAndFreezesInitialMentor(t *testing.T) {
	repos, svc := newAssignmentFixture()
	ctx := context.Background()

	seedPeriod(repos, "W01", 0)
	seedSlot(repos, "화", "김멘토", "10:00~13:00")
	seedSlot(repos, "수", "김멘토", "14:00~18:00")
	student := seedStudent(repos, &model.Student{Name: "라학생"})

	// 요일이 비어 있는 draft: 확정 시 멘토의 첫 출근 요일로 채운다
	mentor := "김멘토"
	_ = repos.draft.Upsert(ctx, &model.WeeklyMentorDraft{
		StudentID: student.StudentID, PeriodID: "W01", Mentor: &mentor, Source: "auto",
	})

	out, err := svc.Confirm(ctx, &dto.ConfirmAssignRequest{PeriodID: "W01"}, "op-1")
	if err != nil {
		t.Fatalf("Confirm 실패: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("확정 1건이어야 합니다: %d", len(out))
	}
	if out[0].Day != "화" {
		t.Fatalf("요일 공백은 멘토의 첫 출근 요일(화)로 채워야 합니다: %s", out[0].Day)
	}
	if out[0].AutoRank == nil || *out[0].AutoRank != 0 {
		t.Fatalf("autoRank 공백은 0 으로 확정해야 합니다: %+v", out[0].AutoRank)
	}

	updated, _ := repos.student.GetByID(ctx, student.StudentID)
	if updated.InitialMentor != "김멘토" || updated.InitialDay != "화" || updated.InitialPeriodID != "W01" {
		t.Fatalf("첫 확정 시 최초 멘토가 고정되어야 합니다: %+v", updated)
	}

	if _, err := repos.draft.Get(ctx, student.StudentID, "W01"); err == nil {
		t.Fatal("확정된 draft 는 삭제되어야 합니다")
	}
}

func TestConfirm_KeepsExistingInitialMentorAndActualMentor(t *testing.T) {
	repos, svc := newAssignmentFixture()
	ctx := context.Background()

	seedPeriod(repos, "W01", 0)
	seedSlot(repos, "수", "이멘토", "14:00~18:00")
	student := seedStudent(repos, &model.Student{
		Name: "마학생", InitialMentor: "김멘토", InitialDay: "수", InitialPeriodID: "W00",
	})

	// 기존 확정 기록의 실제 진행 멘토는 재확정 후에도 남아야 한다
	_ = repos.assignment.Upsert(ctx, &model.MentorAssignment{
		StudentID: student.StudentID, PeriodID: "W01",
		Mentor: "김멘토", Day: "수", Attended: true, ActualMentor: "박대타",
	})

	mentor, day := "이멘토", "수"
	rank := 1
	_ = repos.draft.Upsert(ctx, &model.WeeklyMentorDraft{
		StudentID: student.StudentID, PeriodID: "W01",
		Mentor: &mentor, Day: &day, AutoRank: &rank, Source: "auto",
	})

	out, err := svc.Confirm(ctx, &dto.ConfirmAssignRequest{PeriodID: "W01"}, "op-1")
	if err != nil {
		t.Fatalf("Confirm 실패: %v", err)
	}
	if out[0].ActualMentor != "박대타" {
		t.Fatalf("실제 진행 멘토는 보존되어야 합니다: %q", out[0].ActualMentor)
	}

	updated, _ := repos.student.GetByID(ctx, student.StudentID)
	if updated.InitialMentor != "김멘토" || updated.InitialPeriodID != "W00" {
		t.Fatalf("이미 고정된 최초 멘토는 덮어쓰면 안 됩니다: %+v", updated)
	}
}

func TestConfirm_NoEligibleDraft(t *testing.T) {
	repos, svc := newAssignmentFixture()
	ctx := context.Background()

	seedPeriod(repos, "W01", 0)
	student := seedStudent(repos, &model.Student{Name: "바학생"})

	// 멘토 없는 draft 는 확정할 수 없다
	_ = repos.draft.Upsert(ctx, &model.WeeklyMentorDraft{
		StudentID: student.StudentID, PeriodID: "W01", Source: "auto",
	})

	if _, err := svc.Confirm(ctx, &dto.ConfirmAssignRequest{PeriodID: "W01"}, "op-1"); !errors.Is(err, ErrNoDraftToConfirm) {
		t.Fatalf("확정 가능한 draft 가 없으면 ErrNoDraftToConfirm, got %v", err)
	}
}

func TestManualAssign_WritesManualRecord(t *testing.T) {
	repos, svc := newAssignmentFixture()
	ctx := context.Background()

	seedPeriod(repos, "W01", 0)
	student := seedStudent(repos, &model.Student{Name: "사학생"})

	out, err := svc.ManualAssign(ctx, student.StudentID, &dto.ManualAssignRequest{
		PeriodID: "W01", Mentor: "김멘토", Day: "수",
	}, "op-1")
	if err != nil {
		t.Fatalf("ManualAssign 실패: %v", err)
	}
	if out.Source != "manual" || out.Mentor != "김멘토" || !out.Attended {
		t.Fatalf("수동 기록이 기대와 다릅니다: %+v", out)
	}
}

// ── 누락 / 실제 진행 멘토 ──

func TestToggleMissed_MarkAndRestore(t *testing.T) {
	repos, svc := newAssignmentFixture()
	ctx := context.Background()

	seedPeriod(repos, "W01", 0)
	student := seedStudent(repos, &model.Student{Name: "아학생"})
	_ = repos.assignment.Upsert(ctx, &model.MentorAssignment{
		StudentID: student.StudentID, PeriodID: "W01",
		Mentor: "김멘토", Day: "수", Attended: true,
	})

	out, err := svc.ToggleMissed(ctx, student.StudentID, &dto.ToggleMissedRequest{PeriodID: "W01", Day: "수"}, "op-1")
	if err != nil {
		t.Fatalf("ToggleMissed 실패: %v", err)
	}
	if out.Attended || out.MissedDay != "수" || !out.MissedCarryOver {
		t.Fatalf("누락 표시가 기대와 다릅니다: %+v", out)
	}

	// 누락 주차에 실제 진행 멘토가 기록된 상태에서 복귀하면 함께 지워진다
	record, _ := repos.assignment.Get(ctx, student.StudentID, "W01")
	record.ActualMentor = "박대타"
	_ = repos.assignment.Update(ctx, record)

	out, err = svc.ToggleMissed(ctx, student.StudentID, &dto.ToggleMissedRequest{PeriodID: "W01", Day: "수"}, "op-1")
	if err != nil {
		t.Fatalf("ToggleMissed 복귀 실패: %v", err)
	}
	if !out.Attended || out.MissedDay != "" || out.MissedCarryOver {
		t.Fatalf("같은 요일 재토글은 정상 출석 복귀여야 합니다: %+v", out)
	}
	if out.ActualMentor != "" {
		t.Fatalf("복귀 시 실제 진행 멘토도 지워야 합니다: %q", out.ActualMentor)
	}
}

func TestToggleMissed_FallsBackToDraftMentor(t *testing.T) {
	repos, svc := newAssignmentFixture()
	ctx := context.Background()

	seedPeriod(repos, "W01", 0)
	student := seedStudent(repos, &model.Student{Name: "자학생"})
	mentor := "김멘토"
	_ = repos.draft.Upsert(ctx, &model.WeeklyMentorDraft{
		StudentID: student.StudentID, PeriodID: "W01", Mentor: &mentor, Source: "auto",
	})

	out, err := svc.ToggleMissed(ctx, student.StudentID, &dto.ToggleMissedRequest{PeriodID: "W01", Day: "금"}, "op-1")
	if err != nil {
		t.Fatalf("ToggleMissed 실패: %v", err)
	}
	if out.Mentor != "김멘토" || out.MissedDay != "금" {
		t.Fatalf("확정 기록이 없으면 draft 멘토로 기록을 만들어야 합니다: %+v", out)
	}
}

func TestToggleMissed_NoMentorAnywhere(t *testing.T) {
	repos, svc := newAssignmentFixture()
	seedPeriod(repos, "W01", 0)
	student := seedStudent(repos, &model.Student{Name: "차학생"})

	if _, err := svc.ToggleMissed(context.Background(), student.StudentID,
		&dto.ToggleMissedRequest{PeriodID: "W01", Day: "수"}, "op-1"); !errors.Is(err, ErrNoMentorToToggle) {
		t.Fatalf("기록도 draft 도 없으면 ErrNoMentorToToggle, got %v", err)
	}
}

func TestSetActualMentor_ClearsMissedState(t *testing.T) {
	repos, svc := newAssignmentFixture()
	ctx := context.Background()

	seedPeriod(repos, "W01", 0)
	student := seedStudent(repos, &model.Student{Name: "카학생"})
	_ = repos.assignment.Upsert(ctx, &model.MentorAssignment{
		StudentID: student.StudentID, PeriodID: "W01",
		Mentor: "김멘토", Day: "수",
		Attended: false, MissedDay: "수", MissedCarryOver: true,
	})

	out, err := svc.SetActualMentor(ctx, student.StudentID, &dto.SetActualMentorRequest{
		PeriodID: "W01", ActualMentor: "박대타",
	}, "op-1")
	if err != nil {
		t.Fatalf("SetActualMentor 실패: %v", err)
	}
	if out.ActualMentor != "박대타" || !out.Attended || out.MissedDay != "" || out.MissedCarryOver {
		t.Fatalf("실제 진행 기록이 누락 상태를 해소해야 합니다: %+v", out)
	}
	if out.Mentor != "김멘토" {
		t.Fatalf("확정 멘토는 바뀌면 안 됩니다: %q", out.Mentor)
	}
}

func TestSetActualMentor_RequiresRecord(t *testing.T) {
	repos, svc := newAssignmentFixture()
	seedPeriod(repos, "W01", 0)
	student := seedStudent(repos, &model.Student{Name: "타학생"})

	if _, err := svc.SetActualMentor(context.Background(), student.StudentID,
		&dto.SetActualMentorRequest{PeriodID: "W01", ActualMentor: "박대타"}, "op-1"); !errors.Is(err, ErrAssignmentNotFound) {
		t.Fatalf("확정 기록이 없으면 ErrAssignmentNotFound, got %v", err)
	}
}

func TestMissedSummary_ListsOnlyMissedOrCarryOver(t *testing.T) {
	repos, svc := newAssignmentFixture()
	ctx := context.Background()

	seedPeriod(repos, "W01", 0)
	missed := seedStudent(repos, &model.Student{Name: "가누락"})
	normal := seedStudent(repos, &model.Student{Name: "나정상"})

	_ = repos.assignment.Upsert(ctx, &model.MentorAssignment{
		StudentID: missed.StudentID, PeriodID: "W01",
		Mentor: "김멘토", Day: "수",
		Attended: false, MissedDay: "수", MissedCarryOver: true,
	})
	_ = repos.assignment.Upsert(ctx, &model.MentorAssignment{
		StudentID: normal.StudentID, PeriodID: "W01",
		Mentor: "이멘토", Day: "목", Attended: true,
	})

	summary, err := svc.MissedSummary(ctx, "W01")
	if err != nil {
		t.Fatalf("MissedSummary 실패: %v", err)
	}
	if len(summary.Missed) != 1 {
		t.Fatalf("누락 학생 1명이어야 합니다: %d", len(summary.Missed))
	}
	item := summary.Missed[0]
	if item.StudentName != "가누락" || item.MissedDay != "수" || !item.CarryOver {
		t.Fatalf("누락 항목이 기대와 다릅니다: %+v", item)
	}
}

// ── 신규생 추천 ──

func TestRankNewStudents_LabelsUnassignable(t *testing.T) {
	repos, svc := newAssignmentFixture()
	ctx := context.Background()

	seedPeriod(repos, "W01", 0)
	seedSlot(repos, "수", "김멘토", "14:00~18:00")

	rankable := seedStudent(repos, &model.Student{Name: "가신입", IsNewStudent: true})
	seedAttendance(repos, "W01", rankable.StudentID, "수", "14:00", "17:00")

	// 출결이 전혀 없는 신규생은 후보가 없다
	blocked := seedStudent(repos, &model.Student{Name: "나신입", IsNewStudent: true})

	out, err := svc.RankNewStudents(ctx, &dto.RankMentorsRequest{PeriodID: "W01"})
	if err != nil {
		t.Fatalf("RankNewStudents 실패: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("신규생 2명의 결과가 나와야 합니다: %d", len(out))
	}

	byID := make(map[string]dto.RankResultResponse, len(out))
	for _, r := range out {
		byID[r.StudentID] = r
	}
	if byID[rankable.StudentID].First != "김멘토" {
		t.Fatalf("시간이 겹치는 멘토가 1순위여야 합니다: %+v", byID[rankable.StudentID])
	}
	if byID[blocked.StudentID].First != "배정불가" {
		t.Fatalf("후보가 없으면 배정불가 표기여야 합니다: %+v", byID[blocked.StudentID])
	}
}

func TestRankNewStudents_PeriodNotFound(t *testing.T) {
	_, svc := newAssignmentFixture()
	if _, err := svc.RankNewStudents(context.Background(), &dto.RankMentorsRequest{PeriodID: "없음"}); !errors.Is(err, ErrPeriodNotFound) {
		t.Fatalf("존재하지 않는 주차면 ErrPeriodNotFound, got %v", err)
	}
}

// ── 기록 조회 ──

func TestListHistory_ReturnsStudentRecords(t *testing.T) {
	repos, svc := newAssignmentFixture()
	ctx := context.Background()

	seedPeriod(repos, "W01", 0)
	seedPeriod(repos, "W02", 1)
	student := seedStudent(repos, &model.Student{Name: "파학생"})

	_ = repos.assignment.Upsert(ctx, &model.MentorAssignment{
		StudentID: student.StudentID, PeriodID: "W01", Mentor: "김멘토", Day: "수", Attended: true,
	})
	_ = repos.assignment.Upsert(ctx, &model.MentorAssignment{
		StudentID: student.StudentID, PeriodID: "W02", Mentor: "김멘토", Day: "수", Attended: true,
	})

	history, err := svc.ListHistory(ctx, student.StudentID)
	if err != nil {
		t.Fatalf("ListHistory 실패: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("주차별 기록 2건이어야 합니다: %d", len(history))
	}

	if _, err := svc.ListHistory(ctx, "없는학생"); !errors.Is(err, ErrStudentNotFound) {
		t.Fatalf("존재하지 않는 학생이면 ErrStudentNotFound, got %v", err)
	}
}
