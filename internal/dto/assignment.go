package dto

// ── 배정 모듈 DTO ──

// AutoAssignRequest 주차 자동배정 실행 요청
type AutoAssignRequest struct {
	PeriodID string `json:"period_id" binding:"required"`
}

// ConfirmAssignRequest 자동배정 결과 확정 요청
//
// StudentIDs 가 비어 있으면 해당 주차의 모든 draft 를 확정한다.
type ConfirmAssignRequest struct {
	PeriodID   string   `json:"period_id" binding:"required"`
	StudentIDs []string `json:"student_ids"`
}

// ManualAssignRequest 수동 배정(확정 기록 직접 입력) 요청
type ManualAssignRequest struct {
	PeriodID string `json:"period_id" binding:"required"`
	Mentor   string `json:"mentor"   binding:"required"`
	Day      string `json:"day"      binding:"required,oneof=월 화 수 목 금 토"`
}

// ToggleMissedRequest 멘토링 누락 토글 요청
type ToggleMissedRequest struct {
	PeriodID string `json:"period_id" binding:"required"`
	Day      string `json:"day"      binding:"required,oneof=월 화 수 목 금 토"`
}

// SetActualMentorRequest 실제 진행 멘토 기록 요청
type SetActualMentorRequest struct {
	PeriodID     string `json:"period_id"     binding:"required"`
	ActualMentor string `json:"actual_mentor" binding:"required"`
}

// RankMentorsRequest 신규생 멘토 추천 랭킹 요청
//
// StudentIDs 가 비어 있으면 신규생 전원을 대상으로 한다.
type RankMentorsRequest struct {
	PeriodID   string   `json:"period_id" binding:"required"`
	StudentIDs []string `json:"student_ids"`
}

// ── 응답 ──

// DraftResponse 자동배정 임시 결과 응답
type DraftResponse struct {
	StudentID   string  `json:"student_id"`
	StudentName string  `json:"student_name,omitempty"`
	PeriodID    string  `json:"period_id"`
	Mentor      *string `json:"mentor"`
	Day         *string `json:"day"`
	AutoRank    *int    `json:"auto_rank"`
	FromDay     *string `json:"from_day"`
	ToDay       *string `json:"to_day"`
	DayDiff     *int    `json:"day_diff"`
	Source      string  `json:"source"`
}

// AssignmentResponse 확정 기록 응답
type AssignmentResponse struct {
	StudentID       string `json:"student_id"`
	StudentName     string `json:"student_name,omitempty"`
	PeriodID        string `json:"period_id"`
	Mentor          string `json:"mentor"`
	Day             string `json:"day"`
	Attended        bool   `json:"attended"`
	AutoRank        *int   `json:"auto_rank"`
	MissedDay       string `json:"missed_day"`
	MissedCarryOver bool   `json:"missed_carry_over"`
	ActualMentor    string `json:"actual_mentor"`
	Source          string `json:"source"`
}

// RankReasons 추천 순위별 사유
type RankReasons struct {
	First  string `json:"first"`
	Second string `json:"second"`
	Third  string `json:"third"`
}

// RankResultResponse 신규생 멘토 추천 결과 응답
type RankResultResponse struct {
	StudentID   string      `json:"student_id"`
	StudentName string      `json:"student_name"`
	First       string      `json:"first"`
	Second      string      `json:"second"`
	Third       string      `json:"third"`
	Reasons     RankReasons `json:"reasons"`
}

// MissedStudentItem 누락/이월 학생 항목
type MissedStudentItem struct {
	StudentID   string `json:"student_id"`
	StudentName string `json:"student_name"`
	Mentor      string `json:"mentor"`
	MissedDay   string `json:"missed_day"`
	CarryOver   bool   `json:"carry_over"`
}

// MissedSummaryResponse 주차별 누락/이월 요약 응답
type MissedSummaryResponse struct {
	PeriodID string              `json:"period_id"`
	Missed   []MissedStudentItem `json:"missed"`
}
