package dto

// ── 출결 모듈 DTO ──

// AttendanceEntryInput 출결 한 건 입력
//
// Time 은 유연한 원문 값을 받는다:
//   - "14:00~18:00" / "14:00-18:00" 문자열
//   - ["14:00", "18:00"] 배열
//   - "14:00" 단일 시각
//   - null / 빈 값 (미등원)
//
// Time 이 비어 있으면 StartTime/EndTime 필드를 사용한다.
type AttendanceEntryInput struct {
	Day       string      `json:"day" binding:"required,oneof=월 화 수 목 금 토"`
	Time      interface{} `json:"time"`
	StartTime string      `json:"start_time"`
	EndTime   string      `json:"end_time"`
}

// SaveAttendanceRequest 주차별 학생 출결 일괄 저장 요청
type SaveAttendanceRequest struct {
	Entries []AttendanceEntryInput `json:"entries" binding:"required,dive"`
}

// AttendanceEntryResponse 출결 응답
type AttendanceEntryResponse struct {
	Day       string `json:"day"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// StudentAttendanceResponse 학생별 정규화된 주간 출결 응답
type StudentAttendanceResponse struct {
	StudentID string                    `json:"student_id"`
	PeriodID  string                    `json:"period_id"`
	Entries   []AttendanceEntryResponse `json:"entries"`
}
