package model

// AttendanceEntry 출결 테이블 — attendance_entries
//
// 주차 × 학생 × 요일 조합당 한 행. StartTime/EndTime 은 "HH:MM" 문자열이며
// 빈 문자열은 해당 요일 미등원을 뜻한다.
type AttendanceEntry struct {
	AttendanceID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"          json:"attendance_id"`
	PeriodID     string `gorm:"type:varchar(50);not null;uniqueIndex:uq_attendance"     json:"period_id"`
	StudentID    string `gorm:"type:uuid;not null;uniqueIndex:uq_attendance"            json:"student_id"`
	Day          string `gorm:"type:varchar(3);not null;uniqueIndex:uq_attendance"      json:"day"`
	StartTime    string `gorm:"type:varchar(5);not null;default:''"                     json:"start_time"`
	EndTime      string `gorm:"type:varchar(5);not null;default:''"                     json:"end_time"`
	BaseModel
}

// TableName 테이블명 지정
func (AttendanceEntry) TableName() string { return "attendance_entries" }
