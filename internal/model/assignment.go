package model

// MentorAssignment 주차별 확정 멘토링 기록 테이블 — mentor_assignments
//
// 학생 × 주차 조합당 한 행. AutoRank 는 자동배정 단계
// (0=고정 유지, 1=멘토 유지/고정 override, 2=점수 기반)이며
// 수동 입력 기록은 NULL 로 남는다.
type MentorAssignment struct {
	AssignmentID    string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"       json:"assignment_id"`
	StudentID       string `gorm:"type:uuid;not null;uniqueIndex:uq_assignment"         json:"student_id"`
	PeriodID        string `gorm:"type:varchar(50);not null;uniqueIndex:uq_assignment"  json:"period_id"`
	Mentor          string `gorm:"type:varchar(100);not null;default:''"                json:"mentor"`
	Day             string `gorm:"type:varchar(3);not null;default:''"                  json:"day"`
	Attended        bool   `gorm:"not null;default:true"                                json:"attended"`
	AutoRank        *int   `gorm:""                                                     json:"auto_rank"`
	MissedDay       string `gorm:"type:varchar(3);not null;default:''"                  json:"missed_day"`
	MissedCarryOver bool   `gorm:"not null;default:false"                               json:"missed_carry_over"`
	ActualMentor    string `gorm:"type:varchar(100);not null;default:''"                json:"actual_mentor"`
	Source          string `gorm:"type:varchar(20);not null;default:'auto'"             json:"source"`
	BaseModel
}

// TableName 테이블명 지정
func (MentorAssignment) TableName() string { return "mentor_assignments" }

// WeeklyMentorDraft 자동배정 임시 결과 테이블 — weekly_mentor_drafts
//
// 확정 전 미리보기 상태. 배정 불가인 경우에도 행은 남기되
// Mentor/Day/AutoRank 가 NULL 이 된다.
type WeeklyMentorDraft struct {
	DraftID   string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"  json:"draft_id"`
	StudentID string  `gorm:"type:uuid;not null;uniqueIndex:uq_draft"         json:"student_id"`
	PeriodID  string  `gorm:"type:varchar(50);not null;uniqueIndex:uq_draft"  json:"period_id"`
	Mentor    *string `gorm:"type:varchar(100)"                               json:"mentor"`
	Day       *string `gorm:"type:varchar(3)"                                 json:"day"`
	AutoRank  *int    `gorm:""                                                json:"auto_rank"`
	FromDay   *string `gorm:"type:varchar(3)"                                 json:"from_day"`
	ToDay     *string `gorm:"type:varchar(3)"                                 json:"to_day"`
	DayDiff   *int    `gorm:""                                                json:"day_diff"`
	Source    string  `gorm:"type:varchar(20);not null;default:'auto'"        json:"source"`
	BaseModel
}

// TableName 테이블명 지정
func (WeeklyMentorDraft) TableName() string { return "weekly_mentor_drafts" }
