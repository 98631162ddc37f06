package model

// MentorSlot 멘토 근무 슬롯 테이블 — mentor_slots
//
// 같은 멘토가 여러 요일에 근무하면 요일마다 한 행씩 존재한다.
// WorkTime 은 "14:00~18:00" 또는 "14:00~18:00, 19:00~21:00" 형식의 원문 문자열이다.
type MentorSlot struct {
	MentorSlotID  string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"mentor_slot_id"`
	Day           string `gorm:"type:varchar(3);not null;index"                 json:"day"`
	Name          string `gorm:"type:varchar(100);not null"                     json:"name"`
	WorkTime      string `gorm:"type:varchar(200);not null;default:''"          json:"work_time"`
	BirthYear     int    `gorm:"not null;default:0"                             json:"birth_year"`
	Personality   string `gorm:"type:varchar(20);not null;default:''"           json:"personality"`
	KoreanSubject string `gorm:"type:varchar(50);not null;default:''"           json:"korean_subject"`
	MathSubject   string `gorm:"type:varchar(50);not null;default:''"           json:"math_subject"`
	Explore1      string `gorm:"type:varchar(50);not null;default:''"           json:"explore1"`
	Explore2      string `gorm:"type:varchar(50);not null;default:''"           json:"explore2"`
	VersionedModel
}

// TableName 테이블명 지정
func (MentorSlot) TableName() string { return "mentor_slots" }
