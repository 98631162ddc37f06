package model

// Student 학생 테이블 — students
//
// 과목·성향·기피 멘토 등 배정 엔진이 참조하는 속성을 모두 담는다.
// AssignBase 는 주차 자동배정의 기준점 선택 방식("", "latest", "initial", "fixed")이다.
type Student struct {
	StudentID       string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"student_id"`
	Name            string `gorm:"type:varchar(100);not null"                     json:"name"`
	BirthYear       int    `gorm:"not null;default:0"                             json:"birth_year"`
	Personality     string `gorm:"type:varchar(20);not null;default:''"           json:"personality"`
	Korean          string `gorm:"type:varchar(50);not null;default:''"           json:"korean"`
	Math            string `gorm:"type:varchar(50);not null;default:''"           json:"math"`
	Explore1        string `gorm:"type:varchar(50);not null;default:''"           json:"explore1"`
	Explore2        string `gorm:"type:varchar(50);not null;default:''"           json:"explore2"`
	FixedMentor     string `gorm:"type:varchar(100);not null;default:''"          json:"fixed_mentor"`
	BannedMentor1   string `gorm:"type:varchar(100);not null;default:''"          json:"banned_mentor1"`
	BannedMentor2   string `gorm:"type:varchar(100);not null;default:''"          json:"banned_mentor2"`
	AssignBase      string `gorm:"type:varchar(20);not null;default:''"           json:"assign_base"`
	IsNewStudent    bool   `gorm:"not null;default:false"                         json:"is_new_student"`
	InitialMentor   string `gorm:"type:varchar(100);not null;default:''"          json:"initial_mentor"`
	InitialDay      string `gorm:"type:varchar(3);not null;default:''"            json:"initial_day"`
	InitialPeriodID string `gorm:"type:varchar(50);not null;default:''"           json:"initial_period_id"`
	VersionedModel
}

// TableName 테이블명 지정
func (Student) TableName() string { return "students" }
