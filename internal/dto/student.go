package dto

// ── 학생 모듈 DTO ──

// CreateStudentRequest 학생 등록 요청
type CreateStudentRequest struct {
	Name          string `json:"name" binding:"required,min=1,max=100"`
	BirthYear     int    `json:"birth_year"`
	Personality   string `json:"personality"`
	Korean        string `json:"korean"`
	Math          string `json:"math"`
	Explore1      string `json:"explore1"`
	Explore2      string `json:"explore2"`
	FixedMentor   string `json:"fixed_mentor"`
	BannedMentor1 string `json:"banned_mentor1"`
	BannedMentor2 string `json:"banned_mentor2"`
	AssignBase    string `json:"assign_base" binding:"omitempty,oneof=latest initial fixed"`
	IsNewStudent  bool   `json:"is_new_student"`
}

// UpdateStudentRequest 학생 수정 요청 (부분 수정, 낙관적 잠금)
type UpdateStudentRequest struct {
	Name          *string `json:"name" binding:"omitempty,min=1,max=100"`
	BirthYear     *int    `json:"birth_year"`
	Personality   *string `json:"personality"`
	Korean        *string `json:"korean"`
	Math          *string `json:"math"`
	Explore1      *string `json:"explore1"`
	Explore2      *string `json:"explore2"`
	FixedMentor   *string `json:"fixed_mentor"`
	BannedMentor1 *string `json:"banned_mentor1"`
	BannedMentor2 *string `json:"banned_mentor2"`
	AssignBase    *string `json:"assign_base" binding:"omitempty,oneof='' latest initial fixed"`
	IsNewStudent  *bool   `json:"is_new_student"`
	Version       int     `json:"version" binding:"required,min=1"`
}

// StudentListRequest 학생 목록 조회 파라미터
type StudentListRequest struct {
	Keyword string `form:"keyword"`
	PaginationRequest
}

// StudentResponse 학생 응답
type StudentResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	BirthYear       int    `json:"birth_year"`
	Personality     string `json:"personality"`
	Korean          string `json:"korean"`
	Math            string `json:"math"`
	Explore1        string `json:"explore1"`
	Explore2        string `json:"explore2"`
	FixedMentor     string `json:"fixed_mentor"`
	BannedMentor1   string `json:"banned_mentor1"`
	BannedMentor2   string `json:"banned_mentor2"`
	AssignBase      string `json:"assign_base"`
	IsNewStudent    bool   `json:"is_new_student"`
	InitialMentor   string `json:"initial_mentor"`
	InitialDay      string `json:"initial_day"`
	InitialPeriodID string `json:"initial_period_id"`
	Version         int    `json:"version"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}
