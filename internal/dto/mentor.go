package dto

// ── 멘토 모듈 DTO ──

// CreateMentorSlotRequest 멘토 근무 슬롯 등록 요청
type CreateMentorSlotRequest struct {
	Day           string `json:"day"  binding:"required,oneof=월 화 수 목 금 토"`
	Name          string `json:"name" binding:"required,min=1,max=100"`
	WorkTime      string `json:"work_time"`
	BirthYear     int    `json:"birth_year"`
	Personality   string `json:"personality"`
	KoreanSubject string `json:"korean_subject"`
	MathSubject   string `json:"math_subject"`
	Explore1      string `json:"explore1"`
	Explore2      string `json:"explore2"`
}

// UpdateMentorSlotRequest 멘토 근무 슬롯 수정 요청 (낙관적 잠금)
type UpdateMentorSlotRequest struct {
	Day           *string `json:"day" binding:"omitempty,oneof=월 화 수 목 금 토"`
	Name          *string `json:"name" binding:"omitempty,min=1,max=100"`
	WorkTime      *string `json:"work_time"`
	BirthYear     *int    `json:"birth_year"`
	Personality   *string `json:"personality"`
	KoreanSubject *string `json:"korean_subject"`
	MathSubject   *string `json:"math_subject"`
	Explore1      *string `json:"explore1"`
	Explore2      *string `json:"explore2"`
	Version       int     `json:"version" binding:"required,min=1"`
}

// MentorSlotListRequest 멘토 슬롯 목록 조회 파라미터
type MentorSlotListRequest struct {
	Day     string `form:"day" binding:"omitempty,oneof=월 화 수 목 금 토"`
	Keyword string `form:"keyword"`
	PaginationRequest
}

// MentorSlotResponse 멘토 근무 슬롯 응답
type MentorSlotResponse struct {
	ID            string `json:"id"`
	Day           string `json:"day"`
	Name          string `json:"name"`
	WorkTime      string `json:"work_time"`
	BirthYear     int    `json:"birth_year"`
	Personality   string `json:"personality"`
	KoreanSubject string `json:"korean_subject"`
	MathSubject   string `json:"math_subject"`
	Explore1      string `json:"explore1"`
	Explore2      string `json:"explore2"`
	Version       int    `json:"version"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}
