package dto

// ── 주차 모듈 DTO ──

// CreatePeriodRequest 주차 생성 요청
type CreatePeriodRequest struct {
	PeriodID  string `json:"period_id"  binding:"required,min=1,max=50"`
	Name      string `json:"name"       binding:"required,min=1,max=100"`
	StartDate string `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `json:"end_date"   binding:"omitempty,datetime=2006-01-02"`
}

// UpdatePeriodRequest 주차 수정 요청
type UpdatePeriodRequest struct {
	Name      *string `json:"name"       binding:"omitempty,min=1,max=100"`
	StartDate *string `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   *string `json:"end_date"   binding:"omitempty,datetime=2006-01-02"`
}

// PeriodResponse 주차 응답
type PeriodResponse struct {
	PeriodID  string `json:"period_id"`
	Name      string `json:"name"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
	CreatedAt string `json:"created_at"`
}
