package dto

// ── 인증 모듈 응답 ──

// TokenResponse 토큰 쌍 응답
type TokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token,omitempty"`
	ExpiresIn    int          `json:"expires_in"` // Access Token 유효기간(초)
	User         UserResponse `json:"user"`
}

// UserResponse 사용자 정보 응답 (민감 정보 제외)
type UserResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// ── 공통 ──

// PaginationRequest 공통 페이지네이션 파라미터
type PaginationRequest struct {
	Page     int `form:"page"      binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// GetPage 페이지 번호 (기본값 포함)
func (p *PaginationRequest) GetPage() int {
	if p.Page <= 0 {
		return 1
	}
	return p.Page
}

// GetPageSize 페이지 크기 (기본값 포함)
func (p *PaginationRequest) GetPageSize() int {
	if p.PageSize <= 0 {
		return 20
	}
	return p.PageSize
}
