package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/drchoshit/new-weekly-plan-maker/internal/dto"
	"github.com/drchoshit/new-weekly-plan-maker/internal/service"
	"github.com/drchoshit/new-weekly-plan-maker/pkg/response"
)

// PeriodHandler 주차 모듈 HTTP 핸들러
type PeriodHandler struct {
	periodSvc service.PeriodService
}

// NewPeriodHandler PeriodHandler 생성
func NewPeriodHandler(periodSvc service.PeriodService) *PeriodHandler {
	return &PeriodHandler{periodSvc: periodSvc}
}

// CreatePeriod 주차 생성
// POST /api/v1/periods
func (h *PeriodHandler) CreatePeriod(c *gin.Context) {
	operatorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreatePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "파라미터 검증에 실패했습니다")
		return
	}

	result, err := h.periodSvc.Create(c.Request.Context(), &req, operatorID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPeriodAlreadyExists):
			response.Conflict(c, 12001, "이미 존재하는 주차입니다")
		case errors.Is(err, service.ErrPeriodDateInvalid):
			response.BadRequest(c, 12002, "주차 기간이 올바르지 않습니다")
		default:
			response.InternalError(c)
		}
		return
	}
	response.Created(c, result)
}

// ListPeriods 주차 목록 (생성 순)
// GET /api/v1/periods
func (h *PeriodHandler) ListPeriods(c *gin.Context) {
	result, err := h.periodSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// GetPeriod 주차 단건 조회
// GET /api/v1/periods/:id
func (h *PeriodHandler) GetPeriod(c *gin.Context) {
	result, err := h.periodSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrPeriodNotFound) {
			response.NotFound(c, 12003, "주차를 찾을 수 없습니다")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// UpdatePeriod 주차 수정
// PUT /api/v1/periods/:id
func (h *PeriodHandler) UpdatePeriod(c *gin.Context) {
	operatorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdatePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "파라미터 검증에 실패했습니다")
		return
	}

	result, err := h.periodSvc.Update(c.Request.Context(), c.Param("id"), &req, operatorID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPeriodNotFound):
			response.NotFound(c, 12003, "주차를 찾을 수 없습니다")
		case errors.Is(err, service.ErrPeriodDateInvalid):
			response.BadRequest(c, 12002, "주차 기간이 올바르지 않습니다")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, result)
}

// DeletePeriod 주차 삭제
// DELETE /api/v1/periods/:id
func (h *PeriodHandler) DeletePeriod(c *gin.Context) {
	if err := h.periodSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrPeriodNotFound) {
			response.NotFound(c, 12003, "주차를 찾을 수 없습니다")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}
