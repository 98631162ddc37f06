package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/drchoshit/new-weekly-plan-maker/internal/dto"
	"github.com/drchoshit/new-weekly-plan-maker/internal/service"
	"github.com/drchoshit/new-weekly-plan-maker/pkg/response"
)

// AssignmentHandler 배정 모듈 HTTP 핸들러
type AssignmentHandler struct {
	assignSvc service.AssignmentService
}

// NewAssignmentHandler AssignmentHandler 생성
func NewAssignmentHandler(assignSvc service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{assignSvc: assignSvc}
}

// RankNewStudents 신규생 멘토 추천 랭킹
// POST /api/v1/assignments/rank
func (h *AssignmentHandler) RankNewStudents(c *gin.Context) {
	var req dto.RankMentorsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "파라미터 검증에 실패했습니다")
		return
	}

	result, err := h.assignSvc.RankNewStudents(c.Request.Context(), &req)
	if err != nil {
		h.handleAssignError(c, err)
		return
	}
	response.OK(c, result)
}

// AutoAssignPeriod 주차 전체 자동배정 실행
// POST /api/v1/assignments/auto
func (h *AssignmentHandler) AutoAssignPeriod(c *gin.Context) {
	operatorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.AutoAssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "파라미터 검증에 실패했습니다")
		return
	}

	result, err := h.assignSvc.AutoAssignPeriod(c.Request.Context(), req.PeriodID, operatorID)
	if err != nil {
		h.handleAssignError(c, err)
		return
	}
	response.OK(c, result)
}

// AutoAssignOne 학생 한 명 자동배정 실행
// POST /api/v1/assignments/auto/students/:student_id
func (h *AssignmentHandler) AutoAssignOne(c *gin.Context) {
	operatorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.AutoAssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "파라미터 검증에 실패했습니다")
		return
	}

	result, err := h.assignSvc.AutoAssignOne(c.Request.Context(), req.PeriodID, c.Param("student_id"), operatorID)
	if err != nil {
		h.handleAssignError(c, err)
		return
	}
	response.OK(c, result)
}

// ListDrafts 주차의 자동배정 임시 결과 목록
// GET /api/v1/assignments/drafts?period_id=xxx
func (h *AssignmentHandler) ListDrafts(c *gin.Context) {
	periodID := c.Query("period_id")
	if periodID == "" {
		response.BadRequest(c, 10001, "period_id 는 필수입니다")
		return
	}

	result, err := h.assignSvc.ListDrafts(c.Request.Context(), periodID)
	if err != nil {
		h.handleAssignError(c, err)
		return
	}
	response.OK(c, result)
}

// Confirm 자동배정 결과 확정
// POST /api/v1/assignments/confirm
func (h *AssignmentHandler) Confirm(c *gin.Context) {
	operatorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.ConfirmAssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "파라미터 검증에 실패했습니다")
		return
	}

	result, err := h.assignSvc.Confirm(c.Request.Context(), &req, operatorID)
	if err != nil {
		h.handleAssignError(c, err)
		return
	}
	response.OK(c, result)
}

// ManualAssign 수동 배정
// PUT /api/v1/assignments/students/:student_id
func (h *AssignmentHandler) ManualAssign(c *gin.Context) {
	operatorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.ManualAssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "파라미터 검증에 실패했습니다")
		return
	}

	result, err := h.assignSvc.ManualAssign(c.Request.Context(), c.Param("student_id"), &req, operatorID)
	if err != nil {
		h.handleAssignError(c, err)
		return
	}
	response.OK(c, result)
}

// ToggleMissed 멘토링 누락/이월 토글
// POST /api/v1/assignments/students/:student_id/missed
func (h *AssignmentHandler) ToggleMissed(c *gin.Context) {
	operatorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.ToggleMissedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "파라미터 검증에 실패했습니다")
		return
	}

	result, err := h.assignSvc.ToggleMissed(c.Request.Context(), c.Param("student_id"), &req, operatorID)
	if err != nil {
		h.handleAssignError(c, err)
		return
	}
	response.OK(c, result)
}

// SetActualMentor 실제 진행 멘토 기록
// PUT /api/v1/assignments/students/:student_id/actual-mentor
func (h *AssignmentHandler) SetActualMentor(c *gin.Context) {
	operatorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.SetActualMentorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "파라미터 검증에 실패했습니다")
		return
	}

	result, err := h.assignSvc.SetActualMentor(c.Request.Context(), c.Param("student_id"), &req, operatorID)
	if err != nil {
		h.handleAssignError(c, err)
		return
	}
	response.OK(c, result)
}

// MissedSummary 주차별 누락/이월 요약
// GET /api/v1/assignments/missed?period_id=xxx
func (h *AssignmentHandler) MissedSummary(c *gin.Context) {
	periodID := c.Query("period_id")
	if periodID == "" {
		response.BadRequest(c, 10001, "period_id 는 필수입니다")
		return
	}

	result, err := h.assignSvc.MissedSummary(c.Request.Context(), periodID)
	if err != nil {
		h.handleAssignError(c, err)
		return
	}
	response.OK(c, result)
}

// ListHistory 학생의 주차별 확정 기록
// GET /api/v1/assignments/students/:student_id/history
func (h *AssignmentHandler) ListHistory(c *gin.Context) {
	result, err := h.assignSvc.ListHistory(c.Request.Context(), c.Param("student_id"))
	if err != nil {
		h.handleAssignError(c, err)
		return
	}
	response.OK(c, result)
}

// ListPeriodHistory 주차의 전체 확정 기록
// GET /api/v1/assignments?period_id=xxx
func (h *AssignmentHandler) ListPeriodHistory(c *gin.Context) {
	periodID := c.Query("period_id")
	if periodID == "" {
		response.BadRequest(c, 10001, "period_id 는 필수입니다")
		return
	}

	result, err := h.assignSvc.ListPeriodHistory(c.Request.Context(), periodID)
	if err != nil {
		h.handleAssignError(c, err)
		return
	}
	response.OK(c, result)
}

func (h *AssignmentHandler) handleAssignError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPeriodNotFound):
		response.NotFound(c, 12003, "주차를 찾을 수 없습니다")
	case errors.Is(err, service.ErrStudentNotFound):
		response.NotFound(c, 13002, "학생을 찾을 수 없습니다")
	case errors.Is(err, service.ErrAssignmentNotFound):
		response.NotFound(c, 16001, "확정 멘토링 기록이 없습니다")
	case errors.Is(err, service.ErrNoMentorToToggle):
		response.BadRequest(c, 16002, "누락 처리할 멘토 기록이 없습니다")
	case errors.Is(err, service.ErrNoDraftToConfirm):
		response.BadRequest(c, 16003, "확정할 자동배정 결과가 없습니다")
	default:
		response.InternalError(c)
	}
}
