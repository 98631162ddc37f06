package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/drchoshit/new-weekly-plan-maker/internal/dto"
	"github.com/drchoshit/new-weekly-plan-maker/internal/service"
	"github.com/drchoshit/new-weekly-plan-maker/pkg/response"
)

// AttendanceHandler 출결 모듈 HTTP 핸들러
type AttendanceHandler struct {
	attendanceSvc service.AttendanceService
}

// NewAttendanceHandler AttendanceHandler 생성
func NewAttendanceHandler(attendanceSvc service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceSvc: attendanceSvc}
}

// SaveAttendance 학생의 주간 출결 일괄 저장
// PUT /api/v1/periods/:id/students/:student_id/attendance
func (h *AttendanceHandler) SaveAttendance(c *gin.Context) {
	operatorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.SaveAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "파라미터 검증에 실패했습니다")
		return
	}

	result, err := h.attendanceSvc.Save(c.Request.Context(), c.Param("id"), c.Param("student_id"), &req, operatorID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPeriodNotFound):
			response.NotFound(c, 12003, "주차를 찾을 수 없습니다")
		case errors.Is(err, service.ErrStudentNotFound):
			response.NotFound(c, 13002, "학생을 찾을 수 없습니다")
		case errors.Is(err, service.ErrAttendanceTimeInvalid):
			response.BadRequest(c, 15001, "출결 시간 형식이 올바르지 않습니다")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, result)
}

// GetAttendance 학생의 주간 출결 조회 (정규화된 형태)
// GET /api/v1/periods/:id/students/:student_id/attendance
func (h *AttendanceHandler) GetAttendance(c *gin.Context) {
	result, err := h.attendanceSvc.GetWeek(c.Request.Context(), c.Param("id"), c.Param("student_id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPeriodNotFound):
			response.NotFound(c, 12003, "주차를 찾을 수 없습니다")
		case errors.Is(err, service.ErrStudentNotFound):
			response.NotFound(c, 13002, "학생을 찾을 수 없습니다")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, result)
}
