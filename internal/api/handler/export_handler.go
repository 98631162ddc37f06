package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/drchoshit/new-weekly-plan-maker/internal/service"
	"github.com/drchoshit/new-weekly-plan-maker/pkg/response"
)

// ExportHandler 내보내기 모듈 HTTP 핸들러
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler ExportHandler 생성
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportSchedule 주차 배정표 Excel 내보내기
// GET /api/v1/export/schedule?period_id=xxx
func (h *ExportHandler) ExportSchedule(c *gin.Context) {
	periodID := c.Query("period_id")
	if periodID == "" {
		response.BadRequest(c, 10001, "period_id 는 필수입니다")
		return
	}

	buf, filename, err := h.exportSvc.ExportPeriodSchedule(c.Request.Context(), periodID)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// ExportStudentCalendar 학생 멘토링 일정 ICS 내보내기
// GET /api/v1/export/calendar?period_id=xxx&student_id=yyy
func (h *ExportHandler) ExportStudentCalendar(c *gin.Context) {
	periodID := c.Query("period_id")
	studentID := c.Query("student_id")
	if periodID == "" || studentID == "" {
		response.BadRequest(c, 10001, "period_id 와 student_id 는 필수입니다")
		return
	}

	icsText, filename, err := h.exportSvc.StudentCalendar(c.Request.Context(), periodID, studentID)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(icsText))
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPeriodNotFound):
		response.NotFound(c, 12003, "주차를 찾을 수 없습니다")
	case errors.Is(err, service.ErrStudentNotFound):
		response.NotFound(c, 13002, "학생을 찾을 수 없습니다")
	case errors.Is(err, service.ErrExportNoRecords):
		response.NotFound(c, 17001, "해당 주차에 확정 기록이 없습니다")
	case errors.Is(err, service.ErrExportNoStartDate):
		response.BadRequest(c, 17002, "주차 시작일이 설정되어 있지 않습니다")
	case errors.Is(err, service.ErrExportGenerateFail):
		response.InternalError(c)
	default:
		response.InternalError(c)
	}
}
