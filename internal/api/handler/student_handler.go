package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/drchoshit/new-weekly-plan-maker/internal/dto"
	"github.com/drchoshit/new-weekly-plan-maker/internal/service"
	pkgerrors "github.com/drchoshit/new-weekly-plan-maker/pkg/errors"
	"github.com/drchoshit/new-weekly-plan-maker/pkg/response"
)

// StudentHandler 학생 모듈 HTTP 핸들러
type StudentHandler struct {
	studentSvc service.StudentService
}

// NewStudentHandler StudentHandler 생성
func NewStudentHandler(studentSvc service.StudentService) *StudentHandler {
	return &StudentHandler{studentSvc: studentSvc}
}

// CreateStudent 학생 등록
// POST /api/v1/students
func (h *StudentHandler) CreateStudent(c *gin.Context) {
	operatorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "파라미터 검증에 실패했습니다")
		return
	}

	result, err := h.studentSvc.Create(c.Request.Context(), &req, operatorID)
	if err != nil {
		if errors.Is(err, service.ErrStudentSelfBanned) {
			response.BadRequest(c, 13001, "고정 멘토와 기피 멘토가 같을 수 없습니다")
			return
		}
		response.InternalError(c)
		return
	}
	response.Created(c, result)
}

// ListStudents 학생 목록 (이름 검색 + 페이지네이션)
// GET /api/v1/students
func (h *StudentHandler) ListStudents(c *gin.Context) {
	var req dto.StudentListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "파라미터 검증에 실패했습니다")
		return
	}

	list, total, err := h.studentSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OKPage(c, list, total, req.GetPage(), req.GetPageSize())
}

// GetStudent 학생 단건 조회
// GET /api/v1/students/:id
func (h *StudentHandler) GetStudent(c *gin.Context) {
	result, err := h.studentSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			response.NotFound(c, 13002, "학생을 찾을 수 없습니다")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// UpdateStudent 학생 수정 (낙관적 잠금)
// PUT /api/v1/students/:id
func (h *StudentHandler) UpdateStudent(c *gin.Context) {
	operatorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "파라미터 검증에 실패했습니다")
		return
	}

	result, err := h.studentSvc.Update(c.Request.Context(), c.Param("id"), &req, operatorID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStudentNotFound):
			response.NotFound(c, 13002, "학생을 찾을 수 없습니다")
		case errors.Is(err, service.ErrStudentSelfBanned):
			response.BadRequest(c, 13001, "고정 멘토와 기피 멘토가 같을 수 없습니다")
		case errors.Is(err, pkgerrors.ErrOptimisticLock):
			response.Conflict(c, 10006, "다른 사용자가 먼저 수정했습니다. 새로고침 후 다시 시도하세요")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, result)
}

// DeleteStudent 학생 삭제
// DELETE /api/v1/students/:id
func (h *StudentHandler) DeleteStudent(c *gin.Context) {
	if err := h.studentSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			response.NotFound(c, 13002, "학생을 찾을 수 없습니다")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}
