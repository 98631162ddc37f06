package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/drchoshit/new-weekly-plan-maker/internal/dto"
	"github.com/drchoshit/new-weekly-plan-maker/internal/service"
	pkgerrors "github.com/drchoshit/new-weekly-plan-maker/pkg/errors"
	"github.com/drchoshit/new-weekly-plan-maker/pkg/response"
)

// MentorHandler 멘토 근무 슬롯 모듈 HTTP 핸들러
type MentorHandler struct {
	mentorSvc service.MentorService
}

// NewMentorHandler MentorHandler 생성
func NewMentorHandler(mentorSvc service.MentorService) *MentorHandler {
	return &MentorHandler{mentorSvc: mentorSvc}
}

// CreateMentorSlot 멘토 근무 슬롯 등록
// POST /api/v1/mentors
func (h *MentorHandler) CreateMentorSlot(c *gin.Context) {
	operatorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateMentorSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "파라미터 검증에 실패했습니다")
		return
	}

	result, err := h.mentorSvc.Create(c.Request.Context(), &req, operatorID)
	if err != nil {
		if errors.Is(err, service.ErrMentorTimeInvalid) {
			response.BadRequest(c, 14001, "근무 시간 형식이 올바르지 않습니다")
			return
		}
		response.InternalError(c)
		return
	}
	response.Created(c, result)
}

// ListMentorSlots 멘토 슬롯 목록 (요일·이름 검색 + 페이지네이션)
// GET /api/v1/mentors
func (h *MentorHandler) ListMentorSlots(c *gin.Context) {
	var req dto.MentorSlotListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "파라미터 검증에 실패했습니다")
		return
	}

	list, total, err := h.mentorSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OKPage(c, list, total, req.GetPage(), req.GetPageSize())
}

// GetMentorSlot 멘토 슬롯 단건 조회
// GET /api/v1/mentors/:id
func (h *MentorHandler) GetMentorSlot(c *gin.Context) {
	result, err := h.mentorSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrMentorSlotNotFound) {
			response.NotFound(c, 14002, "멘토 근무 슬롯을 찾을 수 없습니다")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// UpdateMentorSlot 멘토 슬롯 수정 (낙관적 잠금)
// PUT /api/v1/mentors/:id
func (h *MentorHandler) UpdateMentorSlot(c *gin.Context) {
	operatorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateMentorSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "파라미터 검증에 실패했습니다")
		return
	}

	result, err := h.mentorSvc.Update(c.Request.Context(), c.Param("id"), &req, operatorID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMentorSlotNotFound):
			response.NotFound(c, 14002, "멘토 근무 슬롯을 찾을 수 없습니다")
		case errors.Is(err, service.ErrMentorTimeInvalid):
			response.BadRequest(c, 14001, "근무 시간 형식이 올바르지 않습니다")
		case errors.Is(err, pkgerrors.ErrOptimisticLock):
			response.Conflict(c, 10006, "다른 사용자가 먼저 수정했습니다. 새로고침 후 다시 시도하세요")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, result)
}

// DeleteMentorSlot 멘토 슬롯 삭제
// DELETE /api/v1/mentors/:id
func (h *MentorHandler) DeleteMentorSlot(c *gin.Context) {
	if err := h.mentorSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrMentorSlotNotFound) {
			response.NotFound(c, 14002, "멘토 근무 슬롯을 찾을 수 없습니다")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}
