package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/chaizhiyuan2501/shifts-app-project/internal/dto"
	"github.com/chaizhiyuan2501/shifts-app-project/internal/service"
	"github.com/chaizhiyuan2501/shifts-app-project/pkg/response"
)

// GuestHandler 利用者・来訪管理 HTTP 处理器
type GuestHandler struct {
	guestSvc service.GuestService
}

// NewGuestHandler 创建 GuestHandler
func NewGuestHandler(guestSvc service.GuestService) *GuestHandler {
	return &GuestHandler{guestSvc: guestSvc}
}

// ── 利用者 ──

// CreateGuest 利用者登録
// POST /api/v1/guests
func (h *GuestHandler) CreateGuest(c *gin.Context) {
	var req dto.CreateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "パラメータが不正です")
		return
	}

	result, err := h.guestSvc.CreateGuest(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Created(c, result)
}

// ListGuests 利用者一覧
// GET /api/v1/guests
func (h *GuestHandler) ListGuests(c *gin.Context) {
	result, err := h.guestSvc.ListGuests(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// GetGuest 利用者取得
// GET /api/v1/guests/:id
func (h *GuestHandler) GetGuest(c *gin.Context) {
	result, err := h.guestSvc.GetGuest(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, result)
}

// UpdateGuest 利用者更新
// PUT /api/v1/guests/:id
func (h *GuestHandler) UpdateGuest(c *gin.Context) {
	var req dto.UpdateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "パラメータが不正です")
		return
	}

	result, err := h.guestSvc.UpdateGuest(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, result)
}

// DeleteGuest 利用者削除
// DELETE /api/v1/guests/:id
func (h *GuestHandler) DeleteGuest(c *gin.Context) {
	if err := h.guestSvc.DeleteGuest(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}
	response.NoContent(c)
}

// ── 来訪種別 ──

// CreateVisitType 来訪種別登録
// POST /api/v1/visit-types
func (h *GuestHandler) CreateVisitType(c *gin.Context) {
	var req dto.CreateVisitTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "パラメータが不正です")
		return
	}

	result, err := h.guestSvc.CreateVisitType(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Created(c, result)
}

// ListVisitTypes 来訪種別一覧
// GET /api/v1/visit-types
func (h *GuestHandler) ListVisitTypes(c *gin.Context) {
	result, err := h.guestSvc.ListVisitTypes(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// GetVisitType 来訪種別取得
// GET /api/v1/visit-types/:id
func (h *GuestHandler) GetVisitType(c *gin.Context) {
	result, err := h.guestSvc.GetVisitType(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, result)
}

// UpdateVisitType 来訪種別更新
// PUT /api/v1/visit-types/:id
func (h *GuestHandler) UpdateVisitType(c *gin.Context) {
	var req dto.UpdateVisitTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "パラメータが不正です")
		return
	}

	result, err := h.guestSvc.UpdateVisitType(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, result)
}

// DeleteVisitType 来訪種別削除
// DELETE /api/v1/visit-types/:id
func (h *GuestHandler) DeleteVisitType(c *gin.Context) {
	if err := h.guestSvc.DeleteVisitType(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}
	response.NoContent(c)
}

// ── 来訪スケジュール ──

// CreateVisitSchedule 来訪スケジュール登録（同一利用者・同一日は上書き更新）
// POST /api/v1/visit-schedules
func (h *GuestHandler) CreateVisitSchedule(c *gin.Context) {
	var req dto.CreateVisitScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "パラメータが不正です")
		return
	}

	result, created, err := h.guestSvc.CreateVisitSchedule(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if created {
		response.Created(c, result)
		return
	}
	response.OK(c, result)
}

// ListVisitSchedules 来訪スケジュール一覧
// GET /api/v1/visit-schedules?guest_id=&date_from=&date_to=
func (h *GuestHandler) ListVisitSchedules(c *gin.Context) {
	var req dto.VisitScheduleListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "パラメータが不正です")
		return
	}

	result, err := h.guestSvc.ListVisitSchedules(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, result)
}

// GetVisitSchedule 来訪スケジュール取得
// GET /api/v1/visit-schedules/:id
func (h *GuestHandler) GetVisitSchedule(c *gin.Context) {
	result, err := h.guestSvc.GetVisitSchedule(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, result)
}

// UpdateVisitSchedule 来訪スケジュール更新
// PUT /api/v1/visit-schedules/:id
func (h *GuestHandler) UpdateVisitSchedule(c *gin.Context) {
	var req dto.UpdateVisitScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "パラメータが不正です")
		return
	}

	result, err := h.guestSvc.UpdateVisitSchedule(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, result)
}

// DeleteVisitSchedule 来訪スケジュール削除
// DELETE /api/v1/visit-schedules/:id
func (h *GuestHandler) DeleteVisitSchedule(c *gin.Context) {
	if err := h.guestSvc.DeleteVisitSchedule(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *GuestHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrGuestNotFound):
		response.NotFound(c, 14001, err.Error())
	case errors.Is(err, service.ErrVisitTypeNotFound):
		response.NotFound(c, 14002, err.Error())
	case errors.Is(err, service.ErrVisitTypeCodeTaken):
		response.Conflict(c, 14003, err.Error())
	case errors.Is(err, service.ErrVisitScheduleNotFound):
		response.NotFound(c, 14004, err.Error())
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 10002, err.Error())
	case errors.Is(err, service.ErrInvalidClockTime):
		response.BadRequest(c, 10003, err.Error())
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/guest_handler.go
