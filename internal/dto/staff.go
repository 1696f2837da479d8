package dto

// ── 職種（Role） ──

// CreateRoleRequest 職種登録リクエスト
type CreateRoleRequest struct {
	Name string `json:"name" binding:"required,min=1,max=50"`
}

// UpdateRoleRequest 職種更新リクエスト
type UpdateRoleRequest struct {
	Name *string `json:"name" binding:"omitempty,min=1,max=50"`
}

// RoleResponse 職種レスポンス
type RoleResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ── スタッフ ──

// CreateStaffRequest スタッフ登録リクエスト
type CreateStaffRequest struct {
	Name   string  `json:"name"    binding:"required,min=1,max=50"`
	RoleID *string `json:"role_id" binding:"omitempty,uuid"`
	Notes  string  `json:"notes"   binding:"omitempty,max=1000"`
}

// UpdateStaffRequest スタッフ更新リクエスト
type UpdateStaffRequest struct {
	Name   *string `json:"name"    binding:"omitempty,min=1,max=50"`
	RoleID *string `json:"role_id" binding:"omitempty,uuid"`
	Notes  *string `json:"notes"   binding:"omitempty,max=1000"`
}

// StaffResponse スタッフレスポンス
type StaffResponse struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	Role  *RoleResponse `json:"role,omitempty"`
	Notes string        `json:"notes,omitempty"`
}

// MonthlyHoursResponse 月間実働時間レスポンス（15日締め期間）
type MonthlyHoursResponse struct {
	StaffID     string  `json:"staff_id"`
	Hours       float64 `json:"hours"` // 実働時間（小数2桁）
	PeriodStart string  `json:"period_start"`
	PeriodEnd   string  `json:"period_end"` // 排他的（翌期間の開始日）
}

// [自证通过] internal/dto/staff.go
