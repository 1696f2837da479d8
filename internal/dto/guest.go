package dto

// ── 利用者 ──

// CreateGuestRequest 利用者登録リクエスト
type CreateGuestRequest struct {
	Name     string `json:"name"     binding:"required,min=1,max=50"`
	Contact  string `json:"contact"  binding:"omitempty,max=100"`
	Birthday string `json:"birthday" binding:"omitempty"` // YYYY-MM-DD
}

// UpdateGuestRequest 利用者更新リクエスト
type UpdateGuestRequest struct {
	Name     *string `json:"name"     binding:"omitempty,min=1,max=50"`
	Contact  *string `json:"contact"  binding:"omitempty,max=100"`
	Birthday *string `json:"birthday"`
}

// GuestResponse 利用者レスポンス
type GuestResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Contact  string `json:"contact,omitempty"`
	Birthday string `json:"birthday,omitempty"`
}

// ── 来訪種別 ──

// CreateVisitTypeRequest 来訪種別登録リクエスト
type CreateVisitTypeRequest struct {
	Code       string  `json:"code"        binding:"required,min=1,max=10"`
	Name       string  `json:"name"        binding:"required,min=1,max=50"`
	ArriveTime *string `json:"arrive_time"` // HH:MM
	LeaveTime  *string `json:"leave_time"`  // HH:MM
	Color      string  `json:"color"       binding:"omitempty,max=10"`
}

// UpdateVisitTypeRequest 来訪種別更新リクエスト
type UpdateVisitTypeRequest struct {
	Name       *string `json:"name" binding:"omitempty,min=1,max=50"`
	ArriveTime *string `json:"arrive_time"`
	LeaveTime  *string `json:"leave_time"`
	Color      *string `json:"color" binding:"omitempty,max=10"`
}

// VisitTypeResponse 来訪種別レスポンス
type VisitTypeResponse struct {
	ID         string  `json:"id"`
	Code       string  `json:"code"`
	Name       string  `json:"name"`
	ArriveTime *string `json:"arrive_time,omitempty"`
	LeaveTime  *string `json:"leave_time,omitempty"`
	Color      string  `json:"color,omitempty"`
}

// ── 来訪スケジュール ──

// CreateVisitScheduleRequest 来訪スケジュール登録リクエスト
// 同一 (guest_id, date) が既に存在する場合は上書き更新となる
type CreateVisitScheduleRequest struct {
	GuestID        string  `json:"guest_id"      binding:"required,uuid"`
	VisitTypeID    string  `json:"visit_type_id" binding:"required,uuid"`
	Date           string  `json:"date"          binding:"required"` // YYYY-MM-DD
	ArriveTime     *string `json:"arrive_time"`
	LeaveTime      *string `json:"leave_time"`
	Note           string  `json:"note"          binding:"omitempty,max=1000"`
	NeedsBreakfast bool    `json:"needs_breakfast"`
	NeedsLunch     bool    `json:"needs_lunch"`
	NeedsDinner    bool    `json:"needs_dinner"`
}

// UpdateVisitScheduleRequest 来訪スケジュール更新リクエスト
type UpdateVisitScheduleRequest struct {
	VisitTypeID    *string `json:"visit_type_id" binding:"omitempty,uuid"`
	ArriveTime     *string `json:"arrive_time"`
	LeaveTime      *string `json:"leave_time"`
	Note           *string `json:"note" binding:"omitempty,max=1000"`
	NeedsBreakfast *bool   `json:"needs_breakfast"`
	NeedsLunch     *bool   `json:"needs_lunch"`
	NeedsDinner    *bool   `json:"needs_dinner"`
}

// VisitScheduleListRequest 来訪スケジュール一覧の絞り込み条件
type VisitScheduleListRequest struct {
	GuestID  string `form:"guest_id" binding:"omitempty,uuid"`
	DateFrom string `form:"date_from"`
	DateTo   string `form:"date_to"`
}

// VisitScheduleResponse 来訪スケジュールレスポンス
type VisitScheduleResponse struct {
	ID             string             `json:"id"`
	Guest          *GuestResponse     `json:"guest,omitempty"`
	VisitType      *VisitTypeResponse `json:"visit_type,omitempty"`
	Date           string             `json:"date"`
	Weekday        string             `json:"weekday"`
	ArriveTime     *string            `json:"arrive_time,omitempty"`
	LeaveTime      *string            `json:"leave_time,omitempty"`
	Note           string             `json:"note,omitempty"`
	NeedsBreakfast bool               `json:"needs_breakfast"`
	NeedsLunch     bool               `json:"needs_lunch"`
	NeedsDinner    bool               `json:"needs_dinner"`
}

// [自证通过] internal/dto/guest.go
