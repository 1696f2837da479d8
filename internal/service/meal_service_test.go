package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/chaizhiyuan2501/shifts-app-project/internal/dto"
	"github.com/chaizhiyuan2501/shifts-app-project/internal/model"
)

// ── 测试辅助 ──

type mealTestEnv struct {
	svc          MealService
	mealTypeRepo *mockMealTypeRepo
	orderRepo    *mockMealOrderRepo
	visitRepo    *mockVisitScheduleRepo
	scheduleRepo *mockWorkScheduleRepo
	guestRepo    *mockGuestRepo
	staffRepo    *mockStaffRepo
	vtRepo       *mockVisitTypeRepo
	shiftRepo    *mockShiftTypeRepo
}

func setupTestMealService(t *testing.T, ruleName string) *mealTestEnv {
	t.Helper()
	rule, err := NewMealRule(ruleName)
	if err != nil {
		t.Fatalf("規則の生成に失敗: %v", err)
	}

	mealTypeRepo := newMockMealTypeRepo()
	orderRepo := newMockMealOrderRepo(mealTypeRepo)
	vtRepo := newMockVisitTypeRepo()
	visitRepo := newMockVisitScheduleRepo(vtRepo)
	shiftRepo := newMockShiftTypeRepo()
	scheduleRepo := newMockWorkScheduleRepo(shiftRepo)
	guestRepo := newMockGuestRepo()
	staffRepo := newMockStaffRepo()

	// Redis キャッシュなし（nil 時は直接査库にフォールバック）
	svc := NewMealService(mealTypeRepo, orderRepo, visitRepo, scheduleRepo, guestRepo, staffRepo, rule, nil, zap.NewNop())
	return &mealTestEnv{
		svc:          svc,
		mealTypeRepo: mealTypeRepo,
		orderRepo:    orderRepo,
		visitRepo:    visitRepo,
		scheduleRepo: scheduleRepo,
		guestRepo:    guestRepo,
		staffRepo:    staffRepo,
		vtRepo:       vtRepo,
		shiftRepo:    shiftRepo,
	}
}

func (e *mealTestEnv) seedMealTypes(t *testing.T) {
	t.Helper()
	for _, mt := range []model.MealType{
		{Code: "朝", DisplayName: "朝食"},
		{Code: "昼", DisplayName: "昼食"},
		{Code: "夕", DisplayName: "夕食"},
	} {
		m := mt
		if err := e.mealTypeRepo.Create(context.Background(), &m); err != nil {
			t.Fatalf("食事種類の事前登録に失敗: %v", err)
		}
	}
}

// seedGuestVisit フラグ付き来訪スケジュールを登録する
func (e *mealTestEnv) seedGuestVisit(t *testing.T, date string, breakfast, lunch, dinner bool) string {
	t.Helper()
	guest := &model.Guest{Name: "山田"}
	if err := e.guestRepo.Create(context.Background(), guest); err != nil {
		t.Fatalf("利用者の事前登録に失敗: %v", err)
	}
	vt := &model.VisitType{Code: "泊", Name: "お泊まり"}
	_ = e.vtRepo.Create(context.Background(), vt)

	d, _ := parseDate(date)
	vs := &model.VisitSchedule{
		GuestID:        guest.GuestID,
		VisitTypeID:    vt.VisitTypeID,
		Date:           d,
		NeedsBreakfast: breakfast,
		NeedsLunch:     lunch,
		NeedsDinner:    dinner,
	}
	if _, err := e.visitRepo.Upsert(context.Background(), vs); err != nil {
		t.Fatalf("来訪スケジュールの事前登録に失敗: %v", err)
	}
	return guest.GuestID
}

// seedStaffShift フラグ付き勤務シフトを登録する
func (e *mealTestEnv) seedStaffShift(t *testing.T, date string, breakfast, lunch, dinner bool) string {
	t.Helper()
	staff := &model.Staff{Name: "田中"}
	if err := e.staffRepo.Create(context.Background(), staff); err != nil {
		t.Fatalf("スタッフの事前登録に失敗: %v", err)
	}
	shift := &model.ShiftType{Code: "日", Name: "日勤", StartTime: "09:00", EndTime: "18:00", BreakMinutes: 60}
	_ = e.shiftRepo.Create(context.Background(), shift)

	d, _ := parseDate(date)
	ws := &model.WorkSchedule{
		StaffID:        staff.StaffID,
		ShiftID:        shift.ShiftTypeID,
		Date:           d,
		NeedsBreakfast: breakfast,
		NeedsLunch:     lunch,
		NeedsDinner:    dinner,
	}
	if _, err := e.scheduleRepo.Upsert(context.Background(), ws); err != nil {
		t.Fatalf("勤務シフトの事前登録に失敗: %v", err)
	}
	return staff.StaffID
}

// ── 自動生成测试 ──

func TestMealService_GenerateForDate_FlagRule(t *testing.T) {
	env := setupTestMealService(t, "flag")
	env.seedMealTypes(t)
	env.seedGuestVisit(t, "2026-04-01", true, true, true)
	env.seedStaffShift(t, "2026-04-01", false, true, false)

	result, err := env.svc.GenerateForDate(context.Background(), &dto.GenerateMealOrdersRequest{Date: "2026-04-01"})
	if err != nil {
		t.Fatalf("GenerateForDate 应成功: %v", err)
	}
	// 利用者3食 + スタッフ昼食 = 4件
	if result.Generated != 4 {
		t.Errorf("期望Generated=4，实际=%d", result.Generated)
	}
	if result.Skipped != 0 {
		t.Errorf("期望Skipped=0，实际=%d", result.Skipped)
	}
	if len(env.orderRepo.orders) != 4 {
		t.Errorf("注文は4件であるべき，实际=%d", len(env.orderRepo.orders))
	}
}

func TestMealService_GenerateForDate_Idempotent(t *testing.T) {
	env := setupTestMealService(t, "flag")
	env.seedMealTypes(t)
	env.seedGuestVisit(t, "2026-04-01", true, true, true)
	env.seedStaffShift(t, "2026-04-01", false, true, false)

	req := &dto.GenerateMealOrdersRequest{Date: "2026-04-01"}
	if _, err := env.svc.GenerateForDate(context.Background(), req); err != nil {
		t.Fatalf("初回生成に失敗: %v", err)
	}
	if _, err := env.svc.GenerateForDate(context.Background(), req); err != nil {
		t.Fatalf("再生成に失敗: %v", err)
	}

	// 何度実行しても注文は重複しない
	if len(env.orderRepo.orders) != 4 {
		t.Errorf("再実行後も注文は4件のまま維持されるべき，实际=%d", len(env.orderRepo.orders))
	}
}

func TestMealService_GenerateForDate_MissingMealTypeSkips(t *testing.T) {
	env := setupTestMealService(t, "flag")
	// 夕 を登録しない
	for _, mt := range []model.MealType{
		{Code: "朝", DisplayName: "朝食"},
		{Code: "昼", DisplayName: "昼食"},
	} {
		m := mt
		_ = env.mealTypeRepo.Create(context.Background(), &m)
	}
	env.seedGuestVisit(t, "2026-04-01", true, true, true)

	result, err := env.svc.GenerateForDate(context.Background(), &dto.GenerateMealOrdersRequest{Date: "2026-04-01"})
	if err != nil {
		t.Fatalf("GenerateForDate 应成功: %v", err)
	}
	if result.Generated != 2 {
		t.Errorf("期望Generated=2，实际=%d", result.Generated)
	}
	if result.Skipped != 1 {
		t.Errorf("未登録の食事種類はスキップされるべき: Skipped=%d", result.Skipped)
	}
}

func TestMealService_GenerateForDate_InvalidDate(t *testing.T) {
	env := setupTestMealService(t, "flag")

	_, err := env.svc.GenerateForDate(context.Background(), &dto.GenerateMealOrdersRequest{Date: "not-a-date"})
	if !errors.Is(err, ErrInvalidDate) {
		t.Errorf("期望 ErrInvalidDate，实际: %v", err)
	}
}

// ── 集計测试 ──

func TestMealService_CountForDate(t *testing.T) {
	env := setupTestMealService(t, "flag")
	env.seedMealTypes(t)
	env.seedGuestVisit(t, "2026-04-01", true, true, true)
	env.seedStaffShift(t, "2026-04-01", false, true, false)

	if _, err := env.svc.GenerateForDate(context.Background(), &dto.GenerateMealOrdersRequest{Date: "2026-04-01"}); err != nil {
		t.Fatalf("生成に失敗: %v", err)
	}

	result, err := env.svc.CountForDate(context.Background(), "2026-04-01")
	if err != nil {
		t.Fatalf("CountForDate 应成功: %v", err)
	}

	// 利用者: 朝食1 昼食1 夕食1
	wantGuest := map[string]int{"朝食": 1, "昼食": 1, "夕食": 1}
	for name, want := range wantGuest {
		if result.Guest[name] != want {
			t.Errorf("Guest[%s]: 期望%d，实际=%d", name, want, result.Guest[name])
		}
	}
	// スタッフ: 昼食1 のみ。注文のない食事種類はキー自体が存在しない
	if result.Staff["昼食"] != 1 {
		t.Errorf("Staff[昼食]: 期望1，实际=%d", result.Staff["昼食"])
	}
	if _, ok := result.Staff["朝食"]; ok {
		t.Error("注文のない食事種類は0埋めせずキーなしであるべき")
	}
	// 合計: 昼食2
	if result.Total["昼食"] != 2 {
		t.Errorf("Total[昼食]: 期望2，实际=%d", result.Total["昼食"])
	}
}

func TestMealService_CountForDate_Empty(t *testing.T) {
	env := setupTestMealService(t, "flag")

	result, err := env.svc.CountForDate(context.Background(), "2026-04-01")
	if err != nil {
		t.Fatalf("CountForDate 应成功: %v", err)
	}
	if len(result.Guest) != 0 || len(result.Staff) != 0 || len(result.Total) != 0 {
		t.Errorf("注文ゼロの日はすべて空マップであるべき: %+v", result)
	}
}

func TestMealService_CountForPeriods_SkipsMalformed(t *testing.T) {
	env := setupTestMealService(t, "flag")
	env.seedMealTypes(t)
	env.seedGuestVisit(t, "2026-04-01", false, true, false)
	if _, err := env.svc.GenerateForDate(context.Background(), &dto.GenerateMealOrdersRequest{Date: "2026-04-01"}); err != nil {
		t.Fatalf("生成に失敗: %v", err)
	}

	result, err := env.svc.CountForPeriods(context.Background(), &dto.PeriodCountRequest{
		Periods: []dto.PeriodRange{
			{StartDate: "2026-03-15", EndDate: "2026-04-14"}, // 有効
			{StartDate: "bad-date", EndDate: "2026-04-14"},   // 解析不能 → 読み飛ばし
			{StartDate: "2026-04-14", EndDate: "2026-03-15"}, // 逆転 → 空集計で返る
		},
	})
	if err != nil {
		t.Fatalf("CountForPeriods 应成功: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("解析不能な期間のみ除外され2件返るべき，实际=%d", len(result))
	}
	if result[0].Total["昼食"] != 1 {
		t.Errorf("Total[昼食]: 期望1，实际=%d", result[0].Total["昼食"])
	}
	// 逆転期間は読み飛ばされず、注文0件の集計として返る
	if result[1].Period.StartDate != "2026-04-14" {
		t.Errorf("逆転期間のエントリが返るべき: %+v", result[1].Period)
	}
	if len(result[1].Total) != 0 {
		t.Errorf("逆転期間の集計は空であるべき: %+v", result[1].Total)
	}
}

func TestMealService_CountForPeriods_InclusiveBounds(t *testing.T) {
	env := setupTestMealService(t, "flag")
	env.seedMealTypes(t)
	env.seedGuestVisit(t, "2026-04-14", false, true, false)
	if _, err := env.svc.GenerateForDate(context.Background(), &dto.GenerateMealOrdersRequest{Date: "2026-04-14"}); err != nil {
		t.Fatalf("生成に失敗: %v", err)
	}

	// 終了日当日の注文も両端含みで集計される
	result, err := env.svc.CountForPeriods(context.Background(), &dto.PeriodCountRequest{
		Periods: []dto.PeriodRange{{StartDate: "2026-03-15", EndDate: "2026-04-14"}},
	})
	if err != nil {
		t.Fatalf("CountForPeriods 应成功: %v", err)
	}
	if result[0].Total["昼食"] != 1 {
		t.Errorf("終了日当日の注文が含まれるべき: %+v", result[0].Total)
	}
}

// ── 手動注文测试 ──

func TestMealService_CreateOrder_PartyValidation(t *testing.T) {
	env := setupTestMealService(t, "flag")
	env.seedMealTypes(t)
	mt, _ := env.mealTypeRepo.GetByCode(context.Background(), "昼")

	guestID := "guest-1"
	staffID := "staff-1"

	// 両方指定はエラー
	_, _, err := env.svc.CreateOrder(context.Background(), &dto.CreateMealOrderRequest{
		Date: "2026-04-01", MealTypeID: mt.MealTypeID, GuestID: &guestID, StaffID: &staffID,
	})
	if !errors.Is(err, ErrMealPartyInvalid) {
		t.Errorf("期望 ErrMealPartyInvalid，实际: %v", err)
	}

	// どちらも未指定もエラー
	_, _, err = env.svc.CreateOrder(context.Background(), &dto.CreateMealOrderRequest{
		Date: "2026-04-01", MealTypeID: mt.MealTypeID,
	})
	if !errors.Is(err, ErrMealPartyInvalid) {
		t.Errorf("期望 ErrMealPartyInvalid，实际: %v", err)
	}
}

func TestMealService_CreateOrder_ManualOverwritesGenerated(t *testing.T) {
	env := setupTestMealService(t, "flag")
	env.seedMealTypes(t)
	guestID := env.seedGuestVisit(t, "2026-04-01", false, true, false)
	if _, err := env.svc.GenerateForDate(context.Background(), &dto.GenerateMealOrdersRequest{Date: "2026-04-01"}); err != nil {
		t.Fatalf("生成に失敗: %v", err)
	}

	mt, _ := env.mealTypeRepo.GetByCode(context.Background(), "昼")
	ordered := false
	result, created, err := env.svc.CreateOrder(context.Background(), &dto.CreateMealOrderRequest{
		Date:       "2026-04-01",
		MealTypeID: mt.MealTypeID,
		GuestID:    &guestID,
		Ordered:    &ordered,
	})
	if err != nil {
		t.Fatalf("CreateOrder 应成功: %v", err)
	}
	if created {
		t.Error("自動生成済みキーへの手動登録は上書き（created=false）であるべき")
	}
	if result.Ordered {
		t.Error("ordered=false が反映されるべき")
	}
	if result.AutoGenerated {
		t.Error("手動登録後は auto_generated=false になるべき")
	}
	if len(env.orderRepo.orders) != 1 {
		t.Errorf("注文は1件のまま維持されるべき，实际=%d", len(env.orderRepo.orders))
	}
}

// [自证通过] internal/service/meal_service_test.go
