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

func setupTestScheduleService() (ScheduleService, *mockWorkScheduleRepo, *mockStaffRepo, *mockShiftTypeRepo) {
	shiftRepo := newMockShiftTypeRepo()
	staffRepo := newMockStaffRepo()
	scheduleRepo := newMockWorkScheduleRepo(shiftRepo)
	svc := NewScheduleService(scheduleRepo, staffRepo, shiftRepo, zap.NewNop())
	return svc, scheduleRepo, staffRepo, shiftRepo
}

func seedStaff(t *testing.T, repo *mockStaffRepo, name string) string {
	t.Helper()
	staff := &model.Staff{Name: name}
	if err := repo.Create(context.Background(), staff); err != nil {
		t.Fatalf("スタッフの事前登録に失敗: %v", err)
	}
	return staff.StaffID
}

func seedShift(t *testing.T, repo *mockShiftTypeRepo, code, name, start, end string, breakMin int) string {
	t.Helper()
	shift := &model.ShiftType{Code: code, Name: name, StartTime: start, EndTime: end, BreakMinutes: breakMin}
	if err := repo.Create(context.Background(), shift); err != nil {
		t.Fatalf("シフト種類の事前登録に失敗: %v", err)
	}
	return shift.ShiftTypeID
}

// seedNightShifts 夜勤チェーンに必要な3種類を登録する
func seedNightShifts(t *testing.T, repo *mockShiftTypeRepo) {
	t.Helper()
	seedShift(t, repo, "夜", "夜勤", "17:00", "00:00", 0)
	seedShift(t, repo, "明", "夜勤明け", "00:00", "10:00", 60)
	seedShift(t, repo, "休", "休み", "00:00", "00:00", 0)
}

// ── Create（冪等登録）测试 ──

func TestScheduleService_Create_Success(t *testing.T) {
	svc, _, staffRepo, shiftRepo := setupTestScheduleService()
	staffID := seedStaff(t, staffRepo, "田中")
	shiftID := seedShift(t, shiftRepo, "日", "日勤", "09:00", "18:00", 60)

	result, created, err := svc.Create(context.Background(), &dto.CreateWorkScheduleRequest{
		StaffID: staffID,
		ShiftID: shiftID,
		Date:    "2026-04-01",
	})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if !created {
		t.Error("初回登録は created=true であるべき")
	}
	if result.Date != "2026-04-01" {
		t.Errorf("期望Date=2026-04-01，实际=%s", result.Date)
	}
	if result.Weekday != "水" {
		t.Errorf("期望Weekday=水，实际=%s", result.Weekday)
	}
}

func TestScheduleService_Create_UpsertOverwrites(t *testing.T) {
	svc, scheduleRepo, staffRepo, shiftRepo := setupTestScheduleService()
	staffID := seedStaff(t, staffRepo, "田中")
	dayShiftID := seedShift(t, shiftRepo, "日", "日勤", "09:00", "18:00", 60)
	nightShiftID := seedShift(t, shiftRepo, "夜", "夜勤", "17:00", "00:00", 0)

	_, created, err := svc.Create(context.Background(), &dto.CreateWorkScheduleRequest{
		StaffID: staffID, ShiftID: dayShiftID, Date: "2026-04-01",
	})
	if err != nil || !created {
		t.Fatalf("初回登録に失敗: created=%v err=%v", created, err)
	}

	// 同一スタッフ・同一日の再登録は上書き更新
	result, created, err := svc.Create(context.Background(), &dto.CreateWorkScheduleRequest{
		StaffID: staffID, ShiftID: nightShiftID, Date: "2026-04-01",
	})
	if err != nil {
		t.Fatalf("再登録に失敗: %v", err)
	}
	if created {
		t.Error("同一キーの再登録は created=false であるべき")
	}
	if result.Shift == nil || result.Shift.Code != "夜" {
		t.Errorf("シフトが上書きされていない: %+v", result.Shift)
	}
	if len(scheduleRepo.schedules) != 1 {
		t.Errorf("レコードは1件のまま維持されるべき，实际=%d", len(scheduleRepo.schedules))
	}
}

func TestScheduleService_Create_StaffNotFound(t *testing.T) {
	svc, _, _, shiftRepo := setupTestScheduleService()
	shiftID := seedShift(t, shiftRepo, "日", "日勤", "09:00", "18:00", 60)

	_, _, err := svc.Create(context.Background(), &dto.CreateWorkScheduleRequest{
		StaffID: "unknown", ShiftID: shiftID, Date: "2026-04-01",
	})
	if !errors.Is(err, ErrStaffNotFound) {
		t.Errorf("期望 ErrStaffNotFound，实际: %v", err)
	}
}

func TestScheduleService_Create_InvalidDate(t *testing.T) {
	svc, _, staffRepo, shiftRepo := setupTestScheduleService()
	staffID := seedStaff(t, staffRepo, "田中")
	shiftID := seedShift(t, shiftRepo, "日", "日勤", "09:00", "18:00", 60)

	_, _, err := svc.Create(context.Background(), &dto.CreateWorkScheduleRequest{
		StaffID: staffID, ShiftID: shiftID, Date: "2026/04/01",
	})
	if !errors.Is(err, ErrInvalidDate) {
		t.Errorf("期望 ErrInvalidDate，实际: %v", err)
	}
}

// ── 夜勤チェーン测试 ──

func TestScheduleService_AssignNightChain_Success(t *testing.T) {
	svc, _, staffRepo, shiftRepo := setupTestScheduleService()
	staffID := seedStaff(t, staffRepo, "佐藤")
	seedNightShifts(t, shiftRepo)

	result, err := svc.AssignNightChain(context.Background(), &dto.NightChainRequest{
		StaffID:   staffID,
		NightDate: "2026-04-10",
	})
	if err != nil {
		t.Fatalf("AssignNightChain 应成功: %v", err)
	}
	if len(result.Schedule) != 3 {
		t.Fatalf("期望3件，实际=%d", len(result.Schedule))
	}

	wantDates := []string{"2026-04-10", "2026-04-11", "2026-04-12"}
	wantCodes := []string{"夜", "明", "休"}
	for i, entry := range result.Schedule {
		if entry.Date != wantDates[i] {
			t.Errorf("entry[%d]: 期望Date=%s，实际=%s", i, wantDates[i], entry.Date)
		}
		if entry.Shift != wantCodes[i] {
			t.Errorf("entry[%d]: 期望Shift=%s，实际=%s", i, wantCodes[i], entry.Shift)
		}
		if !entry.Created {
			t.Errorf("entry[%d]: 初回は created=true であるべき", i)
		}
	}
}

func TestScheduleService_AssignNightChain_Idempotent(t *testing.T) {
	svc, scheduleRepo, staffRepo, shiftRepo := setupTestScheduleService()
	staffID := seedStaff(t, staffRepo, "佐藤")
	seedNightShifts(t, shiftRepo)

	req := &dto.NightChainRequest{StaffID: staffID, NightDate: "2026-04-10"}
	if _, err := svc.AssignNightChain(context.Background(), req); err != nil {
		t.Fatalf("初回割り当てに失敗: %v", err)
	}

	result, err := svc.AssignNightChain(context.Background(), req)
	if err != nil {
		t.Fatalf("再割り当てに失敗: %v", err)
	}
	for i, entry := range result.Schedule {
		if entry.Created {
			t.Errorf("entry[%d]: 再実行は created=false であるべき", i)
		}
	}
	if len(scheduleRepo.schedules) != 3 {
		t.Errorf("再実行後もレコードは3件のまま維持されるべき，实际=%d", len(scheduleRepo.schedules))
	}
}

func TestScheduleService_AssignNightChain_MonthBoundary(t *testing.T) {
	svc, _, staffRepo, shiftRepo := setupTestScheduleService()
	staffID := seedStaff(t, staffRepo, "佐藤")
	seedNightShifts(t, shiftRepo)

	// 月末起点でも暦通りに繰り上がる
	result, err := svc.AssignNightChain(context.Background(), &dto.NightChainRequest{
		StaffID:   staffID,
		NightDate: "2026-04-30",
	})
	if err != nil {
		t.Fatalf("AssignNightChain 应成功: %v", err)
	}
	wantDates := []string{"2026-04-30", "2026-05-01", "2026-05-02"}
	for i, entry := range result.Schedule {
		if entry.Date != wantDates[i] {
			t.Errorf("entry[%d]: 期望Date=%s，实际=%s", i, wantDates[i], entry.Date)
		}
	}
}

func TestScheduleService_AssignNightChain_MissingShiftTypes(t *testing.T) {
	svc, _, staffRepo, shiftRepo := setupTestScheduleService()
	staffID := seedStaff(t, staffRepo, "佐藤")
	// 休 を登録しない
	seedShift(t, shiftRepo, "夜", "夜勤", "17:00", "00:00", 0)
	seedShift(t, shiftRepo, "明", "夜勤明け", "00:00", "10:00", 60)

	_, err := svc.AssignNightChain(context.Background(), &dto.NightChainRequest{
		StaffID:   staffID,
		NightDate: "2026-04-10",
	})
	if !errors.Is(err, ErrNightShiftsNotSeeded) {
		t.Errorf("期望 ErrNightShiftsNotSeeded，实际: %v", err)
	}
}

// ── 月間実働時間测试 ──

func TestScheduleService_MonthlyHours_NightChainPair(t *testing.T) {
	svc, _, staffRepo, shiftRepo := setupTestScheduleService()
	staffID := seedStaff(t, staffRepo, "鈴木")
	seedNightShifts(t, shiftRepo)

	// 夜勤ペア: 夜 17:00-00:00 (7h) + 明 00:00-10:00 休憩60分 (9h) = 16h
	// 休 (00:00-00:00) は実働なしとして集計から除外される
	if _, err := svc.AssignNightChain(context.Background(), &dto.NightChainRequest{
		StaffID:   staffID,
		NightDate: "2026-04-20",
	}); err != nil {
		t.Fatalf("夜勤チェーン割り当てに失敗: %v", err)
	}

	result, err := svc.MonthlyHours(context.Background(), staffID, "2026-04-20")
	if err != nil {
		t.Fatalf("MonthlyHours 应成功: %v", err)
	}
	if result.Hours != 16.0 {
		t.Errorf("期望16時間，实际=%v", result.Hours)
	}
	if result.PeriodStart != "2026-04-15" || result.PeriodEnd != "2026-05-15" {
		t.Errorf("期間が不正: %s 〜 %s", result.PeriodStart, result.PeriodEnd)
	}
}

func TestScheduleService_MonthlyHours_ExcludesOutsidePeriod(t *testing.T) {
	svc, _, staffRepo, shiftRepo := setupTestScheduleService()
	staffID := seedStaff(t, staffRepo, "鈴木")
	dayShiftID := seedShift(t, shiftRepo, "日", "日勤", "09:00", "18:00", 60)

	// 期間内 (4/15〜5/14) に2日、期間外に1日
	for _, date := range []string{"2026-04-15", "2026-05-14", "2026-04-14"} {
		if _, _, err := svc.Create(context.Background(), &dto.CreateWorkScheduleRequest{
			StaffID: staffID, ShiftID: dayShiftID, Date: date,
		}); err != nil {
			t.Fatalf("勤務シフト登録に失敗: %v", err)
		}
	}

	result, err := svc.MonthlyHours(context.Background(), staffID, "2026-04-20")
	if err != nil {
		t.Fatalf("MonthlyHours 应成功: %v", err)
	}
	// 日勤8h × 期間内2日
	if result.Hours != 16.0 {
		t.Errorf("期望16時間（期間外は除外），实际=%v", result.Hours)
	}
}

func TestScheduleService_MonthlyHours_StaffNotFound(t *testing.T) {
	svc, _, _, _ := setupTestScheduleService()

	_, err := svc.MonthlyHours(context.Background(), "unknown", "2026-04-20")
	if !errors.Is(err, ErrStaffNotFound) {
		t.Errorf("期望 ErrStaffNotFound，实际: %v", err)
	}
}

// [自证通过] internal/service/schedule_service_test.go
