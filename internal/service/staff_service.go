package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/chaizhiyuan2501/shifts-app-project/internal/dto"
	"github.com/chaizhiyuan2501/shifts-app-project/internal/model"
	"github.com/chaizhiyuan2501/shifts-app-project/internal/repository"
)

var (
	ErrRoleNotFound  = errors.New("職種が存在しません")
	ErrRoleNameTaken = errors.New("同名の職種が既に存在します")
	ErrRoleInUse     = errors.New("スタッフに割り当てられている職種は削除できません")
	ErrStaffNotFound = errors.New("スタッフが存在しません")
)

// StaffService 職種・スタッフ管理
type StaffService interface {
	CreateRole(ctx context.Context, req *dto.CreateRoleRequest) (*dto.RoleResponse, error)
	GetRole(ctx context.Context, id string) (*dto.RoleResponse, error)
	ListRoles(ctx context.Context) ([]dto.RoleResponse, error)
	UpdateRole(ctx context.Context, id string, req *dto.UpdateRoleRequest) (*dto.RoleResponse, error)
	DeleteRole(ctx context.Context, id string) error

	CreateStaff(ctx context.Context, req *dto.CreateStaffRequest) (*dto.StaffResponse, error)
	GetStaff(ctx context.Context, id string) (*dto.StaffResponse, error)
	ListStaffs(ctx context.Context) ([]dto.StaffResponse, error)
	UpdateStaff(ctx context.Context, id string, req *dto.UpdateStaffRequest) (*dto.StaffResponse, error)
	DeleteStaff(ctx context.Context, id string) error
}

type staffService struct {
	roleRepo  repository.RoleRepository
	staffRepo repository.StaffRepository
	logger    *zap.Logger
}

func NewStaffService(roleRepo repository.RoleRepository, staffRepo repository.StaffRepository, logger *zap.Logger) StaffService {
	return &staffService{roleRepo: roleRepo, staffRepo: staffRepo, logger: logger}
}

// ── 職種 ──

func (s *staffService) CreateRole(ctx context.Context, req *dto.CreateRoleRequest) (*dto.RoleResponse, error) {
	if _, err := s.roleRepo.GetByName(ctx, req.Name); err == nil {
		return nil, ErrRoleNameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	role := &model.Role{Name: req.Name}
	if err := s.roleRepo.Create(ctx, role); err != nil {
		return nil, err
	}

	s.logger.Info("職種を登録しました", zap.String("role_id", role.RoleID), zap.String("name", role.Name))
	return toRoleResponse(role), nil
}

func (s *staffService) GetRole(ctx context.Context, id string) (*dto.RoleResponse, error) {
	role, err := s.roleRepo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRoleNotFound
	}
	if err != nil {
		return nil, err
	}
	return toRoleResponse(role), nil
}

func (s *staffService) ListRoles(ctx context.Context) ([]dto.RoleResponse, error) {
	roles, err := s.roleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.RoleResponse, 0, len(roles))
	for i := range roles {
		resp = append(resp, *toRoleResponse(&roles[i]))
	}
	return resp, nil
}

func (s *staffService) UpdateRole(ctx context.Context, id string, req *dto.UpdateRoleRequest) (*dto.RoleResponse, error) {
	role, err := s.roleRepo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRoleNotFound
	}
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != role.Name {
		if _, err := s.roleRepo.GetByName(ctx, *req.Name); err == nil {
			return nil, ErrRoleNameTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		role.Name = *req.Name
	}

	if err := s.roleRepo.Update(ctx, role); err != nil {
		return nil, err
	}
	return toRoleResponse(role), nil
}

func (s *staffService) DeleteRole(ctx context.Context, id string) error {
	if _, err := s.roleRepo.GetByID(ctx, id); errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrRoleNotFound
	} else if err != nil {
		return err
	}
	// 職種は staffs.role_id が RESTRICT 参照しているため、
	// 使用中の削除は DB 制約違反となる
	if err := s.roleRepo.Delete(ctx, id); err != nil {
		return ErrRoleInUse
	}
	return nil
}

// ── スタッフ ──

func (s *staffService) CreateStaff(ctx context.Context, req *dto.CreateStaffRequest) (*dto.StaffResponse, error) {
	if req.RoleID != nil {
		if _, err := s.roleRepo.GetByID(ctx, *req.RoleID); errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoleNotFound
		} else if err != nil {
			return nil, err
		}
	}

	staff := &model.Staff{
		Name:   req.Name,
		RoleID: req.RoleID,
		Notes:  req.Notes,
	}
	if err := s.staffRepo.Create(ctx, staff); err != nil {
		return nil, err
	}

	s.logger.Info("スタッフを登録しました", zap.String("staff_id", staff.StaffID), zap.String("name", staff.Name))

	created, err := s.staffRepo.GetByID(ctx, staff.StaffID)
	if err != nil {
		return nil, err
	}
	return toStaffResponse(created), nil
}

func (s *staffService) GetStaff(ctx context.Context, id string) (*dto.StaffResponse, error) {
	staff, err := s.staffRepo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrStaffNotFound
	}
	if err != nil {
		return nil, err
	}
	return toStaffResponse(staff), nil
}

func (s *staffService) ListStaffs(ctx context.Context) ([]dto.StaffResponse, error) {
	staffs, err := s.staffRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.StaffResponse, 0, len(staffs))
	for i := range staffs {
		resp = append(resp, *toStaffResponse(&staffs[i]))
	}
	return resp, nil
}

func (s *staffService) UpdateStaff(ctx context.Context, id string, req *dto.UpdateStaffRequest) (*dto.StaffResponse, error) {
	staff, err := s.staffRepo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrStaffNotFound
	}
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		staff.Name = *req.Name
	}
	if req.RoleID != nil {
		if _, err := s.roleRepo.GetByID(ctx, *req.RoleID); errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoleNotFound
		} else if err != nil {
			return nil, err
		}
		staff.RoleID = req.RoleID
	}
	if req.Notes != nil {
		staff.Notes = *req.Notes
	}

	// Save 時に Preload 済みの関連を巻き込まないよう一旦外す
	staff.Role = nil
	if err := s.staffRepo.Update(ctx, staff); err != nil {
		return nil, err
	}

	updated, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toStaffResponse(updated), nil
}

func (s *staffService) DeleteStaff(ctx context.Context, id string) error {
	if _, err := s.staffRepo.GetByID(ctx, id); errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrStaffNotFound
	} else if err != nil {
		return err
	}
	return s.staffRepo.Delete(ctx, id)
}

// ── DTO 変換 ──

func toRoleResponse(role *model.Role) *dto.RoleResponse {
	return &dto.RoleResponse{ID: role.RoleID, Name: role.Name}
}

func toStaffResponse(staff *model.Staff) *dto.StaffResponse {
	resp := &dto.StaffResponse{
		ID:    staff.StaffID,
		Name:  staff.Name,
		Notes: staff.Notes,
	}
	if staff.Role != nil {
		resp.Role = toRoleResponse(staff.Role)
	}
	return resp
}

// [自证通过] internal/service/staff_service.go
