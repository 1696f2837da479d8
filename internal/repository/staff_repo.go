package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/chaizhiyuan2501/shifts-app-project/internal/model"
)

// RoleRepository 職種数据访问接口
type RoleRepository interface {
	Create(ctx context.Context, role *model.Role) error
	GetByID(ctx context.Context, id string) (*model.Role, error)
	GetByName(ctx context.Context, name string) (*model.Role, error)
	List(ctx context.Context) ([]model.Role, error)
	Update(ctx context.Context, role *model.Role) error
	Delete(ctx context.Context, id string) error
}

// StaffRepository スタッフ数据访问接口
type StaffRepository interface {
	Create(ctx context.Context, staff *model.Staff) error
	GetByID(ctx context.Context, id string) (*model.Staff, error)
	List(ctx context.Context) ([]model.Staff, error)
	Update(ctx context.Context, staff *model.Staff) error
	Delete(ctx context.Context, id string) error
}

// ── Role Repository 实现 ──

type roleRepo struct {
	db *gorm.DB
}

func NewRoleRepo(db *gorm.DB) RoleRepository {
	return &roleRepo{db: db}
}

func (r *roleRepo) Create(ctx context.Context, role *model.Role) error {
	return r.db.WithContext(ctx).Create(role).Error
}

func (r *roleRepo) GetByID(ctx context.Context, id string) (*model.Role, error) {
	var role model.Role
	err := r.db.WithContext(ctx).
		Where("role_id = ?", id).
		First(&role).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *roleRepo) GetByName(ctx context.Context, name string) (*model.Role, error) {
	var role model.Role
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&role).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *roleRepo) List(ctx context.Context) ([]model.Role, error) {
	var roles []model.Role
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&roles).Error
	return roles, err
}

func (r *roleRepo) Update(ctx context.Context, role *model.Role) error {
	return r.db.WithContext(ctx).Save(role).Error
}

func (r *roleRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("role_id = ?", id).
		Delete(&model.Role{}).Error
}

// ── Staff Repository 实现 ──

type staffRepo struct {
	db *gorm.DB
}

func NewStaffRepo(db *gorm.DB) StaffRepository {
	return &staffRepo{db: db}
}

func (r *staffRepo) Create(ctx context.Context, staff *model.Staff) error {
	return r.db.WithContext(ctx).Create(staff).Error
}

func (r *staffRepo) GetByID(ctx context.Context, id string) (*model.Staff, error) {
	var staff model.Staff
	err := r.db.WithContext(ctx).
		Preload("Role").
		Where("staff_id = ?", id).
		First(&staff).Error
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepo) List(ctx context.Context) ([]model.Staff, error) {
	var staffs []model.Staff
	err := r.db.WithContext(ctx).
		Preload("Role").
		Order("created_at ASC").
		Find(&staffs).Error
	return staffs, err
}

func (r *staffRepo) Update(ctx context.Context, staff *model.Staff) error {
	return r.db.WithContext(ctx).Save(staff).Error
}

func (r *staffRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("staff_id = ?", id).
		Delete(&model.Staff{}).Error
}
