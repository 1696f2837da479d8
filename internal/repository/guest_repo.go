package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/chaizhiyuan2501/shifts-app-project/internal/model"
)

// GuestRepository 利用者数据访问接口
type GuestRepository interface {
	Create(ctx context.Context, guest *model.Guest) error
	GetByID(ctx context.Context, id string) (*model.Guest, error)
	List(ctx context.Context) ([]model.Guest, error)
	Update(ctx context.Context, guest *model.Guest) error
	Delete(ctx context.Context, id string) error
}

// VisitTypeRepository 来訪種別数据访问接口
type VisitTypeRepository interface {
	Create(ctx context.Context, vt *model.VisitType) error
	GetByID(ctx context.Context, id string) (*model.VisitType, error)
	GetByCode(ctx context.Context, code string) (*model.VisitType, error)
	List(ctx context.Context) ([]model.VisitType, error)
	Update(ctx context.Context, vt *model.VisitType) error
	Delete(ctx context.Context, id string) error
}

// VisitScheduleRepository 来訪スケジュール数据访问接口
type VisitScheduleRepository interface {
	// Upsert 以 (guest_id, date) 为幂等键创建或更新，返回是否为新建
	Upsert(ctx context.Context, vs *model.VisitSchedule) (bool, error)
	GetByID(ctx context.Context, id string) (*model.VisitSchedule, error)
	List(ctx context.Context, guestID string, from, to *time.Time) ([]model.VisitSchedule, error)
	ListByDate(ctx context.Context, date time.Time) ([]model.VisitSchedule, error)
	Update(ctx context.Context, vs *model.VisitSchedule) error
	Delete(ctx context.Context, id string) error
}

// ── Guest Repository 实现 ──

type guestRepo struct {
	db *gorm.DB
}

func NewGuestRepo(db *gorm.DB) GuestRepository {
	return &guestRepo{db: db}
}

func (r *guestRepo) Create(ctx context.Context, guest *model.Guest) error {
	return r.db.WithContext(ctx).Create(guest).Error
}

func (r *guestRepo) GetByID(ctx context.Context, id string) (*model.Guest, error) {
	var guest model.Guest
	err := r.db.WithContext(ctx).
		Where("guest_id = ?", id).
		First(&guest).Error
	if err != nil {
		return nil, err
	}
	return &guest, nil
}

func (r *guestRepo) List(ctx context.Context) ([]model.Guest, error) {
	var guests []model.Guest
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&guests).Error
	return guests, err
}

func (r *guestRepo) Update(ctx context.Context, guest *model.Guest) error {
	return r.db.WithContext(ctx).Save(guest).Error
}

func (r *guestRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("guest_id = ?", id).
		Delete(&model.Guest{}).Error
}

// ── VisitType Repository 实现 ──

type visitTypeRepo struct {
	db *gorm.DB
}

func NewVisitTypeRepo(db *gorm.DB) VisitTypeRepository {
	return &visitTypeRepo{db: db}
}

func (r *visitTypeRepo) Create(ctx context.Context, vt *model.VisitType) error {
	return r.db.WithContext(ctx).Create(vt).Error
}

func (r *visitTypeRepo) GetByID(ctx context.Context, id string) (*model.VisitType, error) {
	var vt model.VisitType
	err := r.db.WithContext(ctx).
		Where("visit_type_id = ?", id).
		First(&vt).Error
	if err != nil {
		return nil, err
	}
	return &vt, nil
}

func (r *visitTypeRepo) GetByCode(ctx context.Context, code string) (*model.VisitType, error) {
	var vt model.VisitType
	err := r.db.WithContext(ctx).
		Where("code = ?", code).
		First(&vt).Error
	if err != nil {
		return nil, err
	}
	return &vt, nil
}

func (r *visitTypeRepo) List(ctx context.Context) ([]model.VisitType, error) {
	var vts []model.VisitType
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&vts).Error
	return vts, err
}

func (r *visitTypeRepo) Update(ctx context.Context, vt *model.VisitType) error {
	return r.db.WithContext(ctx).Save(vt).Error
}

func (r *visitTypeRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("visit_type_id = ?", id).
		Delete(&model.VisitType{}).Error
}

// ── VisitSchedule Repository 实现 ──

type visitScheduleRepo struct {
	db *gorm.DB
}

func NewVisitScheduleRepo(db *gorm.DB) VisitScheduleRepository {
	return &visitScheduleRepo{db: db}
}

func (r *visitScheduleRepo) Upsert(ctx context.Context, vs *model.VisitSchedule) (bool, error) {
	tx := r.db.WithContext(ctx)
	var existing model.VisitSchedule
	err := tx.
		Where("guest_id = ? AND date = ?", vs.GuestID, vs.Date).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := tx.Create(vs).Error; err != nil {
			return false, err
		}
		return true, nil
	}
	if err != nil {
		return false, err
	}
	vs.VisitScheduleID = existing.VisitScheduleID
	vs.CreatedAt = existing.CreatedAt
	if err := tx.Save(vs).Error; err != nil {
		return false, err
	}
	return false, nil
}

func (r *visitScheduleRepo) GetByID(ctx context.Context, id string) (*model.VisitSchedule, error) {
	var vs model.VisitSchedule
	err := r.db.WithContext(ctx).
		Preload("Guest").
		Preload("VisitType").
		Where("visit_schedule_id = ?", id).
		First(&vs).Error
	if err != nil {
		return nil, err
	}
	return &vs, nil
}

func (r *visitScheduleRepo) List(ctx context.Context, guestID string, from, to *time.Time) ([]model.VisitSchedule, error) {
	query := r.db.WithContext(ctx).
		Preload("Guest").
		Preload("VisitType")
	if guestID != "" {
		query = query.Where("guest_id = ?", guestID)
	}
	if from != nil {
		query = query.Where("date >= ?", *from)
	}
	if to != nil {
		query = query.Where("date <= ?", *to)
	}
	var schedules []model.VisitSchedule
	err := query.Order("date ASC").Find(&schedules).Error
	return schedules, err
}

func (r *visitScheduleRepo) ListByDate(ctx context.Context, date time.Time) ([]model.VisitSchedule, error) {
	var schedules []model.VisitSchedule
	err := r.db.WithContext(ctx).
		Preload("Guest").
		Preload("VisitType").
		Where("date = ?", date).
		Find(&schedules).Error
	return schedules, err
}

func (r *visitScheduleRepo) Update(ctx context.Context, vs *model.VisitSchedule) error {
	return r.db.WithContext(ctx).Save(vs).Error
}

func (r *visitScheduleRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("visit_schedule_id = ?", id).
		Delete(&model.VisitSchedule{}).Error
}

// [自证通过] internal/repository/guest_repo.go
