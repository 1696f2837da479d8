package model

import "time"

// MealType 食事種類 — 对应 meal_types
// コード: 朝 / 昼 / 夕、表示名: 朝食 / 昼食 / 夕食
type MealType struct {
	MealTypeID  string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"meal_type_id"`
	Code        string `gorm:"type:varchar(10);not null;uniqueIndex"          json:"code"`
	DisplayName string `gorm:"type:varchar(20);not null"                      json:"display_name"`
	BaseModel
}

func (MealType) TableName() string { return "meal_types" }

// MealOrder 1 人 1 食分の注文 — 对应 meal_orders
// staff / guest はどちらか一方のみ（DB の CHECK 制約と
// NULLS NOT DISTINCT 複合ユニークインデックスで担保）
type MealOrder struct {
	MealOrderID   string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"meal_order_id"`
	Date          time.Time `gorm:"type:date;not null"                             json:"date"`
	MealTypeID    string    `gorm:"type:uuid;not null"                             json:"meal_type_id"`
	GuestID       *string   `gorm:"type:uuid"                                      json:"guest_id,omitempty"`
	StaffID       *string   `gorm:"type:uuid"                                      json:"staff_id,omitempty"`
	Ordered       bool      `gorm:"not null;default:true"                          json:"ordered"`
	AutoGenerated bool      `gorm:"not null;default:true"                          json:"auto_generated"`
	Note          string    `gorm:"type:text"                                      json:"note,omitempty"`
	BaseModel

	// 关联
	MealType *MealType `gorm:"foreignKey:MealTypeID;references:MealTypeID" json:"meal_type,omitempty"`
	Guest    *Guest    `gorm:"foreignKey:GuestID;references:GuestID"       json:"guest,omitempty"`
	Staff    *Staff    `gorm:"foreignKey:StaffID;references:StaffID"       json:"staff,omitempty"`
}

func (MealOrder) TableName() string { return "meal_orders" }

// ForGuest 利用者向け注文かどうか
func (o *MealOrder) ForGuest() bool { return o.GuestID != nil }

// ForStaff スタッフ向け注文かどうか
func (o *MealOrder) ForStaff() bool { return o.StaffID != nil }

// [自证通过] internal/model/meal.go
