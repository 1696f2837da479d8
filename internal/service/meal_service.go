package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/chaizhiyuan2501/shifts-app-project/internal/dto"
	"github.com/chaizhiyuan2501/shifts-app-project/internal/model"
	"github.com/chaizhiyuan2501/shifts-app-project/internal/repository"
	"github.com/chaizhiyuan2501/shifts-app-project/pkg/redis"
)

var (
	ErrMealTypeNotFound  = errors.New("食事種類が存在しません")
	ErrMealTypeCodeTaken = errors.New("同一コードの食事種類が既に存在します")
	ErrMealOrderNotFound = errors.New("食事注文が存在しません")
	ErrMealPartyInvalid  = errors.New("guest_id と staff_id はどちらか一方のみ指定してください")
)

// 食事種類の標準コード
const (
	MealCodeBreakfast = "朝"
	MealCodeLunch     = "昼"
	MealCodeDinner    = "夕"
)

// MealService 食事種類・食事注文管理と自動生成・集計
type MealService interface {
	CreateMealType(ctx context.Context, req *dto.CreateMealTypeRequest) (*dto.MealTypeResponse, error)
	GetMealType(ctx context.Context, id string) (*dto.MealTypeResponse, error)
	ListMealTypes(ctx context.Context) ([]dto.MealTypeResponse, error)
	UpdateMealType(ctx context.Context, id string, req *dto.UpdateMealTypeRequest) (*dto.MealTypeResponse, error)
	DeleteMealType(ctx context.Context, id string) error

	// CreateOrder 同一 (date, meal_type, 対象者) が既に存在する場合は上書き更新する
	// 戻り値の bool は新規作成なら true
	CreateOrder(ctx context.Context, req *dto.CreateMealOrderRequest) (*dto.MealOrderResponse, bool, error)
	GetOrder(ctx context.Context, id string) (*dto.MealOrderResponse, error)
	ListOrders(ctx context.Context, req *dto.MealOrderListRequest) ([]dto.MealOrderResponse, error)
	UpdateOrder(ctx context.Context, id string, req *dto.UpdateMealOrderRequest) (*dto.MealOrderResponse, error)
	DeleteOrder(ctx context.Context, id string) error

	// GenerateForDate 指定日の来訪・勤務記録から食事注文を導出して保存する
	// 何度実行しても注文が重複しない（幂等）
	GenerateForDate(ctx context.Context, req *dto.GenerateMealOrdersRequest) (*dto.GenerateMealOrdersResponse, error)
	// CountForDate 指定日の注文数を食事種類の表示名別に集計する
	CountForDate(ctx context.Context, dateStr string) (*dto.MealCountResponse, error)
	// CountForPeriods 複数期間の注文数をまとめて集計する
	// 不正な期間エントリは読み飛ばし、残りの結果のみ返す
	CountForPeriods(ctx context.Context, req *dto.PeriodCountRequest) ([]dto.PeriodCountResponse, error)
}

type mealService struct {
	mealTypeRepo repository.MealTypeRepository
	orderRepo    repository.MealOrderRepository
	visitRepo    repository.VisitScheduleRepository
	scheduleRepo repository.WorkScheduleRepository
	guestRepo    repository.GuestRepository
	staffRepo    repository.StaffRepository
	rule         MealRule
	cache        *redis.Client
	logger       *zap.Logger
}

func NewMealService(
	mealTypeRepo repository.MealTypeRepository,
	orderRepo repository.MealOrderRepository,
	visitRepo repository.VisitScheduleRepository,
	scheduleRepo repository.WorkScheduleRepository,
	guestRepo repository.GuestRepository,
	staffRepo repository.StaffRepository,
	rule MealRule,
	cache *redis.Client,
	logger *zap.Logger,
) MealService {
	return &mealService{
		mealTypeRepo: mealTypeRepo,
		orderRepo:    orderRepo,
		visitRepo:    visitRepo,
		scheduleRepo: scheduleRepo,
		guestRepo:    guestRepo,
		staffRepo:    staffRepo,
		rule:         rule,
		cache:        cache,
		logger:       logger,
	}
}

// ── 食事種類 ──

func (s *mealService) CreateMealType(ctx context.Context, req *dto.CreateMealTypeRequest) (*dto.MealTypeResponse, error) {
	if _, err := s.mealTypeRepo.GetByCode(ctx, req.Code); err == nil {
		return nil, ErrMealTypeCodeTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	mt := &model.MealType{Code: req.Code, DisplayName: req.DisplayName}
	if err := s.mealTypeRepo.Create(ctx, mt); err != nil {
		return nil, err
	}
	s.logger.Info("食事種類を登録しました", zap.String("meal_type_id", mt.MealTypeID), zap.String("code", mt.Code))
	return toMealTypeResponse(mt), nil
}

func (s *mealService) GetMealType(ctx context.Context, id string) (*dto.MealTypeResponse, error) {
	mt, err := s.mealTypeRepo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMealTypeNotFound
	}
	if err != nil {
		return nil, err
	}
	return toMealTypeResponse(mt), nil
}

func (s *mealService) ListMealTypes(ctx context.Context) ([]dto.MealTypeResponse, error) {
	mts, err := s.mealTypeRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.MealTypeResponse, 0, len(mts))
	for i := range mts {
		resp = append(resp, *toMealTypeResponse(&mts[i]))
	}
	return resp, nil
}

func (s *mealService) UpdateMealType(ctx context.Context, id string, req *dto.UpdateMealTypeRequest) (*dto.MealTypeResponse, error) {
	mt, err := s.mealTypeRepo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMealTypeNotFound
	}
	if err != nil {
		return nil, err
	}
	if req.DisplayName != nil {
		mt.DisplayName = *req.DisplayName
	}
	if err := s.mealTypeRepo.Update(ctx, mt); err != nil {
		return nil, err
	}
	return toMealTypeResponse(mt), nil
}

func (s *mealService) DeleteMealType(ctx context.Context, id string) error {
	if _, err := s.mealTypeRepo.GetByID(ctx, id); errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrMealTypeNotFound
	} else if err != nil {
		return err
	}
	return s.mealTypeRepo.Delete(ctx, id)
}

// ── 食事注文 ──

func (s *mealService) CreateOrder(ctx context.Context, req *dto.CreateMealOrderRequest) (*dto.MealOrderResponse, bool, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, false, err
	}
	// 対象者は利用者かスタッフのどちらか一方のみ
	if (req.GuestID == nil) == (req.StaffID == nil) {
		return nil, false, ErrMealPartyInvalid
	}
	if _, err := s.mealTypeRepo.GetByID(ctx, req.MealTypeID); errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, ErrMealTypeNotFound
	} else if err != nil {
		return nil, false, err
	}
	if req.GuestID != nil {
		if _, err := s.guestRepo.GetByID(ctx, *req.GuestID); errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrGuestNotFound
		} else if err != nil {
			return nil, false, err
		}
	}
	if req.StaffID != nil {
		if _, err := s.staffRepo.GetByID(ctx, *req.StaffID); errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrStaffNotFound
		} else if err != nil {
			return nil, false, err
		}
	}

	ordered := true
	if req.Ordered != nil {
		ordered = *req.Ordered
	}
	order := &model.MealOrder{
		Date:          date,
		MealTypeID:    req.MealTypeID,
		GuestID:       req.GuestID,
		StaffID:       req.StaffID,
		Ordered:       ordered,
		AutoGenerated: false, // 手動登録
		Note:          req.Note,
	}
	created, err := s.orderRepo.UpsertByKey(ctx, order)
	if err != nil {
		return nil, false, err
	}
	s.invalidateCountCache(ctx, req.Date)

	saved, err := s.orderRepo.GetByID(ctx, order.MealOrderID)
	if err != nil {
		return nil, false, err
	}
	return toMealOrderResponse(saved), created, nil
}

func (s *mealService) GetOrder(ctx context.Context, id string) (*dto.MealOrderResponse, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMealOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return toMealOrderResponse(order), nil
}

func (s *mealService) ListOrders(ctx context.Context, req *dto.MealOrderListRequest) ([]dto.MealOrderResponse, error) {
	// date 単独指定は from = to = date として扱う
	fromStr, toStr := req.DateFrom, req.DateTo
	if req.Date != "" {
		fromStr, toStr = req.Date, req.Date
	}
	from, to, err := parseDateRange(fromStr, toStr)
	if err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.List(ctx, from, to)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.MealOrderResponse, 0, len(orders))
	for i := range orders {
		resp = append(resp, *toMealOrderResponse(&orders[i]))
	}
	return resp, nil
}

func (s *mealService) UpdateOrder(ctx context.Context, id string, req *dto.UpdateMealOrderRequest) (*dto.MealOrderResponse, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMealOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	if req.Ordered != nil {
		order.Ordered = *req.Ordered
	}
	if req.Note != nil {
		order.Note = *req.Note
	}

	order.MealType = nil
	order.Guest = nil
	order.Staff = nil
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	s.invalidateCountCache(ctx, order.Date.Format(model.DateLayout))

	updated, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toMealOrderResponse(updated), nil
}

func (s *mealService) DeleteOrder(ctx context.Context, id string) error {
	order, err := s.orderRepo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrMealOrderNotFound
	}
	if err != nil {
		return err
	}
	if err := s.orderRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateCountCache(ctx, order.Date.Format(model.DateLayout))
	return nil
}

// ── 自動生成 ──

// mealCodes 要否から対象コード一覧へ展開する
func mealCodes(needs MealNeeds) []string {
	codes := make([]string, 0, 3)
	if needs.Breakfast {
		codes = append(codes, MealCodeBreakfast)
	}
	if needs.Lunch {
		codes = append(codes, MealCodeLunch)
	}
	if needs.Dinner {
		codes = append(codes, MealCodeDinner)
	}
	return codes
}

func (s *mealService) GenerateForDate(ctx context.Context, req *dto.GenerateMealOrdersRequest) (*dto.GenerateMealOrdersResponse, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	mealTypes, err := s.mealTypeRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	byCode := make(map[string]*model.MealType, len(mealTypes))
	for i := range mealTypes {
		byCode[mealTypes[i].Code] = &mealTypes[i]
	}

	resp := &dto.GenerateMealOrdersResponse{Date: req.Date}

	// 注文 1 件分の保存。食事種類が未登録のコードは警告してスキップ
	save := func(code string, guestID, staffID *string) error {
		mt, ok := byCode[code]
		if !ok {
			s.logger.Warn("食事種類が未登録のため注文生成をスキップします",
				zap.String("code", code), zap.String("date", req.Date))
			resp.Skipped++
			return nil
		}
		order := &model.MealOrder{
			Date:          date,
			MealTypeID:    mt.MealTypeID,
			GuestID:       guestID,
			StaffID:       staffID,
			Ordered:       true,
			AutoGenerated: true,
		}
		if _, err := s.orderRepo.UpsertByKey(ctx, order); err != nil {
			return err
		}
		resp.Generated++
		return nil
	}

	// 利用者分
	visits, err := s.visitRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	for i := range visits {
		vs := &visits[i]
		guestID := vs.GuestID
		for _, code := range mealCodes(s.rule.GuestNeeds(vs)) {
			if err := save(code, &guestID, nil); err != nil {
				return nil, err
			}
		}
	}

	// スタッフ分
	schedules, err := s.scheduleRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	for i := range schedules {
		ws := &schedules[i]
		staffID := ws.StaffID
		for _, code := range mealCodes(s.rule.StaffNeeds(ws)) {
			if err := save(code, nil, &staffID); err != nil {
				return nil, err
			}
		}
	}

	s.invalidateCountCache(ctx, req.Date)
	s.logger.Info("食事注文を自動生成しました",
		zap.String("date", req.Date),
		zap.String("rule", s.rule.Name()),
		zap.Int("generated", resp.Generated),
		zap.Int("skipped", resp.Skipped))
	return resp, nil
}

// ── 集計 ──

// countOrders 表示名別に件数を積み上げる
// 注文が無い食事種類はキーを作らない（0 埋めしない）
func countOrders(orders []model.MealOrder) (guest, staff, total map[string]int) {
	guest = make(map[string]int)
	staff = make(map[string]int)
	total = make(map[string]int)
	for i := range orders {
		o := &orders[i]
		if o.MealType == nil {
			continue
		}
		name := o.MealType.DisplayName
		total[name]++
		if o.ForGuest() {
			guest[name]++
		} else if o.ForStaff() {
			staff[name]++
		}
	}
	return guest, staff, total
}

func (s *mealService) CountForDate(ctx context.Context, dateStr string) (*dto.MealCountResponse, error) {
	date, err := parseDate(dateStr)
	if err != nil {
		return nil, err
	}

	// キャッシュ命中時はそのまま返す（Redis 不可時は直接査库）
	if s.cache != nil {
		if payload, err := s.cache.GetDailyCount(ctx, dateStr); err != nil {
			s.logger.Warn("集計キャッシュの読み取りに失敗しました", zap.Error(err))
		} else if payload != nil {
			var cached dto.MealCountResponse
			if err := json.Unmarshal(payload, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	orders, err := s.orderRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	guest, staffCount, total := countOrders(orders)
	resp := &dto.MealCountResponse{Guest: guest, Staff: staffCount, Total: total}

	if s.cache != nil {
		if payload, err := json.Marshal(resp); err == nil {
			if err := s.cache.SetDailyCount(ctx, dateStr, payload); err != nil {
				s.logger.Warn("集計キャッシュの書き込みに失敗しました", zap.Error(err))
			}
		}
	}
	return resp, nil
}

func (s *mealService) CountForPeriods(ctx context.Context, req *dto.PeriodCountRequest) ([]dto.PeriodCountResponse, error) {
	results := make([]dto.PeriodCountResponse, 0, len(req.Periods))
	for _, p := range req.Periods {
		start, err := time.Parse(model.DateLayout, p.StartDate)
		if err != nil {
			s.logger.Debug("不正な期間エントリを読み飛ばします", zap.String("start_date", p.StartDate))
			continue
		}
		end, err := time.Parse(model.DateLayout, p.EndDate)
		if err != nil {
			s.logger.Debug("不正な期間エントリを読み飛ばします", zap.String("end_date", p.EndDate))
			continue
		}
		// 開始日 > 終了日 の期間は注文が1件も該当せず、空の集計として返る
		orders, err := s.orderRepo.ListByRange(ctx, start, end)
		if err != nil {
			return nil, err
		}
		guest, staffCount, total := countOrders(orders)
		results = append(results, dto.PeriodCountResponse{
			Period: p,
			Guest:  guest,
			Staff:  staffCount,
			Total:  total,
		})
	}
	return results, nil
}

// invalidateCountCache 注文変更後に該当日のキャッシュを破棄する（ベストエフォート）
func (s *mealService) invalidateCountCache(ctx context.Context, dateStr string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateDailyCount(ctx, dateStr); err != nil {
		s.logger.Warn("集計キャッシュの破棄に失敗しました", zap.String("date", dateStr), zap.Error(err))
	}
}

// ── DTO 変換 ──

func toMealTypeResponse(mt *model.MealType) *dto.MealTypeResponse {
	return &dto.MealTypeResponse{
		ID:          mt.MealTypeID,
		Code:        mt.Code,
		DisplayName: mt.DisplayName,
	}
}

func toMealOrderResponse(order *model.MealOrder) *dto.MealOrderResponse {
	resp := &dto.MealOrderResponse{
		ID:            order.MealOrderID,
		Date:          order.Date.Format(model.DateLayout),
		Ordered:       order.Ordered,
		AutoGenerated: order.AutoGenerated,
		Note:          order.Note,
	}
	if order.MealType != nil {
		resp.MealType = toMealTypeResponse(order.MealType)
	}
	if order.Guest != nil {
		resp.Guest = toGuestResponse(order.Guest)
	}
	if order.Staff != nil {
		resp.Staff = toStaffResponse(order.Staff)
	}
	return resp
}

// [自证通过] internal/service/meal_service.go
