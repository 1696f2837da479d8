package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/chaizhiyuan2501/shifts-app-project/internal/model"
)

// ── Mock RoleRepository ──

type mockRoleRepo struct {
	roles map[string]*model.Role
}

func newMockRoleRepo() *mockRoleRepo {
	return &mockRoleRepo{roles: make(map[string]*model.Role)}
}

func (m *mockRoleRepo) Create(_ context.Context, role *model.Role) error {
	if role.RoleID == "" {
		role.RoleID = fmt.Sprintf("role-%d", len(m.roles)+1)
	}
	m.roles[role.RoleID] = role
	return nil
}

func (m *mockRoleRepo) GetByID(_ context.Context, id string) (*model.Role, error) {
	if r, ok := m.roles[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRoleRepo) GetByName(_ context.Context, name string) (*model.Role, error) {
	for _, r := range m.roles {
		if r.Name == name {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRoleRepo) List(_ context.Context) ([]model.Role, error) {
	var result []model.Role
	for _, r := range m.roles {
		result = append(result, *r)
	}
	return result, nil
}

func (m *mockRoleRepo) Update(_ context.Context, role *model.Role) error {
	m.roles[role.RoleID] = role
	return nil
}

func (m *mockRoleRepo) Delete(_ context.Context, id string) error {
	delete(m.roles, id)
	return nil
}

// ── Mock StaffRepository ──

type mockStaffRepo struct {
	staffs map[string]*model.Staff
}

func newMockStaffRepo() *mockStaffRepo {
	return &mockStaffRepo{staffs: make(map[string]*model.Staff)}
}

func (m *mockStaffRepo) Create(_ context.Context, staff *model.Staff) error {
	if staff.StaffID == "" {
		staff.StaffID = fmt.Sprintf("staff-%d", len(m.staffs)+1)
	}
	m.staffs[staff.StaffID] = staff
	return nil
}

func (m *mockStaffRepo) GetByID(_ context.Context, id string) (*model.Staff, error) {
	if s, ok := m.staffs[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStaffRepo) List(_ context.Context) ([]model.Staff, error) {
	var result []model.Staff
	for _, s := range m.staffs {
		result = append(result, *s)
	}
	return result, nil
}

func (m *mockStaffRepo) Update(_ context.Context, staff *model.Staff) error {
	m.staffs[staff.StaffID] = staff
	return nil
}

func (m *mockStaffRepo) Delete(_ context.Context, id string) error {
	delete(m.staffs, id)
	return nil
}

// ── Mock ShiftTypeRepository ──

type mockShiftTypeRepo struct {
	shifts map[string]*model.ShiftType
}

func newMockShiftTypeRepo() *mockShiftTypeRepo {
	return &mockShiftTypeRepo{shifts: make(map[string]*model.ShiftType)}
}

func (m *mockShiftTypeRepo) Create(_ context.Context, shift *model.ShiftType) error {
	if shift.ShiftTypeID == "" {
		shift.ShiftTypeID = "shift-" + shift.Code
	}
	m.shifts[shift.ShiftTypeID] = shift
	return nil
}

func (m *mockShiftTypeRepo) GetByID(_ context.Context, id string) (*model.ShiftType, error) {
	if s, ok := m.shifts[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockShiftTypeRepo) GetByCode(_ context.Context, code string) (*model.ShiftType, error) {
	for _, s := range m.shifts {
		if s.Code == code {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockShiftTypeRepo) List(_ context.Context) ([]model.ShiftType, error) {
	var result []model.ShiftType
	for _, s := range m.shifts {
		result = append(result, *s)
	}
	return result, nil
}

func (m *mockShiftTypeRepo) Update(_ context.Context, shift *model.ShiftType) error {
	m.shifts[shift.ShiftTypeID] = shift
	return nil
}

func (m *mockShiftTypeRepo) Delete(_ context.Context, id string) error {
	delete(m.shifts, id)
	return nil
}

// ── Mock WorkScheduleRepository ──

// shiftRepo への参照を持ち、一覧取得時に Shift 関連を解決する
type mockWorkScheduleRepo struct {
	schedules map[string]*model.WorkSchedule
	shiftRepo *mockShiftTypeRepo
	seq       int
}

func newMockWorkScheduleRepo(shiftRepo *mockShiftTypeRepo) *mockWorkScheduleRepo {
	return &mockWorkScheduleRepo{
		schedules: make(map[string]*model.WorkSchedule),
		shiftRepo: shiftRepo,
	}
}

func (m *mockWorkScheduleRepo) attachShift(ws *model.WorkSchedule) *model.WorkSchedule {
	copied := *ws
	if s, ok := m.shiftRepo.shifts[ws.ShiftID]; ok {
		copied.Shift = s
	}
	return &copied
}

func (m *mockWorkScheduleRepo) Upsert(_ context.Context, ws *model.WorkSchedule) (bool, error) {
	for _, existing := range m.schedules {
		if existing.StaffID == ws.StaffID && existing.Date.Equal(ws.Date) {
			ws.WorkScheduleID = existing.WorkScheduleID
			m.schedules[ws.WorkScheduleID] = ws
			return false, nil
		}
	}
	m.seq++
	ws.WorkScheduleID = fmt.Sprintf("ws-%d", m.seq)
	m.schedules[ws.WorkScheduleID] = ws
	return true, nil
}

func (m *mockWorkScheduleRepo) UpsertChain(ctx context.Context, schedules []*model.WorkSchedule) ([]bool, error) {
	created := make([]bool, len(schedules))
	for i, ws := range schedules {
		ok, err := m.Upsert(ctx, ws)
		if err != nil {
			return nil, err
		}
		created[i] = ok
	}
	return created, nil
}

func (m *mockWorkScheduleRepo) GetByID(_ context.Context, id string) (*model.WorkSchedule, error) {
	if ws, ok := m.schedules[id]; ok {
		return m.attachShift(ws), nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockWorkScheduleRepo) List(_ context.Context, staffID string, from, to *time.Time) ([]model.WorkSchedule, error) {
	var result []model.WorkSchedule
	for _, ws := range m.schedules {
		if staffID != "" && ws.StaffID != staffID {
			continue
		}
		if from != nil && ws.Date.Before(*from) {
			continue
		}
		if to != nil && ws.Date.After(*to) {
			continue
		}
		result = append(result, *m.attachShift(ws))
	}
	return result, nil
}

func (m *mockWorkScheduleRepo) ListByStaffAndRange(_ context.Context, staffID string, from, to time.Time) ([]model.WorkSchedule, error) {
	var result []model.WorkSchedule
	for _, ws := range m.schedules {
		if ws.StaffID != staffID {
			continue
		}
		if ws.Date.Before(from) || !ws.Date.Before(to) {
			continue
		}
		result = append(result, *m.attachShift(ws))
	}
	return result, nil
}

func (m *mockWorkScheduleRepo) ListByDate(_ context.Context, date time.Time) ([]model.WorkSchedule, error) {
	var result []model.WorkSchedule
	for _, ws := range m.schedules {
		if ws.Date.Equal(date) {
			result = append(result, *m.attachShift(ws))
		}
	}
	return result, nil
}

func (m *mockWorkScheduleRepo) Update(_ context.Context, ws *model.WorkSchedule) error {
	m.schedules[ws.WorkScheduleID] = ws
	return nil
}

func (m *mockWorkScheduleRepo) Delete(_ context.Context, id string) error {
	delete(m.schedules, id)
	return nil
}

// ── Mock GuestRepository ──

type mockGuestRepo struct {
	guests map[string]*model.Guest
}

func newMockGuestRepo() *mockGuestRepo {
	return &mockGuestRepo{guests: make(map[string]*model.Guest)}
}

func (m *mockGuestRepo) Create(_ context.Context, guest *model.Guest) error {
	if guest.GuestID == "" {
		guest.GuestID = fmt.Sprintf("guest-%d", len(m.guests)+1)
	}
	m.guests[guest.GuestID] = guest
	return nil
}

func (m *mockGuestRepo) GetByID(_ context.Context, id string) (*model.Guest, error) {
	if g, ok := m.guests[id]; ok {
		return g, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockGuestRepo) List(_ context.Context) ([]model.Guest, error) {
	var result []model.Guest
	for _, g := range m.guests {
		result = append(result, *g)
	}
	return result, nil
}

func (m *mockGuestRepo) Update(_ context.Context, guest *model.Guest) error {
	m.guests[guest.GuestID] = guest
	return nil
}

func (m *mockGuestRepo) Delete(_ context.Context, id string) error {
	delete(m.guests, id)
	return nil
}

// ── Mock VisitTypeRepository ──

type mockVisitTypeRepo struct {
	types map[string]*model.VisitType
}

func newMockVisitTypeRepo() *mockVisitTypeRepo {
	return &mockVisitTypeRepo{types: make(map[string]*model.VisitType)}
}

func (m *mockVisitTypeRepo) Create(_ context.Context, vt *model.VisitType) error {
	if vt.VisitTypeID == "" {
		vt.VisitTypeID = "vt-" + vt.Code
	}
	m.types[vt.VisitTypeID] = vt
	return nil
}

func (m *mockVisitTypeRepo) GetByID(_ context.Context, id string) (*model.VisitType, error) {
	if v, ok := m.types[id]; ok {
		return v, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockVisitTypeRepo) GetByCode(_ context.Context, code string) (*model.VisitType, error) {
	for _, v := range m.types {
		if v.Code == code {
			return v, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockVisitTypeRepo) List(_ context.Context) ([]model.VisitType, error) {
	var result []model.VisitType
	for _, v := range m.types {
		result = append(result, *v)
	}
	return result, nil
}

func (m *mockVisitTypeRepo) Update(_ context.Context, vt *model.VisitType) error {
	m.types[vt.VisitTypeID] = vt
	return nil
}

func (m *mockVisitTypeRepo) Delete(_ context.Context, id string) error {
	delete(m.types, id)
	return nil
}

// ── Mock VisitScheduleRepository ──

type mockVisitScheduleRepo struct {
	schedules map[string]*model.VisitSchedule
	typeRepo  *mockVisitTypeRepo
	seq       int
}

func newMockVisitScheduleRepo(typeRepo *mockVisitTypeRepo) *mockVisitScheduleRepo {
	return &mockVisitScheduleRepo{
		schedules: make(map[string]*model.VisitSchedule),
		typeRepo:  typeRepo,
	}
}

func (m *mockVisitScheduleRepo) attachType(vs *model.VisitSchedule) *model.VisitSchedule {
	copied := *vs
	if t, ok := m.typeRepo.types[vs.VisitTypeID]; ok {
		copied.VisitType = t
	}
	return &copied
}

func (m *mockVisitScheduleRepo) Upsert(_ context.Context, vs *model.VisitSchedule) (bool, error) {
	for _, existing := range m.schedules {
		if existing.GuestID == vs.GuestID && existing.Date.Equal(vs.Date) {
			vs.VisitScheduleID = existing.VisitScheduleID
			m.schedules[vs.VisitScheduleID] = vs
			return false, nil
		}
	}
	m.seq++
	vs.VisitScheduleID = fmt.Sprintf("vs-%d", m.seq)
	m.schedules[vs.VisitScheduleID] = vs
	return true, nil
}

func (m *mockVisitScheduleRepo) GetByID(_ context.Context, id string) (*model.VisitSchedule, error) {
	if vs, ok := m.schedules[id]; ok {
		return m.attachType(vs), nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockVisitScheduleRepo) List(_ context.Context, guestID string, from, to *time.Time) ([]model.VisitSchedule, error) {
	var result []model.VisitSchedule
	for _, vs := range m.schedules {
		if guestID != "" && vs.GuestID != guestID {
			continue
		}
		if from != nil && vs.Date.Before(*from) {
			continue
		}
		if to != nil && vs.Date.After(*to) {
			continue
		}
		result = append(result, *m.attachType(vs))
	}
	return result, nil
}

func (m *mockVisitScheduleRepo) ListByDate(_ context.Context, date time.Time) ([]model.VisitSchedule, error) {
	var result []model.VisitSchedule
	for _, vs := range m.schedules {
		if vs.Date.Equal(date) {
			result = append(result, *m.attachType(vs))
		}
	}
	return result, nil
}

func (m *mockVisitScheduleRepo) Update(_ context.Context, vs *model.VisitSchedule) error {
	m.schedules[vs.VisitScheduleID] = vs
	return nil
}

func (m *mockVisitScheduleRepo) Delete(_ context.Context, id string) error {
	delete(m.schedules, id)
	return nil
}

// ── Mock MealTypeRepository ──

type mockMealTypeRepo struct {
	types map[string]*model.MealType
}

func newMockMealTypeRepo() *mockMealTypeRepo {
	return &mockMealTypeRepo{types: make(map[string]*model.MealType)}
}

func (m *mockMealTypeRepo) Create(_ context.Context, mt *model.MealType) error {
	if mt.MealTypeID == "" {
		mt.MealTypeID = "mt-" + mt.Code
	}
	m.types[mt.MealTypeID] = mt
	return nil
}

func (m *mockMealTypeRepo) GetByID(_ context.Context, id string) (*model.MealType, error) {
	if t, ok := m.types[id]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMealTypeRepo) GetByCode(_ context.Context, code string) (*model.MealType, error) {
	for _, t := range m.types {
		if t.Code == code {
			return t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMealTypeRepo) List(_ context.Context) ([]model.MealType, error) {
	var result []model.MealType
	for _, t := range m.types {
		result = append(result, *t)
	}
	return result, nil
}

func (m *mockMealTypeRepo) Update(_ context.Context, mt *model.MealType) error {
	m.types[mt.MealTypeID] = mt
	return nil
}

func (m *mockMealTypeRepo) Delete(_ context.Context, id string) error {
	delete(m.types, id)
	return nil
}

// ── Mock MealOrderRepository ──

type mockMealOrderRepo struct {
	orders   map[string]*model.MealOrder
	typeRepo *mockMealTypeRepo
	seq      int
}

func newMockMealOrderRepo(typeRepo *mockMealTypeRepo) *mockMealOrderRepo {
	return &mockMealOrderRepo{
		orders:   make(map[string]*model.MealOrder),
		typeRepo: typeRepo,
	}
}

func (m *mockMealOrderRepo) attachType(o *model.MealOrder) *model.MealOrder {
	copied := *o
	if t, ok := m.typeRepo.types[o.MealTypeID]; ok {
		copied.MealType = t
	}
	return &copied
}

func sameParty(a, b *string) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return *a == *b
}

func (m *mockMealOrderRepo) UpsertByKey(_ context.Context, order *model.MealOrder) (bool, error) {
	for _, existing := range m.orders {
		if existing.Date.Equal(order.Date) &&
			existing.MealTypeID == order.MealTypeID &&
			sameParty(existing.GuestID, order.GuestID) &&
			sameParty(existing.StaffID, order.StaffID) {
			order.MealOrderID = existing.MealOrderID
			m.orders[order.MealOrderID] = order
			return false, nil
		}
	}
	m.seq++
	order.MealOrderID = fmt.Sprintf("order-%d", m.seq)
	m.orders[order.MealOrderID] = order
	return true, nil
}

func (m *mockMealOrderRepo) GetByID(_ context.Context, id string) (*model.MealOrder, error) {
	if o, ok := m.orders[id]; ok {
		return m.attachType(o), nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMealOrderRepo) List(_ context.Context, from, to *time.Time) ([]model.MealOrder, error) {
	var result []model.MealOrder
	for _, o := range m.orders {
		if from != nil && o.Date.Before(*from) {
			continue
		}
		if to != nil && o.Date.After(*to) {
			continue
		}
		result = append(result, *m.attachType(o))
	}
	return result, nil
}

func (m *mockMealOrderRepo) ListByDate(_ context.Context, date time.Time) ([]model.MealOrder, error) {
	var result []model.MealOrder
	for _, o := range m.orders {
		if o.Date.Equal(date) {
			result = append(result, *m.attachType(o))
		}
	}
	return result, nil
}

func (m *mockMealOrderRepo) ListByRange(_ context.Context, from, to time.Time) ([]model.MealOrder, error) {
	var result []model.MealOrder
	for _, o := range m.orders {
		if o.Date.Before(from) || o.Date.After(to) {
			continue
		}
		result = append(result, *m.attachType(o))
	}
	return result, nil
}

func (m *mockMealOrderRepo) Update(_ context.Context, order *model.MealOrder) error {
	m.orders[order.MealOrderID] = order
	return nil
}

func (m *mockMealOrderRepo) Delete(_ context.Context, id string) error {
	delete(m.orders, id)
	return nil
}

// [自证通过] internal/service/mock_repos_test.go
