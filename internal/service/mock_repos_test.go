package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/drchoshit/new-weekly-plan-maker/internal/model"
	"github.com/drchoshit/new-weekly-plan-maker/internal/repository"
	pkgerrors "github.com/drchoshit/new-weekly-plan-maker/pkg/errors"
)

// ── 테스트용 Repository 집합 ──

type testRepos struct {
	user       *mockUserRepo
	period     *mockPeriodRepo
	student    *mockStudentRepo
	mentorSlot *mockMentorSlotRepo
	attendance *mockAttendanceRepo
	assignment *mockAssignmentRepo
	draft      *mockDraftRepo
}

func newTestRepos() *testRepos {
	return &testRepos{
		user:       newMockUserRepo(),
		period:     newMockPeriodRepo(),
		student:    newMockStudentRepo(),
		mentorSlot: newMockMentorSlotRepo(),
		attendance: newMockAttendanceRepo(),
		assignment: newMockAssignmentRepo(),
		draft:      newMockDraftRepo(),
	}
}

func (r *testRepos) toRepository() *repository.Repository {
	return &repository.Repository{
		User:       r.user,
		Period:     r.period,
		Student:    r.student,
		MentorSlot: r.mentorSlot,
		Attendance: r.attendance,
		Assignment: r.assignment,
		Draft:      r.draft,
	}
}

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		user.UserID = "user-" + user.Username
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	existing, ok := m.users[user.UserID]
	if !ok || existing.Version != user.Version {
		return pkgerrors.ErrOptimisticLock
	}
	user.Version++
	m.users[user.UserID] = user
	return nil
}

// ── Mock PeriodRepository ──

type mockPeriodRepo struct {
	periods []*model.Period
}

func newMockPeriodRepo() *mockPeriodRepo {
	return &mockPeriodRepo{}
}

func (m *mockPeriodRepo) Create(_ context.Context, period *model.Period) error {
	if period.CreatedAt.IsZero() {
		period.CreatedAt = time.Now()
	}
	m.periods = append(m.periods, period)
	return nil
}

func (m *mockPeriodRepo) GetByID(_ context.Context, id string) (*model.Period, error) {
	for _, p := range m.periods {
		if p.PeriodID == id {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPeriodRepo) ListOrdered(_ context.Context) ([]model.Period, error) {
	sorted := make([]*model.Period, len(m.periods))
	copy(sorted, m.periods)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})
	out := make([]model.Period, 0, len(sorted))
	for _, p := range sorted {
		out = append(out, *p)
	}
	return out, nil
}

func (m *mockPeriodRepo) Update(_ context.Context, period *model.Period) error {
	for i, p := range m.periods {
		if p.PeriodID == period.PeriodID {
			m.periods[i] = period
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockPeriodRepo) Delete(_ context.Context, id string) error {
	for i, p := range m.periods {
		if p.PeriodID == id {
			m.periods = append(m.periods[:i], m.periods[i+1:]...)
			return nil
		}
	}
	return nil
}

// ── Mock StudentRepository ──

type mockStudentRepo struct {
	students map[string]*model.Student
	seq      int
}

func newMockStudentRepo() *mockStudentRepo {
	return &mockStudentRepo{students: make(map[string]*model.Student)}
}

func (m *mockStudentRepo) Create(_ context.Context, student *model.Student) error {
	if student.StudentID == "" {
		m.seq++
		student.StudentID = fmt.Sprintf("student-%d", m.seq)
	}
	m.students[student.StudentID] = student
	return nil
}

func (m *mockStudentRepo) GetByID(_ context.Context, id string) (*model.Student, error) {
	if s, ok := m.students[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) sortedAll() []model.Student {
	var out []model.Student
	for _, s := range m.students {
		out = append(out, *s)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

func (m *mockStudentRepo) List(_ context.Context, keyword string, offset, limit int) ([]model.Student, int64, error) {
	var filtered []model.Student
	for _, s := range m.sortedAll() {
		if keyword == "" || strings.Contains(s.Name, keyword) {
			filtered = append(filtered, s)
		}
	}
	total := int64(len(filtered))
	if offset >= len(filtered) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[offset:end], total, nil
}

func (m *mockStudentRepo) ListAll(_ context.Context) ([]model.Student, error) {
	return m.sortedAll(), nil
}

func (m *mockStudentRepo) ListNewStudents(_ context.Context) ([]model.Student, error) {
	var out []model.Student
	for _, s := range m.sortedAll() {
		if s.IsNewStudent {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockStudentRepo) Update(_ context.Context, student *model.Student) error {
	existing, ok := m.students[student.StudentID]
	if !ok || existing.Version != student.Version {
		return pkgerrors.ErrOptimisticLock
	}
	student.Version++
	m.students[student.StudentID] = student
	return nil
}

func (m *mockStudentRepo) Delete(_ context.Context, id string) error {
	delete(m.students, id)
	return nil
}

// ── Mock MentorSlotRepository ──

type mockMentorSlotRepo struct {
	slots []*model.MentorSlot
	seq   int
}

func newMockMentorSlotRepo() *mockMentorSlotRepo {
	return &mockMentorSlotRepo{}
}

func (m *mockMentorSlotRepo) Create(_ context.Context, slot *model.MentorSlot) error {
	if slot.MentorSlotID == "" {
		m.seq++
		slot.MentorSlotID = fmt.Sprintf("slot-%d", m.seq)
	}
	m.slots = append(m.slots, slot)
	return nil
}

func (m *mockMentorSlotRepo) GetByID(_ context.Context, id string) (*model.MentorSlot, error) {
	for _, s := range m.slots {
		if s.MentorSlotID == id {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMentorSlotRepo) List(_ context.Context, day, keyword string, offset, limit int) ([]model.MentorSlot, int64, error) {
	var filtered []model.MentorSlot
	for _, s := range m.slots {
		if day != "" && s.Day != day {
			continue
		}
		if keyword != "" && !strings.Contains(s.Name, keyword) {
			continue
		}
		filtered = append(filtered, *s)
	}
	total := int64(len(filtered))
	if offset >= len(filtered) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[offset:end], total, nil
}

func (m *mockMentorSlotRepo) ListAll(_ context.Context) ([]model.MentorSlot, error) {
	out := make([]model.MentorSlot, 0, len(m.slots))
	for _, s := range m.slots {
		out = append(out, *s)
	}
	return out, nil
}

func (m *mockMentorSlotRepo) ListByDay(_ context.Context, day string) ([]model.MentorSlot, error) {
	var out []model.MentorSlot
	for _, s := range m.slots {
		if s.Day == day {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *mockMentorSlotRepo) Update(_ context.Context, slot *model.MentorSlot) error {
	for i, s := range m.slots {
		if s.MentorSlotID == slot.MentorSlotID {
			if s.Version != slot.Version {
				return pkgerrors.ErrOptimisticLock
			}
			slot.Version++
			m.slots[i] = slot
			return nil
		}
	}
	return pkgerrors.ErrOptimisticLock
}

func (m *mockMentorSlotRepo) Delete(_ context.Context, id string) error {
	for i, s := range m.slots {
		if s.MentorSlotID == id {
			m.slots = append(m.slots[:i], m.slots[i+1:]...)
			return nil
		}
	}
	return nil
}

// ── Mock AttendanceRepository ──

type mockAttendanceRepo struct {
	entries map[string]*model.AttendanceEntry // key: period:student:day
}

func newMockAttendanceRepo() *mockAttendanceRepo {
	return &mockAttendanceRepo{entries: make(map[string]*model.AttendanceEntry)}
}

func attKey(periodID, studentID, day string) string {
	return periodID + ":" + studentID + ":" + day
}

func (m *mockAttendanceRepo) Upsert(_ context.Context, entries []model.AttendanceEntry) error {
	for i := range entries {
		e := entries[i]
		m.entries[attKey(e.PeriodID, e.StudentID, e.Day)] = &e
	}
	return nil
}

func (m *mockAttendanceRepo) ListByPeriodStudent(_ context.Context, periodID, studentID string) ([]model.AttendanceEntry, error) {
	var out []model.AttendanceEntry
	for _, e := range m.entries {
		if e.PeriodID == periodID && e.StudentID == studentID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (m *mockAttendanceRepo) ListByPeriod(_ context.Context, periodID string) ([]model.AttendanceEntry, error) {
	var out []model.AttendanceEntry
	for _, e := range m.entries {
		if e.PeriodID == periodID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (m *mockAttendanceRepo) DeleteByPeriodStudent(_ context.Context, periodID, studentID string) error {
	for k, e := range m.entries {
		if e.PeriodID == periodID && e.StudentID == studentID {
			delete(m.entries, k)
		}
	}
	return nil
}

// ── Mock AssignmentRepository ──

type mockAssignmentRepo struct {
	records map[string]*model.MentorAssignment // key: student:period
	order   []string
}

func newMockAssignmentRepo() *mockAssignmentRepo {
	return &mockAssignmentRepo{records: make(map[string]*model.MentorAssignment)}
}

func assignKey(studentID, periodID string) string {
	return studentID + ":" + periodID
}

func (m *mockAssignmentRepo) Upsert(_ context.Context, record *model.MentorAssignment) error {
	key := assignKey(record.StudentID, record.PeriodID)
	if _, ok := m.records[key]; !ok {
		m.order = append(m.order, key)
	}
	m.records[key] = record
	return nil
}

func (m *mockAssignmentRepo) Get(_ context.Context, studentID, periodID string) (*model.MentorAssignment, error) {
	if r, ok := m.records[assignKey(studentID, periodID)]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAssignmentRepo) ListByStudent(_ context.Context, studentID string) ([]model.MentorAssignment, error) {
	var out []model.MentorAssignment
	for _, key := range m.order {
		r := m.records[key]
		if r != nil && r.StudentID == studentID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *mockAssignmentRepo) ListByPeriod(_ context.Context, periodID string) ([]model.MentorAssignment, error) {
	var out []model.MentorAssignment
	for _, key := range m.order {
		r := m.records[key]
		if r != nil && r.PeriodID == periodID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *mockAssignmentRepo) Update(_ context.Context, record *model.MentorAssignment) error {
	key := assignKey(record.StudentID, record.PeriodID)
	if _, ok := m.records[key]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.records[key] = record
	return nil
}

func (m *mockAssignmentRepo) Delete(_ context.Context, studentID, periodID string) error {
	delete(m.records, assignKey(studentID, periodID))
	return nil
}

// ── Mock DraftRepository ──

type mockDraftRepo struct {
	drafts map[string]*model.WeeklyMentorDraft // key: student:period
	order  []string
}

func newMockDraftRepo() *mockDraftRepo {
	return &mockDraftRepo{drafts: make(map[string]*model.WeeklyMentorDraft)}
}

func (m *mockDraftRepo) Upsert(_ context.Context, draft *model.WeeklyMentorDraft) error {
	key := assignKey(draft.StudentID, draft.PeriodID)
	if _, ok := m.drafts[key]; !ok {
		m.order = append(m.order, key)
	}
	m.drafts[key] = draft
	return nil
}

func (m *mockDraftRepo) Get(_ context.Context, studentID, periodID string) (*model.WeeklyMentorDraft, error) {
	if d, ok := m.drafts[assignKey(studentID, periodID)]; ok {
		return d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDraftRepo) ListByPeriod(_ context.Context, periodID string) ([]model.WeeklyMentorDraft, error) {
	var out []model.WeeklyMentorDraft
	for _, key := range m.order {
		d := m.drafts[key]
		if d != nil && d.PeriodID == periodID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (m *mockDraftRepo) Delete(_ context.Context, studentID, periodID string) error {
	key := assignKey(studentID, periodID)
	if _, ok := m.drafts[key]; ok {
		delete(m.drafts, key)
	}
	return nil
}

func (m *mockDraftRepo) DeleteByPeriod(_ context.Context, periodID string) error {
	for key, d := range m.drafts {
		if d.PeriodID == periodID {
			delete(m.drafts, key)
		}
	}
	return nil
}
