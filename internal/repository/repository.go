package repository

import "gorm.io/gorm"

// Repository 모든 Repository 의 집합 진입점
type Repository struct {
	User       UserRepository
	Period     PeriodRepository
	Student    StudentRepository
	MentorSlot MentorSlotRepository
	Attendance AttendanceRepository
	Assignment AssignmentRepository
	Draft      DraftRepository
}

// NewRepository Repository 집합 생성
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:       NewUserRepo(db),
		Period:     NewPeriodRepo(db),
		Student:    NewStudentRepo(db),
		MentorSlot: NewMentorSlotRepo(db),
		Attendance: NewAttendanceRepo(db),
		Assignment: NewAssignmentRepo(db),
		Draft:      NewDraftRepo(db),
	}
}
