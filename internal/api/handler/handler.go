package handler

import "github.com/drchoshit/new-weekly-plan-maker/internal/service"

// Handler 모든 Handler 의 집합 진입점
type Handler struct {
	Auth       *AuthHandler
	Period     *PeriodHandler
	Student    *StudentHandler
	Mentor     *MentorHandler
	Attendance *AttendanceHandler
	Assignment *AssignmentHandler
	Export     *ExportHandler
}

// NewHandler Handler 집합 생성
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(svc.Auth),
		Period:     NewPeriodHandler(svc.Period),
		Student:    NewStudentHandler(svc.Student),
		Mentor:     NewMentorHandler(svc.Mentor),
		Attendance: NewAttendanceHandler(svc.Attendance),
		Assignment: NewAssignmentHandler(svc.Assignment),
		Export:     NewExportHandler(svc.Export),
	}
}
