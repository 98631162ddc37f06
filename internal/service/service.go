package service

import (
	"go.uber.org/zap"

	"github.com/drchoshit/new-weekly-plan-maker/config"
	"github.com/drchoshit/new-weekly-plan-maker/internal/repository"
	"github.com/drchoshit/new-weekly-plan-maker/pkg/jwt"
	"github.com/drchoshit/new-weekly-plan-maker/pkg/redis"
)

// Service 모든 Service 의 집합 진입점
type Service struct {
	Auth       AuthService
	Period     PeriodService
	Student    StudentService
	Mentor     MentorService
	Attendance AttendanceService
	Assignment AssignmentService
	Export     ExportService
}

// NewService Service 집합 생성
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:       NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		Period:     NewPeriodService(repo, logger),
		Student:    NewStudentService(repo, logger),
		Mentor:     NewMentorService(repo, logger),
		Attendance: NewAttendanceService(repo, logger),
		Assignment: NewAssignmentService(repo, logger),
		Export:     NewExportService(repo, logger),
	}
}
