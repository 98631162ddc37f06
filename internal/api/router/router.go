package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/drchoshit/new-weekly-plan-maker/config"
	"github.com/drchoshit/new-weekly-plan-maker/internal/api/handler"
	"github.com/drchoshit/new-weekly-plan-maker/internal/api/middleware"
	"github.com/drchoshit/new-weekly-plan-maker/pkg/jwt"
	"github.com/drchoshit/new-weekly-plan-maker/pkg/redis"
)

// Setup Gin 라우터 엔진 초기화
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 전역 미들웨어 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20)) // 1MB

	// ── 헬스체크 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 인증 모듈 (인증 불필요)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// 인증이 필요한 라우트
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			// 인증 모듈 (인증 필요)
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.GetCurrentUser)
			authorized.PUT("/auth/password", h.Auth.ChangePassword)

			// 주차 모듈
			periods := authorized.Group("/periods")
			{
				periods.GET("", h.Period.ListPeriods)
				periods.GET("/:id", h.Period.GetPeriod)
				periods.POST("", h.Period.CreatePeriod)
				periods.PUT("/:id", h.Period.UpdatePeriod)
				periods.DELETE("/:id", middleware.RoleAuth("admin"), h.Period.DeletePeriod)

				// 출결 모듈 (주차 하위)
				periods.PUT("/:id/students/:student_id/attendance", h.Attendance.SaveAttendance)
				periods.GET("/:id/students/:student_id/attendance", h.Attendance.GetAttendance)
			}

			// 학생 모듈
			students := authorized.Group("/students")
			{
				students.GET("", h.Student.ListStudents)
				students.GET("/:id", h.Student.GetStudent)
				students.POST("", h.Student.CreateStudent)
				students.PUT("/:id", h.Student.UpdateStudent)
				students.DELETE("/:id", middleware.RoleAuth("admin"), h.Student.DeleteStudent)
			}

			// 멘토 모듈
			mentors := authorized.Group("/mentors")
			{
				mentors.GET("", h.Mentor.ListMentorSlots)
				mentors.GET("/:id", h.Mentor.GetMentorSlot)
				mentors.POST("", h.Mentor.CreateMentorSlot)
				mentors.PUT("/:id", h.Mentor.UpdateMentorSlot)
				mentors.DELETE("/:id", middleware.RoleAuth("admin"), h.Mentor.DeleteMentorSlot)
			}

			// 배정 모듈
			assignments := authorized.Group("/assignments")
			{
				assignments.POST("/rank", h.Assignment.RankNewStudents)
				assignments.POST("/auto", h.Assignment.AutoAssignPeriod)
				assignments.POST("/auto/students/:student_id", h.Assignment.AutoAssignOne)
				assignments.GET("/drafts", h.Assignment.ListDrafts)
				assignments.POST("/confirm", h.Assignment.Confirm)
				assignments.GET("", h.Assignment.ListPeriodHistory)
				assignments.GET("/missed", h.Assignment.MissedSummary)
				assignments.PUT("/students/:student_id", h.Assignment.ManualAssign)
				assignments.POST("/students/:student_id/missed", h.Assignment.ToggleMissed)
				assignments.PUT("/students/:student_id/actual-mentor", h.Assignment.SetActualMentor)
				assignments.GET("/students/:student_id/history", h.Assignment.ListHistory)
			}

			// 내보내기 모듈
			export := authorized.Group("/export")
			{
				export.GET("/schedule", h.Export.ExportSchedule)
				export.GET("/calendar", h.Export.ExportStudentCalendar)
			}
		}
	}

	return r
}
