package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/drchoshit/new-weekly-plan-maker/internal/dto"
	"github.com/drchoshit/new-weekly-plan-maker/internal/model"
	"github.com/drchoshit/new-weekly-plan-maker/internal/repository"
)

// ── 학생 모듈 업무 에러 ──

var (
	ErrStudentNotFound   = errors.New("학생이 존재하지 않습니다")
	ErrStudentSelfBanned = errors.New("고정 멘토와 기피 멘토가 같을 수 없습니다")
)

// StudentService 학생 업무 인터페이스
type StudentService interface {
	Create(ctx context.Context, req *dto.CreateStudentRequest, operatorID string) (*dto.StudentResponse, error)
	Get(ctx context.Context, studentID string) (*dto.StudentResponse, error)
	List(ctx context.Context, req *dto.StudentListRequest) ([]dto.StudentResponse, int64, error)
	Update(ctx context.Context, studentID string, req *dto.UpdateStudentRequest, operatorID string) (*dto.StudentResponse, error)
	Delete(ctx context.Context, studentID string) error
}

type studentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStudentService StudentService 인스턴스 생성
func NewStudentService(repo *repository.Repository, logger *zap.Logger) StudentService {
	return &studentService{repo: repo, logger: logger}
}

func (s *studentService) Create(ctx context.Context, req *dto.CreateStudentRequest, operatorID string) (*dto.StudentResponse, error) {
	if req.FixedMentor != "" &&
		(req.FixedMentor == req.BannedMentor1 || req.FixedMentor == req.BannedMentor2) {
		return nil, ErrStudentSelfBanned
	}

	student := &model.Student{
		Name:          req.Name,
		BirthYear:     req.BirthYear,
		Personality:   req.Personality,
		Korean:        req.Korean,
		Math:          req.Math,
		Explore1:      req.Explore1,
		Explore2:      req.Explore2,
		FixedMentor:   req.FixedMentor,
		BannedMentor1: req.BannedMentor1,
		BannedMentor2: req.BannedMentor2,
		AssignBase:    req.AssignBase,
		IsNewStudent:  req.IsNewStudent,
	}
	student.CreatedBy = &operatorID
	student.UpdatedBy = &operatorID
	student.Version = 1

	if err := s.repo.Student.Create(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Info("학생 등록",
		zap.String("student_id", student.StudentID),
		zap.String("name", student.Name))

	return toStudentResponse(student), nil
}

func (s *studentService) Get(ctx context.Context, studentID string) (*dto.StudentResponse, error) {
	student, err := s.repo.Student.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return toStudentResponse(student), nil
}

func (s *studentService) List(ctx context.Context, req *dto.StudentListRequest) ([]dto.StudentResponse, int64, error) {
	offset := (req.GetPage() - 1) * req.GetPageSize()
	students, total, err := s.repo.Student.List(ctx, req.Keyword, offset, req.GetPageSize())
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.StudentResponse, 0, len(students))
	for i := range students {
		out = append(out, *toStudentResponse(&students[i]))
	}
	return out, total, nil
}

func (s *studentService) Update(ctx context.Context, studentID string, req *dto.UpdateStudentRequest, operatorID string) (*dto.StudentResponse, error) {
	student, err := s.repo.Student.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		student.Name = *req.Name
	}
	if req.BirthYear != nil {
		student.BirthYear = *req.BirthYear
	}
	if req.Personality != nil {
		student.Personality = *req.Personality
	}
	if req.Korean != nil {
		student.Korean = *req.Korean
	}
	if req.Math != nil {
		student.Math = *req.Math
	}
	if req.Explore1 != nil {
		student.Explore1 = *req.Explore1
	}
	if req.Explore2 != nil {
		student.Explore2 = *req.Explore2
	}
	if req.FixedMentor != nil {
		student.FixedMentor = *req.FixedMentor
	}
	if req.BannedMentor1 != nil {
		student.BannedMentor1 = *req.BannedMentor1
	}
	if req.BannedMentor2 != nil {
		student.BannedMentor2 = *req.BannedMentor2
	}
	if req.AssignBase != nil {
		student.AssignBase = *req.AssignBase
	}
	if req.IsNewStudent != nil {
		student.IsNewStudent = *req.IsNewStudent
	}

	if student.FixedMentor != "" &&
		(student.FixedMentor == student.BannedMentor1 || student.FixedMentor == student.BannedMentor2) {
		return nil, ErrStudentSelfBanned
	}

	// 낙관적 잠금: 클라이언트가 들고 있던 버전 기준으로 갱신
	student.Version = req.Version
	student.UpdatedBy = &operatorID

	if err := s.repo.Student.Update(ctx, student); err != nil {
		return nil, err
	}
	return toStudentResponse(student), nil
}

func (s *studentService) Delete(ctx context.Context, studentID string) error {
	if _, err := s.repo.Student.GetByID(ctx, studentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudentNotFound
		}
		return err
	}
	return s.repo.Student.Delete(ctx, studentID)
}

func toStudentResponse(st *model.Student) *dto.StudentResponse {
	return &dto.StudentResponse{
		ID:              st.StudentID,
		Name:            st.Name,
		BirthYear:       st.BirthYear,
		Personality:     st.Personality,
		Korean:          st.Korean,
		Math:            st.Math,
		Explore1:        st.Explore1,
		Explore2:        st.Explore2,
		FixedMentor:     st.FixedMentor,
		BannedMentor1:   st.BannedMentor1,
		BannedMentor2:   st.BannedMentor2,
		AssignBase:      st.AssignBase,
		IsNewStudent:    st.IsNewStudent,
		InitialMentor:   st.InitialMentor,
		InitialDay:      st.InitialDay,
		InitialPeriodID: st.InitialPeriodID,
		Version:         st.Version,
		CreatedAt:       st.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       st.UpdatedAt.Format(time.RFC3339),
	}
}
