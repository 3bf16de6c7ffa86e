package services

import (
	"rabota_backend/internal/email"
	"rabota_backend/internal/logger"
	"rabota_backend/internal/models"
	"rabota_backend/internal/repositories"
	"rabota_backend/internal/services/dto"
	"rabota_backend/pkg/apperrors"
)

type ApplicationService interface {
	Create(jobID uint, req *dto.CreateApplicationRequest) error
	ListForJob(jobID, recruiterID uint) ([]models.Application, error)
}

type ApplicationServiceImpl struct {
	appRepo       repositories.ApplicationRepository
	jobRepo       repositories.JobRepository
	userRepo      repositories.UserRepository
	emailProvider email.Provider
}

func NewApplicationService(
	appRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	userRepo repositories.UserRepository,
	emailProvider email.Provider,
) ApplicationService {
	return &ApplicationServiceImpl{
		appRepo:       appRepo,
		jobRepo:       jobRepo,
		userRepo:      userRepo,
		emailProvider: emailProvider,
	}
}

// Create - отклик на вакансию.
// Порядок проверок: вакансия существует -> вакансия открыта -> нет дубля
// по (job_id, phone). Предварительная проверка дубля дает быстрый 409,
// но одновременные отклики окончательно разводит уникальный индекс.
func (s *ApplicationServiceImpl) Create(jobID uint, req *dto.CreateApplicationRequest) error {
	if jobID == 0 {
		return apperrors.NewBadRequestError("Invalid job id")
	}

	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrJobNotFound
		}
		return apperrors.InternalError(err)
	}
	if !job.Status.IsAccepting() {
		return apperrors.ErrJobNotAccepting
	}

	exists, err := s.appRepo.ExistsByJobAndPhone(jobID, req.ApplicantPhone)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if exists {
		return apperrors.ErrDuplicateApplication
	}

	app := &models.Application{
		JobID:          jobID,
		ApplicantName:  req.ApplicantName,
		ApplicantPhone: req.ApplicantPhone,
		ApplicantEmail: req.ApplicantEmail,
		Message:        req.Message,
	}
	if err := s.appRepo.Create(app); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicateApplication) {
			return apperrors.ErrDuplicateApplication
		}
		return apperrors.InternalError(err)
	}

	s.notifyRecruiter(job, app)
	return nil
}

// ListForJob - отклики на вакансию, новые первыми.
// recruiterID > 0 включает проверку владения: чужие отклики не отдаются.
func (s *ApplicationServiceImpl) ListForJob(jobID, recruiterID uint) ([]models.Application, error) {
	if jobID == 0 {
		return nil, apperrors.NewBadRequestError("Invalid job id")
	}

	if recruiterID > 0 {
		owned, err := s.jobRepo.ExistsForOwner(jobID, recruiterID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		if !owned {
			return nil, apperrors.ErrJobAccessDenied
		}
	}

	apps, err := s.appRepo.ListByJob(jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return apps, nil
}

// notifyRecruiter отправляет владельцу вакансии письмо о новом отклике.
// Отправка асинхронная и необязательная: отказ SMTP не влияет на ответ кандидату.
func (s *ApplicationServiceImpl) notifyRecruiter(job *models.Job, app *models.Application) {
	if s.emailProvider == nil {
		return
	}

	go func() {
		recruiter, err := s.userRepo.FindByID(job.CreatedBy)
		if err != nil {
			logger.Warn("Failed to load recruiter for notification", "job_id", job.ID, "error", err.Error())
			return
		}
		if err := s.emailProvider.SendApplicationReceived(recruiter.Email, job, app); err != nil {
			logger.Warn("Failed to send application notification", "job_id", job.ID, "error", err.Error())
		}
	}()
}
