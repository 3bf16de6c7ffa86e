package services

import (
	"errors"

	"rabota_backend/internal/models"
	"rabota_backend/internal/repositories"
	"rabota_backend/internal/services/dto"
	"rabota_backend/pkg/apperrors"
)

type JobService interface {
	Search(req dto.SearchJobsRequest) ([]models.Job, error)
	GetJob(id uint) (*models.Job, error)
	CreateJob(req *dto.CreateJobRequest) (*models.Job, error)
	SetStatus(jobID, recruiterID uint, status string) error
	Delete(jobID, recruiterID uint) error
}

type JobServiceImpl struct {
	jobRepo repositories.JobRepository
}

func NewJobService(jobRepo repositories.JobRepository) JobService {
	return &JobServiceImpl{jobRepo: jobRepo}
}

// Search возвращает вакансии по всем заданным фильтрам, новые первыми
func (s *JobServiceImpl) Search(req dto.SearchJobsRequest) ([]models.Job, error) {
	jobs, err := s.jobRepo.Search(repositories.JobFilter{
		Text:      req.Q,
		Location:  req.Location,
		Education: req.Education,
		Category:  req.Category,
		OwnerID:   req.CreatedBy,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}

func (s *JobServiceImpl) GetJob(id uint) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) CreateJob(req *dto.CreateJobRequest) (*models.Job, error) {
	job := &models.Job{
		Title:     req.Title,
		Company:   req.Company,
		Location:  req.Location,
		Salary:    req.Salary,
		Education: req.Education,
		JobType:   req.JobType,
		Category:  req.Category,
		Status:    models.JobStatusActive,
		CreatedBy: req.CreatedBy,
	}
	if err := s.jobRepo.Create(job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

// SetStatus меняет статус вакансии от имени владельца.
// "Не найдено" и "не владелец" не различаются в ответе: ErrJobAccessDenied
// одинаков для обоих случаев. Сам UPDATE повторяет предикат владения,
// поэтому ноль затронутых строк после пройденной проверки означает гонку
// с конкурентным удалением и отдается как 500.
func (s *JobServiceImpl) SetStatus(jobID, recruiterID uint, status string) error {
	newStatus := models.JobStatus(status)
	if !newStatus.IsValid() {
		return apperrors.ErrInvalidJobStatus
	}
	if jobID == 0 || recruiterID == 0 {
		return apperrors.NewBadRequestError("Invalid request")
	}

	owned, err := s.jobRepo.ExistsForOwner(jobID, recruiterID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if !owned {
		return apperrors.ErrJobAccessDenied
	}

	rows, err := s.jobRepo.UpdateStatusOwned(jobID, recruiterID, newStatus)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if rows == 0 {
		return apperrors.InternalError(errors.New("job status update affected no rows"))
	}
	return nil
}

// Delete удаляет вакансию владельца, с той же семантикой отказа, что и SetStatus
func (s *JobServiceImpl) Delete(jobID, recruiterID uint) error {
	if jobID == 0 || recruiterID == 0 {
		return apperrors.NewBadRequestError("Invalid request")
	}

	owned, err := s.jobRepo.ExistsForOwner(jobID, recruiterID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if !owned {
		return apperrors.ErrJobAccessDenied
	}

	rows, err := s.jobRepo.DeleteOwned(jobID, recruiterID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if rows == 0 {
		return apperrors.InternalError(errors.New("job delete affected no rows"))
	}
	return nil
}
