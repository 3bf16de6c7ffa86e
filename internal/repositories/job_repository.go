package repositories

import (
	"errors"

	"rabota_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

// JobFilter - критерии поиска вакансий. Пустые поля не участвуют в выборке,
// заполненные комбинируются через AND.
type JobFilter struct {
	Text      string // подстрока в title ИЛИ company
	Location  string // подстрока
	Education string // подстрока
	Category  string // точное совпадение
	OwnerID   uint   // точное совпадение created_by (0 - не фильтровать)
}

type JobRepository interface {
	Create(job *models.Job) error
	FindByID(id uint) (*models.Job, error)
	Search(filter JobFilter) ([]models.Job, error)
	ExistsForOwner(jobID, ownerID uint) (bool, error)
	UpdateStatusOwned(jobID, ownerID uint, status models.JobStatus) (int64, error)
	DeleteOwned(jobID, ownerID uint) (int64, error)
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) Create(job *models.Job) error {
	if job.Status == "" {
		job.Status = models.JobStatusActive
	}
	return r.db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(id uint) (*models.Job, error) {
	var job models.Job
	err := r.db.First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) Search(filter JobFilter) ([]models.Job, error) {
	q := r.db.Model(&models.Job{})

	if filter.Text != "" {
		pattern := "%" + filter.Text + "%"
		q = q.Where("title LIKE ? OR company LIKE ?", pattern, pattern)
	}
	if filter.Location != "" {
		q = q.Where("location LIKE ?", "%"+filter.Location+"%")
	}
	if filter.Education != "" {
		q = q.Where("education LIKE ?", "%"+filter.Education+"%")
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.OwnerID > 0 {
		q = q.Where("created_by = ?", filter.OwnerID)
	}

	jobs := []models.Job{}
	if err := q.Order("id DESC").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *JobRepositoryImpl) ExistsForOwner(jobID, ownerID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Job{}).
		Where("id = ? AND created_by = ?", jobID, ownerID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateStatusOwned меняет статус атомарно: предикат владения входит в сам
// UPDATE, поэтому проверка ExistsForOwner перед вызовом не обязана быть
// авторитетной. Возвращает число затронутых строк.
func (r *JobRepositoryImpl) UpdateStatusOwned(jobID, ownerID uint, status models.JobStatus) (int64, error) {
	res := r.db.Model(&models.Job{}).
		Where("id = ? AND created_by = ?", jobID, ownerID).
		Update("status", status)
	return res.RowsAffected, res.Error
}

// DeleteOwned удаляет вакансию с тем же атомарным предикатом владения.
func (r *JobRepositoryImpl) DeleteOwned(jobID, ownerID uint) (int64, error) {
	res := r.db.Where("id = ? AND created_by = ?", jobID, ownerID).
		Delete(&models.Job{})
	return res.RowsAffected, res.Error
}
