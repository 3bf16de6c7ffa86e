package repositories

import (
	"errors"

	"rabota_backend/internal/models"

	"gorm.io/gorm"
)

var ErrDuplicateApplication = errors.New("application already exists")

type ApplicationRepository interface {
	Create(app *models.Application) error
	ListByJob(jobID uint) ([]models.Application, error)
	ExistsByJobAndPhone(jobID uint, phone string) (bool, error)
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

// Create вставляет отклик. Дубликат (job_id, applicant_phone) ловится по
// уникальному индексу: предварительная проверка в сервисе дает быстрый и
// понятный ответ, но одновременные вставки сериализует только constraint.
func (r *ApplicationRepositoryImpl) Create(app *models.Application) error {
	if err := r.db.Create(app).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateApplication
		}
		return err
	}
	return nil
}

func (r *ApplicationRepositoryImpl) ListByJob(jobID uint) ([]models.Application, error) {
	apps := []models.Application{}
	err := r.db.Where("job_id = ?", jobID).
		Order("id DESC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *ApplicationRepositoryImpl) ExistsByJobAndPhone(jobID uint, phone string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Application{}).
		Where("job_id = ? AND applicant_phone = ?", jobID, phone).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
