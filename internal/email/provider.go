package email

import (
	"rabota_backend/internal/models"
)

// Provider - отправка уведомлений. Сервисы хранят его nil-able:
// при неконфигурированном SMTP уведомления просто не отправляются.
type Provider interface {
	// SendApplicationReceived уведомляет рекрутера о новом отклике на его вакансию
	SendApplicationReceived(to string, job *models.Job, app *models.Application) error
}
