package services

// ServiceContainer - все сервисы приложения в одном месте,
// собирается в internal/app и раздается хендлерам.
type ServiceContainer struct {
	AuthService        AuthService
	JobService         JobService
	ApplicationService ApplicationService
}
