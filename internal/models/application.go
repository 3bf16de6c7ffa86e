package models

type Application struct {
	BaseModel
	// Уникальность пары (job_id, applicant_phone) закреплена в хранилище:
	// проверка в коде не закрывает гонку двух одновременных откликов.
	JobID          uint   `gorm:"not null;uniqueIndex:idx_applications_job_phone" json:"job_id"`
	ApplicantName  string `gorm:"not null" json:"applicant_name"`
	ApplicantPhone string `gorm:"not null;uniqueIndex:idx_applications_job_phone" json:"applicant_phone"`
	ApplicantEmail string `json:"applicant_email"`
	Message        string `json:"message"`
}
