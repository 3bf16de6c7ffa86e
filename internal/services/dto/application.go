package dto

// CreateApplicationRequest - отклик на вакансию.
// Email и сообщение опциональны, как в исходной форме отклика.
type CreateApplicationRequest struct {
	ApplicantName  string `json:"applicant_name" validate:"required"`
	ApplicantPhone string `json:"applicant_phone" validate:"required"`
	ApplicantEmail string `json:"applicant_email"`
	Message        string `json:"message"`
}
