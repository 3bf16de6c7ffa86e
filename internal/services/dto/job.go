package dto

// SearchJobsRequest - фильтры поиска вакансий (все опциональны)
type SearchJobsRequest struct {
	Q         string `form:"q"`
	Location  string `form:"location"`
	Education string `form:"education"`
	Category  string `form:"category"`
	CreatedBy uint   `form:"created_by"`
}

// CreateJobRequest - публикация вакансии
type CreateJobRequest struct {
	Title     string `json:"title" validate:"required"`
	Company   string `json:"company" validate:"required"`
	Location  string `json:"location"`
	Salary    string `json:"salary"`
	Education string `json:"education"`
	JobType   string `json:"job_type"`
	Category  string `json:"category"`
	CreatedBy uint   `json:"created_by" validate:"required,gt=0"`
}

// UpdateJobStatusRequest - смена статуса вакансии владельцем.
// Валидность самого статуса проверяет сервис (единое место, где
// перечислено множество допустимых значений).
type UpdateJobStatusRequest struct {
	RecruiterID uint   `json:"recruiter_id" validate:"required,gt=0"`
	Status      string `json:"status" validate:"required"`
}

// DeleteJobRequest - удаление вакансии владельцем
type DeleteJobRequest struct {
	RecruiterID uint `json:"recruiter_id" validate:"required,gt=0"`
}
