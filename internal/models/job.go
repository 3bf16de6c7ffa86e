package models

type Job struct {
	BaseModel
	Title     string    `gorm:"not null" json:"title"`
	Company   string    `gorm:"not null" json:"company"`
	Location  string    `json:"location"`
	Salary    string    `json:"salary"`
	Education string    `json:"education"`
	JobType   string    `json:"job_type"`
	Category  string    `gorm:"index" json:"category"`
	Status    JobStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CreatedBy uint      `gorm:"index;not null" json:"created_by"`
}
