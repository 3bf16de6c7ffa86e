package models

type JobStatus string
type UserRole string

const (
	JobStatusActive  JobStatus = "active"
	JobStatusClosed  JobStatus = "closed"
	JobStatusExpired JobStatus = "expired"

	UserRoleRecruiter UserRole = "recruiter"
	UserRoleWorker    UserRole = "worker"

	// Легаси-синонимы ролей из старой базы. В новые записи не пишутся,
	// при чтении приводятся к каноническим значениям.
	UserRoleLegacyEmployer  UserRole = "employer"
	UserRoleLegacyJobseeker UserRole = "jobseeker"
)

// IsValid сообщает, входит ли статус в допустимое множество.
func (s JobStatus) IsValid() bool {
	switch s {
	case JobStatusActive, JobStatusClosed, JobStatusExpired:
		return true
	}
	return false
}

// IsAccepting - принимает ли вакансия отклики.
// closed и expired терминальны для откликов.
func (s JobStatus) IsAccepting() bool {
	return s == JobStatusActive
}

// Normalize приводит легаси-синонимы к каноническим ролям.
// employer -> recruiter, jobseeker -> worker.
func (r UserRole) Normalize() UserRole {
	switch r {
	case UserRoleLegacyEmployer:
		return UserRoleRecruiter
	case UserRoleLegacyJobseeker:
		return UserRoleWorker
	}
	return r
}

// IsValid сообщает, допустима ли роль (легаси-синонимы считаются допустимыми,
// так как нормализуются перед записью).
func (r UserRole) IsValid() bool {
	switch r.Normalize() {
	case UserRoleRecruiter, UserRoleWorker:
		return true
	}
	return false
}
