package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJobStatus_IsValid(t *testing.T) {
	assert.True(t, JobStatusActive.IsValid())
	assert.True(t, JobStatusClosed.IsValid())
	assert.True(t, JobStatusExpired.IsValid())

	assert.False(t, JobStatus("").IsValid())
	assert.False(t, JobStatus("archived").IsValid())
	assert.False(t, JobStatus("Active").IsValid())
}

func TestJobStatus_IsAccepting(t *testing.T) {
	assert.True(t, JobStatusActive.IsAccepting())
	assert.False(t, JobStatusClosed.IsAccepting())
	assert.False(t, JobStatusExpired.IsAccepting())
}

func TestUserRole_Normalize(t *testing.T) {
	assert.Equal(t, UserRoleRecruiter, UserRoleLegacyEmployer.Normalize())
	assert.Equal(t, UserRoleWorker, UserRoleLegacyJobseeker.Normalize())

	// Канонические значения проходят без изменений
	assert.Equal(t, UserRoleRecruiter, UserRoleRecruiter.Normalize())
	assert.Equal(t, UserRoleWorker, UserRoleWorker.Normalize())
	assert.Equal(t, UserRole("unknown"), UserRole("unknown").Normalize())
}

func TestUserRole_IsValid(t *testing.T) {
	assert.True(t, UserRoleRecruiter.IsValid())
	assert.True(t, UserRoleWorker.IsValid())
	assert.True(t, UserRoleLegacyEmployer.IsValid())
	assert.True(t, UserRoleLegacyJobseeker.IsValid())

	assert.False(t, UserRole("admin").IsValid())
	assert.False(t, UserRole("").IsValid())
}
