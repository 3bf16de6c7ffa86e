package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"rabota_backend/internal/models"
	"rabota_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestApplicationFlow - отклик на активную вакансию и просмотр владельцем
func TestApplicationFlow(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	owner := helpers.CreateUser(t, ts.DB, "Рекрутер Отклики", "apps.owner@test.com", "pass123", models.UserRoleRecruiter)
	job := helpers.CreateJob(t, ts.DB, owner.ID, "Вакансия с откликами", models.JobStatusActive)

	createRes, createBodyStr := ts.SendRequest(t, "POST", fmt.Sprintf("/api/v1/jobs/%d/applications", job.ID), "", map[string]interface{}{
		"applicant_name":  "Бауыржан Соискатель",
		"applicant_phone": "+77010000001",
		"applicant_email": "bauyrzhan@test.com",
		"message":         "Готов выйти завтра",
	})
	assert.Equal(t, http.StatusCreated, createRes.StatusCode, createBodyStr)
	assert.Contains(t, createBodyStr, "Application submitted")

	listRes, listBodyStr := ts.SendRequest(t, "GET", fmt.Sprintf("/api/v1/jobs/%d/applications?recruiter_id=%d", job.ID, owner.ID), "", nil)
	require.Equal(t, http.StatusOK, listRes.StatusCode, listBodyStr)

	var listResp struct {
		OK           bool `json:"ok"`
		Applications []struct {
			ID             uint   `json:"id"`
			JobID          uint   `json:"job_id"`
			ApplicantName  string `json:"applicant_name"`
			ApplicantPhone string `json:"applicant_phone"`
		} `json:"applications"`
	}
	require.NoError(t, json.Unmarshal([]byte(listBodyStr), &listResp))
	require.Len(t, listResp.Applications, 1)
	assert.Equal(t, job.ID, listResp.Applications[0].JobID)
	assert.Equal(t, "Бауыржан Соискатель", listResp.Applications[0].ApplicantName)
}

// TestApplication_DuplicatePhone - повторный отклик тем же телефоном дает 409
func TestApplication_DuplicatePhone(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	owner := helpers.CreateUser(t, ts.DB, "Рекрутер Дубль", "apps.dup@test.com", "pass123", models.UserRoleRecruiter)
	job := helpers.CreateJob(t, ts.DB, owner.ID, "Вакансия дубль отклика", models.JobStatusActive)

	body := map[string]interface{}{
		"applicant_name":  "Первый",
		"applicant_phone": "+77010000002",
	}
	firstRes, _ := ts.SendRequest(t, "POST", fmt.Sprintf("/api/v1/jobs/%d/applications", job.ID), "", body)
	require.Equal(t, http.StatusCreated, firstRes.StatusCode)

	body["applicant_name"] = "Второй"
	secondRes, secondBodyStr := ts.SendRequest(t, "POST", fmt.Sprintf("/api/v1/jobs/%d/applications", job.ID), "", body)
	assert.Equal(t, http.StatusConflict, secondRes.StatusCode)
	assert.Contains(t, secondBodyStr, "Already applied with this phone")

	// Тот же телефон на другую вакансию проходит
	otherJob := helpers.CreateJob(t, ts.DB, owner.ID, "Другая вакансия дубль", models.JobStatusActive)
	otherRes, _ := ts.SendRequest(t, "POST", fmt.Sprintf("/api/v1/jobs/%d/applications", otherJob.ID), "", body)
	assert.Equal(t, http.StatusCreated, otherRes.StatusCode)
}

// TestApplication_JobNotAccepting - закрытые и истекшие вакансии
// не принимают отклики
func TestApplication_JobNotAccepting(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	owner := helpers.CreateUser(t, ts.DB, "Рекрутер Закрыто", "apps.closed@test.com", "pass123", models.UserRoleRecruiter)

	for _, status := range []models.JobStatus{models.JobStatusClosed, models.JobStatusExpired} {
		job := helpers.CreateJob(t, ts.DB, owner.ID, "Недоступная вакансия "+string(status), status)

		res, bodyStr := ts.SendRequest(t, "POST", fmt.Sprintf("/api/v1/jobs/%d/applications", job.ID), "", map[string]interface{}{
			"applicant_name":  "Опоздавший",
			"applicant_phone": "+77010000003",
		})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Contains(t, bodyStr, "This job is not accepting applications")
	}
}

// TestApplication_JobNotFound - отклик на несуществующую вакансию
func TestApplication_JobNotFound(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/jobs/99999999/applications", "", map[string]interface{}{
		"applicant_name":  "В никуда",
		"applicant_phone": "+77010000004",
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, bodyStr, "Job not found")
}

// TestApplication_Validation - имя и телефон обязательны
func TestApplication_Validation(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	owner := helpers.CreateUser(t, ts.DB, "Рекрутер Валидация", "apps.valid@test.com", "pass123", models.UserRoleRecruiter)
	job := helpers.CreateJob(t, ts.DB, owner.ID, "Вакансия валидация отклика", models.JobStatusActive)

	res, bodyStr := ts.SendRequest(t, "POST", fmt.Sprintf("/api/v1/jobs/%d/applications", job.ID), "", map[string]interface{}{
		"applicant_name": "Без телефона",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, `"ok":false`)
	assert.Contains(t, bodyStr, "applicant_phone")
}

// TestApplicationList_Ownership - список откликов чужой вакансии закрыт
func TestApplicationList_Ownership(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	owner := helpers.CreateUser(t, ts.DB, "Рекрутер Список", "apps.list@test.com", "pass123", models.UserRoleRecruiter)
	stranger := helpers.CreateUser(t, ts.DB, "Чужой Список", "apps.list2@test.com", "pass123", models.UserRoleRecruiter)
	job := helpers.CreateJob(t, ts.DB, owner.ID, "Вакансия чужой список", models.JobStatusActive)

	res, bodyStr := ts.SendRequest(t, "GET", fmt.Sprintf("/api/v1/jobs/%d/applications?recruiter_id=%d", job.ID, stranger.ID), "", nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, bodyStr, "Job not found or access denied")
}
