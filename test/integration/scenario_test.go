package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFullScenario - сквозной сценарий доски вакансий целиком через API:
// регистрация рекрутера, публикация, отклик соискателя, просмотр откликов,
// закрытие вакансии и отказ в поздних откликах.
func TestFullScenario(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	// Рекрутер регистрируется и входит
	regRes, _ := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", map[string]interface{}{
		"name":     "Сквозной Рекрутер",
		"email":    "scenario@test.com",
		"password": "p1",
		"role":     "recruiter",
	})
	require.Equal(t, http.StatusCreated, regRes.StatusCode)

	logRes, logBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "scenario@test.com",
		"password": "p1",
	})
	require.Equal(t, http.StatusOK, logRes.StatusCode)

	var loginResp struct {
		Token string `json:"token"`
		User  struct {
			ID uint `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal([]byte(logBodyStr), &loginResp))
	recruiterID := loginResp.User.ID
	require.NotZero(t, recruiterID)

	// Публикация вакансии
	createRes, createBodyStr := ts.SendRequest(t, "POST", "/api/v1/jobs", "", map[string]interface{}{
		"title":      "Сварщик scenariotest",
		"company":    "Завод Сквозной",
		"location":   "Караганда",
		"created_by": recruiterID,
	})
	require.Equal(t, http.StatusCreated, createRes.StatusCode, createBodyStr)

	var createResp struct {
		Job struct {
			ID uint `json:"id"`
		} `json:"job"`
	}
	require.NoError(t, json.Unmarshal([]byte(createBodyStr), &createResp))
	jobID := createResp.Job.ID

	// Соискатель находит вакансию без аутентификации
	searchRes, searchBodyStr := ts.SendRequest(t, "GET", "/api/v1/jobs?q=scenariotest", "", nil)
	assert.Equal(t, http.StatusOK, searchRes.StatusCode)
	assert.Contains(t, searchBodyStr, "Сварщик scenariotest")

	// И откликается
	applyRes, applyBodyStr := ts.SendRequest(t, "POST", fmt.Sprintf("/api/v1/jobs/%d/applications", jobID), "", map[string]interface{}{
		"applicant_name":  "Сквозной Соискатель",
		"applicant_phone": "+77019990001",
		"message":         "Опыт сварки 5 лет",
	})
	assert.Equal(t, http.StatusCreated, applyRes.StatusCode, applyBodyStr)

	// Рекрутер видит отклик
	listRes, listBodyStr := ts.SendRequest(t, "GET", fmt.Sprintf("/api/v1/jobs/%d/applications?recruiter_id=%d", jobID, recruiterID), "", nil)
	assert.Equal(t, http.StatusOK, listRes.StatusCode)
	assert.Contains(t, listBodyStr, "Сквозной Соискатель")

	// Закрывает вакансию
	closeRes, _ := ts.SendRequest(t, "POST", fmt.Sprintf("/api/v1/jobs/%d/status", jobID), "", map[string]interface{}{
		"recruiter_id": recruiterID,
		"status":       "closed",
	})
	require.Equal(t, http.StatusOK, closeRes.StatusCode)

	// Поздний отклик больше не принимается
	lateRes, lateBodyStr := ts.SendRequest(t, "POST", fmt.Sprintf("/api/v1/jobs/%d/applications", jobID), "", map[string]interface{}{
		"applicant_name":  "Поздний Соискатель",
		"applicant_phone": "+77019990002",
	})
	assert.Equal(t, http.StatusBadRequest, lateRes.StatusCode)
	assert.Contains(t, lateBodyStr, "This job is not accepting applications")
}
