package handlers

import (
	"net/http"
	"rabota_backend/internal/services"
	"rabota_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

// RegisterRoutes регистрирует маршруты вакансий.
// Статус и удаление намеренно оформлены POST-ами с телом:
// так их вызывает существующий фронтенд.
func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup) {
	jobs := rg.Group("/jobs")
	{
		jobs.GET("", h.Search)
		jobs.POST("", h.Create)
		jobs.GET("/:jobId", h.Get)
		jobs.POST("/:jobId/status", h.SetStatus)
		jobs.POST("/:jobId/delete", h.Delete)
	}
}

// Search - поиск вакансий по фильтрам (все фильтры опциональны)
func (h *JobHandler) Search(c *gin.Context) {
	var req dto.SearchJobsRequest
	if !h.BindAndValidateQuery(c, &req) {
		return
	}

	jobs, err := h.jobService.Search(req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":   true,
		"jobs": jobs,
	})
}

// Get - карточка вакансии по ID
func (h *JobHandler) Get(c *gin.Context) {
	jobID, err := ParseParamUint(c, "jobId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	job, err := h.jobService.GetJob(jobID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":  true,
		"job": job,
	})
}

// Create - публикация новой вакансии
func (h *JobHandler) Create(c *gin.Context) {
	var req dto.CreateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.jobService.CreateJob(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"ok":  true,
		"job": job,
	})
}

// SetStatus - смена статуса вакансии её владельцем
func (h *JobHandler) SetStatus(c *gin.Context) {
	jobID, err := ParseParamUint(c, "jobId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateJobStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.jobService.SetStatus(jobID, req.RecruiterID, req.Status); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"message": "Job marked as " + req.Status + " successfully",
	})
}

// Delete - удаление вакансии её владельцем
func (h *JobHandler) Delete(c *gin.Context) {
	jobID, err := ParseParamUint(c, "jobId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.DeleteJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.jobService.Delete(jobID, req.RecruiterID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"message": "Job deleted successfully",
	})
}
