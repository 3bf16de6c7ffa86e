package handlers

import (
	"net/http"
	"rabota_backend/internal/services"
	"rabota_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

// RegisterRoutes регистрирует маршруты откликов (вложены в вакансию)
func (h *ApplicationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	applications := rg.Group("/jobs/:jobId/applications")
	{
		applications.GET("", h.List)
		applications.POST("", h.Create)
	}
}

// Create - отклик соискателя на вакансию
func (h *ApplicationHandler) Create(c *gin.Context) {
	jobID, err := ParseParamUint(c, "jobId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.CreateApplicationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.applicationService.Create(jobID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"ok":      true,
		"message": "Application submitted",
	})
}

// List - отклики по вакансии для её владельца.
// recruiter_id передаётся в query; без него владение не проверяется.
func (h *ApplicationHandler) List(c *gin.Context) {
	jobID, err := ParseParamUint(c, "jobId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	rid := ParseQueryInt(c, "recruiter_id", 0)
	if rid < 0 {
		rid = 0
	}
	recruiterID := uint(rid)

	applications, err := h.applicationService.ListForJob(jobID, recruiterID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":           true,
		"applications": applications,
	})
}
