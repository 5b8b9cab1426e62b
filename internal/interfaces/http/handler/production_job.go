package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	planningapp "github.com/mrp/backend/internal/application/planning"
)

// ProductionJobHandler handles production job API endpoints
type ProductionJobHandler struct {
	BaseHandler
	jobService *planningapp.ProductionJobService
}

// NewProductionJobHandler creates a new ProductionJobHandler
func NewProductionJobHandler(jobService *planningapp.ProductionJobService) *ProductionJobHandler {
	return &ProductionJobHandler{
		jobService: jobService,
	}
}

// Create creates a new production job
func (h *ProductionJobHandler) Create(c *gin.Context) {
	var req planningapp.CreateProductionJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	job, err := h.jobService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, job)
}

// GetByID retrieves a production job by ID
func (h *ProductionJobHandler) GetByID(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid job ID format")
		return
	}

	job, err := h.jobService.GetByID(c.Request.Context(), jobID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, job)
}

// List retrieves production jobs with filtering and pagination
func (h *ProductionJobHandler) List(c *gin.Context) {
	var filter planningapp.ProductionJobListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	jobs, total, err := h.jobService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}

	h.SuccessWithMeta(c, jobs, total, page, pageSize)
}

// AddCommitment adds a product commitment to a job
func (h *ProductionJobHandler) AddCommitment(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid job ID format")
		return
	}

	var req planningapp.AddCommitmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	job, err := h.jobService.AddCommitment(c.Request.Context(), jobID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, job)
}

// Start moves a job into progress
func (h *ProductionJobHandler) Start(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid job ID format")
		return
	}

	job, err := h.jobService.Start(c.Request.Context(), jobID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, job)
}

// Complete marks a job as completed
func (h *ProductionJobHandler) Complete(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid job ID format")
		return
	}

	job, err := h.jobService.Complete(c.Request.Context(), jobID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, job)
}

// Cancel cancels a job
func (h *ProductionJobHandler) Cancel(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid job ID format")
		return
	}

	var req planningapp.CancelJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	job, err := h.jobService.Cancel(c.Request.Context(), jobID, req.Reason)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, job)
}
