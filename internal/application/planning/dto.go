package planning

import (
	"time"

	"github.com/google/uuid"
	"github.com/mrp/backend/internal/domain/planning"
	"github.com/shopspring/decimal"
)

// CreateProductionJobRequest represents a request to create a production job
type CreateProductionJobRequest struct {
	Number    string     `json:"number" binding:"required,min=1,max=50"`
	Name      string     `json:"name" binding:"required,min=1,max=200"`
	StartDate time.Time  `json:"start_date" binding:"required"`
	EndDate   *time.Time `json:"end_date"`
	Notes     string     `json:"notes"`
}

// AddCommitmentRequest adds a product commitment to a job
type AddCommitmentRequest struct {
	ProductID uuid.UUID       `json:"product_id" binding:"required"`
	Quantity  decimal.Decimal `json:"quantity" binding:"required"`
}

// CancelJobRequest carries the cancellation reason
type CancelJobRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

// CommitmentResponse represents a product commitment in API responses
type CommitmentResponse struct {
	ID                uuid.UUID       `json:"id"`
	ProductID         uuid.UUID       `json:"product_id"`
	ProductCode       string          `json:"product_code"`
	ProductName       string          `json:"product_name"`
	QuantityCommitted decimal.Decimal `json:"quantity_committed"`
}

// ProductionJobResponse represents a production job in API responses
type ProductionJobResponse struct {
	ID           uuid.UUID            `json:"id"`
	Number       string               `json:"number"`
	Name         string               `json:"name"`
	Status       string               `json:"status"`
	StartDate    time.Time            `json:"start_date"`
	EndDate      *time.Time           `json:"end_date"`
	Commitments  []CommitmentResponse `json:"commitments"`
	Notes        string               `json:"notes"`
	CompletedAt  *time.Time           `json:"completed_at"`
	CancelledAt  *time.Time           `json:"cancelled_at"`
	CancelReason string               `json:"cancel_reason,omitempty"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
	Version      int                  `json:"version"`
}

// ProductionJobListFilter represents filter options for job list
type ProductionJobListFilter struct {
	Status   string `form:"status" binding:"omitempty,oneof=planned in_progress completed cancelled"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToProductionJobResponse converts a domain ProductionJob
func ToProductionJobResponse(j *planning.ProductionJob) ProductionJobResponse {
	commitments := make([]CommitmentResponse, len(j.Commitments))
	for i, c := range j.Commitments {
		commitments[i] = CommitmentResponse{
			ID:                c.ID,
			ProductID:         c.ProductID,
			ProductCode:       c.ProductCode,
			ProductName:       c.ProductName,
			QuantityCommitted: c.QuantityCommitted,
		}
	}
	return ProductionJobResponse{
		ID:           j.ID,
		Number:       j.Number,
		Name:         j.Name,
		Status:       string(j.Status),
		StartDate:    j.StartDate,
		EndDate:      j.EndDate,
		Commitments:  commitments,
		Notes:        j.Notes,
		CompletedAt:  j.CompletedAt,
		CancelledAt:  j.CancelledAt,
		CancelReason: j.CancelReason,
		CreatedAt:    j.CreatedAt,
		UpdatedAt:    j.UpdatedAt,
		Version:      j.Version,
	}
}

// ToProductionJobResponses converts a slice of domain ProductionJobs
func ToProductionJobResponses(jobs []planning.ProductionJob) []ProductionJobResponse {
	responses := make([]ProductionJobResponse, len(jobs))
	for i := range jobs {
		responses[i] = ToProductionJobResponse(&jobs[i])
	}
	return responses
}
