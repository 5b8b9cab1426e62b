package planning

import (
	"context"

	"github.com/google/uuid"
	"github.com/mrp/backend/internal/domain/shared"
)

// ProductionJobRepository defines the interface for production job persistence
type ProductionJobRepository interface {
	// FindByID finds a job by its ID, commitments included
	FindByID(ctx context.Context, id uuid.UUID) (*ProductionJob, error)

	// FindByNumber finds a job by its number
	FindByNumber(ctx context.Context, number string) (*ProductionJob, error)

	// FindAll finds all jobs matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]ProductionJob, error)

	// FindByStatus finds jobs by status
	FindByStatus(ctx context.Context, status ProductionJobStatus, filter shared.Filter) ([]ProductionJob, error)

	// FindOpen finds all planned and in-progress jobs, commitments included
	FindOpen(ctx context.Context) ([]ProductionJob, error)

	// Save creates or updates a job together with its commitments
	Save(ctx context.Context, job *ProductionJob) error

	// Delete deletes a job by ID
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts jobs matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// CountByStatus counts jobs in a status
	CountByStatus(ctx context.Context, status ProductionJobStatus, filter shared.Filter) (int64, error)
}
