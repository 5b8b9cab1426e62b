package planning

import (
	"time"

	"github.com/google/uuid"
	"github.com/mrp/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeProductionJob = "ProductionJob"

// Event type constants
const (
	EventTypeProductionJobCreated       = "ProductionJobCreated"
	EventTypeProductionJobStatusChanged = "ProductionJobStatusChanged"
)

// ProductionJobCreatedEvent is published when a new production job is created
type ProductionJobCreatedEvent struct {
	shared.BaseDomainEvent
	JobID     uuid.UUID `json:"job_id"`
	Number    string    `json:"number"`
	Name      string    `json:"name"`
	StartDate time.Time `json:"start_date"`
}

// NewProductionJobCreatedEvent creates a new ProductionJobCreatedEvent
func NewProductionJobCreatedEvent(job *ProductionJob) *ProductionJobCreatedEvent {
	return &ProductionJobCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductionJobCreated, AggregateTypeProductionJob, job.ID),
		JobID:           job.ID,
		Number:          job.Number,
		Name:            job.Name,
		StartDate:       job.StartDate,
	}
}

// ProductionJobStatusChangedEvent is published when a job's status changes
type ProductionJobStatusChangedEvent struct {
	shared.BaseDomainEvent
	JobID     uuid.UUID           `json:"job_id"`
	Number    string              `json:"number"`
	OldStatus ProductionJobStatus `json:"old_status"`
	NewStatus ProductionJobStatus `json:"new_status"`
}

// NewProductionJobStatusChangedEvent creates a new ProductionJobStatusChangedEvent
func NewProductionJobStatusChangedEvent(job *ProductionJob, oldStatus, newStatus ProductionJobStatus) *ProductionJobStatusChangedEvent {
	return &ProductionJobStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductionJobStatusChanged, AggregateTypeProductionJob, job.ID),
		JobID:           job.ID,
		Number:          job.Number,
		OldStatus:       oldStatus,
		NewStatus:       newStatus,
	}
}
