package planning

import (
	"time"

	"github.com/google/uuid"
	"github.com/mrp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ProductionJobStatus represents the status of a production job
type ProductionJobStatus string

const (
	ProductionJobStatusPlanned    ProductionJobStatus = "planned"
	ProductionJobStatusInProgress ProductionJobStatus = "in_progress"
	ProductionJobStatusCompleted  ProductionJobStatus = "completed"
	ProductionJobStatusCancelled  ProductionJobStatus = "cancelled"
)

// IsValid checks if the status is a valid ProductionJobStatus
func (s ProductionJobStatus) IsValid() bool {
	switch s {
	case ProductionJobStatusPlanned, ProductionJobStatusInProgress,
		ProductionJobStatusCompleted, ProductionJobStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of ProductionJobStatus
func (s ProductionJobStatus) String() string {
	return string(s)
}

// IsOpen returns true while the job still holds its committed stock
func (s ProductionJobStatus) IsOpen() bool {
	return s == ProductionJobStatusPlanned || s == ProductionJobStatusInProgress
}

// CanTransitionTo checks if the status can transition to the target status
func (s ProductionJobStatus) CanTransitionTo(target ProductionJobStatus) bool {
	switch s {
	case ProductionJobStatusPlanned:
		return target == ProductionJobStatusInProgress || target == ProductionJobStatusCancelled
	case ProductionJobStatusInProgress:
		return target == ProductionJobStatusCompleted || target == ProductionJobStatusCancelled
	case ProductionJobStatusCompleted, ProductionJobStatusCancelled:
		return false // Terminal states
	}
	return false
}

// ProductCommitment reserves a quantity of a product for a production job
type ProductCommitment struct {
	ID                uuid.UUID       `gorm:"type:uuid;primary_key"`
	JobID             uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductCode       string          `gorm:"type:varchar(50);not null"`
	ProductName       string          `gorm:"type:varchar(200);not null"`
	QuantityCommitted decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	CreatedAt         time.Time       `gorm:"not null"`
	UpdatedAt         time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ProductCommitment) TableName() string {
	return "product_commitments"
}

// NewProductCommitment creates a new product commitment
func NewProductCommitment(jobID, productID uuid.UUID, productCode, productName string, quantity decimal.Decimal) (*ProductCommitment, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if productName == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Committed quantity must be positive")
	}

	now := time.Now()
	return &ProductCommitment{
		ID:                uuid.New(),
		JobID:             jobID,
		ProductID:         productID,
		ProductCode:       productCode,
		ProductName:       productName,
		QuantityCommitted: quantity,
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}

// UpdateQuantity updates the committed quantity
func (c *ProductCommitment) UpdateQuantity(quantity decimal.Decimal) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_QUANTITY", "Committed quantity must be positive")
	}

	c.QuantityCommitted = quantity
	c.UpdatedAt = time.Now()

	return nil
}

// ProductionJob represents a scheduled production run that consumes
// committed product stock. It is the aggregate root for planning.
type ProductionJob struct {
	shared.BaseAggregateRoot
	Number       string              `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name         string              `gorm:"type:varchar(200);not null"`
	Status       ProductionJobStatus `gorm:"type:varchar(20);not null;default:'planned'"`
	StartDate    time.Time           `gorm:"not null;index"`
	EndDate      *time.Time          `gorm:"index"`
	Commitments  []ProductCommitment `gorm:"foreignKey:JobID;references:ID"`
	Notes        string              `gorm:"type:text"`
	CompletedAt  *time.Time
	CancelledAt  *time.Time
	CancelReason string `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (ProductionJob) TableName() string {
	return "production_jobs"
}

// NewProductionJob creates a new production job in planned status
func NewProductionJob(number, name string, startDate time.Time, endDate *time.Time) (*ProductionJob, error) {
	if number == "" {
		return nil, shared.NewDomainError("INVALID_JOB_NUMBER", "Job number cannot be empty")
	}
	if len(number) > 50 {
		return nil, shared.NewDomainError("INVALID_JOB_NUMBER", "Job number cannot exceed 50 characters")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Job name cannot be empty")
	}
	if startDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Start date cannot be empty")
	}
	if endDate != nil && endDate.Before(startDate) {
		return nil, shared.NewDomainError("INVALID_DATE", "End date cannot be before start date")
	}

	job := &ProductionJob{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Number:            number,
		Name:              name,
		Status:            ProductionJobStatusPlanned,
		StartDate:         startDate,
		EndDate:           endDate,
		Commitments:       make([]ProductCommitment, 0),
	}

	job.AddDomainEvent(NewProductionJobCreatedEvent(job))

	return job, nil
}

// CommitProduct adds a product commitment to the job.
// Only allowed while the job is still planned.
func (j *ProductionJob) CommitProduct(productID uuid.UUID, productCode, productName string, quantity decimal.Decimal) (*ProductCommitment, error) {
	if j.Status != ProductionJobStatusPlanned {
		return nil, shared.NewDomainError("INVALID_STATE", "Cannot commit products to a job that has started")
	}

	for _, c := range j.Commitments {
		if c.ProductID == productID {
			return nil, shared.NewDomainError("DUPLICATE_PRODUCT", "Product is already committed to this job, update the quantity instead")
		}
	}

	commitment, err := NewProductCommitment(j.ID, productID, productCode, productName, quantity)
	if err != nil {
		return nil, err
	}

	j.Commitments = append(j.Commitments, *commitment)
	j.UpdatedAt = time.Now()
	j.IncrementVersion()

	return commitment, nil
}

// UpdateCommitmentQuantity updates the committed quantity of an existing commitment
func (j *ProductionJob) UpdateCommitmentQuantity(commitmentID uuid.UUID, quantity decimal.Decimal) error {
	if j.Status != ProductionJobStatusPlanned {
		return shared.NewDomainError("INVALID_STATE", "Cannot update commitments of a job that has started")
	}

	for i := range j.Commitments {
		if j.Commitments[i].ID == commitmentID {
			if err := j.Commitments[i].UpdateQuantity(quantity); err != nil {
				return err
			}
			j.UpdatedAt = time.Now()
			j.IncrementVersion()
			return nil
		}
	}

	return shared.NewDomainError("NOT_FOUND", "Commitment not found in this job")
}

// RemoveCommitment removes a product commitment from the job
func (j *ProductionJob) RemoveCommitment(commitmentID uuid.UUID) error {
	if j.Status != ProductionJobStatusPlanned {
		return shared.NewDomainError("INVALID_STATE", "Cannot remove commitments from a job that has started")
	}

	for i := range j.Commitments {
		if j.Commitments[i].ID == commitmentID {
			j.Commitments = append(j.Commitments[:i], j.Commitments[i+1:]...)
			j.UpdatedAt = time.Now()
			j.IncrementVersion()
			return nil
		}
	}

	return shared.NewDomainError("NOT_FOUND", "Commitment not found in this job")
}

// Start moves the job from planned to in progress
func (j *ProductionJob) Start() error {
	if !j.Status.CanTransitionTo(ProductionJobStatusInProgress) {
		return shared.NewDomainError("INVALID_STATE", "Only a planned job can be started")
	}

	j.Status = ProductionJobStatusInProgress
	j.UpdatedAt = time.Now()
	j.IncrementVersion()

	j.AddDomainEvent(NewProductionJobStatusChangedEvent(j, ProductionJobStatusPlanned, ProductionJobStatusInProgress))

	return nil
}

// Complete marks the job as completed and releases its commitments
func (j *ProductionJob) Complete() error {
	if !j.Status.CanTransitionTo(ProductionJobStatusCompleted) {
		return shared.NewDomainError("INVALID_STATE", "Only a job in progress can be completed")
	}

	oldStatus := j.Status
	now := time.Now()
	j.Status = ProductionJobStatusCompleted
	j.CompletedAt = &now
	j.UpdatedAt = now
	j.IncrementVersion()

	j.AddDomainEvent(NewProductionJobStatusChangedEvent(j, oldStatus, ProductionJobStatusCompleted))

	return nil
}

// Cancel cancels the job and releases its commitments
func (j *ProductionJob) Cancel(reason string) error {
	if !j.Status.CanTransitionTo(ProductionJobStatusCancelled) {
		return shared.NewDomainError("INVALID_STATE", "Only a planned or in-progress job can be cancelled")
	}

	oldStatus := j.Status
	now := time.Now()
	j.Status = ProductionJobStatusCancelled
	j.CancelledAt = &now
	j.CancelReason = reason
	j.UpdatedAt = now
	j.IncrementVersion()

	j.AddDomainEvent(NewProductionJobStatusChangedEvent(j, oldStatus, ProductionJobStatusCancelled))

	return nil
}

// IsOpen returns true while the job still holds its committed stock
func (j *ProductionJob) IsOpen() bool {
	return j.Status.IsOpen()
}

// ConsumptionDate returns the date the committed stock is consumed.
// The end date governs when present, otherwise the start date.
func (j *ProductionJob) ConsumptionDate() time.Time {
	if j.EndDate != nil {
		return *j.EndDate
	}
	return j.StartDate
}
