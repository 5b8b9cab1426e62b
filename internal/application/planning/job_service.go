package planning

import (
	"context"

	"github.com/google/uuid"
	"github.com/mrp/backend/internal/domain/catalog"
	"github.com/mrp/backend/internal/domain/planning"
	"github.com/mrp/backend/internal/domain/shared"
)

// ProductionJobService handles production job business operations
type ProductionJobService struct {
	jobRepo     planning.ProductionJobRepository
	productRepo catalog.ProductRepository
	eventBus    shared.EventPublisher
}

// NewProductionJobService creates a new ProductionJobService
func NewProductionJobService(
	jobRepo planning.ProductionJobRepository,
	productRepo catalog.ProductRepository,
	eventBus shared.EventPublisher,
) *ProductionJobService {
	return &ProductionJobService{
		jobRepo:     jobRepo,
		productRepo: productRepo,
		eventBus:    eventBus,
	}
}

// Create creates a new production job
func (s *ProductionJobService) Create(ctx context.Context, req CreateProductionJobRequest) (*ProductionJobResponse, error) {
	if _, err := s.jobRepo.FindByNumber(ctx, req.Number); err == nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Production job with this number already exists")
	}

	job, err := planning.NewProductionJob(req.Number, req.Name, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	job.Notes = req.Notes

	if err := s.jobRepo.Save(ctx, job); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, job)

	response := ToProductionJobResponse(job)
	return &response, nil
}

// GetByID retrieves a production job by ID
func (s *ProductionJobService) GetByID(ctx context.Context, jobID uuid.UUID) (*ProductionJobResponse, error) {
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	response := ToProductionJobResponse(job)
	return &response, nil
}

// List retrieves production jobs with filtering and pagination
func (s *ProductionJobService) List(ctx context.Context, filter ProductionJobListFilter) ([]ProductionJobResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "start_date"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "asc"
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
	}

	var (
		jobs  []planning.ProductionJob
		total int64
		err   error
	)
	if filter.Status != "" {
		status := planning.ProductionJobStatus(filter.Status)
		jobs, err = s.jobRepo.FindByStatus(ctx, status, domainFilter)
		if err == nil {
			total, err = s.jobRepo.CountByStatus(ctx, status, domainFilter)
		}
	} else {
		jobs, err = s.jobRepo.FindAll(ctx, domainFilter)
		if err == nil {
			total, err = s.jobRepo.Count(ctx, domainFilter)
		}
	}
	if err != nil {
		return nil, 0, err
	}

	return ToProductionJobResponses(jobs), total, nil
}

// AddCommitment commits a product to a job
func (s *ProductionJobService) AddCommitment(ctx context.Context, jobID uuid.UUID, req AddCommitmentRequest) (*ProductionJobResponse, error) {
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	if _, err := job.CommitProduct(product.ID, product.Code, product.Name, req.Quantity); err != nil {
		return nil, err
	}

	if err := s.jobRepo.Save(ctx, job); err != nil {
		return nil, err
	}

	response := ToProductionJobResponse(job)
	return &response, nil
}

// Start moves a job to in progress
func (s *ProductionJobService) Start(ctx context.Context, jobID uuid.UUID) (*ProductionJobResponse, error) {
	return s.transition(ctx, jobID, func(job *planning.ProductionJob) error {
		return job.Start()
	})
}

// Complete marks a job as completed
func (s *ProductionJobService) Complete(ctx context.Context, jobID uuid.UUID) (*ProductionJobResponse, error) {
	return s.transition(ctx, jobID, func(job *planning.ProductionJob) error {
		return job.Complete()
	})
}

// Cancel cancels a job
func (s *ProductionJobService) Cancel(ctx context.Context, jobID uuid.UUID, reason string) (*ProductionJobResponse, error) {
	return s.transition(ctx, jobID, func(job *planning.ProductionJob) error {
		return job.Cancel(reason)
	})
}

func (s *ProductionJobService) transition(ctx context.Context, jobID uuid.UUID, change func(*planning.ProductionJob) error) (*ProductionJobResponse, error) {
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if err := change(job); err != nil {
		return nil, err
	}

	if err := s.jobRepo.Save(ctx, job); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, job)

	response := ToProductionJobResponse(job)
	return &response, nil
}

func (s *ProductionJobService) publishEvents(ctx context.Context, job *planning.ProductionJob) {
	if s.eventBus == nil {
		return
	}
	events := job.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	_ = s.eventBus.Publish(ctx, events...)
	job.ClearDomainEvents()
}
