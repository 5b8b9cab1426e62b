package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/mrp/backend/internal/domain/partner"
	"github.com/mrp/backend/internal/domain/shared"
)

// SupplierService handles supplier-related business operations
type SupplierService struct {
	supplierRepo partner.SupplierRepository
	eventBus     shared.EventPublisher
}

// NewSupplierService creates a new SupplierService
func NewSupplierService(supplierRepo partner.SupplierRepository, eventBus shared.EventPublisher) *SupplierService {
	return &SupplierService{
		supplierRepo: supplierRepo,
		eventBus:     eventBus,
	}
}

// Create creates a new supplier
func (s *SupplierService) Create(ctx context.Context, req CreateSupplierRequest) (*SupplierResponse, error) {
	exists, err := s.supplierRepo.ExistsByCode(ctx, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Supplier with this code already exists")
	}

	supplier, err := partner.NewSupplier(req.Code, req.Name)
	if err != nil {
		return nil, err
	}

	if req.ContactEmail != "" || req.ContactPhone != "" {
		if err := supplier.SetContact(req.ContactEmail, req.ContactPhone); err != nil {
			return nil, err
		}
	}
	if req.WebsiteURL != "" {
		if err := supplier.SetWebsiteURL(req.WebsiteURL); err != nil {
			return nil, err
		}
	}
	if req.PaymentTerms != "" {
		if err := supplier.SetPaymentTerms(req.PaymentTerms); err != nil {
			return nil, err
		}
	}
	if req.OrderThreshold != nil {
		if err := supplier.SetOrderThreshold(*req.OrderThreshold); err != nil {
			return nil, err
		}
	}
	if req.Notes != "" {
		supplier.SetNotes(req.Notes)
	}

	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, supplier)

	response := ToSupplierResponse(supplier)
	return &response, nil
}

// GetByID retrieves a supplier by ID
func (s *SupplierService) GetByID(ctx context.Context, supplierID uuid.UUID) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	response := ToSupplierResponse(supplier)
	return &response, nil
}

// List retrieves suppliers with filtering and pagination
func (s *SupplierService) List(ctx context.Context, filter SupplierListFilter) ([]SupplierResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "code"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "asc"
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
	}

	var (
		suppliers []partner.Supplier
		total     int64
		err       error
	)
	if filter.Status != "" {
		status := partner.SupplierStatus(filter.Status)
		suppliers, err = s.supplierRepo.FindByStatus(ctx, status, domainFilter)
		if err == nil {
			total, err = s.supplierRepo.CountByStatus(ctx, status, domainFilter)
		}
	} else {
		suppliers, err = s.supplierRepo.FindAll(ctx, domainFilter)
		if err == nil {
			total, err = s.supplierRepo.Count(ctx, domainFilter)
		}
	}
	if err != nil {
		return nil, 0, err
	}

	return ToSupplierResponses(suppliers), total, nil
}

// Update updates a supplier
func (s *SupplierService) Update(ctx context.Context, supplierID uuid.UUID, req UpdateSupplierRequest) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := supplier.Update(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.ContactEmail != nil || req.ContactPhone != nil {
		email := supplier.ContactEmail
		phone := supplier.ContactPhone
		if req.ContactEmail != nil {
			email = *req.ContactEmail
		}
		if req.ContactPhone != nil {
			phone = *req.ContactPhone
		}
		if err := supplier.SetContact(email, phone); err != nil {
			return nil, err
		}
	}
	if req.WebsiteURL != nil {
		if err := supplier.SetWebsiteURL(*req.WebsiteURL); err != nil {
			return nil, err
		}
	}
	if req.PaymentTerms != nil {
		if err := supplier.SetPaymentTerms(*req.PaymentTerms); err != nil {
			return nil, err
		}
	}
	if req.OrderThreshold != nil {
		if err := supplier.SetOrderThreshold(*req.OrderThreshold); err != nil {
			return nil, err
		}
	}
	if req.Notes != nil {
		supplier.SetNotes(*req.Notes)
	}

	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, supplier)

	response := ToSupplierResponse(supplier)
	return &response, nil
}

// Activate activates a supplier
func (s *SupplierService) Activate(ctx context.Context, supplierID uuid.UUID) (*SupplierResponse, error) {
	return s.changeStatus(ctx, supplierID, func(supplier *partner.Supplier) error {
		return supplier.Activate()
	})
}

// Deactivate deactivates a supplier
func (s *SupplierService) Deactivate(ctx context.Context, supplierID uuid.UUID) (*SupplierResponse, error) {
	return s.changeStatus(ctx, supplierID, func(supplier *partner.Supplier) error {
		return supplier.Deactivate()
	})
}

// Delete deletes a supplier
func (s *SupplierService) Delete(ctx context.Context, supplierID uuid.UUID) error {
	if _, err := s.supplierRepo.FindByID(ctx, supplierID); err != nil {
		return err
	}
	return s.supplierRepo.Delete(ctx, supplierID)
}

func (s *SupplierService) changeStatus(ctx context.Context, supplierID uuid.UUID, change func(*partner.Supplier) error) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	if err := change(supplier); err != nil {
		return nil, err
	}

	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	response := ToSupplierResponse(supplier)
	return &response, nil
}

func (s *SupplierService) publishEvents(ctx context.Context, supplier *partner.Supplier) {
	if s.eventBus == nil {
		return
	}
	events := supplier.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	_ = s.eventBus.Publish(ctx, events...)
	supplier.ClearDomainEvents()
}
