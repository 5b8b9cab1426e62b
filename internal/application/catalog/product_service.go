package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mrp/backend/internal/domain/catalog"
	"github.com/mrp/backend/internal/domain/partner"
	"github.com/mrp/backend/internal/domain/shared"
)

// ProductService handles product-related business operations
type ProductService struct {
	productRepo  catalog.ProductRepository
	supplierRepo partner.SupplierRepository
	eventBus     shared.EventPublisher
}

// NewProductService creates a new ProductService
func NewProductService(
	productRepo catalog.ProductRepository,
	supplierRepo partner.SupplierRepository,
	eventBus shared.EventPublisher,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		eventBus:     eventBus,
	}
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	exists, err := s.productRepo.ExistsByCode(ctx, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Product with this code already exists")
	}

	if _, err := s.supplierRepo.FindByID(ctx, req.SupplierID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_SUPPLIER", "Supplier not found")
		}
		return nil, err
	}

	product, err := catalog.NewProduct(req.Code, req.Name, req.Unit, req.SupplierID)
	if err != nil {
		return nil, err
	}

	if req.Refrigerated != nil {
		product.SetRefrigerated(*req.Refrigerated)
	}
	if req.MinStockQuantity != nil || req.ReorderQuantity != nil || req.LeadTime != nil {
		minStock := product.MinStockQuantity
		reorderQty := product.ReorderQuantity
		leadTime := product.LeadTime
		if req.MinStockQuantity != nil {
			minStock = *req.MinStockQuantity
		}
		if req.ReorderQuantity != nil {
			reorderQty = *req.ReorderQuantity
		}
		if req.LeadTime != nil {
			leadTime = *req.LeadTime
		}
		if err := product.SetPlanningParameters(minStock, reorderQty, leadTime); err != nil {
			return nil, err
		}
	}
	if req.Comments != "" {
		if err := product.Update(product.Name, req.Comments); err != nil {
			return nil, err
		}
	}
	if req.WebsiteLink != "" {
		if err := product.SetWebsiteLink(req.WebsiteLink); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, product)

	response := ToProductResponse(product)
	return &response, nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, productID uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// List retrieves products with filtering and pagination
func (s *ProductService) List(ctx context.Context, filter ProductListFilter) ([]ProductResponse, int64, error) {
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
		products []catalog.Product
		total    int64
		err      error
	)
	switch {
	case filter.SupplierID != nil:
		products, err = s.productRepo.FindBySupplier(ctx, *filter.SupplierID, domainFilter)
		if err == nil {
			total, err = s.productRepo.CountBySupplier(ctx, *filter.SupplierID, domainFilter)
		}
	case filter.Status == string(catalog.ProductStatusActive):
		products, err = s.productRepo.FindActive(ctx, domainFilter)
		if err == nil {
			total, err = s.productRepo.CountActive(ctx, domainFilter)
		}
	default:
		products, err = s.productRepo.FindAll(ctx, domainFilter)
		if err == nil {
			total, err = s.productRepo.Count(ctx, domainFilter)
		}
	}
	if err != nil {
		return nil, 0, err
	}

	return ToProductResponses(products), total, nil
}

// Update updates a product
func (s *ProductService) Update(ctx context.Context, productID uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil || req.Comments != nil {
		name := product.Name
		comments := product.Comments
		if req.Name != nil {
			name = *req.Name
		}
		if req.Comments != nil {
			comments = *req.Comments
		}
		if err := product.Update(name, comments); err != nil {
			return nil, err
		}
	}

	if req.SupplierID != nil {
		if _, err := s.supplierRepo.FindByID(ctx, *req.SupplierID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("INVALID_SUPPLIER", "Supplier not found")
			}
			return nil, err
		}
		if err := product.AssignSupplier(*req.SupplierID); err != nil {
			return nil, err
		}
	}

	if req.Refrigerated != nil {
		product.SetRefrigerated(*req.Refrigerated)
	}

	if req.MinStockQuantity != nil || req.ReorderQuantity != nil || req.LeadTime != nil {
		minStock := product.MinStockQuantity
		reorderQty := product.ReorderQuantity
		leadTime := product.LeadTime
		if req.MinStockQuantity != nil {
			minStock = *req.MinStockQuantity
		}
		if req.ReorderQuantity != nil {
			reorderQty = *req.ReorderQuantity
		}
		if req.LeadTime != nil {
			leadTime = *req.LeadTime
		}
		if err := product.SetPlanningParameters(minStock, reorderQty, leadTime); err != nil {
			return nil, err
		}
	}

	if req.WebsiteLink != nil {
		if err := product.SetWebsiteLink(*req.WebsiteLink); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, product)

	response := ToProductResponse(product)
	return &response, nil
}

// UpdateStockLevels replaces the product's stock facets
func (s *ProductService) UpdateStockLevels(ctx context.Context, productID uuid.UUID, req UpdateStockLevelsRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if err := product.SetStockLevels(
		req.PhysicalStock,
		req.StockAvailable,
		req.IncomingStock,
		req.TotalHoldingStock,
		req.Expired,
		req.Rejected,
	); err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, product)

	response := ToProductResponse(product)
	return &response, nil
}

// SetPOPlaced toggles the purchase-order-placed flag
func (s *ProductService) SetPOPlaced(ctx context.Context, productID uuid.UUID, placed bool) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if placed {
		if !product.POPlaced {
			if err := product.MarkPOPlaced(); err != nil {
				return nil, err
			}
		}
	} else {
		product.ClearPOPlaced()
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// Delete deletes a product
func (s *ProductService) Delete(ctx context.Context, productID uuid.UUID) error {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, productID)
}

func (s *ProductService) publishEvents(ctx context.Context, product *catalog.Product) {
	if s.eventBus == nil {
		return
	}
	events := product.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	// Event delivery is best effort; persistence already succeeded.
	_ = s.eventBus.Publish(ctx, events...)
	product.ClearDomainEvents()
}
