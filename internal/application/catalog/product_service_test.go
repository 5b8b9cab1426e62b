package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/mrp/backend/internal/domain/catalog"
	"github.com/mrp/backend/internal/domain/partner"
	"github.com/mrp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByCode(ctx context.Context, code string) (*catalog.Product, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Product, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindBySupplier(ctx context.Context, supplierID uuid.UUID, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, supplierID, filter)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindActive(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) SaveBatch(ctx context.Context, products []*catalog.Product) error {
	args := m.Called(ctx, products)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) CountBySupplier(ctx context.Context, supplierID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, supplierID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) CountActive(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockSupplierRepository is a mock implementation of partner.SupplierRepository
type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Supplier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) FindByCode(ctx context.Context, code string) (*partner.Supplier, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Supplier, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]partner.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]partner.Supplier, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]partner.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) FindByStatus(ctx context.Context, status partner.SupplierStatus, filter shared.Filter) ([]partner.Supplier, error) {
	args := m.Called(ctx, status, filter)
	return args.Get(0).([]partner.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) Save(ctx context.Context, supplier *partner.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSupplierRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockSupplierRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSupplierRepository) CountByStatus(ctx context.Context, status partner.SupplierStatus, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, status, filter)
	return args.Get(0).(int64), args.Error(1)
}

func TestProductService_Create(t *testing.T) {
	t.Run("creates product with planning parameters", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		supplierRepo := new(MockSupplierRepository)
		service := NewProductService(productRepo, supplierRepo, nil)

		supplier, err := partner.NewSupplier("SUP001", "Acme")
		require.NoError(t, err)

		productRepo.On("ExistsByCode", mock.Anything, "WIDGET-01").Return(false, nil)
		supplierRepo.On("FindByID", mock.Anything, supplier.ID).Return(supplier, nil)
		productRepo.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Product")).Return(nil)

		minStock := decimal.NewFromInt(100)
		leadTime := 14
		response, err := service.Create(context.Background(), CreateProductRequest{
			Code:             "WIDGET-01",
			Name:             "Widget",
			Unit:             "pcs",
			SupplierID:       supplier.ID,
			MinStockQuantity: &minStock,
			LeadTime:         &leadTime,
		})
		require.NoError(t, err)
		require.NotNil(t, response)
		assert.Equal(t, "WIDGET-01", response.Code)
		assert.Equal(t, supplier.ID, response.SupplierID)
		assert.True(t, response.MinStockQuantity.Equal(minStock))
		assert.Equal(t, 14, response.LeadTime)

		productRepo.AssertExpectations(t)
		supplierRepo.AssertExpectations(t)
	})

	t.Run("rejects duplicate code", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		supplierRepo := new(MockSupplierRepository)
		service := NewProductService(productRepo, supplierRepo, nil)

		productRepo.On("ExistsByCode", mock.Anything, "WIDGET-01").Return(true, nil)

		response, err := service.Create(context.Background(), CreateProductRequest{
			Code:       "WIDGET-01",
			Name:       "Widget",
			Unit:       "pcs",
			SupplierID: uuid.New(),
		})
		require.Error(t, err)
		assert.Nil(t, response)
		assert.Contains(t, err.Error(), "already exists")
	})

	t.Run("rejects unknown supplier", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		supplierRepo := new(MockSupplierRepository)
		service := NewProductService(productRepo, supplierRepo, nil)

		supplierID := uuid.New()
		productRepo.On("ExistsByCode", mock.Anything, "WIDGET-01").Return(false, nil)
		supplierRepo.On("FindByID", mock.Anything, supplierID).Return(nil, shared.ErrNotFound)

		response, err := service.Create(context.Background(), CreateProductRequest{
			Code:       "WIDGET-01",
			Name:       "Widget",
			Unit:       "pcs",
			SupplierID: supplierID,
		})
		require.Error(t, err)
		assert.Nil(t, response)
		assert.Contains(t, err.Error(), "Supplier not found")
	})

	t.Run("rejects a zero supplier id", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		supplierRepo := new(MockSupplierRepository)
		service := NewProductService(productRepo, supplierRepo, nil)

		productRepo.On("ExistsByCode", mock.Anything, "WIDGET-01").Return(false, nil)
		supplierRepo.On("FindByID", mock.Anything, uuid.Nil).Return(nil, shared.ErrNotFound)

		response, err := service.Create(context.Background(), CreateProductRequest{
			Code: "WIDGET-01",
			Name: "Widget",
			Unit: "pcs",
		})
		require.Error(t, err)
		assert.Nil(t, response)
		productRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestProductService_SetPOPlaced(t *testing.T) {
	productRepo := new(MockProductRepository)
	supplierRepo := new(MockSupplierRepository)
	service := NewProductService(productRepo, supplierRepo, nil)

	product, err := catalog.NewProduct("WIDGET-01", "Widget", "pcs", uuid.New())
	require.NoError(t, err)

	productRepo.On("FindByID", mock.Anything, product.ID).Return(product, nil)
	productRepo.On("Save", mock.Anything, product).Return(nil)

	t.Run("sets the flag", func(t *testing.T) {
		response, err := service.SetPOPlaced(context.Background(), product.ID, true)
		require.NoError(t, err)
		assert.True(t, response.POPlaced)
	})

	t.Run("setting again is a no-op", func(t *testing.T) {
		response, err := service.SetPOPlaced(context.Background(), product.ID, true)
		require.NoError(t, err)
		assert.True(t, response.POPlaced)
	})

	t.Run("clears the flag", func(t *testing.T) {
		response, err := service.SetPOPlaced(context.Background(), product.ID, false)
		require.NoError(t, err)
		assert.False(t, response.POPlaced)
	})
}

func TestProductService_UpdateStockLevels(t *testing.T) {
	productRepo := new(MockProductRepository)
	supplierRepo := new(MockSupplierRepository)
	service := NewProductService(productRepo, supplierRepo, nil)

	product, err := catalog.NewProduct("WIDGET-01", "Widget", "pcs", uuid.New())
	require.NoError(t, err)

	productRepo.On("FindByID", mock.Anything, product.ID).Return(product, nil)
	productRepo.On("Save", mock.Anything, product).Return(nil)

	t.Run("updates all facets", func(t *testing.T) {
		response, err := service.UpdateStockLevels(context.Background(), product.ID, UpdateStockLevelsRequest{
			PhysicalStock:     decimal.NewFromInt(120),
			StockAvailable:    decimal.NewFromInt(100),
			IncomingStock:     decimal.NewFromInt(50),
			TotalHoldingStock: decimal.NewFromInt(170),
			Expired:           decimal.NewFromInt(10),
			Rejected:          decimal.NewFromInt(5),
		})
		require.NoError(t, err)
		assert.True(t, response.StockAvailable.Equal(decimal.NewFromInt(100)))
		assert.True(t, response.Expired.Equal(decimal.NewFromInt(10)))
	})

	t.Run("rejects negative quantities", func(t *testing.T) {
		_, err := service.UpdateStockLevels(context.Background(), product.ID, UpdateStockLevelsRequest{
			StockAvailable: decimal.NewFromInt(-5),
		})
		require.Error(t, err)
	})
}

func TestProductService_List(t *testing.T) {
	newListProduct := func(t *testing.T, code string, supplierID uuid.UUID) catalog.Product {
		t.Helper()
		product, err := catalog.NewProduct(code, "Product "+code, "pcs", supplierID)
		require.NoError(t, err)
		return *product
	}

	t.Run("counts with the supplier predicate", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		supplierRepo := new(MockSupplierRepository)
		service := NewProductService(productRepo, supplierRepo, nil)

		supplierID := uuid.New()
		products := []catalog.Product{newListProduct(t, "WIDGET-01", supplierID)}
		productRepo.On("FindBySupplier", mock.Anything, supplierID, mock.AnythingOfType("shared.Filter")).Return(products, nil)
		productRepo.On("CountBySupplier", mock.Anything, supplierID, mock.AnythingOfType("shared.Filter")).Return(int64(1), nil)

		result, total, err := service.List(context.Background(), ProductListFilter{SupplierID: &supplierID})

		require.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Equal(t, int64(1), total)
		productRepo.AssertNotCalled(t, "Count", mock.Anything, mock.Anything)
	})

	t.Run("counts with the active predicate", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		supplierRepo := new(MockSupplierRepository)
		service := NewProductService(productRepo, supplierRepo, nil)

		products := []catalog.Product{newListProduct(t, "WIDGET-01", uuid.New())}
		productRepo.On("FindActive", mock.Anything, mock.AnythingOfType("shared.Filter")).Return(products, nil)
		productRepo.On("CountActive", mock.Anything, mock.AnythingOfType("shared.Filter")).Return(int64(1), nil)

		result, total, err := service.List(context.Background(), ProductListFilter{Status: "active"})

		require.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Equal(t, int64(1), total)
	})

	t.Run("counts everything without predicates", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		supplierRepo := new(MockSupplierRepository)
		service := NewProductService(productRepo, supplierRepo, nil)

		products := []catalog.Product{
			newListProduct(t, "WIDGET-01", uuid.New()),
			newListProduct(t, "WIDGET-02", uuid.New()),
		}
		productRepo.On("FindAll", mock.Anything, mock.AnythingOfType("shared.Filter")).Return(products, nil)
		productRepo.On("Count", mock.Anything, mock.AnythingOfType("shared.Filter")).Return(int64(2), nil)

		result, total, err := service.List(context.Background(), ProductListFilter{})

		require.NoError(t, err)
		assert.Len(t, result, 2)
		assert.Equal(t, int64(2), total)
	})
}
