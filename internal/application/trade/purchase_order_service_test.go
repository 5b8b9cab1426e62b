package trade

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mrp/backend/internal/domain/mrp"
	"github.com/mrp/backend/internal/domain/shared"
	"github.com/mrp/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockPurchaseOrderRepository is a mock implementation of trade.PurchaseOrderRepository
type MockPurchaseOrderRepository struct {
	mock.Mock
}

func (m *MockPurchaseOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.PurchaseOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*trade.PurchaseOrder, error) {
	args := m.Called(ctx, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trade.PurchaseOrder, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]trade.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) FindByStatus(ctx context.Context, status trade.PurchaseOrderStatus, filter shared.Filter) ([]trade.PurchaseOrder, error) {
	args := m.Called(ctx, status, filter)
	return args.Get(0).([]trade.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) FindBySupplier(ctx context.Context, supplierID uuid.UUID, filter shared.Filter) ([]trade.PurchaseOrder, error) {
	args := m.Called(ctx, supplierID, filter)
	return args.Get(0).([]trade.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) FindLive(ctx context.Context) ([]trade.PurchaseOrder, error) {
	args := m.Called(ctx)
	return args.Get(0).([]trade.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) Save(ctx context.Context, order *trade.PurchaseOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockPurchaseOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPurchaseOrderRepository) NextOrderNumber(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockPurchaseOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPurchaseOrderRepository) CountByStatus(ctx context.Context, status trade.PurchaseOrderStatus, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, status, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPurchaseOrderRepository) CountBySupplier(ctx context.Context, supplierID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, supplierID, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockReportGenerator is a mock implementation of ReportGenerator
type MockReportGenerator struct {
	mock.Mock
}

func (m *MockReportGenerator) GenerateReport(ctx context.Context) (*mrp.Report, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mrp.Report), args.Error(1)
}

func newDraftOrder(t *testing.T) *trade.PurchaseOrder {
	t.Helper()
	order, err := trade.NewPurchaseOrder("PO-2026-00042", uuid.New(), "Acme Metals")
	require.NoError(t, err)
	_, err = order.AddItem(uuid.New(), "RAW-STEEL", "Steel sheet 2mm", decimal.NewFromInt(120), decimal.Zero)
	require.NoError(t, err)
	return order
}

func TestPurchaseOrderService_DraftFromReport(t *testing.T) {
	ctx := context.Background()

	groupA := mrp.SupplierGroup{
		SupplierID:    uuid.New(),
		SupplierCode:  "SUP-A",
		SupplierName:  "Acme Metals",
		TotalQuantity: decimal.NewFromInt(180),
		Items: []mrp.SupplierGroupItem{
			{ProductID: uuid.New(), ProductCode: "RAW-STEEL", ProductName: "Steel sheet 2mm", Quantity: decimal.NewFromInt(120)},
			{ProductID: uuid.New(), ProductCode: "RAW-COPPER", ProductName: "Copper wire", Quantity: decimal.NewFromInt(60)},
		},
	}
	groupB := mrp.SupplierGroup{
		SupplierID:    uuid.New(),
		SupplierCode:  "SUP-B",
		SupplierName:  "Bolt & Nut Co",
		TotalQuantity: decimal.NewFromInt(500),
		Items: []mrp.SupplierGroupItem{
			{ProductID: uuid.New(), ProductCode: "HW-BOLT-M8", ProductName: "M8 bolt", Quantity: decimal.NewFromInt(500)},
		},
	}

	t.Run("creates one draft order per supplier group", func(t *testing.T) {
		mockRepo := new(MockPurchaseOrderRepository)
		mockReports := new(MockReportGenerator)
		service := NewPurchaseOrderService(mockRepo, mockReports, nil)

		mockReports.On("GenerateReport", ctx).Return(&mrp.Report{
			GeneratedAt:    time.Now(),
			SupplierGroups: []mrp.SupplierGroup{groupA, groupB},
		}, nil)
		mockRepo.On("NextOrderNumber", ctx).Return("PO-2026-00001", nil).Once()
		mockRepo.On("NextOrderNumber", ctx).Return("PO-2026-00002", nil).Once()
		mockRepo.On("Save", ctx, mock.AnythingOfType("*trade.PurchaseOrder")).Return(nil)

		response, err := service.DraftFromReport(ctx)

		require.NoError(t, err)
		require.Len(t, response.Orders, 2)

		first := response.Orders[0]
		assert.Equal(t, "PO-2026-00001", first.OrderNumber)
		assert.Equal(t, groupA.SupplierID, first.SupplierID)
		assert.Equal(t, "Acme Metals", first.SupplierName)
		assert.Equal(t, string(trade.PurchaseOrderStatusDraft), first.Status)
		require.Len(t, first.Items, 2)
		assert.Equal(t, "RAW-STEEL", first.Items[0].ProductCode)
		assert.True(t, first.Items[0].Quantity.Equal(decimal.NewFromInt(120)))
		assert.True(t, first.Items[0].UnitPrice.IsZero())

		second := response.Orders[1]
		assert.Equal(t, "PO-2026-00002", second.OrderNumber)
		assert.Equal(t, "Bolt & Nut Co", second.SupplierName)
		require.Len(t, second.Items, 1)
		assert.True(t, second.Items[0].Quantity.Equal(decimal.NewFromInt(500)))

		mockRepo.AssertNumberOfCalls(t, "Save", 2)
		mockRepo.AssertExpectations(t)
		mockReports.AssertExpectations(t)
	})

	t.Run("returns empty response when nothing needs ordering", func(t *testing.T) {
		mockRepo := new(MockPurchaseOrderRepository)
		mockReports := new(MockReportGenerator)
		service := NewPurchaseOrderService(mockRepo, mockReports, nil)

		mockReports.On("GenerateReport", ctx).Return(&mrp.Report{GeneratedAt: time.Now()}, nil)

		response, err := service.DraftFromReport(ctx)

		require.NoError(t, err)
		assert.Empty(t, response.Orders)
		mockRepo.AssertNotCalled(t, "NextOrderNumber", ctx)
		mockRepo.AssertNotCalled(t, "Save", ctx, mock.Anything)
	})

	t.Run("propagates report generation failure", func(t *testing.T) {
		mockRepo := new(MockPurchaseOrderRepository)
		mockReports := new(MockReportGenerator)
		service := NewPurchaseOrderService(mockRepo, mockReports, nil)

		genErr := shared.NewDomainError("REFERENTIAL_INTEGRITY", "Product references unknown supplier")
		mockReports.On("GenerateReport", ctx).Return(nil, genErr)

		response, err := service.DraftFromReport(ctx)

		assert.Nil(t, response)
		assert.ErrorIs(t, err, genErr)
		mockRepo.AssertNotCalled(t, "Save", ctx, mock.Anything)
	})

	t.Run("stops when order number generation fails", func(t *testing.T) {
		mockRepo := new(MockPurchaseOrderRepository)
		mockReports := new(MockReportGenerator)
		service := NewPurchaseOrderService(mockRepo, mockReports, nil)

		mockReports.On("GenerateReport", ctx).Return(&mrp.Report{
			SupplierGroups: []mrp.SupplierGroup{groupA},
		}, nil)
		mockRepo.On("NextOrderNumber", ctx).Return("", assert.AnError)

		response, err := service.DraftFromReport(ctx)

		assert.Nil(t, response)
		assert.ErrorIs(t, err, assert.AnError)
		mockRepo.AssertNotCalled(t, "Save", ctx, mock.Anything)
	})
}

func TestPurchaseOrderService_Transitions(t *testing.T) {
	ctx := context.Background()

	t.Run("sends a draft order", func(t *testing.T) {
		mockRepo := new(MockPurchaseOrderRepository)
		service := NewPurchaseOrderService(mockRepo, nil, nil)

		order := newDraftOrder(t)
		mockRepo.On("FindByID", ctx, order.ID).Return(order, nil)
		mockRepo.On("Save", ctx, order).Return(nil)

		response, err := service.Send(ctx, order.ID)

		require.NoError(t, err)
		assert.Equal(t, string(trade.PurchaseOrderStatusSent), response.Status)
		assert.NotNil(t, response.OrderDate)
		mockRepo.AssertExpectations(t)
	})

	t.Run("rejects confirming a draft order", func(t *testing.T) {
		mockRepo := new(MockPurchaseOrderRepository)
		service := NewPurchaseOrderService(mockRepo, nil, nil)

		order := newDraftOrder(t)
		mockRepo.On("FindByID", ctx, order.ID).Return(order, nil)

		response, err := service.Confirm(ctx, order.ID)

		assert.Nil(t, response)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_STATE", domainErr.Code)
		mockRepo.AssertNotCalled(t, "Save", ctx, mock.Anything)
	})

	t.Run("cancels a sent order with a reason", func(t *testing.T) {
		mockRepo := new(MockPurchaseOrderRepository)
		service := NewPurchaseOrderService(mockRepo, nil, nil)

		order := newDraftOrder(t)
		require.NoError(t, order.Send())
		mockRepo.On("FindByID", ctx, order.ID).Return(order, nil)
		mockRepo.On("Save", ctx, order).Return(nil)

		response, err := service.Cancel(ctx, order.ID, "supplier out of business")

		require.NoError(t, err)
		assert.Equal(t, string(trade.PurchaseOrderStatusCancelled), response.Status)
		assert.Equal(t, "supplier out of business", response.CancelReason)
	})

	t.Run("returns not found for unknown order", func(t *testing.T) {
		mockRepo := new(MockPurchaseOrderRepository)
		service := NewPurchaseOrderService(mockRepo, nil, nil)

		orderID := uuid.New()
		mockRepo.On("FindByID", ctx, orderID).Return(nil, shared.ErrNotFound)

		response, err := service.Send(ctx, orderID)

		assert.Nil(t, response)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestPurchaseOrderService_List(t *testing.T) {
	ctx := context.Background()

	orders := []trade.PurchaseOrder{*newDraftOrder(t), *newDraftOrder(t)}

	t.Run("lists all orders with defaults", func(t *testing.T) {
		mockRepo := new(MockPurchaseOrderRepository)
		service := NewPurchaseOrderService(mockRepo, nil, nil)

		expectedFilter := shared.Filter{Page: 1, PageSize: 20, OrderBy: "created_at", OrderDir: "desc"}
		mockRepo.On("FindAll", ctx, expectedFilter).Return(orders, nil)
		mockRepo.On("Count", ctx, expectedFilter).Return(int64(2), nil)

		result, total, err := service.List(ctx, PurchaseOrderListFilter{})

		require.NoError(t, err)
		assert.Len(t, result, 2)
		assert.Equal(t, int64(2), total)
		mockRepo.AssertExpectations(t)
	})

	t.Run("filters by status", func(t *testing.T) {
		mockRepo := new(MockPurchaseOrderRepository)
		service := NewPurchaseOrderService(mockRepo, nil, nil)

		mockRepo.On("FindByStatus", ctx, trade.PurchaseOrderStatusSent, mock.AnythingOfType("shared.Filter")).Return(orders[:1], nil)
		mockRepo.On("CountByStatus", ctx, trade.PurchaseOrderStatusSent, mock.AnythingOfType("shared.Filter")).Return(int64(1), nil)

		result, total, err := service.List(ctx, PurchaseOrderListFilter{Status: "sent"})

		require.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Equal(t, int64(1), total)
		mockRepo.AssertNotCalled(t, "Count", ctx, mock.Anything)
	})

	t.Run("filters by supplier", func(t *testing.T) {
		mockRepo := new(MockPurchaseOrderRepository)
		service := NewPurchaseOrderService(mockRepo, nil, nil)

		supplierID := uuid.New()
		mockRepo.On("FindBySupplier", ctx, supplierID, mock.AnythingOfType("shared.Filter")).Return(orders, nil)
		mockRepo.On("CountBySupplier", ctx, supplierID, mock.AnythingOfType("shared.Filter")).Return(int64(2), nil)

		result, total, err := service.List(ctx, PurchaseOrderListFilter{SupplierID: &supplierID})

		require.NoError(t, err)
		assert.Len(t, result, 2)
		assert.Equal(t, int64(2), total)
		mockRepo.AssertNotCalled(t, "Count", ctx, mock.Anything)
	})
}
