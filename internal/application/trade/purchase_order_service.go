package trade

import (
	"context"

	"github.com/google/uuid"
	"github.com/mrp/backend/internal/domain/mrp"
	"github.com/mrp/backend/internal/domain/shared"
	"github.com/mrp/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// ReportGenerator computes the current MRP report. Implemented by the
// MRP report service.
type ReportGenerator interface {
	GenerateReport(ctx context.Context) (*mrp.Report, error)
}

// PurchaseOrderService handles purchase order business operations
type PurchaseOrderService struct {
	orderRepo trade.PurchaseOrderRepository
	reports   ReportGenerator
	eventBus  shared.EventPublisher
}

// NewPurchaseOrderService creates a new PurchaseOrderService
func NewPurchaseOrderService(
	orderRepo trade.PurchaseOrderRepository,
	reports ReportGenerator,
	eventBus shared.EventPublisher,
) *PurchaseOrderService {
	return &PurchaseOrderService{
		orderRepo: orderRepo,
		reports:   reports,
		eventBus:  eventBus,
	}
}

// GetByID retrieves a purchase order by ID
func (s *PurchaseOrderService) GetByID(ctx context.Context, orderID uuid.UUID) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// List retrieves purchase orders with filtering and pagination
func (s *PurchaseOrderService) List(ctx context.Context, filter PurchaseOrderListFilter) ([]PurchaseOrderResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "created_at"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "desc"
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
	}

	var (
		orders []trade.PurchaseOrder
		total  int64
		err    error
	)
	switch {
	case filter.SupplierID != nil:
		orders, err = s.orderRepo.FindBySupplier(ctx, *filter.SupplierID, domainFilter)
		if err == nil {
			total, err = s.orderRepo.CountBySupplier(ctx, *filter.SupplierID, domainFilter)
		}
	case filter.Status != "":
		status := trade.PurchaseOrderStatus(filter.Status)
		orders, err = s.orderRepo.FindByStatus(ctx, status, domainFilter)
		if err == nil {
			total, err = s.orderRepo.CountByStatus(ctx, status, domainFilter)
		}
	default:
		orders, err = s.orderRepo.FindAll(ctx, domainFilter)
		if err == nil {
			total, err = s.orderRepo.Count(ctx, domainFilter)
		}
	}
	if err != nil {
		return nil, 0, err
	}

	return ToPurchaseOrderResponses(orders), total, nil
}

// DraftFromReport computes the current MRP report and creates one draft
// purchase order per supplier group of pending suggestions. Products
// already covered by a live order carry no suggestion, so repeated calls
// do not double-order.
func (s *PurchaseOrderService) DraftFromReport(ctx context.Context) (*DraftOrdersResponse, error) {
	report, err := s.reports.GenerateReport(ctx)
	if err != nil {
		return nil, err
	}

	response := &DraftOrdersResponse{Orders: make([]PurchaseOrderResponse, 0, len(report.SupplierGroups))}
	for _, group := range report.SupplierGroups {
		orderNumber, err := s.orderRepo.NextOrderNumber(ctx)
		if err != nil {
			return nil, err
		}

		order, err := trade.NewPurchaseOrder(orderNumber, group.SupplierID, group.SupplierName)
		if err != nil {
			return nil, err
		}

		for _, item := range group.Items {
			if _, err := order.AddItem(item.ProductID, item.ProductCode, item.ProductName, item.Quantity, decimal.Zero); err != nil {
				return nil, err
			}
		}

		if err := s.orderRepo.Save(ctx, order); err != nil {
			return nil, err
		}

		s.publishEvents(ctx, order)
		response.Orders = append(response.Orders, ToPurchaseOrderResponse(order))
	}

	return response, nil
}

// Send marks a draft order as sent to its supplier
func (s *PurchaseOrderService) Send(ctx context.Context, orderID uuid.UUID) (*PurchaseOrderResponse, error) {
	return s.transition(ctx, orderID, func(order *trade.PurchaseOrder) error {
		return order.Send()
	})
}

// Confirm records the supplier's confirmation
func (s *PurchaseOrderService) Confirm(ctx context.Context, orderID uuid.UUID) (*PurchaseOrderResponse, error) {
	return s.transition(ctx, orderID, func(order *trade.PurchaseOrder) error {
		return order.Confirm()
	})
}

// MarkDelivered marks a confirmed order as delivered
func (s *PurchaseOrderService) MarkDelivered(ctx context.Context, orderID uuid.UUID) (*PurchaseOrderResponse, error) {
	return s.transition(ctx, orderID, func(order *trade.PurchaseOrder) error {
		return order.MarkDelivered()
	})
}

// Cancel cancels an order
func (s *PurchaseOrderService) Cancel(ctx context.Context, orderID uuid.UUID, reason string) (*PurchaseOrderResponse, error) {
	return s.transition(ctx, orderID, func(order *trade.PurchaseOrder) error {
		return order.Cancel(reason)
	})
}

func (s *PurchaseOrderService) transition(ctx context.Context, orderID uuid.UUID, change func(*trade.PurchaseOrder) error) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := change(order); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, order)

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

func (s *PurchaseOrderService) publishEvents(ctx context.Context, order *trade.PurchaseOrder) {
	if s.eventBus == nil {
		return
	}
	events := order.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	_ = s.eventBus.Publish(ctx, events...)
	order.ClearDomainEvents()
}
