package mrp

import (
	"context"
	"time"

	"github.com/mrp/backend/internal/domain/catalog"
	"github.com/mrp/backend/internal/domain/mrp"
	"github.com/mrp/backend/internal/domain/partner"
	"github.com/mrp/backend/internal/domain/planning"
	"github.com/mrp/backend/internal/domain/shared"
	"github.com/mrp/backend/internal/domain/trade"
)

// defaultSnapshotPageSize bounds each page while gathering the snapshot
const defaultSnapshotPageSize = 500

// ReportService gathers a consistent snapshot from the repositories and
// runs the MRP engine over it
type ReportService struct {
	engine       *mrp.Engine
	productRepo  catalog.ProductRepository
	supplierRepo partner.SupplierRepository
	jobRepo      planning.ProductionJobRepository
	orderRepo    trade.PurchaseOrderRepository
	pageSize     int
	now          func() time.Time
}

// ReportServiceOption configures a ReportService
type ReportServiceOption func(*ReportService)

// WithSnapshotPageSize overrides the page size used when gathering the
// snapshot. Values below 1 are ignored.
func WithSnapshotPageSize(size int) ReportServiceOption {
	return func(s *ReportService) {
		if size > 0 {
			s.pageSize = size
		}
	}
}

// NewReportService creates a new ReportService
func NewReportService(
	engine *mrp.Engine,
	productRepo catalog.ProductRepository,
	supplierRepo partner.SupplierRepository,
	jobRepo planning.ProductionJobRepository,
	orderRepo trade.PurchaseOrderRepository,
	opts ...ReportServiceOption,
) *ReportService {
	s := &ReportService{
		engine:       engine,
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		jobRepo:      jobRepo,
		orderRepo:    orderRepo,
		pageSize:     defaultSnapshotPageSize,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateReport loads the current snapshot and computes the report
func (s *ReportService) GenerateReport(ctx context.Context) (*mrp.Report, error) {
	snapshot, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return s.engine.GenerateReport(*snapshot, s.now())
}

// GetReport computes the current report as an API response
func (s *ReportService) GetReport(ctx context.Context) (*ReportResponse, error) {
	report, err := s.GenerateReport(ctx)
	if err != nil {
		return nil, err
	}

	response := ToReportResponse(report)
	return &response, nil
}

// ExportReport computes the current report and renders it as an .xlsx
// workbook, returned with a suggested file name
func (s *ReportService) ExportReport(ctx context.Context) ([]byte, string, error) {
	report, err := s.GenerateReport(ctx)
	if err != nil {
		return nil, "", err
	}

	content, err := renderReportWorkbook(report)
	if err != nil {
		return nil, "", err
	}

	fileName := "mrp_report_" + report.GeneratedAt.Format("20060102_150405") + ".xlsx"
	return content, fileName, nil
}

func (s *ReportService) loadSnapshot(ctx context.Context) (*mrp.Snapshot, error) {
	products, err := s.loadAllProducts(ctx)
	if err != nil {
		return nil, err
	}

	suppliers, err := s.loadAllSuppliers(ctx)
	if err != nil {
		return nil, err
	}

	jobs, err := s.jobRepo.FindOpen(ctx)
	if err != nil {
		return nil, err
	}
	commitments := make([]planning.ProductCommitment, 0)
	for i := range jobs {
		commitments = append(commitments, jobs[i].Commitments...)
	}

	orders, err := s.orderRepo.FindLive(ctx)
	if err != nil {
		return nil, err
	}

	return &mrp.Snapshot{
		Products:    products,
		Suppliers:   suppliers,
		Jobs:        jobs,
		Commitments: commitments,
		Orders:      orders,
	}, nil
}

func (s *ReportService) loadAllProducts(ctx context.Context) ([]catalog.Product, error) {
	all := make([]catalog.Product, 0)
	for page := 1; ; page++ {
		batch, err := s.productRepo.FindAll(ctx, shared.Filter{
			Page:     page,
			PageSize: s.pageSize,
			OrderBy:  "code",
			OrderDir: "asc",
		})
		if err != nil {
			return nil, err
		}
		all = append(all, batch...)
		if len(batch) < s.pageSize {
			return all, nil
		}
	}
}

func (s *ReportService) loadAllSuppliers(ctx context.Context) ([]partner.Supplier, error) {
	all := make([]partner.Supplier, 0)
	for page := 1; ; page++ {
		batch, err := s.supplierRepo.FindAll(ctx, shared.Filter{
			Page:     page,
			PageSize: s.pageSize,
			OrderBy:  "code",
			OrderDir: "asc",
		})
		if err != nil {
			return nil, err
		}
		all = append(all, batch...)
		if len(batch) < s.pageSize {
			return all, nil
		}
	}
}
