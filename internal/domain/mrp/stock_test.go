package mrp

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mrp/backend/internal/domain/catalog"
	"github.com/mrp/backend/internal/domain/planning"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProduct(t *testing.T, code string) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct(code, "Product "+code, "pcs", uuid.New())
	require.NoError(t, err)
	return product
}

func newOpenJob(t *testing.T, number string) *planning.ProductionJob {
	t.Helper()
	job, err := planning.NewProductionJob(number, "Job "+number, time.Now().AddDate(0, 0, 10), nil)
	require.NoError(t, err)
	return job
}

func newCommitment(t *testing.T, job *planning.ProductionJob, productID uuid.UUID, quantity int64) planning.ProductCommitment {
	t.Helper()
	commitment, err := planning.NewProductCommitment(job.ID, productID, "CODE", "Name", decimal.NewFromInt(quantity))
	require.NoError(t, err)
	return *commitment
}

func TestResolveAvailableStock(t *testing.T) {
	t.Run("subtracts open commitments, expired and rejected", func(t *testing.T) {
		product := newTestProduct(t, "WIDGET-01")
		require.NoError(t, product.SetStockLevels(
			decimal.NewFromInt(120),
			decimal.NewFromInt(100),
			decimal.NewFromInt(50),
			decimal.NewFromInt(170),
			decimal.NewFromInt(10),
			decimal.NewFromInt(5),
		))

		job := newOpenJob(t, "JOB-001")
		jobs := map[uuid.UUID]*planning.ProductionJob{job.ID: job}
		commitments := []planning.ProductCommitment{newCommitment(t, job, product.ID, 25)}

		available, err := resolveAvailableStock(product, commitments, jobs)
		require.NoError(t, err)
		// 100 - 25 - 10 - 5
		assert.True(t, available.Equal(decimal.NewFromInt(60)), "got %s", available)
	})

	t.Run("ignores incoming stock", func(t *testing.T) {
		product := newTestProduct(t, "WIDGET-02")
		require.NoError(t, product.SetStockLevels(
			decimal.NewFromInt(10),
			decimal.NewFromInt(10),
			decimal.NewFromInt(500),
			decimal.NewFromInt(510),
			decimal.Zero,
			decimal.Zero,
		))

		available, err := resolveAvailableStock(product, nil, nil)
		require.NoError(t, err)
		assert.True(t, available.Equal(decimal.NewFromInt(10)))
	})

	t.Run("ignores commitments of closed jobs", func(t *testing.T) {
		product := newTestProduct(t, "WIDGET-03")
		require.NoError(t, product.SetStockLevels(
			decimal.NewFromInt(100),
			decimal.NewFromInt(100),
			decimal.Zero,
			decimal.NewFromInt(100),
			decimal.Zero,
			decimal.Zero,
		))

		job := newOpenJob(t, "JOB-002")
		require.NoError(t, job.Start())
		require.NoError(t, job.Complete())
		jobs := map[uuid.UUID]*planning.ProductionJob{job.ID: job}
		commitments := []planning.ProductCommitment{newCommitment(t, job, product.ID, 40)}

		available, err := resolveAvailableStock(product, commitments, jobs)
		require.NoError(t, err)
		assert.True(t, available.Equal(decimal.NewFromInt(100)))
	})

	t.Run("floors at zero", func(t *testing.T) {
		product := newTestProduct(t, "WIDGET-04")
		require.NoError(t, product.SetStockLevels(
			decimal.NewFromInt(10),
			decimal.NewFromInt(10),
			decimal.Zero,
			decimal.NewFromInt(10),
			decimal.NewFromInt(4),
			decimal.NewFromInt(3),
		))

		job := newOpenJob(t, "JOB-003")
		jobs := map[uuid.UUID]*planning.ProductionJob{job.ID: job}
		commitments := []planning.ProductCommitment{newCommitment(t, job, product.ID, 50)}

		available, err := resolveAvailableStock(product, commitments, jobs)
		require.NoError(t, err)
		assert.True(t, available.IsZero())
	})

	t.Run("rejects negative quantities", func(t *testing.T) {
		product := newTestProduct(t, "WIDGET-05")
		product.Expired = decimal.NewFromInt(-1)

		_, err := resolveAvailableStock(product, nil, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "WIDGET-05")
		assert.Contains(t, err.Error(), "negative")
	})

	t.Run("fails when a commitment references a missing job", func(t *testing.T) {
		product := newTestProduct(t, "WIDGET-06")
		orphan := planning.ProductCommitment{
			ID:                uuid.New(),
			JobID:             uuid.New(),
			ProductID:         product.ID,
			QuantityCommitted: decimal.NewFromInt(5),
		}

		_, err := resolveAvailableStock(product, []planning.ProductCommitment{orphan}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), orphan.JobID.String())
	})
}
