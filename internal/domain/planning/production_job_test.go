package planning

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestJob(t *testing.T) *ProductionJob {
	t.Helper()
	start := time.Now().AddDate(0, 0, 7)
	job, err := NewProductionJob("JOB-001", "Spring batch", start, nil)
	require.NoError(t, err)
	return job
}

func TestProductionJobStatus(t *testing.T) {
	t.Run("IsValid returns true for valid statuses", func(t *testing.T) {
		for _, status := range []ProductionJobStatus{
			ProductionJobStatusPlanned,
			ProductionJobStatusInProgress,
			ProductionJobStatusCompleted,
			ProductionJobStatusCancelled,
		} {
			assert.True(t, status.IsValid(), "Expected %s to be valid", status)
		}
	})

	t.Run("IsValid returns false for invalid status", func(t *testing.T) {
		assert.False(t, ProductionJobStatus("paused").IsValid())
	})

	t.Run("IsOpen only for planned and in progress", func(t *testing.T) {
		assert.True(t, ProductionJobStatusPlanned.IsOpen())
		assert.True(t, ProductionJobStatusInProgress.IsOpen())
		assert.False(t, ProductionJobStatusCompleted.IsOpen())
		assert.False(t, ProductionJobStatusCancelled.IsOpen())
	})

	t.Run("terminal statuses cannot transition", func(t *testing.T) {
		assert.False(t, ProductionJobStatusCompleted.CanTransitionTo(ProductionJobStatusInProgress))
		assert.False(t, ProductionJobStatusCancelled.CanTransitionTo(ProductionJobStatusPlanned))
	})
}

func TestNewProductionJob(t *testing.T) {
	t.Run("creates job with valid input", func(t *testing.T) {
		start := time.Now()
		end := start.AddDate(0, 0, 14)
		job, err := NewProductionJob("JOB-001", "Spring batch", start, &end)
		require.NoError(t, err)
		require.NotNil(t, job)

		assert.NotEqual(t, uuid.Nil, job.ID)
		assert.Equal(t, "JOB-001", job.Number)
		assert.Equal(t, ProductionJobStatusPlanned, job.Status)
		assert.Empty(t, job.Commitments)

		events := job.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeProductionJobCreated, events[0].EventType())
	})

	t.Run("fails with empty number", func(t *testing.T) {
		job, err := NewProductionJob("", "Spring batch", time.Now(), nil)
		assert.Nil(t, job)
		assert.Error(t, err)
	})

	t.Run("fails when end date precedes start date", func(t *testing.T) {
		start := time.Now()
		end := start.AddDate(0, 0, -1)
		job, err := NewProductionJob("JOB-001", "Spring batch", start, &end)
		assert.Nil(t, job)
		assert.Error(t, err)
	})
}

func TestProductionJob_CommitProduct(t *testing.T) {
	job := createTestJob(t)
	productID := uuid.New()

	t.Run("commits a product", func(t *testing.T) {
		commitment, err := job.CommitProduct(productID, "WIDGET-01", "Widget", decimal.NewFromInt(25))
		require.NoError(t, err)
		require.NotNil(t, commitment)
		assert.Equal(t, job.ID, commitment.JobID)
		assert.Len(t, job.Commitments, 1)
	})

	t.Run("rejects duplicate product", func(t *testing.T) {
		_, err := job.CommitProduct(productID, "WIDGET-01", "Widget", decimal.NewFromInt(5))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already committed")
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := job.CommitProduct(uuid.New(), "GADGET-01", "Gadget", decimal.Zero)
		assert.Error(t, err)
	})

	t.Run("updates commitment quantity", func(t *testing.T) {
		commitmentID := job.Commitments[0].ID
		err := job.UpdateCommitmentQuantity(commitmentID, decimal.NewFromInt(40))
		require.NoError(t, err)
		assert.True(t, job.Commitments[0].QuantityCommitted.Equal(decimal.NewFromInt(40)))
	})

	t.Run("removes commitment", func(t *testing.T) {
		commitmentID := job.Commitments[0].ID
		err := job.RemoveCommitment(commitmentID)
		require.NoError(t, err)
		assert.Empty(t, job.Commitments)
	})

	t.Run("rejects changes after job starts", func(t *testing.T) {
		require.NoError(t, job.Start())
		_, err := job.CommitProduct(uuid.New(), "GADGET-01", "Gadget", decimal.NewFromInt(5))
		assert.Error(t, err)
	})
}

func TestProductionJob_Lifecycle(t *testing.T) {
	t.Run("planned to in progress to completed", func(t *testing.T) {
		job := createTestJob(t)
		require.NoError(t, job.Start())
		assert.Equal(t, ProductionJobStatusInProgress, job.Status)
		assert.True(t, job.IsOpen())

		require.NoError(t, job.Complete())
		assert.Equal(t, ProductionJobStatusCompleted, job.Status)
		assert.False(t, job.IsOpen())
		require.NotNil(t, job.CompletedAt)
	})

	t.Run("cannot complete a planned job", func(t *testing.T) {
		job := createTestJob(t)
		assert.Error(t, job.Complete())
	})

	t.Run("cancel records reason", func(t *testing.T) {
		job := createTestJob(t)
		require.NoError(t, job.Cancel("material shortage"))
		assert.Equal(t, ProductionJobStatusCancelled, job.Status)
		assert.Equal(t, "material shortage", job.CancelReason)
		require.NotNil(t, job.CancelledAt)
	})

	t.Run("cannot cancel a completed job", func(t *testing.T) {
		job := createTestJob(t)
		require.NoError(t, job.Start())
		require.NoError(t, job.Complete())
		assert.Error(t, job.Cancel("too late"))
	})
}

func TestProductionJob_ConsumptionDate(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("uses end date when present", func(t *testing.T) {
		job, err := NewProductionJob("JOB-001", "Batch", start, &end)
		require.NoError(t, err)
		assert.Equal(t, end, job.ConsumptionDate())
	})

	t.Run("falls back to start date", func(t *testing.T) {
		job, err := NewProductionJob("JOB-002", "Batch", start, nil)
		require.NoError(t, err)
		assert.Equal(t, start, job.ConsumptionDate())
	})
}
