package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mrp/backend/internal/domain/planning"
	"github.com/mrp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupJobTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&planning.ProductionJob{}, &planning.ProductCommitment{}))
	return db
}

func newTestJob(t *testing.T, number string, start time.Time) *planning.ProductionJob {
	t.Helper()
	job, err := planning.NewProductionJob(number, "Batch "+number, start, nil)
	require.NoError(t, err)
	return job
}

func TestGormProductionJobRepository_SaveAndFind(t *testing.T) {
	db := setupJobTestDB(t)
	repo := NewGormProductionJobRepository(db)
	ctx := context.Background()

	job := newTestJob(t, "JOB-001", time.Now().Add(24*time.Hour))
	_, err := job.CommitProduct(uuid.New(), "FLOUR-01", "Bread Flour", decimal.NewFromInt(40))
	require.NoError(t, err)

	require.NoError(t, repo.Save(ctx, job))

	found, err := repo.FindByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, "JOB-001", found.Number)
	require.Len(t, found.Commitments, 1)
	assert.Equal(t, "FLOUR-01", found.Commitments[0].ProductCode)
	assert.True(t, found.Commitments[0].QuantityCommitted.Equal(decimal.NewFromInt(40)))
}

func TestGormProductionJobRepository_SaveRemovesStaleCommitments(t *testing.T) {
	db := setupJobTestDB(t)
	repo := NewGormProductionJobRepository(db)
	ctx := context.Background()

	job := newTestJob(t, "JOB-002", time.Now().Add(24*time.Hour))
	kept, err := job.CommitProduct(uuid.New(), "FLOUR-01", "Bread Flour", decimal.NewFromInt(10))
	require.NoError(t, err)
	removed, err := job.CommitProduct(uuid.New(), "YEAST-01", "Dry Yeast", decimal.NewFromInt(2))
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, job))

	require.NoError(t, job.RemoveCommitment(removed.ID))
	require.NoError(t, repo.Save(ctx, job))

	found, err := repo.FindByID(ctx, job.ID)
	require.NoError(t, err)
	require.Len(t, found.Commitments, 1)
	assert.Equal(t, kept.ID, found.Commitments[0].ID)

	var rows int64
	require.NoError(t, db.Model(&planning.ProductCommitment{}).
		Where("job_id = ?", job.ID).Count(&rows).Error)
	assert.Equal(t, int64(1), rows)
}

func TestGormProductionJobRepository_FindOpen(t *testing.T) {
	db := setupJobTestDB(t)
	repo := NewGormProductionJobRepository(db)
	ctx := context.Background()

	later := newTestJob(t, "JOB-020", time.Now().Add(72*time.Hour))
	earlier := newTestJob(t, "JOB-010", time.Now().Add(24*time.Hour))
	inProgress := newTestJob(t, "JOB-030", time.Now().Add(48*time.Hour))
	require.NoError(t, inProgress.Start())
	done := newTestJob(t, "JOB-040", time.Now().Add(12*time.Hour))
	require.NoError(t, done.Start())
	require.NoError(t, done.Complete())

	for _, j := range []*planning.ProductionJob{later, earlier, inProgress, done} {
		require.NoError(t, repo.Save(ctx, j))
	}

	open, err := repo.FindOpen(ctx)
	require.NoError(t, err)
	require.Len(t, open, 3)

	// Ordered by start date ascending, completed jobs excluded
	assert.Equal(t, "JOB-010", open[0].Number)
	assert.Equal(t, "JOB-030", open[1].Number)
	assert.Equal(t, "JOB-020", open[2].Number)
}

func TestGormProductionJobRepository_FindByNumber(t *testing.T) {
	db := setupJobTestDB(t)
	repo := NewGormProductionJobRepository(db)
	ctx := context.Background()

	job := newTestJob(t, "JOB-050", time.Now().Add(24*time.Hour))
	require.NoError(t, repo.Save(ctx, job))

	found, err := repo.FindByNumber(ctx, "JOB-050")
	require.NoError(t, err)
	assert.Equal(t, job.ID, found.ID)

	_, err = repo.FindByNumber(ctx, "JOB-999")
	assert.True(t, errors.Is(err, shared.ErrNotFound))
}

func TestGormProductionJobRepository_Delete(t *testing.T) {
	db := setupJobTestDB(t)
	repo := NewGormProductionJobRepository(db)
	ctx := context.Background()

	job := newTestJob(t, "JOB-060", time.Now().Add(24*time.Hour))
	_, err := job.CommitProduct(uuid.New(), "FLOUR-01", "Bread Flour", decimal.NewFromInt(5))
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, job))

	require.NoError(t, repo.Delete(ctx, job.ID))

	_, err = repo.FindByID(ctx, job.ID)
	assert.True(t, errors.Is(err, shared.ErrNotFound))

	var remaining int64
	require.NoError(t, db.Model(&planning.ProductCommitment{}).
		Where("job_id = ?", job.ID).Count(&remaining).Error)
	assert.Zero(t, remaining)
}
