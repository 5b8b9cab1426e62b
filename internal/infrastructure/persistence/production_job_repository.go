package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mrp/backend/internal/domain/planning"
	"github.com/mrp/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormProductionJobRepository implements ProductionJobRepository using GORM
type GormProductionJobRepository struct {
	db *gorm.DB
}

// NewGormProductionJobRepository creates a new GormProductionJobRepository
func NewGormProductionJobRepository(db *gorm.DB) *GormProductionJobRepository {
	return &GormProductionJobRepository{db: db}
}

// FindByID finds a job by its ID, commitments included
func (r *GormProductionJobRepository) FindByID(ctx context.Context, id uuid.UUID) (*planning.ProductionJob, error) {
	var job planning.ProductionJob
	if err := r.db.WithContext(ctx).
		Preload("Commitments").
		First(&job, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

// FindByNumber finds a job by its number
func (r *GormProductionJobRepository) FindByNumber(ctx context.Context, number string) (*planning.ProductionJob, error) {
	var job planning.ProductionJob
	if err := r.db.WithContext(ctx).
		Preload("Commitments").
		Where("number = ?", number).
		First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

// FindAll finds all jobs matching the filter
func (r *GormProductionJobRepository) FindAll(ctx context.Context, filter shared.Filter) ([]planning.ProductionJob, error) {
	var jobs []planning.ProductionJob
	query := r.applyFilter(r.db.WithContext(ctx).Model(&planning.ProductionJob{}), filter)

	if err := query.Preload("Commitments").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// FindByStatus finds jobs by status
func (r *GormProductionJobRepository) FindByStatus(ctx context.Context, status planning.ProductionJobStatus, filter shared.Filter) ([]planning.ProductionJob, error) {
	var jobs []planning.ProductionJob
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&planning.ProductionJob{}).
			Where("status = ?", status),
		filter,
	)

	if err := query.Preload("Commitments").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// FindOpen finds all planned and in-progress jobs, commitments included
func (r *GormProductionJobRepository) FindOpen(ctx context.Context) ([]planning.ProductionJob, error) {
	var jobs []planning.ProductionJob
	if err := r.db.WithContext(ctx).
		Preload("Commitments").
		Where("status IN ?", []planning.ProductionJobStatus{
			planning.ProductionJobStatusPlanned,
			planning.ProductionJobStatusInProgress,
		}).
		Order("start_date ASC").
		Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// Save creates or updates a job together with its commitments.
// Commitments removed from the aggregate are deleted from the database.
func (r *GormProductionJobRepository) Save(ctx context.Context, job *planning.ProductionJob) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		keep := make([]uuid.UUID, 0, len(job.Commitments))
		for _, c := range job.Commitments {
			keep = append(keep, c.ID)
		}

		stale := tx.Where("job_id = ?", job.ID)
		if len(keep) > 0 {
			stale = stale.Where("id NOT IN ?", keep)
		}
		if err := stale.Delete(&planning.ProductCommitment{}).Error; err != nil {
			return err
		}

		return tx.Save(job).Error
	})
}

// Delete deletes a job and its commitments
func (r *GormProductionJobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", id).Delete(&planning.ProductCommitment{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&planning.ProductionJob{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Count counts jobs matching the filter
func (r *GormProductionJobRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	return r.count(r.db.WithContext(ctx).Model(&planning.ProductionJob{}), filter)
}

// CountByStatus counts jobs in a status
func (r *GormProductionJobRepository) CountByStatus(ctx context.Context, status planning.ProductionJobStatus, filter shared.Filter) (int64, error) {
	return r.count(
		r.db.WithContext(ctx).Model(&planning.ProductionJob{}).
			Where("status = ?", status),
		filter,
	)
}

func (r *GormProductionJobRepository) count(query *gorm.DB, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.applySearch(query, filter).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormProductionJobRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applySearch(query, filter)
	return applyPagination(query, filter, "start_date ASC")
}

func (r *GormProductionJobRepository) applySearch(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("number ILIKE ? OR name ILIKE ?", searchPattern, searchPattern)
	}
	return query
}

// Ensure GormProductionJobRepository implements ProductionJobRepository
var _ planning.ProductionJobRepository = (*GormProductionJobRepository)(nil)
