package auditorrepo

import (
	"context"
	"errors"

	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/auditor"
	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/kernel"
	"github.com/sTingley/ProcurementOrderManager/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAuditorRepository implements AuditorRepository using GORM.
type GormAuditorRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id uint64, aggregate any)
}

// NewGormAuditorRepository creates a new GORM auditor repository.
func NewGormAuditorRepository(db *gorm.DB, tracker aggregateTracker) *GormAuditorRepository {
	return &GormAuditorRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new auditor record and returns its registration sequence.
func (r *GormAuditorRepository) Add(ctx context.Context, aggregate *auditor.Auditor) (uint64, error) {
	if err := aggregate.Validate(); err != nil {
		return 0, err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return 0, err
	}

	r.tracker.TrackAggregate(dto.RegistrationSeq, aggregate)
	return dto.RegistrationSeq, nil
}

// Update saves an existing auditor record, keyed by principal.
func (r *GormAuditorRepository) Update(ctx context.Context, aggregate *auditor.Auditor) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&AuditorDTO{}).
		Where("principal = ?", dto.Principal).
		Updates(map[string]any{"active": dto.Active, "assignments": dto.Assignments})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("principal", dto.Principal)
	}

	r.tracker.TrackAggregate(dto.RegistrationSeq, aggregate)
	return nil
}

// GetByPrincipal retrieves the record for the given principal.
func (r *GormAuditorRepository) GetByPrincipal(ctx context.Context, principal kernel.PrincipalID) (*auditor.Auditor, error) {
	if err := principal.Validate(); err != nil {
		return nil, err
	}

	var dto AuditorDTO
	if err := r.db.WithContext(ctx).First(&dto, "principal = ?", principal.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("principal", principal.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves the whole pool in registration order.
func (r *GormAuditorRepository) GetAll(ctx context.Context) ([]*auditor.Auditor, error) {
	var dtos []AuditorDTO
	if err := r.db.WithContext(ctx).Order("registration_seq").Find(&dtos).Error; err != nil {
		return nil, err
	}

	pool := make([]*auditor.Auditor, 0, len(dtos))
	for _, dto := range dtos {
		record, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		pool = append(pool, record)
	}

	return pool, nil
}
