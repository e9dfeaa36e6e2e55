// Package auditorrepo persists the auditor pool. The registration sequence
// is the database-assigned row id; it never changes and breaks ties when
// auditors are selected for a dispute.
package auditorrepo

import (
	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/auditor"
	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/kernel"
)

// AuditorDTO represents the database structure for persisting auditor
// records.
type AuditorDTO struct {
	RegistrationSeq uint64 `gorm:"primaryKey;autoIncrement;column:registration_seq"`
	Principal       string `gorm:"type:uuid;uniqueIndex"`
	Active          bool
	Assignments     uint64
}

// TableName overrides GORM's default naming to use "auditors".
func (AuditorDTO) TableName() string {
	return "auditors"
}

func fromDomain(aggregate *auditor.Auditor) AuditorDTO {
	return AuditorDTO{
		RegistrationSeq: aggregate.RegistrationSeq(),
		Principal:       aggregate.Principal().String(),
		Active:          aggregate.IsActive(),
		Assignments:     aggregate.Assignments(),
	}
}

func toDomain(dto AuditorDTO) (*auditor.Auditor, error) {
	principal, err := kernel.PrincipalIDFromString(dto.Principal)
	if err != nil {
		return nil, err
	}

	return auditor.RestoreAuditor(principal, dto.Active, dto.RegistrationSeq, dto.Assignments)
}
