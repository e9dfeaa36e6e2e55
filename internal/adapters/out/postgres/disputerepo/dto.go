// Package disputerepo persists dispute aggregates. A dispute is keyed by its
// order id; the two assigned auditors are stored as a text array and the
// argument log as child rows in submission order.
package disputerepo

import (
	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/dispute"
	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/kernel"

	"github.com/lib/pq"
)

// DisputeDTO represents the database structure for persisting dispute
// aggregates.
type DisputeDTO struct {
	OrderID    uint64         `gorm:"primaryKey"`
	RaisedBy   string         `gorm:"type:uuid"`
	Reason     string
	Auditors   pq.StringArray `gorm:"type:text[]"`
	Resolution string
	Resolved   bool
	Arguments  []ArgumentDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "disputes".
func (DisputeDTO) TableName() string {
	return "disputes"
}

// ArgumentDTO is one entry of a dispute's argument log.
type ArgumentDTO struct {
	ID      uint64 `gorm:"primaryKey;autoIncrement"`
	OrderID uint64 `gorm:"index"`
	Author  string `gorm:"type:uuid"`
	Text    string
}

// TableName overrides GORM's default naming to use "dispute_arguments".
func (ArgumentDTO) TableName() string {
	return "dispute_arguments"
}

func fromDomain(aggregate *dispute.Dispute) DisputeDTO {
	auditors := aggregate.Auditors()
	rawAuditors := make(pq.StringArray, 0, len(auditors))
	for _, a := range auditors {
		rawAuditors = append(rawAuditors, a.String())
	}

	arguments := aggregate.Arguments()
	argumentDTOs := make([]ArgumentDTO, 0, len(arguments))
	for _, arg := range arguments {
		argumentDTOs = append(argumentDTOs, ArgumentDTO{
			OrderID: aggregate.OrderID(),
			Author:  arg.Author().String(),
			Text:    arg.Text(),
		})
	}

	return DisputeDTO{
		OrderID:    aggregate.OrderID(),
		RaisedBy:   aggregate.RaisedBy().String(),
		Reason:     aggregate.Reason(),
		Auditors:   rawAuditors,
		Resolution: aggregate.Resolution(),
		Resolved:   aggregate.IsResolved(),
		Arguments:  argumentDTOs,
	}
}

func toDomain(dto DisputeDTO) (*dispute.Dispute, error) {
	raisedBy, err := kernel.PrincipalIDFromString(dto.RaisedBy)
	if err != nil {
		return nil, err
	}

	var auditors [dispute.AuditorCount]kernel.PrincipalID
	for i, raw := range dto.Auditors {
		if i >= dispute.AuditorCount {
			break
		}
		auditors[i], err = kernel.PrincipalIDFromString(raw)
		if err != nil {
			return nil, err
		}
	}

	arguments := make([]dispute.Argument, 0, len(dto.Arguments))
	for _, argDTO := range dto.Arguments {
		author, authorErr := kernel.PrincipalIDFromString(argDTO.Author)
		if authorErr != nil {
			return nil, authorErr
		}
		arg, argErr := dispute.NewArgument(author, argDTO.Text)
		if argErr != nil {
			return nil, argErr
		}
		arguments = append(arguments, arg)
	}

	return dispute.RestoreDispute(
		dto.OrderID,
		raisedBy,
		dto.Reason,
		auditors,
		arguments,
		dto.Resolution,
		dto.Resolved,
	)
}
