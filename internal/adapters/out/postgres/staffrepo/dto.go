// Package staffrepo provides data transfer objects and mapping functions
// for staff account persistence.
package staffrepo

import (
	"time"

	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/kernel"
	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/staff"

	"github.com/google/uuid"
)

// StaffDTO represents the database structure for persisting staff accounts.
// Only the bcrypt hash of the password is ever stored.
type StaffDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"uniqueIndex"`
	DisplayName  string
	PasswordHash string
	Role         int
	Active       bool
	CreatedAt    time.Time `gorm:"autoCreateTime:false"`
}

// TableName specifies the database table name for staff accounts.
func (StaffDTO) TableName() string {
	return "staff"
}

func fromDomain(aggregate *staff.Staff) StaffDTO {
	return StaffDTO{
		ID:           aggregate.ID().Bytes(),
		Username:     aggregate.Username(),
		DisplayName:  aggregate.DisplayName(),
		PasswordHash: aggregate.PasswordHash(),
		Role:         int(aggregate.Role()),
		Active:       aggregate.IsActive(),
		CreatedAt:    aggregate.CreatedAt(),
	}
}

func toDomain(dto StaffDTO) (*staff.Staff, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return staff.RestoreStaff(
		id, dto.Username, dto.DisplayName, dto.PasswordHash,
		staff.Role(dto.Role), dto.Active, dto.CreatedAt)
}
