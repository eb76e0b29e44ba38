package mappers

import (
	"time"

	"branches-api/internal/dto"
	"branches-api/internal/entities"
)

type BranchMapperInterface interface {
	ToEntity(request dto.BranchRequest) *entities.Branch
	ToResponse(branch *entities.Branch) dto.BranchResponse
}

type BranchMapper struct {
	now func() time.Time
}

func NewBranchMapper(now func() time.Time) BranchMapperInterface {
	return &BranchMapper{now: now}
}

// ToEntity не выставляет ID: его назначает хранилище при сохранении.
func (m *BranchMapper) ToEntity(request dto.BranchRequest) *entities.Branch {
	now := m.now()
	return &entities.Branch{
		Name:             request.Name,
		EmailAddress:     request.EmailAddress,
		PhoneNumber:      request.PhoneNumber,
		State:            entities.BranchStateActive,
		CreationDate:     now,
		LastModifiedDate: now,
		BranchHolidays:   []entities.BranchHoliday{},
	}
}

// ToResponse отдаёт срез праздников как есть, без копирования.
func (m *BranchMapper) ToResponse(branch *entities.Branch) dto.BranchResponse {
	holidays := branch.BranchHolidays
	if holidays == nil {
		holidays = []entities.BranchHoliday{}
	}
	return dto.BranchResponse{
		ID:               branch.ID,
		EmailAddress:     branch.EmailAddress,
		Name:             branch.Name,
		PhoneNumber:      branch.PhoneNumber,
		State:            branch.State,
		CreationDate:     branch.CreationDate,
		LastModifiedDate: branch.LastModifiedDate,
		BranchHolidays:   holidays,
	}
}
