package dto

import (
	"time"

	"github.com/aarondl/null/v8"

	"branches-api/internal/entities"
	"branches-api/pkg/types"
)

type BranchRequest struct {
	Name         string `json:"name" validate:"notblank"`
	EmailAddress string `json:"emailAddress" validate:"notblank,email"`
	PhoneNumber  string `json:"phoneNumber" validate:"notblank,phone10"`
}

type PhoneUpdateRequest struct {
	PhoneNumber string `json:"phoneNumber" validate:"notblank,phone10"`
}

type BranchHolidayRequest struct {
	Date *types.Date `json:"date" validate:"required"`
	Name string      `json:"name" validate:"notblank"`
}

type BranchResponse struct {
	ID               string                   `json:"id"`
	EmailAddress     string                   `json:"emailAddress"`
	Name             string                   `json:"name"`
	PhoneNumber      string                   `json:"phoneNumber"`
	State            string                   `json:"state"`
	CreationDate     time.Time                `json:"creationDate"`
	LastModifiedDate time.Time                `json:"lastModifiedDate"`
	BranchHolidays   []entities.BranchHoliday `json:"branchHolidays"`
}

type HolidayCheckResponse struct {
	BranchID    string      `json:"branchId"`
	Date        types.Date  `json:"date"`
	IsHoliday   bool        `json:"isHoliday"`
	HolidayName null.String `json:"holidayName"`
}
