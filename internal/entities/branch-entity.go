package entities

import (
	"time"

	"branches-api/pkg/types"
)

const BranchStateActive = "ACTIVE"

// Branch хранится как один документ; праздники встроены в него.
type Branch struct {
	ID               string          `json:"id"`
	EmailAddress     string          `json:"emailAddress"`
	Name             string          `json:"name"`
	PhoneNumber      string          `json:"phoneNumber"`
	State            string          `json:"state"`
	CreationDate     time.Time       `json:"creationDate"`
	LastModifiedDate time.Time       `json:"lastModifiedDate"`
	BranchHolidays   []BranchHoliday `json:"branchHolidays"`
}

type BranchHoliday struct {
	Date types.Date `json:"date"`
	Name string     `json:"name"`
}

// Clone возвращает копию с собственным срезом праздников.
func (b *Branch) Clone() *Branch {
	clone := *b
	clone.BranchHolidays = make([]BranchHoliday, len(b.BranchHolidays))
	copy(clone.BranchHolidays, b.BranchHolidays)
	return &clone
}
