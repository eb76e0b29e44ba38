package repositories

import (
	"encoding/json"

	"branches-api/internal/entities"
)

func encodeHolidays(holidays []entities.BranchHoliday) ([]byte, error) {
	if holidays == nil {
		holidays = []entities.BranchHoliday{}
	}
	return json.Marshal(holidays)
}

// decodeHolidays: пустое значение и null дают пустой список, не nil.
func decodeHolidays(raw []byte) ([]entities.BranchHoliday, error) {
	holidays := []entities.BranchHoliday{}
	if len(raw) == 0 || string(raw) == "null" {
		return holidays, nil
	}
	if err := json.Unmarshal(raw, &holidays); err != nil {
		return nil, err
	}
	if holidays == nil {
		holidays = []entities.BranchHoliday{}
	}
	return holidays, nil
}

func encodeBranch(branch *entities.Branch) ([]byte, error) {
	doc := *branch
	if doc.BranchHolidays == nil {
		doc.BranchHolidays = []entities.BranchHoliday{}
	}
	return json.Marshal(doc)
}

func decodeBranch(raw []byte) (*entities.Branch, error) {
	var branch entities.Branch
	if err := json.Unmarshal(raw, &branch); err != nil {
		return nil, err
	}
	if branch.BranchHolidays == nil {
		branch.BranchHolidays = []entities.BranchHoliday{}
	}
	return &branch, nil
}
