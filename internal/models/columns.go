package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/spacos/spac-os-api/internal/rules"
)

// StringList is a list of tags stored as a JSON column.
type StringList []string

// Value implements driver.Valuer for StringList
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner for StringList
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("cannot scan %T into StringList", value)
	}

	return json.Unmarshal(bytes, l)
}

// OwnershipStakes is a target's tracked owners stored as a JSON column.
type OwnershipStakes []rules.OwnershipStake

// Value implements driver.Valuer for OwnershipStakes
func (s OwnershipStakes) Value() (driver.Value, error) {
	if s == nil {
		return json.Marshal([]rules.OwnershipStake{})
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner for OwnershipStakes
func (s *OwnershipStakes) Scan(value interface{}) error {
	if value == nil {
		*s = OwnershipStakes{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("cannot scan %T into OwnershipStakes", value)
	}

	return json.Unmarshal(bytes, s)
}
