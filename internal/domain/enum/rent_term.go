package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// RentTerm represents the rental billing term
type RentTerm int

const (
	RentTermMonthly RentTerm = 0
	RentTermYearly  RentTerm = 1
)

var rentTermNames = [...]string{"Monthly", "Yearly"}

func (t RentTerm) String() string {
	if t < 0 || int(t) >= len(rentTermNames) {
		return "Monthly"
	}
	return rentTermNames[t]
}

// ParseRentTerm parses a display name into a RentTerm
func ParseRentTerm(s string) (RentTerm, error) {
	for i, name := range rentTermNames {
		if name == s {
			return RentTerm(i), nil
		}
	}
	return RentTermMonthly, fmt.Errorf("unknown rent term %q", s)
}

func (t RentTerm) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *RentTerm) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = RentTerm(i)
		return nil
	}
	term, err := ParseRentTerm(str)
	if err != nil {
		return err
	}
	*t = term
	return nil
}

func (t RentTerm) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *RentTerm) Scan(value interface{}) error {
	if value == nil {
		*t = RentTermMonthly
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = RentTerm(v)
	case int:
		*t = RentTerm(v)
	}
	return nil
}
