package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// SalesMode restricts which pricing types a product may be ordered with
type SalesMode int

const (
	SalesModeCase SalesMode = 0
	SalesModeUnit SalesMode = 1
	SalesModeBoth SalesMode = 2
)

func (m SalesMode) String() string {
	return [...]string{"case", "unit", "both"}[m]
}

// Allows reports whether the sales mode permits the given pricing type
func (m SalesMode) Allows(t PricingType) bool {
	switch m {
	case SalesModeCase:
		return t == PricingTypeBox
	case SalesModeUnit:
		return t == PricingTypeUnit
	default:
		return true
	}
}

func (m SalesMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *SalesMode) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*m = SalesMode(i)
		return nil
	}
	switch str {
	case "case":
		*m = SalesModeCase
	case "unit":
		*m = SalesModeUnit
	case "both":
		*m = SalesModeBoth
	}
	return nil
}

func (m SalesMode) Value() (driver.Value, error) {
	return int64(m), nil
}

func (m *SalesMode) Scan(value interface{}) error {
	if value == nil {
		*m = SalesModeBoth
		return nil
	}
	switch v := value.(type) {
	case int64:
		*m = SalesMode(v)
	case int:
		*m = SalesMode(v)
	}
	return nil
}
