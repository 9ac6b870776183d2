package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PricingType says whether an order line is priced per box/case or per unit
type PricingType int

const (
	PricingTypeBox  PricingType = 0
	PricingTypeUnit PricingType = 1
)

func (t PricingType) String() string {
	return [...]string{"box", "unit"}[t]
}

func (t PricingType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *PricingType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = PricingType(i)
		return nil
	}
	switch str {
	case "box":
		*t = PricingTypeBox
	case "unit":
		*t = PricingTypeUnit
	}
	return nil
}

func (t PricingType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *PricingType) Scan(value interface{}) error {
	if value == nil {
		*t = PricingTypeBox
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = PricingType(v)
	case int:
		*t = PricingType(v)
	}
	return nil
}
