package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PriceCategory is the per-store tier that selects which box-price field applies
type PriceCategory int

const (
	PriceCategoryA          PriceCategory = 0
	PriceCategoryB          PriceCategory = 1
	PriceCategoryC          PriceCategory = 2
	PriceCategoryRestaurant PriceCategory = 3
)

func (c PriceCategory) String() string {
	return [...]string{"aPrice", "bPrice", "cPrice", "restaurantPrice"}[c]
}

func (c PriceCategory) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *PriceCategory) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*c = PriceCategory(i)
		return nil
	}
	switch str {
	case "aPrice":
		*c = PriceCategoryA
	case "bPrice":
		*c = PriceCategoryB
	case "cPrice":
		*c = PriceCategoryC
	case "restaurantPrice":
		*c = PriceCategoryRestaurant
	}
	return nil
}

func (c PriceCategory) Value() (driver.Value, error) {
	return int64(c), nil
}

func (c *PriceCategory) Scan(value interface{}) error {
	if value == nil {
		*c = PriceCategoryA
		return nil
	}
	switch v := value.(type) {
	case int64:
		*c = PriceCategory(v)
	case int:
		*c = PriceCategory(v)
	}
	return nil
}
