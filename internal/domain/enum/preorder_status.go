package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PreOrderStatus represents the status of a pre-order
type PreOrderStatus int

const (
	PreOrderStatusPending   PreOrderStatus = 0
	PreOrderStatusConfirmed PreOrderStatus = 1
	PreOrderStatusCancelled PreOrderStatus = 2
)

func (s PreOrderStatus) String() string {
	return [...]string{"Pending", "Confirmed", "Cancelled"}[s]
}

func (s PreOrderStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *PreOrderStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = PreOrderStatus(i)
		return nil
	}
	switch str {
	case "Pending":
		*s = PreOrderStatusPending
	case "Confirmed":
		*s = PreOrderStatusConfirmed
	case "Cancelled":
		*s = PreOrderStatusCancelled
	}
	return nil
}

func (s PreOrderStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *PreOrderStatus) Scan(value interface{}) error {
	if value == nil {
		*s = PreOrderStatusPending
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = PreOrderStatus(v)
	case int:
		*s = PreOrderStatus(v)
	}
	return nil
}
