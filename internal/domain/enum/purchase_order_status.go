package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PurchaseOrderStatus represents the lifecycle of a vendor purchase order
type PurchaseOrderStatus int

const (
	PurchaseOrderStatusDraft    PurchaseOrderStatus = 0
	PurchaseOrderStatusOrdered  PurchaseOrderStatus = 1
	PurchaseOrderStatusReceived PurchaseOrderStatus = 2
)

func (s PurchaseOrderStatus) String() string {
	return [...]string{"Draft", "Ordered", "Received"}[s]
}

func (s PurchaseOrderStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *PurchaseOrderStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = PurchaseOrderStatus(i)
		return nil
	}
	switch str {
	case "Draft":
		*s = PurchaseOrderStatusDraft
	case "Ordered":
		*s = PurchaseOrderStatusOrdered
	case "Received":
		*s = PurchaseOrderStatusReceived
	}
	return nil
}

func (s PurchaseOrderStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *PurchaseOrderStatus) Scan(value interface{}) error {
	if value == nil {
		*s = PurchaseOrderStatusDraft
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = PurchaseOrderStatus(v)
	case int:
		*s = PurchaseOrderStatus(v)
	}
	return nil
}
