package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ProductType represents how a product's unit size is measured
type ProductType int

const (
	ProductTypeVolume ProductType = 0
	ProductTypeMass   ProductType = 1
)

func (t ProductType) String() string {
	names := [...]string{"Volume", "Mass"}
	if int(t) < 0 || int(t) >= len(names) {
		return "Volume"
	}
	return names[t]
}

// BulkUnit is the unit a carton size is expressed in
func (t ProductType) BulkUnit() string {
	if t == ProductTypeMass {
		return "kg"
	}
	return "L"
}

func (t ProductType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *ProductType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = ProductType(i)
		return nil
	}
	switch str {
	case "Volume":
		*t = ProductTypeVolume
	case "Mass":
		*t = ProductTypeMass
	}
	return nil
}

func (t ProductType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *ProductType) Scan(value interface{}) error {
	if value == nil {
		*t = ProductTypeVolume
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = ProductType(v)
	case int:
		*t = ProductType(v)
	case string:
		if v == "Mass" {
			*t = ProductTypeMass
		} else {
			*t = ProductTypeVolume
		}
	}
	return nil
}
