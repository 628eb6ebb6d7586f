package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ProductStatus represents the catalog lifecycle of a product
type ProductStatus int

const (
	ProductStatusActive       ProductStatus = 0
	ProductStatusDiscontinued ProductStatus = 1
	ProductStatusOutOfStock   ProductStatus = 2
)

var productStatusNames = [...]string{"Active", "Discontinued", "Out of Stock"}

func (s ProductStatus) String() string {
	if int(s) < 0 || int(s) >= len(productStatusNames) {
		return "Active"
	}
	return productStatusNames[s]
}

// Selectable reports whether products in this status may be picked for new orders
func (s ProductStatus) Selectable() bool {
	return s != ProductStatusDiscontinued
}

func (s ProductStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *ProductStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = ProductStatus(i)
		return nil
	}
	*s = parseProductStatus(str)
	return nil
}

func parseProductStatus(str string) ProductStatus {
	for i, name := range productStatusNames {
		if name == str {
			return ProductStatus(i)
		}
	}
	return ProductStatusActive
}

func (s ProductStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *ProductStatus) Scan(value interface{}) error {
	if value == nil {
		*s = ProductStatusActive
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = ProductStatus(v)
	case int:
		*s = ProductStatus(v)
	case string:
		*s = parseProductStatus(v)
	case []byte:
		*s = parseProductStatus(string(v))
	}
	return nil
}
