package enum

import "encoding/json"

// OrderMode selects how a computation prices its lines
type OrderMode int

const (
	// OrderModeOrder is a distributor order: tier pricing, schemes and GST apply.
	OrderModeOrder OrderMode = 0
	// OrderModeDispatch is a plant-to-store transfer valued at list price.
	OrderModeDispatch OrderMode = 1
)

func (m OrderMode) String() string {
	names := [...]string{"Order", "Dispatch"}
	if int(m) < 0 || int(m) >= len(names) {
		return "Order"
	}
	return names[m]
}

func (m OrderMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *OrderMode) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*m = OrderMode(i)
		return nil
	}
	switch str {
	case "Order":
		*m = OrderModeOrder
	case "Dispatch":
		*m = OrderModeDispatch
	}
	return nil
}
