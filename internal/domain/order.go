package domain

// Order is a catering order. Items keep their entry order for display;
// ingredient totals do not depend on it.
type Order struct {
	ID           string      `yaml:"id"`
	CustomerName string      `yaml:"customer" validate:"required"`
	Date         string      `yaml:"date,omitempty"`
	Status       OrderStatus `yaml:"status,omitempty" validate:"omitempty,oneof=pending in-progress completed"`
	Items        []LineItem  `yaml:"items" validate:"required,dive"`
	Notes        string      `yaml:"notes,omitempty"`
}

// LineItem asks for a number of servings of one dish type.
type LineItem struct {
	DishType string  `yaml:"type" validate:"required"`
	Servings float64 `yaml:"servings" validate:"gt=0"`
}

// OrderStatus tracks the lifecycle of an order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderInProgress OrderStatus = "in-progress"
	OrderCompleted  OrderStatus = "completed"
)

// TotalServings sums the servings of every item.
func (o *Order) TotalServings() float64 {
	var total float64
	for _, it := range o.Items {
		total += it.Servings
	}
	return total
}
