package dto

// Item de pedido serializado na coluna jsonb de product_orders.
type OrderItem struct {
	ProductID uint    `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// OrderItemDetail enriquece o item com os dados atuais do produto.
type OrderItemDetail struct {
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	ImageURL    string  `json:"image_url"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

type OrderDetailDTO struct {
	ID          uint              `json:"id"`
	Items       []OrderItemDetail `json:"items"`
	TotalAmount float64           `json:"total_amount"`
	Status      string            `json:"status"`
	PaymentURL  string            `json:"payment_url,omitempty"`
	CreatedAt   string            `json:"created_at"`
}
