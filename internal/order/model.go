package order

import (
	"time"

	"mrdaebak/internal/cart"
)

type DeliveryInfo struct {
	Address    string `json:"address"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	CardNumber string `json:"card_number"`
}

// HistoryRecord is the local, append-only record of a completed
// checkout: the cart entries frozen at submission time plus the amounts
// computed once at checkout. Records are never mutated afterwards.
type HistoryRecord struct {
	ID        string       `json:"id"`
	OrderDate time.Time    `json:"order_date"`
	Entries   []cart.Entry `json:"entries"`
	Delivery  DeliveryInfo `json:"delivery"`
	Subtotal  int64        `json:"subtotal"`
	Discount  int64        `json:"discount"`
	Total     int64        `json:"total"`
	Loyalty   bool         `json:"loyalty"`
	Status    Status       `json:"status"`
}

// --------------------------------------------------
// Remote representation (order service wire shape)
// --------------------------------------------------

type RemoteCustomer struct {
	Email             string `json:"email"`
	Name              string `json:"name"`
	Phone             string `json:"phone"`
	IsRegularCustomer bool   `json:"isRegularCustomer"`
}

type RemoteDeliveryInfo struct {
	Address    string `json:"address"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	CardNumber string `json:"cardNumber"`
}

type RemotePricing struct {
	Subtotal int64 `json:"subtotal"`
	Discount int64 `json:"discount"`
	Total    int64 `json:"total"`
}

type RemoteMetadata struct {
	OrderDate     string `json:"orderDate"`
	ClientOrderID string `json:"clientOrderId"`
}

// RemoteSelectedItem expands one resolved item so the payload is
// self-describing: the order service needs no local catalog to
// reproduce the price.
type RemoteSelectedItem struct {
	Name            string `json:"name"`
	Quantity        int    `json:"quantity"`
	UnitPrice       int64  `json:"unitPrice"`
	DefaultQuantity int    `json:"defaultQuantity"`
	AdditionalPrice int64  `json:"additionalPrice"`
}

type RemoteOrderItem struct {
	MenuID        string               `json:"menuId"`
	MenuName      string               `json:"menuName"`
	Style         string               `json:"style"`
	Quantity      int                  `json:"quantity"`
	UnitPrice     int64                `json:"unitPrice"`
	TotalPrice    int64                `json:"totalPrice"`
	SelectedItems []RemoteSelectedItem `json:"selectedItems"`
}

type RemoteOrder struct {
	Customer     RemoteCustomer     `json:"customer"`
	DeliveryInfo RemoteDeliveryInfo `json:"deliveryInfo"`
	Pricing      RemotePricing      `json:"pricing"`
	Metadata     RemoteMetadata     `json:"metadata"`
	OrderItems   []RemoteOrderItem  `json:"orderItems"`
}

// RemoteOrderRecord is the retrieval shape: the submission payload plus
// the service-assigned id and current status.
type RemoteOrderRecord struct {
	RemoteOrder
	ID     int64  `json:"id"`
	Status string `json:"status"`
}
