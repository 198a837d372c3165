package order

import (
	"context"
	"errors"
	"log"
	"time"

	"mrdaebak/internal/cart"
	"mrdaebak/internal/core"
	"mrdaebak/internal/pricing"

	"github.com/google/uuid"
)

var ErrEmptyCart = errors.New("cart is empty")

// Gateway is everything the ordering flow needs from the remote order
// service. HTTPClient is the production implementation.
type Gateway interface {
	Submitter
	Fetch(ctx context.Context, orderID int64) (*RemoteOrderRecord, error)
	UpdateStatus(ctx context.Context, orderID int64, from, to Status) error
}

type Service struct {
	gateway   Gateway
	customers core.CustomerReader
}

func NewService(gateway Gateway, customers core.CustomerReader) *Service {
	return &Service{gateway: gateway, customers: customers}
}

// Checkout prices the cart, submits the order remotely, records it in
// the local history and clears the cart. If submission fails the
// checkout is aborted: the cart is untouched and no record is written.
func (s *Service) Checkout(
	ctx context.Context,
	store *cart.Store,
	history *History,
	customerID string,
	delivery DeliveryInfo,
) (*HistoryRecord, error) {

	customer, err := s.customers.GetCustomer(ctx, customerID)
	if err != nil {
		return nil, errors.New("customer not found")
	}

	var entries []cart.Entry
	for _, e := range store.List(ctx) {
		if e.Valid() {
			entries = append(entries, e)
		}
	}
	if len(entries) == 0 {
		return nil, ErrEmptyCart
	}

	subtotal := cart.Subtotal(entries)
	discount := pricing.Discount(subtotal, customer.IsRegular)
	total := subtotal - discount

	orderDate := time.Now()
	clientOrderID := uuid.New().String()

	remote := ToRemote(
		entries,
		RemoteCustomer{
			Email:             customer.Email,
			Name:              customer.Name,
			Phone:             customer.Phone,
			IsRegularCustomer: customer.IsRegular,
		},
		delivery,
		RemotePricing{Subtotal: subtotal, Discount: discount, Total: total},
		orderDate,
		clientOrderID,
	)

	if err := s.gateway.Submit(ctx, remote); err != nil {
		return nil, err
	}

	rec := HistoryRecord{
		ID:        clientOrderID,
		OrderDate: orderDate,
		Entries:   entries,
		Delivery:  delivery,
		Subtotal:  subtotal,
		Discount:  discount,
		Total:     total,
		Loyalty:   customer.IsRegular,
		Status:    StatusPending,
	}
	history.Prepend(ctx, rec)
	store.Clear(ctx)

	return &rec, nil
}

// Reorder fetches a past order from the remote service and loads its
// entries back into the cart. Entries whose dinner has left the catalog
// cannot be re-ordered and are skipped.
func (s *Service) Reorder(ctx context.Context, store *cart.Store, orderID int64) (int, error) {
	rec, err := s.gateway.Fetch(ctx, orderID)
	if err != nil {
		return 0, err
	}

	added := 0
	for _, e := range FromRemote(rec.RemoteOrder) {
		if e.Degraded {
			continue
		}
		id, err := store.Add(ctx, e.MenuID, e.Style, e.Overrides)
		if err != nil {
			log.Println("reorder: skipping entry:", err)
			continue
		}
		if e.Quantity > 1 {
			qty := e.Quantity
			_ = store.Update(ctx, id, cart.Patch{Quantity: &qty})
		}
		added++
	}
	return added, nil
}

// UpdateStatus forwards a kitchen status change to the remote service.
func (s *Service) UpdateStatus(ctx context.Context, orderID int64, from, to Status) error {
	return s.gateway.UpdateStatus(ctx, orderID, from, to)
}
