package order

import (
	"time"

	"mrdaebak/internal/cart"
	"mrdaebak/internal/catalog"
	"mrdaebak/internal/pricing"
)

// Total mapping functions between the cart, history and remote
// representations. Pricing amounts are computed once at checkout and
// carried through; the normalizer never recomputes them.

// ToRemote expands every priced entry into the flat wire shape. Each
// item of the resolved set appears when it has a non-zero quantity or
// is bundled with the dinner — so removed defaults travel as explicit
// zero-quantity selections and round-tripping cannot resurrect them.
func ToRemote(
	entries []cart.Entry,
	customer RemoteCustomer,
	delivery DeliveryInfo,
	price RemotePricing,
	orderDate time.Time,
	clientOrderID string,
) RemoteOrder {

	items := make([]RemoteOrderItem, 0, len(entries))

	for i := range entries {
		e := &entries[i]
		if !e.Valid() {
			continue
		}

		item := RemoteOrderItem{
			MenuID:     e.MenuID,
			MenuName:   e.DisplayName(),
			Style:      string(e.Style),
			Quantity:   e.Quantity,
			UnitPrice:  e.UnitPrice(),
			TotalPrice: e.TotalPrice(),
		}

		for _, sel := range cart.Resolve(e) {
			bundled := sel.Item.DefaultQty > 0
			if sel.Qty == 0 && !bundled {
				// untouched extra, nothing to describe
				continue
			}
			item.SelectedItems = append(item.SelectedItems, RemoteSelectedItem{
				Name:            sel.Item.Name,
				Quantity:        sel.Qty,
				UnitPrice:       sel.Item.UnitPrice,
				DefaultQuantity: sel.Item.DefaultQty,
				AdditionalPrice: pricing.ItemDeltaPrice(sel.Item, sel.Qty, sel.Item.DefaultQty),
			})
		}

		items = append(items, item)
	}

	return RemoteOrder{
		Customer: customer,
		DeliveryInfo: RemoteDeliveryInfo{
			Address:    delivery.Address,
			Date:       delivery.Date,
			Time:       delivery.Time,
			CardNumber: delivery.CardNumber,
		},
		Pricing: price,
		Metadata: RemoteMetadata{
			OrderDate:     orderDate.Format(time.RFC3339),
			ClientOrderID: clientOrderID,
		},
		OrderItems: items,
	}
}

// FromRemote reconstructs cart entries from a remote order. Every
// selected item becomes an explicit override, even when it equals the
// catalog default, so converting back to the remote shape is stable.
//
// An item whose menu id has no local catalog match becomes a degraded
// entry carrying the remote name and unit price directly — old orders
// stay visible even after the dinner leaves the catalog.
func FromRemote(ro RemoteOrder) []cart.Entry {
	entries := make([]cart.Entry, 0, len(ro.OrderItems))

	for _, item := range ro.OrderItems {
		quantity := item.Quantity
		if quantity < 1 {
			quantity = 1
		}

		entry := cart.Entry{
			MenuID:   item.MenuID,
			Style:    catalog.StyleType(item.Style),
			Quantity: quantity,
		}

		for _, sel := range item.SelectedItems {
			if entry.Overrides == nil {
				entry.Overrides = make(map[string]int)
			}
			qty := sel.Quantity
			if qty < 0 {
				qty = 0
			}
			entry.Overrides[sel.Name] = qty
		}

		if entry.Menu() == nil {
			entry.Degraded = true
			entry.MenuName = item.MenuName
			entry.RemotePrice = item.UnitPrice
		}

		entries = append(entries, entry)
	}
	return entries
}

// FromRemoteRecord maps a retrieved order into a local history record.
func FromRemoteRecord(rec RemoteOrderRecord) HistoryRecord {
	orderDate, err := time.Parse(time.RFC3339, rec.Metadata.OrderDate)
	if err != nil {
		orderDate = time.Time{}
	}

	return HistoryRecord{
		ID:        rec.Metadata.ClientOrderID,
		OrderDate: orderDate,
		Entries:   FromRemote(rec.RemoteOrder),
		Delivery: DeliveryInfo{
			Address:    rec.DeliveryInfo.Address,
			Date:       rec.DeliveryInfo.Date,
			Time:       rec.DeliveryInfo.Time,
			CardNumber: rec.DeliveryInfo.CardNumber,
		},
		Subtotal: rec.Pricing.Subtotal,
		Discount: rec.Pricing.Discount,
		Total:    rec.Pricing.Total,
		Loyalty:  rec.Customer.IsRegularCustomer,
		Status:   Status(rec.Status),
	}
}
