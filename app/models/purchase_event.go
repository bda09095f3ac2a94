package models

// PurchaseEvent is the normalized, provider-agnostic shape of an inbound
// purchase notification. It is consumed immediately to mutate the entitlement
// store and never persisted.
type PurchaseEvent struct {
	PurchaserEmail string
	Status         string
	ProductID      string
}
