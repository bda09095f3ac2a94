package models

// EntitlementRecord maps a purchase email to the product IDs it is entitled
// to. The lower-cased email is the primary key in the store; Products has set
// semantics (no duplicates, order irrelevant).
type EntitlementRecord struct {
	Email    string   `json:"email"`
	Products []string `json:"products"`
}

// HasProduct reports whether the record already contains the given product ID.
func (r EntitlementRecord) HasProduct(productID string) bool {
	for _, p := range r.Products {
		if p == productID {
			return true
		}
	}
	return false
}

// AddProduct appends productID preserving set semantics. Empty IDs are
// dropped so a purchase event without a product still entitles the email.
func (r *EntitlementRecord) AddProduct(productID string) {
	if productID == "" || r.HasProduct(productID) {
		return
	}
	r.Products = append(r.Products, productID)
}
