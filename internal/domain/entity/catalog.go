package entity

import "time"

// Category is the top level of the two-level product taxonomy.
type Category struct {
	ID            string        `json:"_id"`
	Name          string        `json:"name"`
	SubCategories []SubCategory `json:"subcategories,omitempty"`
}

// SubCategory belongs to exactly one Category; the backend cascades deletes.
type SubCategory struct {
	ID         string `json:"_id"`
	Name       string `json:"name"`
	CategoryID string `json:"categoryId,omitempty"`
}

// Variant is a global product specification (size, colour, pack).
type Variant struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Title string `json:"title,omitempty"`
}

// DisplayName prefers the canonical name over the legacy title field.
func (v *Variant) DisplayName() string {
	if v.Name != "" {
		return v.Name
	}

	return v.Title
}

// Offer is a flat-discount coupon.
type Offer struct {
	ID             string     `json:"_id"`
	Provider       string     `json:"provider"`
	Code           string     `json:"code"`
	Tagline        string     `json:"tagline"`
	DiscountAmount float64    `json:"conditionValue"`
	MinCartAmount  float64    `json:"minCartAmount,omitempty"`
	ExpiryDate     *time.Time `json:"expiryDate,omitempty"`
	Categories     []string   `json:"applicableCategories,omitempty"`
	Active         bool       `json:"isActive"`
	CreatedAt      time.Time  `json:"createdAt"`
}
