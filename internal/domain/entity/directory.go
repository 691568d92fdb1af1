package entity

import (
	"time"

	"github.com/paulmach/orb"
)

// Buyer is a marketplace customer account, also used for the nested user
// record attached to seller profiles.
type Buyer struct {
	ID        string    `json:"_id"`
	FullName  string    `json:"fullName"`
	Mobile    string    `json:"mobile"`
	Role      string    `json:"role,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Seller is a shop profile. Location is optional and only present when the
// seller has pinned their shop on the map.
type Seller struct {
	ID        string     `json:"_id"`
	ShopName  string     `json:"shopName"`
	OwnerName string     `json:"ownerName,omitempty"`
	Mobile    string     `json:"mobile,omitempty"`
	Address   string     `json:"address,omitempty"`
	Pincode   string     `json:"pincode,omitempty"`
	Location  *orb.Point `json:"location,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// SellerDetail is the composite the backend serves for a single seller:
// account, shop profile and order history.
type SellerDetail struct {
	User    *Buyer   `json:"user,omitempty"`
	Profile *Seller  `json:"profile,omitempty"`
	Orders  []*Order `json:"orders,omitempty"`
}

// DeliveryPartner is a delivery agent serving a single pincode.
type DeliveryPartner struct {
	ID        string    `json:"_id"`
	FullName  string    `json:"fullName"`
	Mobile    string    `json:"mobile"`
	Pincode   string    `json:"pincode,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Admin is the authenticated console operator's profile.
type Admin struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Mobile string `json:"mobile,omitempty"`
	Role   string `json:"role,omitempty"`
}

// EntityID implements Identifiable.
func (b Buyer) EntityID() string { return b.ID }

// EntityID implements Identifiable.
func (s Seller) EntityID() string { return s.ID }

// EntityID implements Identifiable.
func (p DeliveryPartner) EntityID() string { return p.ID }
