package booking

import "time"

// ContactMethod is the channel a page visitor uses to reach the business.
type ContactMethod string

const (
	ContactWhatsApp ContactMethod = "whatsapp"
	ContactEmail    ContactMethod = "email"
)

// Service is a single offering listed on a booking page. Price is free
// text entered by the owner and rendered as-is behind a currency sign.
type Service struct {
	Name  string `bson:"name" json:"name"`
	Price string `bson:"price" json:"price"`
}

// Page is the persisted booking page record, one per business. A page is
// immutable once created: there are no update or delete operations, and
// the slug never changes after assignment.
type Page struct {
	ID            string        `bson:"_id" json:"id"`
	BusinessName  string        `bson:"businessName" json:"businessName"`
	Description   string        `bson:"description,omitempty" json:"description,omitempty"`
	Slug          string        `bson:"slug" json:"slug"`
	Services      []Service     `bson:"services" json:"services"`
	ContactMethod ContactMethod `bson:"contactMethod" json:"contactMethod"`
	ContactValue  string        `bson:"contactValue" json:"contactValue"`
	Calendly      string        `bson:"calendly,omitempty" json:"calendly,omitempty"`
	Stripe        string        `bson:"stripe,omitempty" json:"stripe,omitempty"`
	// Email is the owner's notification address. It is stored with the
	// record but not used anywhere yet.
	Email   string    `bson:"email" json:"email"`
	Created time.Time `bson:"created" json:"created"`
}
