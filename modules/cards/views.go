package cards

import (
	"github.com/a-h/templ"

	"github.com/dmitrymomot/cardfront/svc/card"
)

// Placeholders shown in the card preview while the fields are empty.
const (
	NumberPlaceholder = "XXXX XXXX XXXX XXXX"
	ExpiryPlaceholder = "MM/YY"
)

// FormMode tells the form template which flow it is rendering.
type FormMode string

const (
	FormCreate FormMode = "create"
	FormEdit   FormMode = "edit"
)

// Views are the page components the module renders. Every field is required.
type Views struct {
	ListPage    func(ListPageParams) templ.Component
	FormPage    func(FormPageParams) templ.Component
	ConfirmPage func(ConfirmPageParams) templ.Component
	DetailPage  func(DetailPageParams) templ.Component
	DeletePage  func(DeletePageParams) templ.Component
}

// CardView is a stored card prepared for display. The number is masked.
type CardView struct {
	ID                 int
	CardholderName     string
	MaskedNumber       string
	CVV                string
	Brand              card.Brand
	BrandLabel         string
	ExpMonth           int
	ExpYear            int
	ShortExpiry        string
	BackgroundImageURL string
	CreatedAt          string
}

func NewCardView(c card.Card) CardView {
	return CardView{
		ID:                 c.ID,
		CardholderName:     c.CardholderName,
		MaskedNumber:       card.MaskNumber(c.CardNumber),
		CVV:                c.CVV,
		Brand:              c.Brand,
		BrandLabel:         c.Brand.Label(),
		ExpMonth:           c.ExpMonth,
		ExpYear:            c.ExpYear,
		ShortExpiry:        card.ShortExpiry(c),
		BackgroundImageURL: c.BackgroundImageURL,
		CreatedAt:          c.CreatedAt,
	}
}

type ListPageParams struct {
	Cards []CardView
}

// FormPageParams drives both the create and the edit form.
type FormPageParams struct {
	Mode      FormMode
	ID        int
	Action    string
	CancelURL string

	// PreviewURL refreshes the card face while typing; FormatURL rewrites a
	// field once it loses focus.
	PreviewURL string
	FormatURL  string

	Input  card.Input
	Brands []card.Brand

	// Errors maps field names to translated messages; "" means valid.
	Errors map[string]string
	// FormError is a failure not tied to a field, e.g. the API rejected the write.
	FormError string

	NumberPreview string
	ExpiryPreview string
}

// ConfirmPageParams is the review step before a card is created. Input is
// posted back unchanged through hidden fields.
type ConfirmPageParams struct {
	Input        card.Input
	MaskedNumber string
	BrandLabel   string
	Action       string
	FormError    string
}

type DetailPageParams struct {
	Card CardView
}

type DeletePageParams struct {
	Card      CardView
	Action    string
	FormError string
}
