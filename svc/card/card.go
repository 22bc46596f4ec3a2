package card

// Form field names. They double as form input names and as validation keys.
const (
	FieldCardholderName = "cardholder_name"
	FieldCardNumber     = "card_number"
	FieldExpDate        = "exp_date"
	FieldCVV            = "cvv"
)

// Brand is the card network as stored by the remote API.
type Brand string

const (
	// BrandMasterCard keeps the API's spelling of the enum value.
	BrandMasterCard Brand = "marterCard"
	BrandVisa       Brand = "visa"

	DefaultBrand = BrandMasterCard
)

// Brands lists the selectable brands in display order.
func Brands() []Brand {
	return []Brand{BrandMasterCard, BrandVisa}
}

func (b Brand) Valid() bool {
	return b == BrandMasterCard || b == BrandVisa
}

// Label returns the human readable brand name.
func (b Brand) Label() string {
	switch b {
	case BrandMasterCard:
		return "MasterCard"
	case BrandVisa:
		return "Visa"
	default:
		return string(b)
	}
}

// Card is a card record as returned by the remote API.
type Card struct {
	ID                 int    `json:"id"`
	CardholderName     string `json:"cardholder_name"`
	CardNumber         string `json:"card_number"`
	CVV                string `json:"cvv"`
	Brand              Brand  `json:"brand"`
	ExpMonth           int    `json:"exp_month"`
	ExpYear            int    `json:"exp_year"`
	BackgroundImageURL string `json:"background_image_url"`
	CreatedAt          string `json:"created_at"`
}

// Input is the in-progress form state of a card.
// Values are kept exactly as typed; formatting helpers return new values.
type Input struct {
	CardholderName     string `form:"cardholder_name" json:"cardholderName"`
	CardNumber         string `form:"card_number" json:"cardNumber"`
	CVV                string `form:"cvv" json:"cvv"`
	Brand              Brand  `form:"brand" json:"brand"`
	ExpDate            string `form:"exp_date" json:"expDate"`
	BackgroundImageURL string `form:"background_image_url" json:"-"`
}

// NewInput returns an empty form with defaults applied.
func NewInput() Input {
	return Input{
		Brand:              DefaultBrand,
		BackgroundImageURL: DefaultBackgroundImageURL,
	}
}

// DefaultBackgroundImageURL is sent for new cards that have no background set.
const DefaultBackgroundImageURL = "1"

// Payload is the request body accepted by the remote API for create and update.
type Payload struct {
	CardholderName     string `json:"cardholder_name"`
	CardNumber         string `json:"card_number"`
	CVV                string `json:"cvv"`
	Brand              Brand  `json:"brand"`
	ExpMonth           int    `json:"exp_month"`
	ExpYear            int    `json:"exp_year"`
	BackgroundImageURL string `json:"background_image_url"`
}
