package card

import (
	"fmt"
	"math"
	"strconv"
)

// CenturyBase is added to two-digit years. Years past 2099 need a new base.
const CenturyBase = 2000

// FullYear converts a two-digit year to a four-digit one.
func FullYear(yy int) int {
	return CenturyBase + yy
}

// ToPayload shapes validated form input for the remote API: the name is sent in
// the NFC form Validate checked, the card number loses its spaces, the expiry is
// split into integer month and four-digit year.
func ToPayload(in Input) Payload {
	month, year := SplitExpiry(in.ExpDate)
	return Payload{
		CardholderName:     NormalizeName(in.CardholderName),
		CardNumber:         StripSpaces(in.CardNumber),
		CVV:                in.CVV,
		Brand:              in.Brand,
		ExpMonth:           toInt(month),
		ExpYear:            FullYear(toInt(year)),
		BackgroundImageURL: in.BackgroundImageURL,
	}
}

// FromCard builds edit-form state from a stored record.
func FromCard(c Card) Input {
	return Input{
		CardholderName:     NormalizeName(c.CardholderName),
		CardNumber:         SpaceNumber(c.CardNumber),
		CVV:                c.CVV,
		Brand:              c.Brand,
		ExpDate:            ExpiryInput(c.ExpMonth, c.ExpYear),
		BackgroundImageURL: c.BackgroundImageURL,
	}
}

// ExpiryInput renders month and year as "MM/YY": the month padded to two digits,
// the year reduced to its last two digits.
func ExpiryInput(month, year int) string {
	yy := strconv.Itoa(year)
	if len(yy) > 2 {
		yy = yy[len(yy)-2:]
	}
	return fmt.Sprintf("%02d/%s", month, yy)
}

// ShortExpiry renders the compact expiry shown in card lists, e.g. "6/25".
func ShortExpiry(c Card) string {
	return fmt.Sprintf("%d/%d", c.ExpMonth, c.ExpYear%CenturyBase)
}

func toInt(f float64) int {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int(f)
}
