// Package card holds the card form rules: validation of user input, formatting for
// input fields and display, and shaping of the payload sent to the card API.
//
// Everything here is a pure function of its arguments. Validate takes the current
// time explicitly so expiry checks are reproducible in tests.
//
//	in := card.Input{
//		CardholderName: "José Martínez",
//		CardNumber:     card.FormatNumberInput("4111111111111111"),
//		ExpDate:        card.FormatExpiryInput("0627"),
//		CVV:            "123",
//		Brand:          card.BrandVisa,
//	}
//	if res := card.Validate(in, time.Now()); res.Valid() {
//		payload := card.ToPayload(in) // card_number "4111111111111111", exp_year 2027
//	}
package card
