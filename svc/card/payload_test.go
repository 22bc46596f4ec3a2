package card_test

import (
	"encoding/json"
	"regexp"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cardfront/svc/card"
)

func TestFullYear(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2025, card.FullYear(25))
	assert.Equal(t, 2000, card.FullYear(0))
	assert.Equal(t, 2099, card.FullYear(99))
}

func TestToPayload(t *testing.T) {
	t.Parallel()

	in := card.Input{
		CardholderName:     "Ana Pérez",
		CardNumber:         "4111 1111 1111 1111",
		CVV:                "123",
		Brand:              card.BrandMasterCard,
		ExpDate:            "06/25",
		BackgroundImageURL: card.DefaultBackgroundImageURL,
	}

	p := card.ToPayload(in)
	assert.Equal(t, card.Payload{
		CardholderName:     "Ana Pérez",
		CardNumber:         "4111111111111111",
		CVV:                "123",
		Brand:              card.BrandMasterCard,
		ExpMonth:           6,
		ExpYear:            2025,
		BackgroundImageURL: "1",
	}, p)

	raw, err := json.Marshal(p)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "exp_date")
	assert.Contains(t, string(raw), `"brand":"marterCard"`)
	assert.Contains(t, string(raw), `"exp_year":2025`)
}

func TestToPayload_SendsValidatedName(t *testing.T) {
	t.Parallel()

	// "e" followed by a combining acute accent
	decomposed := strings.Repeat("a", 19) + "e\u0301"
	in := card.Input{
		CardholderName: decomposed,
		CardNumber:     "4111 1111 1111 1111",
		CVV:            "123",
		Brand:          card.BrandVisa,
		ExpDate:        "06/27",
	}

	res := card.Validate(in, time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC))
	require.Empty(t, res.Message(card.FieldCardholderName))

	sent := card.ToPayload(in).CardholderName
	assert.Equal(t, card.NormalizeName(decomposed), sent)
	assert.Equal(t, strings.Repeat("a", 19)+"\u00e9", sent)
	assert.Equal(t, card.MaxNameLength, utf8.RuneCountInString(sent))
	assert.Regexp(t, regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑ ]+$`), sent)

	assert.Equal(t, "Jos\u00e9", card.FromCard(card.Card{CardholderName: "Jose\u0301"}).CardholderName)
}

func TestInputToPayloadScenario(t *testing.T) {
	t.Parallel()

	in := card.NewInput()
	in.CardholderName = "Juan Gómez"
	in.CardNumber = card.FormatNumberInput("4111111111111111")
	in.ExpDate = card.FormatExpiryInput("1227")
	in.CVV = "321"

	assert.Equal(t, "4111 1111 1111 1111", in.CardNumber)
	assert.Equal(t, "12/27", in.ExpDate)
	require.True(t, card.Validate(in, now).Valid())

	p := card.ToPayload(in)
	assert.Equal(t, "4111111111111111", p.CardNumber)
	assert.Equal(t, 12, p.ExpMonth)
	assert.Equal(t, 2027, p.ExpYear)
	assert.Equal(t, card.DefaultBrand, p.Brand)
}

func TestFromCard(t *testing.T) {
	t.Parallel()

	c := card.Card{
		ID:                 7,
		CardholderName:     "Ana",
		CardNumber:         "4111111111111111",
		CVV:                "999",
		Brand:              card.BrandVisa,
		ExpMonth:           6,
		ExpYear:            2025,
		BackgroundImageURL: "bg.png",
	}

	in := card.FromCard(c)
	assert.Equal(t, "06/25", in.ExpDate)
	assert.Equal(t, "4111 1111 1111 1111", in.CardNumber)
	assert.Equal(t, card.BrandVisa, in.Brand)
	assert.Equal(t, "bg.png", in.BackgroundImageURL)

	// round trip back to the wire shape
	p := card.ToPayload(in)
	assert.Equal(t, c.ExpMonth, p.ExpMonth)
	assert.Equal(t, c.ExpYear, p.ExpYear)
	assert.Equal(t, c.CardNumber, p.CardNumber)
}

func TestExpiryInput(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "06/25", card.ExpiryInput(6, 2025))
	assert.Equal(t, "12/30", card.ExpiryInput(12, 2030))
	assert.Equal(t, "01/5", card.ExpiryInput(1, 5))
}

func TestShortExpiry(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "6/25", card.ShortExpiry(card.Card{ExpMonth: 6, ExpYear: 2025}))
	assert.Equal(t, "12/30", card.ShortExpiry(card.Card{ExpMonth: 12, ExpYear: 2030}))
}

func TestBrand(t *testing.T) {
	t.Parallel()

	assert.True(t, card.BrandVisa.Valid())
	assert.True(t, card.BrandMasterCard.Valid())
	assert.False(t, card.Brand("amex").Valid())
	assert.Equal(t, "MasterCard", card.BrandMasterCard.Label())
	assert.Equal(t, "Visa", card.BrandVisa.Label())
	assert.Equal(t, "amex", card.Brand("amex").Label())
	assert.Equal(t, []card.Brand{card.BrandMasterCard, card.BrandVisa}, card.Brands())
}
