package domain

// Currency identifies one of the supported account currencies. Conversion
// between currencies is not supported; a transfer moves money inside a
// single currency.
type Currency string

const (
	CurrencyRUR Currency = "RUR"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

// ParseCurrency validates a wire-level currency code.
func ParseCurrency(s string) (Currency, error) {
	switch c := Currency(s); c {
	case CurrencyRUR, CurrencyUSD, CurrencyEUR:
		return c, nil
	default:
		return "", ErrUnknownCurrency
	}
}
