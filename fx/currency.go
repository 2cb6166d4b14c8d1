package fx

// Currency describes one supported ISO 4217 currency.
type Currency struct {
	Code   string
	Name   string
	Symbol string
}

// Currencies lists the currencies the rate feed is queried for. Codes not in
// this table are rejected before any network call.
var Currencies = map[string]Currency{
	"GBP": {"GBP", "British Pound", "£"},
	"EUR": {"EUR", "Euro", "€"},
	"USD": {"USD", "US Dollar", "$"},
	"CHF": {"CHF", "Swiss Franc", "CHF"},
	"JPY": {"JPY", "Japanese Yen", "¥"},
	"CAD": {"CAD", "Canadian Dollar", "C$"},
	"AUD": {"AUD", "Australian Dollar", "A$"},
	"NZD": {"NZD", "New Zealand Dollar", "NZ$"},
	"SEK": {"SEK", "Swedish Krona", "kr"},
	"NOK": {"NOK", "Norwegian Krone", "kr"},
	"DKK": {"DKK", "Danish Krone", "kr"},
	"PLN": {"PLN", "Polish Zloty", "zł"},
	"CZK": {"CZK", "Czech Koruna", "Kč"},
	"HUF": {"HUF", "Hungarian Forint", "Ft"},
	"SGD": {"SGD", "Singapore Dollar", "S$"},
	"HKD": {"HKD", "Hong Kong Dollar", "HK$"},
	"INR": {"INR", "Indian Rupee", "₹"},
	"CNY": {"CNY", "Chinese Yuan", "¥"},
	"ZAR": {"ZAR", "South African Rand", "R"},
	"AED": {"AED", "UAE Dirham", "د.إ"},
}

// Symbol returns the display symbol for a currency code, or the code itself
// when unknown.
func Symbol(code string) string {
	if c, ok := Currencies[code]; ok {
		return c.Symbol
	}
	return code
}
