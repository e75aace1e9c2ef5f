package portfolio

// Price is the result of a quote lookup. A lookup either produces a value or
// it does not: there is no NaN sentinel that could silently poison a
// downstream sum, callers must check Available before using the value.
type Price struct {
	value     Money
	available bool
}

// PriceOf returns an available price.
func PriceOf(m Money) Price {
	return Price{value: m, available: true}
}

// Unavailable returns the zero Price, marking a failed lookup.
func Unavailable() Price {
	return Price{}
}

func (p Price) Available() bool { return p.available }

// Value returns the price. The value is only meaningful when Available.
func (p Price) Value() Money { return p.value }

const notAvailable = "N/A"

func (p Price) String() string {
	if !p.available {
		return notAvailable
	}
	return p.value.String()
}
