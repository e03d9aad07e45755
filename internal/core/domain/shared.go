package domain

import "strconv"

type ID string

func ValidateID(id string) bool {
	return len(id) == 24
}

// Amount is a monetary value in cents.
type Amount int64

func NewAmountFromCents(cents int64) Amount {
	return Amount(cents)
}

func NewAmountFromValue(value int64) Amount {
	return Amount(value * 100)
}

func (a Amount) Add(b Amount) Amount {
	return a + b
}

func (a Amount) Multiply(b int) Amount {
	return a * Amount(b)
}

func (a Amount) ToValue() int64 {
	return int64(a) / 100
}

// Format renders the amount with thousands separators. Integral amounts
// drop the decimal part, fractional ones keep two places.
func (a Amount) Format() string {
	negative := a < 0
	cents := int64(a)
	if negative {
		cents = -cents
	}

	whole := cents / 100
	frac := cents % 100

	digits := strconv.FormatInt(whole, 10)
	grouped := make([]byte, 0, len(digits)+len(digits)/3)
	for i := 0; i < len(digits); i++ {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, digits[i])
	}

	out := string(grouped)
	if frac != 0 {
		if frac < 10 {
			out += ".0" + strconv.FormatInt(frac, 10)
		} else {
			out += "." + strconv.FormatInt(frac, 10)
		}
	}
	if negative {
		out = "-" + out
	}
	return out
}

type Event interface {
	GetName() string
	GetEntityName() string
}
