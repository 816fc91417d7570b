// Package money canonicalizes amounts to two fractional digits.
package money

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/hrms-vn/hrm-backend-go/internal/pkg/apperror"
	"github.com/shopspring/decimal"
)

// Scale is the number of fractional digits every Amount carries.
const Scale = 2

const (
	// maxTextLen bounds string input before it is parsed.
	maxTextLen = 400
	// maxIntegerDigits is the widest integer part a float64 can hold.
	maxIntegerDigits = 309
)

// Amount is a decimal value rounded to Scale places.
type Amount struct {
	d decimal.Decimal
}

// Decimal returns the underlying decimal value.
func (a Amount) Decimal() decimal.Decimal {
	return a.d
}

// Number returns the closest float64. Use it for responses, not storage.
func (a Amount) Number() float64 {
	return a.d.InexactFloat64()
}

// Text returns the fixed two-decimal form, e.g. "20.00".
func (a Amount) Text() string {
	return a.d.StringFixed(Scale)
}

func (a Amount) String() string {
	return a.Text()
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Text()), nil
}

// ToDecimal normalizes v to an Amount. Floats are read through their
// shortest round-trip decimal form and every input is rounded half away
// from zero at the cent.
func ToDecimal(v any) (Amount, error) {
	d, err := parse(v)
	if err != nil {
		return Amount{}, err
	}
	return bounded(d)
}

// bounded rejects values a float64 cannot represent and rounds the rest.
// Magnitude is checked from the digit count and exponent so that inputs
// like "1e2000000000" never get expanded.
func bounded(d decimal.Decimal) (Amount, error) {
	if d.IsZero() {
		return Amount{d: decimal.Zero.Round(Scale)}, nil
	}
	intDigits := int64(d.NumDigits()) + int64(d.Exponent())
	if intDigits > maxIntegerDigits {
		return Amount{}, invalid("amount must be a finite number")
	}
	// Below half a cent in magnitude, the value rounds to zero.
	if intDigits < -Scale {
		return Amount{d: decimal.Zero.Round(Scale)}, nil
	}
	if !finite(d.InexactFloat64()) {
		return Amount{}, invalid("amount must be a finite number")
	}
	return Amount{d: d.Round(Scale)}, nil
}

// ToDecimalNumber is ToDecimal(v).Number().
func ToDecimalNumber(v any) (float64, error) {
	a, err := ToDecimal(v)
	if err != nil {
		return 0, err
	}
	return a.Number(), nil
}

// ToDecimalText is ToDecimal(v).Text().
func ToDecimalText(v any) (string, error) {
	a, err := ToDecimal(v)
	if err != nil {
		return "", err
	}
	return a.Text(), nil
}

// MustParse is for constants and tests.
func MustParse(s string) Amount {
	a, err := ToDecimal(s)
	if err != nil {
		panic(err)
	}
	return a
}

func parse(v any) (decimal.Decimal, error) {
	switch x := v.(type) {
	case nil:
		return decimal.Zero, invalid("amount is required")
	case int:
		return decimal.NewFromInt(int64(x)), nil
	case int8:
		return decimal.NewFromInt(int64(x)), nil
	case int16:
		return decimal.NewFromInt(int64(x)), nil
	case int32:
		return decimal.NewFromInt(int64(x)), nil
	case int64:
		return decimal.NewFromInt(x), nil
	case uint:
		return fromUint(uint64(x)), nil
	case uint8:
		return fromUint(uint64(x)), nil
	case uint16:
		return fromUint(uint64(x)), nil
	case uint32:
		return fromUint(uint64(x)), nil
	case uint64:
		return fromUint(x), nil
	case float32:
		if !finite(float64(x)) {
			return decimal.Zero, invalid(fmt.Sprintf("amount must be a finite number, got %v", x))
		}
		return decimal.NewFromFloat32(x), nil
	case float64:
		if !finite(x) {
			return decimal.Zero, invalid(fmt.Sprintf("amount must be a finite number, got %v", x))
		}
		return decimal.NewFromFloat(x), nil
	case *big.Int:
		if x == nil {
			return decimal.Zero, invalid("amount is required")
		}
		return decimal.NewFromBigInt(x, 0), nil
	case decimal.Decimal:
		return x, nil
	case *decimal.Decimal:
		if x == nil {
			return decimal.Zero, invalid("amount is required")
		}
		return *x, nil
	case Amount:
		return x.d, nil
	case json.Number:
		return parseString(string(x))
	case string:
		return parseString(x)
	default:
		return decimal.Zero, invalid(fmt.Sprintf("unsupported amount type %T", v))
	}
}

func parseString(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, invalid("amount must not be empty")
	}
	if len(s) > maxTextLen {
		return decimal.Zero, invalid("amount is too long")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, invalid(fmt.Sprintf("amount %q is not a number", s))
	}
	return d, nil
}

func fromUint(u uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(u), 0)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func invalid(msg string) error {
	return apperror.New(apperror.InvalidArgument, msg)
}

// Normalized carries both representations of an Amount.
type Normalized struct {
	Value float64 `json:"value"`
	Text  string  `json:"text"`
}

// Normalize converts v and returns its number and text forms.
func Normalize(v any) (Normalized, error) {
	a, err := ToDecimal(v)
	if err != nil {
		return Normalized{}, err
	}
	return Normalized{Value: a.Number(), Text: a.Text()}, nil
}
