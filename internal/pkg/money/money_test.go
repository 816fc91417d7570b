package money

import (
	"encoding/json"
	"math"
	"math/big"
	"strings"
	"testing"

	"github.com/hrms-vn/hrm-backend-go/internal/pkg/apperror"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDecimalText(t *testing.T) {
	huge, ok := new(big.Int).SetString("123456789012345678901234567890", 10)
	require.True(t, ok)
	d := decimal.RequireFromString("10.125")

	cases := []struct {
		name  string
		input any
		want  string
	}{
		{"int", 1500000, "1500000.00"},
		{"negative int", int64(-7), "-7.00"},
		{"uint64 max", uint64(math.MaxUint64), "18446744073709551615.00"},
		{"float half up at cent", 19.995, "20.00"},
		{"negative float half away from zero", -19.995, "-20.00"},
		{"float binary drift", 1.005, "1.01"},
		{"float below half", 2.344, "2.34"},
		{"float32", float32(0.125), "0.13"},
		{"tiny negative", -0.005, "-0.01"},
		{"big.Int", huge, "123456789012345678901234567890.00"},
		{"decimal", d, "10.13"},
		{"decimal pointer", &d, "10.13"},
		{"json.Number", json.Number("250000.5"), "250000.50"},
		{"string", "1234.567", "1234.57"},
		{"string with spaces", "  42  ", "42.00"},
		{"string exponent", "1.2345e3", "1234.50"},
		{"string negative half", "-0.125", "-0.13"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ToDecimalText(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestToDecimalRejectsInvalidInput(t *testing.T) {
	cases := []struct {
		name  string
		input any
	}{
		{"nil", nil},
		{"NaN", math.NaN()},
		{"+Inf", math.Inf(1)},
		{"-Inf float32", float32(math.Inf(-1))},
		{"letters", "abc"},
		{"empty", ""},
		{"blank", "   "},
		{"NaN string", "NaN"},
		{"bool", true},
		{"map", map[string]any{"amount": 1}},
		{"nil big.Int", (*big.Int)(nil)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ToDecimal(tc.input)
			require.Error(t, err)
			assert.True(t, apperror.Is(err, apperror.InvalidArgument), "got %v", err)
		})
	}
}

func TestToDecimalRejectsNonFinite(t *testing.T) {
	cases := []struct {
		name  string
		input any
	}{
		{"overflowing string", "1e400"},
		{"overflowing negative string", "-1e309"},
		{"just past float64 max", "1.8e308"},
		{"overflowing json.Number", json.Number("1e400")},
		{"huge exponent", "1e2000000000"},
		{"huge exponent json.Number", json.Number("-1e10000000")},
		{"overflowing decimal", decimal.New(1, 500)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ToDecimal(tc.input)
			require.Error(t, err)
			assert.True(t, apperror.Is(err, apperror.InvalidArgument), "got %v", err)
			assert.Contains(t, err.Error(), "finite")
		})
	}
}

func TestToDecimalRejectsOverlongText(t *testing.T) {
	long := "1." + strings.Repeat("0", 500)

	_, err := ToDecimal(long)
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.InvalidArgument))
}

func TestToDecimalExtremeButFinite(t *testing.T) {
	cases := []struct {
		name  string
		input any
		want  string
	}{
		{"vanishing exponent", "1e-2000000000", "0.00"},
		{"below half a cent", "0.0005", "0.00"},
		{"exactly half a cent", "0.005", "0.01"},
		{"negative below half a cent", "-0.0049", "0.00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ToDecimalText(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	n, err := Normalize("1e308")
	require.NoError(t, err)
	assert.False(t, math.IsInf(n.Value, 0))
	assert.Len(t, n.Text, 309+3)
}

func TestUnsupportedTypeIsNamed(t *testing.T) {
	_, err := ToDecimal(true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bool")
}

func TestTextNumberRoundTrip(t *testing.T) {
	inputs := []float64{0, 0.1, 0.2, 1.005, 19.995, -19.995, 123456.789, 1e10 + 0.015, -3.333333, 99.5}

	for _, x := range inputs {
		text, err := ToDecimalText(x)
		require.NoError(t, err)

		fromText, err := ToDecimalNumber(text)
		require.NoError(t, err)
		direct, err := ToDecimalNumber(x)
		require.NoError(t, err)

		assert.Equal(t, direct, fromText, "x=%v text=%s", x, text)
	}
}

func TestAmountRepresentations(t *testing.T) {
	a, err := ToDecimal("19.995")
	require.NoError(t, err)

	assert.Equal(t, 20.0, a.Number())
	assert.Equal(t, "20.00", a.Text())
	assert.True(t, a.Decimal().Equal(decimal.NewFromInt(20)))

	b, err := json.Marshal(struct {
		Amount Amount `json:"amount"`
	}{a})
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount": 20.00}`, string(b))
}

func TestNormalizingTwiceIsStable(t *testing.T) {
	a := MustParse("1234.565")
	b, err := ToDecimal(a)
	require.NoError(t, err)
	assert.Equal(t, a.Text(), b.Text())
	assert.Equal(t, "1234.57", b.Text())
}

func TestNormalize(t *testing.T) {
	n, err := Normalize(json.Number("19.995"))
	require.NoError(t, err)
	assert.Equal(t, Normalized{Value: 20, Text: "20.00"}, n)

	_, err = Normalize(false)
	assert.True(t, apperror.Is(err, apperror.InvalidArgument))
}
