package numexpr_test

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/Demindiro/checkbits/numexpr"
	"github.com/stretchr/testify/assert"
)

func TestEvalLiterals(t *testing.T) {
	expectedValues := map[string]string{
		"0":           "0",
		"5":           "5",
		"0x10":        "16",
		"0X10":        "16",
		"0b101":       "5",
		"0o17":        "15",
		"017":         "15",
		"1_000_000":   "1000000",
		"0xdead_beef": "3735928559",
		"  42\t":      "42",
	}
	for src, expected := range expectedValues {
		t.Run(fmt.Sprintf("%q evaluates to %s", src, expected), func(t *testing.T) {
			actual, err := numexpr.Eval(src)
			assert.NoError(t, err)
			assert.Equal(t, expected, actual.String())
		})
	}
}

func TestEvalExpressions(t *testing.T) {
	expectedValues := map[string]string{
		"1+2*3":       "7",
		"(1+2)*3":     "9",
		"1<<7":        "128",
		"256>>4":      "16",
		"0xff&0x0f":   "15",
		"1|2|4":       "7",
		"2^10":        "8",
		"10%3":        "1",
		"7/2":         "3",
		"-5":          "-5",
		"- 5":         "-5",
		"--5":         "5",
		"^0":          "-1",
		"+3":          "3",
		"1|1<<3":      "9",
		"2+3<<1":      "10",
		"1^3&2":       "3",
		"10-2-3":      "5",
		"(1<<4)-1":    "15",
		"-8>>1":       "-4",
		"0x10|0b101":  "21",
		"(((((7)))))": "7",
	}
	for src, expected := range expectedValues {
		t.Run(fmt.Sprintf("%q evaluates to %s", src, expected), func(t *testing.T) {
			actual, err := numexpr.Eval(src)
			assert.NoError(t, err)
			assert.Equal(t, expected, actual.String())
		})
	}
}

func TestEvalWideValues(t *testing.T) {
	actual, err := numexpr.Eval("1<<130")
	assert.NoError(t, err)
	expected := new(big.Int).Lsh(big.NewInt(1), 130)
	assert.Zero(t, expected.Cmp(actual))

	actual, err = numexpr.Eval("(1<<128)-1")
	assert.NoError(t, err)
	expected = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
	assert.Zero(t, expected.Cmp(actual))
}

func TestEvalErrors(t *testing.T) {
	expectedErrors := map[string]error{
		"":            numexpr.ErrSyntax,
		"   ":         numexpr.ErrSyntax,
		"abc":         numexpr.ErrSyntax,
		"0x":          numexpr.ErrSyntax,
		"0b2":         numexpr.ErrSyntax,
		"1x2":         numexpr.ErrSyntax,
		"1+":          numexpr.ErrSyntax,
		"*3":          numexpr.ErrSyntax,
		"(1":          numexpr.ErrSyntax,
		"1)":          numexpr.ErrSyntax,
		"5 5":         numexpr.ErrSyntax,
		"1 < 2":       numexpr.ErrSyntax,
		"1/0":         numexpr.ErrDivisionByZero,
		"1%0":         numexpr.ErrDivisionByZero,
		"1<<-1":       numexpr.ErrShiftCount,
		"1<<(1<<64)":  numexpr.ErrShiftCount,
		"1>>99999999": numexpr.ErrShiftCount,
	}
	for src, expected := range expectedErrors {
		t.Run(fmt.Sprintf("%q fails with %v", src, expected), func(t *testing.T) {
			_, err := numexpr.Eval(src)
			assert.ErrorIs(t, err, expected)
		})
	}
}

func FuzzEval(f *testing.F) {
	for _, tc := range []string{
		"0",
		"5",
		"0x10",
		"0b101",
		"1<<127",
		"(1+2)*3",
		"^0",
		"-8>>1",
	} {
		f.Add(tc)
	}
	f.Fuzz(func(t *testing.T, src string) {
		value, err := numexpr.Eval(src)
		if err != nil {
			return
		}
		// Anything that evaluates must round-trip through its decimal form.
		again, err := numexpr.Eval(value.String())
		if err != nil {
			t.Fatalf("%q: value %s does not re-evaluate: %s", src, value, err)
		}
		if value.Cmp(again) != 0 {
			t.Fatalf("%q: got %s, then %s", src, value, again)
		}
	})
}
