// Package tolerance decides whether two fields are equal up to numeric noise.
package tolerance

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// RelativeTolerance is the allowed difference between two numbers as a
// fraction of the smaller magnitude.
const RelativeTolerance = 0.1

// ParseNumber parses s as a decimal floating-point literal.
// The whole string must be consumed. Hexadecimal literals and underscore
// digit separators are rejected. Literals that overflow parse as ±Inf.
func ParseNumber(s string) (float64, bool) {
	if s == "" || strings.ContainsAny(s, "xX_") {
		return 0, false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return f, true
		}
		return 0, false
	}
	return f, true
}

// CloseEnough reports whether a and b should be treated as the same field.
//
// Identical strings always match. Otherwise both must be numbers: zero only
// matches zero, and any other pair matches when the absolute difference is
// strictly less than RelativeTolerance times the smaller magnitude.
func CloseEnough(a, b string) bool {
	if a == b {
		return true
	}

	f1, ok := ParseNumber(a)
	if !ok {
		return false
	}
	f2, ok := ParseNumber(b)
	if !ok {
		return false
	}

	switch {
	case f1 == 0:
		return f2 == 0
	case f2 == 0:
		return false
	default:
		return math.Abs(f1-f2) < RelativeTolerance*math.Min(math.Abs(f1), math.Abs(f2))
	}
}

// MaxDeltaExponentGap bounds how far apart the decimal exponents of two
// literals may be for Delta to compute their difference.
const MaxDeltaExponentGap = 64

// Delta returns b - a computed exactly from the decimal literals.
// Returns false if either side is not a finite decimal literal, or if the
// exponents differ by more than MaxDeltaExponentGap.
func Delta(a, b string) (decimal.Decimal, bool) {
	fa, ok := ParseNumber(a)
	if !ok || !isFinite(fa) {
		return decimal.Zero, false
	}
	fb, ok := ParseNumber(b)
	if !ok || !isFinite(fb) {
		return decimal.Zero, false
	}

	da, err := decimal.NewFromString(a)
	if err != nil {
		return decimal.Zero, false
	}
	db, err := decimal.NewFromString(b)
	if err != nil {
		return decimal.Zero, false
	}

	// Sub rescales to the smaller exponent.
	gap := int64(da.Exponent()) - int64(db.Exponent())
	if gap > MaxDeltaExponentGap || gap < -MaxDeltaExponentGap {
		return decimal.Zero, false
	}

	return db.Sub(da), true
}

func isFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
