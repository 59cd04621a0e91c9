package mathparser

import (
	"errors"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/zephyrtronium/bigfloat"
)

// workPrec is the precision in bits at which pow and log are computed before
// rounding to float32.
const workPrec = 64

// pow32 computes x^y. Finite results in the domain of the real power function
// are computed at workPrec and rounded once to float32. Everything else,
// including overflow, underflow, zero bases, and NaN, follows math.Pow.
func pow32(x, y float32) float32 {
	xf, yf := float64(x), float64(y)
	r := math.Pow(xf, yf)
	switch {
	case math.IsNaN(r), math.IsInf(r, 0), r == 0:
		return float32(r)
	case xf == 0, math.Abs(xf) == 1, math.IsInf(xf, 0), math.IsInf(yf, 0), math.IsNaN(xf), math.IsNaN(yf):
		return float32(r)
	}
	neg := false
	if xf < 0 {
		// math.Pow only has a finite result for a negative base when y is an
		// integer, so the sign is decided by its parity.
		neg = math.Mod(yf, 2) != 0
		xf = -xf
	}
	f := refine(float32(math.Abs(r)), func(z *big.Float) {
		var a, b big.Float
		a.SetPrec(workPrec).SetFloat64(xf)
		b.SetPrec(workPrec).SetFloat64(yf)
		bigfloat.Pow(z, &a, &b)
	})
	if neg {
		f = -f
	}
	return f
}

// log32 computes the logarithm of x in the given base. Like pow32, arguments
// in the function's domain are computed at workPrec and rounded once.
func log32(x, base float32) float32 {
	xf, bf := float64(x), float64(base)
	r := math.Log(xf) / math.Log(bf)
	if !(xf > 0) || !(bf > 0) || math.IsInf(xf, 0) || math.IsInf(bf, 0) || xf == 1 || bf == 1 {
		return float32(r)
	}
	return refine(float32(r), func(z *big.Float) {
		var lb, in big.Float
		lb.SetPrec(workPrec)
		in.SetPrec(workPrec)
		bigfloat.Log(z, in.SetFloat64(xf))
		bigfloat.Log(&lb, in.SetFloat64(bf))
		z.Quo(z, &lb)
	})
}

// refine runs f on a workPrec value and rounds the result to float32. If f
// panics with big.ErrNaN, the result is fallback instead.
func refine(fallback float32, f func(z *big.Float)) (r float32) {
	defer func() {
		e := recover()
		if e == nil {
			return
		}
		err, _ := e.(error)
		if !errors.As(err, new(big.ErrNaN)) {
			panic(e)
		}
		r = fallback
	}()
	var z big.Float
	z.SetPrec(workPrec)
	f(&z)
	r, _ = z.Float32()
	return r
}

// FormatFloat formats a result the way the calculator prints it: the shortest
// decimal string that parses back to the same float32, never in exponent
// form.
func FormatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}

// parseFloat parses a number token as float32. Out of range values become
// infinities rather than errors. Any other failure is InvalidNotation, as is
// Go-only syntax like hex mantissas and digit separators.
func parseFloat(s string) (float32, error) {
	if strings.ContainsAny(s, "xX_") {
		return 0, InvalidNotation
	}
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) && ne.Err == strconv.ErrRange {
			return float32(f), nil
		}
		return 0, InvalidNotation
	}
	return float32(f), nil
}
