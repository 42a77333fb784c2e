// Decimal helpers shared by the evaluators.
package numeral

import (
	"math/big"

	"gopkg.in/inf.v0"
)

// quoScale is the number of fractional digits kept for non-terminating quotients.
const quoScale inf.Scale = 20

var (
	bigTen = big.NewInt(10)
	decTen = inf.NewDec(10, 0)
)

// reduce returns a copy of d with a non-negative scale and no trailing
// fractional zeros, so that String yields the canonical resolution.
func reduce(d *inf.Dec) *inf.Dec {
	u := new(big.Int).Set(d.UnscaledBig())
	s := d.Scale()
	if s < 0 {
		u.Mul(u, pow10(int64(-s)))
		s = 0
	}

	q, m := new(big.Int), new(big.Int)
	for s > 0 {
		q.QuoRem(u, bigTen, m)
		if m.Sign() != 0 {
			break
		}
		u.Set(q)
		s--
	}
	return inf.NewDecBig(u, s)
}

// pow10 returns 10^n for n >= 0.
func pow10(n int64) *big.Int {
	return new(big.Int).Exp(bigTen, big.NewInt(n), nil)
}

// quo returns x/y, exact when the quotient terminates within quoScale digits.
// Division by zero is unparsable.
func quo(x, y *inf.Dec) (*inf.Dec, error) {
	if y.Sign() == 0 {
		return nil, unparsable("division by zero")
	}
	return new(inf.Dec).QuoRound(x, y, quoScale, inf.RoundHalfEven), nil
}

// shift returns d * 10^e.
func shift(d *inf.Dec, e int64) *inf.Dec {
	z := new(inf.Dec).Set(d)
	return z.SetScale(d.Scale() - inf.Scale(e))
}
