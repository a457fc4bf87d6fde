package gf256

// Polynomial is a GF(256) polynomial stored high-degree-first ("big-endian"):
// Polynomial[0] is the coefficient of the highest power present. Leading
// zeros are trimmed except for the canonical zero polynomial, [0].
type Polynomial []byte

// Zero is the canonical zero polynomial.
func Zero() Polynomial { return Polynomial{0} }

func trim(p Polynomial) Polynomial {
	i := 0
	for i < len(p)-1 && p[i] == 0 {
		i++
	}
	return p[i:]
}

// Degree returns the polynomial's degree, or -1 for the zero polynomial.
func (p Polynomial) Degree() int {
	p = trim(p)
	if len(p) == 1 && p[0] == 0 {
		return -1
	}
	return len(p) - 1
}

// IsZero reports whether p is the zero polynomial.
func (p Polynomial) IsZero() bool {
	return p.Degree() < 0
}

// AddPoly returns a+b (equivalently a-b, since GF(256) has characteristic 2).
func AddPoly(a, b Polynomial) Polynomial {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make(Polynomial, n)
	for i := 0; i < n; i++ {
		var ai, bi byte
		if j := i + len(a) - n; j >= 0 {
			ai = a[j]
		}
		if j := i + len(b) - n; j >= 0 {
			bi = b[j]
		}
		out[i] = ai ^ bi
	}
	return trim(out)
}

// Scale returns c*a, scaling every coefficient of a by the GF(256) scalar c.
func Scale(a Polynomial, c byte) Polynomial {
	if c == 0 {
		return Zero()
	}
	if c == 1 {
		out := make(Polynomial, len(a))
		copy(out, a)
		return out
	}
	out := make(Polynomial, len(a))
	for i, ai := range a {
		out[i] = Mul(ai, c)
	}
	return out
}

// Multiply returns a*b as a full (non-modular) polynomial product.
func Multiply(a, b Polynomial) Polynomial {
	if a.IsZero() || b.IsZero() {
		return Zero()
	}
	out := make(Polynomial, len(a)+len(b)-1)
	for i, ai := range a {
		if ai == 0 {
			continue
		}
		for j, bj := range b {
			if bj == 0 {
				continue
			}
			out[i+j] ^= Mul(ai, bj)
		}
	}
	return trim(out)
}

// DivRem divides dividend by divisor and returns (quotient, remainder).
// divisor's leading coefficient must be non-zero.
func DivRem(dividend, divisor Polynomial) (quotient, remainder Polynomial) {
	if divisor.IsZero() {
		panic("gf256: division by zero polynomial")
	}
	a := trim(dividend)
	n := len(a)
	m := len(divisor)
	if n < m {
		return Zero(), a
	}

	q := make(Polynomial, n-m+1)
	r := make(Polynomial, n)
	copy(r, a)

	leadDiv := divisor[0]
	leadInv := Inv(leadDiv)

	for i := 0; i <= n-m; i++ {
		if r[i] == 0 {
			continue
		}
		coef := Mul(r[i], leadInv)
		q[i] = coef
		for j := 0; j < m; j++ {
			r[i+j] ^= Mul(coef, divisor[j])
		}
	}

	var rem Polynomial
	if m-1 == 0 {
		rem = Zero()
	} else {
		rem = make(Polynomial, m-1)
		copy(rem, r[n-(m-1):])
	}

	return trim(q), trim(rem)
}

// Eval evaluates the polynomial at x, treating p[0] as the highest-degree
// coefficient (Horner's method on the big-endian representation).
func (p Polynomial) Eval(x byte) byte {
	var acc byte
	for _, c := range p {
		acc = Mul(acc, x) ^ c
	}
	return acc
}
