package pke

import (
	"github.com/pqclabs/hqc/cyclic"
	"github.com/pqclabs/hqc/params"
	"github.com/pqclabs/hqc/reedsolomon"
	"github.com/pqclabs/hqc/rmrs"
	"github.com/pqclabs/hqc/sampling"
	"github.com/pqclabs/hqc/xof"
)

// rmrsCodec builds the RMRS codec for a parameter set: a shortened
// Reed-Solomon outer code sized from p's n1/k1/generator, and a duplicated
// Reed-Muller inner code at p's multiplicity.
func rmrsCodec(p params.Parameters) *rmrs.Code {
	rs := reedsolomon.New(p.N1(), p.K1(), p.RSGenerator())
	return rmrs.New(rs, p.RMMultiplicity())
}

// Keygen runs HQC-PKE.Keygen(seedPKE) -> (ekPKE, dkPKE), deterministically
// expanding seedPKE into seed_dk/seed_ek via I, then sampling y, x (weight w)
// from seed_dk and h (uniform) from seed_ek.
func Keygen(p params.Parameters, seedPKE [32]byte) (*EncryptionKey, *DecryptionKey) {
	iOut := xof.I(seedPKE[:])
	var seedDK, seedEK [32]byte
	copy(seedDK[:], iOut[:32])
	copy(seedEK[:], iOut[32:64])

	dkSampler := sampling.New(xof.NewStream(seedDK[:]))
	y := dkSampler.FixedWeightVector(p.N(), p.W())
	x := dkSampler.FixedWeightVector(p.N(), p.W())

	ekSampler := sampling.New(xof.NewStream(seedEK[:]))
	h := ekSampler.Vector(p.N())

	s := cyclic.Multiply(h, y)
	s.Add(x)

	ek, err := NewEncryptionKey(p, seedEK, s.ToBytesLEBits())
	if err != nil {
		// s is built from p's own N(), so its byte length always matches
		// p.NBytes(); a mismatch here would mean cyclic.Vector's invariant broke.
		panic(err)
	}
	return ek, &DecryptionKey{SeedDK: seedDK}
}

// Encrypt runs HQC-PKE.Encrypt(ek, m, theta) -> cPKE.
func Encrypt(p params.Parameters, ek *EncryptionKey, m []byte, theta [32]byte) (*Ciphertext, error) {
	if len(m) != p.KBytes() {
		return nil, &LengthError{Expected: p.KBytes(), Got: len(m)}
	}

	ekSampler := sampling.New(xof.NewStream(ek.SeedEK[:]))
	h := ekSampler.Vector(p.N())
	s := cyclic.FromBytesLEBits(p.N(), ek.S)

	thetaSampler := sampling.New(xof.NewStream(theta[:]))
	r2 := thetaSampler.FixedWeightVector(p.N(), p.WR())
	e := thetaSampler.FixedWeightVector(p.N(), p.WE())
	r1 := thetaSampler.FixedWeightVector(p.N(), p.WR())

	u := cyclic.Multiply(h, r2)
	u.Add(r1)

	t := cyclic.Multiply(s, r2)
	t.Add(e)
	tTrunc := t.Truncate(p.N1N2Bits())

	codec := rmrsCodec(p)
	vCodeBytes, err := codec.Encode(m)
	if err != nil {
		return nil, &FormatError{Context: "rmrs.encode", Err: err}
	}
	v := cyclic.FromBytesLEBits(p.N1N2Bits(), vCodeBytes)
	v.Add(tTrunc)

	return NewCiphertext(p, u.ToBytesLEBits(), v.ToBytesLEBits())
}

// Decrypt runs HQC-PKE.Decrypt(dk, c) -> m or none (bool ok=false): the
// spec's bottom ("⊥") symbol collapses every RMRS decode failure into a
// single "no message" outcome, so decapsulation never learns why decryption
// failed.
func Decrypt(p params.Parameters, dk *DecryptionKey, c *Ciphertext) ([]byte, bool) {
	dkSampler := sampling.New(xof.NewStream(dk.SeedDK[:]))
	y := dkSampler.FixedWeightVector(p.N(), p.W())
	_ = dkSampler.FixedWeightVector(p.N(), p.W()) // x: not needed for decryption, but sampled to keep the stream in step with Keygen

	u := cyclic.FromBytesLEBits(p.N(), c.U)
	v := cyclic.FromBytesLEBits(p.N1N2Bits(), c.V)

	uy := cyclic.Multiply(u, y)
	uyTrunc := uy.Truncate(p.N1N2Bits())

	vMinus := v.Add(uyTrunc)

	codec := rmrsCodec(p)
	m, err := codec.Decode(vMinus.ToBytesLEBits())
	if err != nil {
		return nil, false
	}
	return m, true
}
