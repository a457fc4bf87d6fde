// Package rmrs glues HQC's two error-correcting layers into one
// Encode/Decode pair: a shortened Reed–Solomon outer code over GF(256) and a
// duplicated Reed–Muller inner code, each independently tested
// (reedsolomon, reedmuller), composed here the way schemes/bfv composes a
// tested core package into one user-facing API.
package rmrs

import (
	"errors"
	"fmt"

	"github.com/pqclabs/hqc/reedmuller"
	"github.com/pqclabs/hqc/reedsolomon"
)

// Error wraps a failure from either inner layer, or a structural length
// mismatch at the concatenated-code boundary.
type Error struct {
	// InvalidLength is set when cw's length doesn't match n1*n2/8; Expected
	// and Got describe the mismatch. Rm/Rs are set (mutually exclusively)
	// when the corresponding inner layer rejected a block.
	InvalidLength bool
	Expected, Got int
	Rm            error
	Rs            error
}

func (e *Error) Error() string {
	switch {
	case e.InvalidLength:
		return fmt.Sprintf("rmrs: invalid length: expected %d, got %d", e.Expected, e.Got)
	case e.Rm != nil:
		return fmt.Sprintf("rmrs: reed-muller: %v", e.Rm)
	case e.Rs != nil:
		return fmt.Sprintf("rmrs: reed-solomon: %v", e.Rs)
	default:
		return "rmrs: error"
	}
}

func (e *Error) Unwrap() error {
	if e.Rm != nil {
		return e.Rm
	}
	return e.Rs
}

// Code is the RMRS concatenation: one Reed–Solomon outer code, one
// duplicated Reed–Muller inner code.
type Code struct {
	RS *reedsolomon.Code
	RM *reedmuller.Code
}

// New builds an RMRS code from an already-constructed RS outer code and an
// RM multiplicity.
func New(rs *reedsolomon.Code, rmMultiplicity int) *Code {
	return &Code{RS: rs, RM: reedmuller.New(rmMultiplicity)}
}

// Encode encodes a k1-byte message into n1*n2/8 bytes: RS-encode to n1
// symbols, then RM-encode each symbol, concatenated in order.
func (c *Code) Encode(message []byte) ([]byte, error) {
	codeword, err := c.RS.Encode(message)
	if err != nil {
		return nil, err
	}

	blockBytes := c.RM.N2Bytes()
	out := make([]byte, 0, len(codeword)*blockBytes)
	for _, sym := range codeword {
		out = append(out, c.RM.EncodeSymbol(sym)...)
	}
	return out, nil
}

// Decode decodes an n1*n2/8-byte concatenated codeword back to a k1-byte
// message: RM-decode every block to an RS symbol, then RS-decode.
func (c *Code) Decode(cw []byte) ([]byte, error) {
	blockBytes := c.RM.N2Bytes()
	expected := c.RS.N1 * blockBytes
	if len(cw) != expected {
		return nil, &Error{InvalidLength: true, Expected: expected, Got: len(cw)}
	}

	rsRecv := make([]byte, c.RS.N1)
	for i := 0; i < c.RS.N1; i++ {
		block := cw[i*blockBytes : (i+1)*blockBytes]
		sym, err := c.RM.DecodeSymbol(block)
		if err != nil {
			return nil, &Error{Rm: err}
		}
		rsRecv[i] = sym
	}

	message, err := c.RS.Decode(rsRecv)
	if err != nil {
		return nil, &Error{Rs: err}
	}
	return message, nil
}

// IsRmrsError reports whether err is an *Error produced by this package,
// unwrapping through errors.As.
func IsRmrsError(err error) bool {
	var e *Error
	return errors.As(err, &e)
}
