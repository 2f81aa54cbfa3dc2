package arithcode

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
)

// CDF is a cumulative distribution function over a finite alphabet: a
// non-decreasing sequence of NSym()+1 probabilities in [0,1], with
// At(0) == 0 and At(NSym()) == 1. It is the model an Encoder and Decoder
// share. CDF is immutable once built and safe for concurrent read access
// from multiple Encoders/Decoders.
type CDF struct {
	c []float64
}

// NewCDF validates and wraps a caller-supplied distribution. p must have at
// least two entries, p[0] must be 0, p[len(p)-1] must be 1 (within floating
// point tolerance), and p must be non-decreasing. NewCDF does not check
// that every symbol's probability mass exceeds the coder's minimum
// representable probability (spec.md §3) — that depends on the output
// width an Encoder is later constructed with, and is reported as a
// PreconditionError from NewEncoder/Encode instead.
func NewCDF(p []float64) (*CDF, error) {
	if len(p) < 2 {
		return nil, newPrecondition("cdf must have at least 2 entries (nsym>=1), got %d", len(p))
	}
	if p[0] != 0 {
		return nil, newPrecondition("cdf[0] must be 0, got %v", p[0])
	}
	if math.Abs(p[len(p)-1]-1) > 1e-6 {
		return nil, newPrecondition("cdf[nsym] must be 1, got %v", p[len(p)-1])
	}
	for i := 1; i < len(p); i++ {
		if p[i] < p[i-1] {
			return nil, newPrecondition("cdf must be non-decreasing: cdf[%d]=%v < cdf[%d]=%v", i, p[i], i-1, p[i-1])
		}
	}
	c := make([]float64, len(p))
	copy(c, p)
	c[len(c)-1] = 1 // clamp exactly, matching the definition cdf[nsym]==1.0
	return &CDF{c: c}, nil
}

// NSym returns the number of symbols the CDF covers.
func (c *CDF) NSym() int { return len(c.c) - 1 }

// At returns the i-th breakpoint, 0 <= i <= NSym().
func (c *CDF) At(i int) float64 { return c.c[i] }

// uniformCDF returns a CDF with nsym equally likely symbols, T[i] = i/nsym.
// It backs the variable-alphabet adapter (varalphabet.go).
func uniformCDF(nsym int) *CDF {
	c := make([]float64, nsym+1)
	for i := range c {
		c[i] = float64(i) / float64(nsym)
	}
	c[nsym] = 1
	return &CDF{c: c}
}

// cdfFormatVersion identifies the wire layout WriteTo/ReadFrom produce, the
// same versioned-header convention the teacher's Table.WriteTo/ReadFrom use.
const cdfFormatVersion uint32 = 1

// ErrBadCDFVersion indicates a serialized CDF uses a format version this
// build does not understand.
var ErrBadCDFVersion = errors.New("arithcode: unsupported cdf format version")

// WriteTo serializes the CDF as an 8-byte header — format version in the
// high 32 bits, NSym() in the low 32 bits — followed by NSym()+1
// little-endian float64 breakpoints.
func (c *CDF) WriteTo(w io.Writer) (int64, error) {
	var hdr [8]byte
	binary.LittleEndian.PutUint32(hdr[0:4], uint32(c.NSym()))
	binary.LittleEndian.PutUint32(hdr[4:8], cdfFormatVersion)
	n, err := w.Write(hdr[:])
	total := int64(n)
	if err != nil {
		return total, err
	}
	buf := make([]byte, 8*len(c.c))
	for i, v := range c.c {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(v))
	}
	n, err = w.Write(buf)
	total += int64(n)
	return total, err
}

// ReadFrom deserializes a CDF previously written with WriteTo.
func (c *CDF) ReadFrom(r io.Reader) (int64, error) {
	var hdr [8]byte
	n, err := io.ReadFull(r, hdr[:])
	total := int64(n)
	if err != nil {
		return total, err
	}
	nsym := binary.LittleEndian.Uint32(hdr[0:4])
	version := binary.LittleEndian.Uint32(hdr[4:8])
	if version != cdfFormatVersion {
		return total, ErrBadCDFVersion
	}
	buf := make([]byte, 8*(int(nsym)+1))
	n, err = io.ReadFull(r, buf)
	total += int64(n)
	if err != nil {
		return total, err
	}
	vals := make([]float64, nsym+1)
	for i := range vals {
		vals[i] = math.Float64frombits(binary.LittleEndian.Uint64(buf[i*8:]))
	}
	parsed, err := NewCDF(vals)
	if err != nil {
		return total, err
	}
	*c = *parsed
	return total, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (c *CDF) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (c *CDF) UnmarshalBinary(data []byte) error {
	_, err := c.ReadFrom(bytes.NewReader(data))
	return err
}

// BuildCDF computes a CDF from a histogram of observed symbols. It is the
// external collaborator spec.md places out of the coding engine's core
// scope (§1) — a one-pass normalization and prefix sum over a caller's
// message, useful for turning a concrete sequence into a model to encode
// it (or similar sequences) with.
//
// This corrects the reference C implementation's normalization step (see
// DESIGN.md and spec.md §9(c)): histogram each symbol, divide every bin by
// the sample count, then prefix-sum — rather than dividing by the wrong
// index.
func BuildCDF(symbols []uint32) (*CDF, error) {
	if len(symbols) == 0 {
		return nil, newPrecondition("BuildCDF requires at least one symbol")
	}
	max := symbols[0]
	for _, s := range symbols[1:] {
		if s > max {
			max = s
		}
	}
	nsym := int(max) + 1

	hist := make([]float64, nsym)
	for _, s := range symbols {
		hist[s]++
	}
	n := float64(len(symbols))
	for i := range hist {
		hist[i] /= n
	}

	c := make([]float64, nsym+1)
	var running float64
	for i := 0; i < nsym; i++ {
		running += hist[i]
		c[i+1] = running
	}
	c[nsym] = 1
	return NewCDF(c)
}
