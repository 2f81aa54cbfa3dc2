package arithcode

// Unsigned is the set of integer types Encode/Decode accept as source
// symbols. Symbols are always small non-negative indices into a CDF's
// alphabet, never negative offsets, so the constraint excludes signed
// integers.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Encoder holds the interval state for a single arithmetic-coding session.
// Encode drives one to completion; Encoder is not meant to be reused across
// messages once EOM has been coded (construct a fresh one per message, the
// way Stream is reattached per message).
type Encoder struct {
	cs  *coderState
	out *Stream
}

// NewEncoder constructs an Encoder that writes width-wide output symbols
// against model, writing into buf from its start and growing it if needed
// (or into a freshly owned buffer if buf is nil).
func NewEncoder(width Width, model *CDF, buf []byte) (*Encoder, error) {
	cs, err := newCoderState(width, model)
	if err != nil {
		return nil, err
	}
	s := &Stream{}
	s.Attach(buf)
	return &Encoder{cs: cs, out: s}, nil
}

// Code narrows the encoder's interval to symbol sym's band and renormalizes.
// sym must be a valid index into the model's alphabet (0 <= sym < NSym());
// the implicit end-of-message symbol is coded separately by Finish.
func (e *Encoder) Code(sym int) error {
	if sym < 0 || sym >= e.cs.nsym-1 {
		return newPrecondition("symbol %d out of range [0,%d)", sym, e.cs.nsym-1)
	}
	return e.codeInternal(sym)
}

func (e *Encoder) codeInternal(internalSym int) error {
	carry, err := e.cs.update(internalSym)
	if err != nil {
		return err
	}
	if carry {
		e.out.Carry(e.cs.width)
	}
	e.cs.renormalizeEncode(e.out)
	return nil
}

// Finish codes the implicit end-of-message symbol and terminates the
// interval, flushing the last output symbols. After Finish, Bytes returns
// the complete encoded message.
func (e *Encoder) Finish() error {
	if err := e.codeInternal(e.cs.nsym - 1); err != nil {
		return err
	}
	return e.cs.selectTerminate(e.out)
}

// Bytes returns the bytes written so far. Call only after Finish for a
// complete, decodable message.
func (e *Encoder) Bytes() []byte {
	return e.out.buf[:e.out.Len()]
}

// Encode is a convenience wrapper around Encoder: it codes every symbol in
// symbols against model, terminates the message, and returns the encoded
// bytes. buf, if non-nil, is used (and grown if necessary) as the output
// backing array.
func Encode[T Unsigned](width Width, symbols []T, model *CDF, buf []byte) ([]byte, error) {
	enc, err := NewEncoder(width, model, buf)
	if err != nil {
		return nil, err
	}
	nsym := model.NSym()
	for i, sym := range symbols {
		s := int(sym)
		if s < 0 || s >= nsym {
			return nil, newPrecondition("symbol at index %d (value %d) out of range [0,%d)", i, s, nsym)
		}
		if err := enc.codeInternal(s); err != nil {
			return nil, err
		}
	}
	if err := enc.Finish(); err != nil {
		return nil, err
	}
	return enc.Bytes(), nil
}
