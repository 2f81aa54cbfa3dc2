package arithcode

// ErrTruncated is returned by (*Decoder).Next and Decode when the input
// stream ran out — forcing a Pop to zero-pad — before the end-of-message
// symbol was drawn. A well-formed, complete stream never needs zero-padding
// until the step that draws EOM itself (renormalization right around
// termination legitimately reads a little past the written tail, see
// spec.md §4.4); any zero-pad that happens earlier
// means the input was cut short. ErrTruncated is advisory: the caller still
// gets the symbols successfully decoded before the cutoff.
type ErrTruncated struct {
	Decoded int // number of symbols successfully decoded before giving up
}

func (e *ErrTruncated) Error() string {
	return "arithcode: input exhausted before end-of-message symbol"
}

// Decoder holds the interval state for a single arithmetic-decoding
// session, mirroring Encoder.
type Decoder struct {
	cs  *coderState
	in  *Stream
	v   uint64
	got int
}

// NewDecoder constructs a Decoder reading width-wide input symbols from
// data against model.
func NewDecoder(width Width, data []byte, model *CDF) (*Decoder, error) {
	cs, err := newCoderState(width, model)
	if err != nil {
		return nil, err
	}
	s := &Stream{}
	s.Attach(data)
	d := &Decoder{cs: cs, in: s}
	d.v = cs.prime(s)
	return d, nil
}

// Next decodes and returns the next symbol. When the decoded symbol is the
// implicit end-of-message marker, Next returns ok=false and sym is
// meaningless; the caller should stop. If the input stream was exhausted
// before EOM was drawn, Next returns a *ErrTruncated instead.
func (d *Decoder) Next() (sym int, ok bool, err error) {
	ranShort := d.in.Overread()
	s, nv, isEOM := d.cs.bisect(d.v)
	if d.cs.l == 0 {
		return 0, false, newInvariant("interval collapsed decoding at position %d", d.got)
	}
	if isEOM {
		d.v = d.cs.renormalizeDecode(d.in, nv)
		return 0, false, nil
	}
	if ranShort {
		return 0, false, &ErrTruncated{Decoded: d.got}
	}
	d.v = d.cs.renormalizeDecode(d.in, nv)
	d.got++
	return s, true, nil
}

// Decode decodes a complete message previously produced by Encode/Encoder,
// reading width-wide input symbols from data against model. It stops at
// the first end-of-message symbol drawn; it does not require or check that
// data contains no trailing bytes beyond the encoded message. If data is
// truncated, Decode returns the symbols decoded so far along with an
// *ErrTruncated.
func Decode[T Unsigned](width Width, data []byte, model *CDF) ([]T, error) {
	dec, err := NewDecoder(width, data, model)
	if err != nil {
		return nil, err
	}
	var out []T
	for {
		sym, ok, err := dec.Next()
		if err != nil {
			return out, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, T(sym))
	}
}
