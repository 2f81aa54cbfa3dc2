package arithcode

// shift is the bit-width of the arithmetic register. It is fixed at 32 for
// every supported output width so that L and B fit in a uint64 and the
// products L*C[i] computed during Update/Bisect fit too (see spec.md §3,
// "Width parameters").
const shift = 32

// mask selects the live shift bits of a uint64: L_max = mask.
const mask = uint64(1)<<shift - 1

// bitsOfD returns log2(D) for a given output width — the number of output
// bits D's alphabet occupies. For every width this coder supports, D is
// itself a power of two equal to 1<<int(w), so log2(D) == int(w).
func bitsOfD(w Width) uint { return uint(w) }

// dOfWidth returns D, the output alphabet size in counts, for width w.
func dOfWidth(w Width) uint64 { return uint64(1) << bitsOfD(w) }

// lowlOfWidth returns lowl = 1 << (shift - log2(D)), the renormalization
// threshold for width w.
func lowlOfWidth(w Width) uint64 { return uint64(1) << (shift - bitsOfD(w)) }

// validateWidth rejects output widths this coder does not support, and
// widths whose termination protocol (see (*coderState).selectTerminate)
// cannot flush a well-formed final interval.
//
// Select forces L = (1<<(shift-2*log2(D)))-1, which requires
// shift > 2*log2(D) — spec.md §4.3's "requires P > 2, i.e. at least two
// output symbols of termination slack". Width16 has log2(D)=16 and
// shift=32, so shift-2*log2(D)=0 and Select would force L to zero,
// violating the core L>0 invariant on every single message. This is an
// Open Question resolution (see DESIGN.md): rather than silently emit an
// undecodable stream, Width16 is rejected at construction time with a
// PreconditionError. Width1, Width4, and Width8 all satisfy the
// constraint (log2(D) = 1, 4, 8, giving P = 32, 8, 4 respectively).
func validateWidth(w Width) error {
	switch w {
	case Width1, Width4, Width8:
		return nil
	case Width16:
		return newPrecondition("output width 16 cannot terminate (needs log2(D)*2 < shift=%d, got %d); use width 1, 4, or 8", shift, 2*bitsOfD(w))
	default:
		return newPrecondition("unsupported output width %d (want 1, 4, or 8)", int(w))
	}
}

// coderState is the shared encoder/decoder interval-tracking datum:
// interval base B, length L, the scaled integer CDF, and the width-derived
// constants used by both directions.
type coderState struct {
	b, l uint64

	cdf  []uint64 // scaled CDF, length userNSym+1; cdf[nsym-1] is the EOM's lower bound
	nsym int      // number of internal symbols including EOM == len(cdf)

	width Width
	lowl  uint64
}

// newCoderState builds the encoder/decoder datum for cdf at the given
// output width: B=0, L=mask, and the integer-scaled CDF with its implicit
// trailing EOM symbol (spec.md §3, §4.2).
func newCoderState(w Width, cdf *CDF) (*coderState, error) {
	if err := validateWidth(w); err != nil {
		return nil, err
	}
	scaled, err := buildScaledCDF(cdf, dOfWidth(w))
	if err != nil {
		return nil, err
	}
	return &coderState{
		b:     0,
		l:     mask,
		cdf:   scaled,
		nsym:  len(scaled),
		width: w,
		lowl:  lowlOfWidth(w),
	}, nil
}

// buildScaledCDF quantizes cdf (reals in [0,1]) into the integer range
// [0, L_max-D], appending the implicit EOM symbol whose mass occupies the
// top D counts of the interval (spec.md §4.2). The returned slice has
// length cdf.NSym()+1: index i is the scaled lower bound of user symbol i
// for i < cdf.NSym(), and index cdf.NSym() is the EOM's lower bound
// (== scale, the point where the EOM's D-count band begins). The EOM's
// upper bound is never stored — it is always the full interval length L,
// handled by a special case in Update and Bisect (mirroring the reference
// implementation, which avoids an out-of-bounds table read the same way).
func buildScaledCDF(cdf *CDF, d uint64) ([]uint64, error) {
	n := cdf.NSym()
	scale := float64(uint64(1)<<shift - d)

	out := make([]uint64, n+1)
	for i := 0; i <= n; i++ {
		out[i] = uint64(scale*cdf.At(i) + 0.5)
	}
	for i := 1; i <= n; i++ {
		if out[i] <= out[i-1] {
			return nil, newPrecondition(
				"symbol %d has probability too small to represent at this output width (scaled cdf is not strictly increasing)", i-1)
		}
	}
	return out, nil
}

// update applies Algorithm 25 (Encoder::Update): narrows [B,B+L) to the
// sub-interval for symbol s, reports whether the addition wrapped mask
// (the caller must then invoke Carry on its output sink), and returns an
// InvariantError if the resulting interval collapsed to zero length.
func (cs *coderState) update(s int) (carry bool, err error) {
	var y uint64
	if s != cs.nsym-1 {
		y = (cs.l * cs.cdf[s+1]) >> shift
	} else {
		y = cs.l
	}
	x := (cs.l * cs.cdf[s]) >> shift

	a := cs.b
	cs.b = (cs.b + x) & mask
	cs.l = y - x

	if cs.l == 0 {
		return false, newInvariant("interval collapsed encoding symbol %d: probability below the coder's resolution at this output width", s)
	}
	return a > cs.b, nil
}

// renormalizeEncode emits the settled high-order output symbols of B while
// L is below the renormalization threshold, rescaling B and L by D each
// time (Algorithm 26).
func (cs *coderState) renormalizeEncode(out sink) {
	bits := bitsOfD(cs.width)
	for cs.l < cs.lowl {
		out.Push(cs.width, cs.b>>(shift-bits))
		cs.l = (cs.l << bits) & mask
		cs.b = (cs.b << bits) & mask
	}
}

// selectTerminate implements Algorithm 27 (Encoder::Select): it nudges B to
// the midpoint of the final live band and forces L down to the
// reduced-precision value that is valid for any point in that band, then
// flushes the last output symbols via renormalization. Called once, after
// the EOM symbol has been coded.
func (cs *coderState) selectTerminate(out sink) error {
	bits := bitsOfD(cs.width)

	a := cs.b
	cs.b = (cs.b + (uint64(1) << (shift - bits - 1))) & mask
	if shift <= 2*bits {
		return newInvariant("output width cannot terminate (shift=%d, 2*log2(D)=%d)", shift, 2*bits)
	}
	cs.l = (uint64(1) << (shift - 2*bits)) - 1

	if a > cs.b {
		out.Carry(cs.width)
	}
	cs.renormalizeEncode(out)
	return nil
}

// bisect implements Algorithm 28 (Decoder::Bisect): given the current
// decoder value v (the true source value minus B, kept implicitly by the
// caller), binary-searches the scaled CDF for the symbol whose interval
// contains v, narrows L to that symbol's sub-interval, and returns the
// symbol along with the updated v and whether it was the EOM symbol.
func (cs *coderState) bisect(v uint64) (sym int, nv uint64, isEOM bool) {
	s, n := 0, cs.nsym
	var x, y uint64
	y = cs.l
	for n-s > 1 {
		m := (s + n) / 2
		z := (cs.l * cs.cdf[m]) >> shift
		if z > v {
			n, y = m, z
		} else {
			s, x = m, z
		}
	}
	cs.l = y - x
	return s, v - x, s == cs.nsym-1
}

// renormalizeDecode mirrors renormalizeEncode on the decode side
// (Algorithm 29): while L is below threshold, it pulls another output
// symbol into the low end of v and rescales L by D.
func (cs *coderState) renormalizeDecode(in *Stream, v uint64) uint64 {
	bits := bitsOfD(cs.width)
	for cs.l < cs.lowl {
		v = ((v << bits) & mask) + in.Pop(cs.width)
		cs.l = (cs.l << bits) & mask
	}
	return v
}

// prime reads the first P output symbols into the high end of a
// shift-bit register, initializing the decoder's v before the first
// Bisect (Algorithm 24). v always starts at zero — see spec.md §9(a),
// which calls out a draft that skipped this initialization.
func (cs *coderState) prime(in *Stream) uint64 {
	bits := bitsOfD(cs.width)
	v := uint64(0)
	for i := bits; i <= shift; i += bits {
		v += (uint64(1) << (shift - i)) * in.Pop(cs.width)
	}
	return v
}
