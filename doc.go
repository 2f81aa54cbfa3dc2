// Package arithcode implements an integer arithmetic coder: a lossless
// entropy codec that compresses a sequence of source symbols into a
// shorter sequence of output symbols given a model of the source
// distribution, and decompresses the reverse direction.
//
// # Overview
//
// Arithmetic coding represents an entire message as a single point inside
// a nested sequence of sub-intervals of [0, 1), one sub-interval per
// symbol, sized according to the symbol's probability under a supplied
// CDF. Unlike Huffman coding, symbol costs are not constrained to whole
// bits — a symbol with probability 0.99 can cost a small fraction of a
// bit — so message length tracks the source entropy closely.
//
// This package implements the integer variant of the algorithm: the
// interval is tracked as a fixed-point base/length pair in a 32-bit
// register, renormalized by shifting out settled output symbols as the
// interval narrows, with carry propagation handling the case where adding
// to the interval base overflows the register. Termination
// uses an implicit end-of-message symbol rather than an out-of-band
// length, so a decoder can recover a message with no length prefix.
//
// # When to Use
//
// Use this package when you have (or can estimate) a probability model
// for your data — a static histogram, a known distribution, or a model
// learned elsewhere — and want near-entropy-optimal compression. It is a
// poor fit for data with no usable model, or where an adaptive
// (per-symbol-updated) model is required; this implementation accepts
// only a fixed CDF per message.
//
// # Basic Usage
//
//	cdf, _ := arithcode.NewCDF([]float64{0.0, 0.2, 0.7, 0.9, 1.0})
//	symbols := []uint8{2, 1, 0, 0, 1, 3}
//
//	encoded, err := arithcode.Encode(arithcode.Width8, symbols, cdf, nil)
//	if err != nil {
//		// handle error
//	}
//
//	decoded, err := arithcode.Decode[uint8](arithcode.Width8, encoded, cdf)
//	if err != nil {
//		// handle error
//	}
//	// decoded == symbols
//
// Output width need not be a byte: Width1, Width4, and Width8 bit output
// alphabets are supported. Width16 cannot terminate a message on its own
// (see validateWidth) and is rejected with a PreconditionError.
//
// To pack output into an alphabet that is neither a power of two nor a
// whole byte — 94 printable ASCII symbols, say — use VEncode/VDecode
// instead of Encode/Decode.
//
// # Performance Characteristics
//
// Encoding and decoding are both O(N) in the number of source symbols,
// with an O(log K) bisection per decoded symbol against a K-symbol CDF.
// Carry propagation is amortized O(1) per symbol. The entire output must
// be buffered: a carry may in principle ripple all the way back to the
// first output symbol until the message is terminated, which precludes
// an incremental "emit bytes as you go" streaming interface.
package arithcode
