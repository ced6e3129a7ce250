package value

import "math/big"

// BigInt is an arbitrary-precision integer that did not fit the host's
// native signed 64-bit range (spec.md §3.4). It holds the parsed value;
// EncodeExternalTerm renders its bit-exact external-term encoding
// (spec.md §6.3) so a real host runtime can inject it without relinking
// against a bignum library of its own.
type BigInt struct {
	Int *big.Int
}

func (*BigInt) Kind() Kind { return KindBigInt }

// NewBigInt wraps n as a host BigInt value.
func NewBigInt(n *big.Int) *BigInt {
	return &BigInt{Int: n}
}

// EncodeExternalBignum renders n as the host's canonical external-term
// bignum representation, per spec.md §6.3:
//
//	byte 0:    131 (magic version tag)
//	byte 1:    111 (large-bignum tag)
//	bytes 2-5: big-endian uint32 length of the little-endian magnitude
//	byte 6:    sign byte, 0 = non-negative, 1 = negative
//	bytes 7..: magnitude as little-endian bytes
func EncodeExternalBignum(n *big.Int) []byte {
	// big.Int.Bytes returns the absolute value, big-endian, with no leading
	// zero byte. Reverse it to get the little-endian magnitude the wire
	// format wants.
	be := n.Bytes()
	magnitude := make([]byte, len(be))
	for i, b := range be {
		magnitude[len(be)-1-i] = b
	}

	out := make([]byte, 7+len(magnitude))
	out[0] = 131
	out[1] = 111
	length := uint32(len(magnitude))
	out[2] = byte(length >> 24)
	out[3] = byte(length >> 16)
	out[4] = byte(length >> 8)
	out[5] = byte(length)
	if n.Sign() < 0 {
		out[6] = 1
	} else {
		out[6] = 0
	}
	copy(out[7:], magnitude)
	return out
}

// EncodeExternalTerm renders the receiver (sign and magnitude) via
// EncodeExternalBignum.
func (b *BigInt) EncodeExternalTerm() []byte {
	return EncodeExternalBignum(b.Int)
}
