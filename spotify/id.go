package spotify

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math/bits"
)

const (
	// IDSize is the raw big-endian width of an ID in bytes.
	IDSize = 16
	// IDHexSize is the character length of the hex rendering of an ID.
	IDHexSize = 32
	// IDBase62Size is the character length of the base62 rendering of an ID.
	IDBase62Size = 22
)

// base62Alphabet is the alternative base62 alphabet the catalog service
// encodes identifiers with: digits, then lowercase, then uppercase.
const base62Alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

var base62Digits = func() [256]int8 {
	var t [256]int8
	for i := range t {
		t[i] = -1
	}
	for i := 0; i < len(base62Alphabet); i++ {
		t[base62Alphabet[i]] = int8(i)
	}
	return t
}()

// ID is a 128-bit identifier for basic catalog items. It carries no type
// tag of its own: the same value can identify an album, artist, episode,
// playlist, show, or track depending on the context it appears in.
//
// The zero value is the all-zero identifier. IDs are immutable and compare
// with ==.
type ID struct {
	hi, lo uint64
}

// IDFromHex parses a 32-character, strictly lowercase hex string.
func IDFromHex(src string) (ID, error) {
	if len(src) != IDHexSize {
		return ID{}, &InvalidIDSizeError{Expected: IDHexSize, Value: src}
	}
	var buf [IDSize]byte
	for i := 0; i < len(src); i++ {
		var d byte
		switch c := src[i]; {
		case c >= '0' && c <= '9':
			d = c - '0'
		case c >= 'a' && c <= 'f':
			d = c - 'a' + 10
		default:
			return ID{}, &InvalidFormatError{Reason: fmt.Sprintf("invalid lowercase hex symbol %q at offset %d", c, i), Value: src}
		}
		buf[i/2] = buf[i/2]<<4 | d
	}
	return idFromBuf(buf), nil
}

// IDFromBase62 parses a 22-character string in the alternative base62
// alphabet. The length is checked before decoding; a valid-length string
// whose value exceeds 128 bits is an InvalidFormatError.
func IDFromBase62(src string) (ID, error) {
	if len(src) != IDBase62Size {
		return ID{}, &InvalidIDSizeError{Expected: IDBase62Size, Value: src}
	}
	var id ID
	for i := 0; i < len(src); i++ {
		d := base62Digits[src[i]]
		if d < 0 {
			return ID{}, &InvalidFormatError{Reason: fmt.Sprintf("invalid base62 symbol %q at offset %d", src[i], i), Value: src}
		}
		next, ok := id.mulAdd(62, uint64(d))
		if !ok {
			return ID{}, &InvalidFormatError{Reason: "decoded value overflows 128 bits", Value: src}
		}
		id = next
	}
	return id, nil
}

// IDFromBytes copies an ID from exactly IDSize (16) big-endian bytes.
func IDFromBytes(src []byte) (ID, error) {
	if len(src) != IDSize {
		return ID{}, &InvalidIDBytesError{Bytes: append([]byte(nil), src...)}
	}
	var buf [IDSize]byte
	copy(buf[:], src)
	return idFromBuf(buf), nil
}

func idFromBuf(buf [IDSize]byte) ID {
	return ID{
		hi: binary.BigEndian.Uint64(buf[:8]),
		lo: binary.BigEndian.Uint64(buf[8:]),
	}
}

// Bytes returns the ID as IDSize (16) bytes in big-endian order.
func (id ID) Bytes() [IDSize]byte {
	var buf [IDSize]byte
	binary.BigEndian.PutUint64(buf[:8], id.hi)
	binary.BigEndian.PutUint64(buf[8:], id.lo)
	return buf
}

// Hex returns the IDHexSize (32) character, zero-padded, lowercase hex
// rendering of the ID.
func (id ID) Hex() string {
	buf := id.Bytes()
	return hex.EncodeToString(buf[:])
}

// Base62 returns the IDBase62Size (22) character, zero-padded rendering of
// the ID in the alternative base62 alphabet. This is the canonical textual
// form the catalog service expects.
func (id ID) Base62() string {
	var out [IDBase62Size]byte
	v := id
	for i := IDBase62Size - 1; i >= 0; i-- {
		var rem uint64
		v, rem = v.divMod62()
		out[i] = base62Alphabet[rem]
	}
	return string(out[:])
}

func (id ID) String() string {
	return id.Base62()
}

// mulAdd computes id*m + a, reporting failure on 128-bit overflow.
func (id ID) mulAdd(m, a uint64) (ID, bool) {
	hiCarry, hi := bits.Mul64(id.hi, m)
	if hiCarry != 0 {
		return ID{}, false
	}
	loCarry, lo := bits.Mul64(id.lo, m)
	hi, carry := bits.Add64(hi, loCarry, 0)
	if carry != 0 {
		return ID{}, false
	}
	lo, carry = bits.Add64(lo, a, 0)
	hi, carry = bits.Add64(hi, 0, carry)
	if carry != 0 {
		return ID{}, false
	}
	return ID{hi: hi, lo: lo}, true
}

func (id ID) divMod62() (ID, uint64) {
	hiQ := id.hi / 62
	hiR := id.hi % 62
	loQ, rem := bits.Div64(hiR, id.lo, 62)
	return ID{hi: hiQ, lo: loQ}, rem
}
