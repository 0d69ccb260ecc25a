package dictionary

import "math/bits"

// Offsets in the packed trie are variable-length 7-bits-per-byte
// little-endian unsigned integers: the low 7 bits of each byte carry
// the payload and the top bit (0x80) says whether another byte
// follows.

// readOffset decodes a variable-length offset from the start of data
// and returns the remaining bytes and the decoded value. It reports
// false if data runs out before a terminating byte is found, or if the
// value would overflow a native int.
func readOffset(data []byte) ([]byte, int, bool) {
	offset := 0

	for byteNum, b := range data {
		if (byteNum+1)*7 > bits.UintSize {
			return nil, 0, false
		}

		offset |= int(b&0x7f) << (byteNum * 7)

		if b&0x80 == 0 {
			return data[byteNum+1:], offset, true
		}
	}

	return nil, 0, false
}

// nBytesForOffset returns how many bytes writeOffset would emit for
// the given value.
func nBytesForOffset(offset int) int {
	nBits := bits.Len(uint(offset))
	if nBits < 1 {
		nBits = 1
	}
	return (nBits + 6) / 7
}

// appendOffset appends the variable-length encoding of offset to buf
// and returns the extended slice.
func appendOffset(buf []byte, offset int) []byte {
	for {
		b := byte(offset & 0x7f)
		offset >>= 7

		if offset == 0 {
			return append(buf, b)
		}

		buf = append(buf, b|0x80)
	}
}
