// Package headercrypt decrypts the encrypted tail of a package header
// with the fixed key the game client embeds for every package.
package headercrypt

import (
	"crypto/aes"
	"fmt"
)

// BlockSize is the cipher block size the encrypted region is aligned to.
const BlockSize = aes.BlockSize

// Key is the AES-256 key shared by all packages of this format. The
// bytes are lifted verbatim from the game client and must not change.
var Key = [32]byte{
	0x2A, 0xB1, 0x94, 0x4C, 0x66, 0x0F, 0xE1, 0x39,
	0x8D, 0x57, 0xC3, 0xA8, 0x12, 0xF0, 0x6B, 0xE5,
	0x7D, 0x04, 0x9E, 0xCA, 0x31, 0xB8, 0x5F, 0x26,
	0xD9, 0x43, 0xAF, 0x78, 0x1C, 0xE2, 0x90, 0x6D,
}

// AlignmentError reports ciphertext whose length is not a multiple of
// the cipher block size.
type AlignmentError struct {
	Length int
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("headercrypt: ciphertext length %d is not a multiple of %d", e.Length, BlockSize)
}

// RoundUp rounds n up to the next multiple of the cipher block size.
func RoundUp(n int) int {
	rem := n % BlockSize
	if rem == 0 {
		return n
	}
	return n + BlockSize - rem
}

// Decrypt decrypts src with AES-256 in ECB mode and returns a
// plaintext buffer of the same length. No padding is removed; trailing
// garbage bytes declared by the header survive verbatim.
func Decrypt(src []byte) ([]byte, error) {
	if len(src)%BlockSize != 0 {
		return nil, &AlignmentError{Length: len(src)}
	}
	block, err := aes.NewCipher(Key[:])
	if err != nil {
		return nil, fmt.Errorf("headercrypt: %w", err)
	}
	dst := make([]byte, len(src))
	for i := 0; i < len(src); i += BlockSize {
		block.Decrypt(dst[i:i+BlockSize], src[i:i+BlockSize])
	}
	return dst, nil
}
