package headercrypt

import (
	"bytes"
	"crypto/aes"
	"errors"
	"testing"
)

func encryptECB(t *testing.T, plain []byte) []byte {
	t.Helper()
	block, err := aes.NewCipher(Key[:])
	if err != nil {
		t.Fatalf("NewCipher: %v", err)
	}
	enc := make([]byte, len(plain))
	for i := 0; i < len(plain); i += BlockSize {
		block.Encrypt(enc[i:i+BlockSize], plain[i:i+BlockSize])
	}
	return enc
}

func TestDecryptRoundTrip(t *testing.T) {
	plain := make([]byte, 64)
	for i := range plain {
		plain[i] = byte(i * 7)
	}
	enc := encryptECB(t, plain)
	if bytes.Equal(enc, plain) {
		t.Fatalf("encryption was a no-op")
	}

	got, err := Decrypt(enc)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if !bytes.Equal(got, plain) {
		t.Fatalf("decrypted bytes differ from plaintext")
	}
	if len(got) != len(enc) {
		t.Fatalf("decrypt changed length: %d -> %d", len(enc), len(got))
	}
}

func TestDecryptUnaligned(t *testing.T) {
	_, err := Decrypt(make([]byte, 17))
	var alignErr *AlignmentError
	if !errors.As(err, &alignErr) {
		t.Fatalf("expected AlignmentError, got %v", err)
	}
	if alignErr.Length != 17 {
		t.Fatalf("AlignmentError.Length: got %d", alignErr.Length)
	}
}

func TestRoundUp(t *testing.T) {
	cases := []struct{ in, want int }{
		{0, 0},
		{1, 16},
		{15, 16},
		{16, 16},
		{17, 32},
		{32, 32},
	}
	for _, tc := range cases {
		if got := RoundUp(tc.in); got != tc.want {
			t.Fatalf("RoundUp(%d): got %d, want %d", tc.in, got, tc.want)
		}
	}
}
