// Package encryption implements the AES-128-CBC transport cipher with PKCS7
// padding.
package encryption

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"player-data-api/internal/model"
)

// KeySize is the AES-128 key length; the IV length equals the block size.
const KeySize = 16

// CBCCipher holds immutable key material and is safe for concurrent use.
type CBCCipher struct {
	block cipher.Block
	iv    []byte
}

// NewCBCCipher builds a cipher from secret strings. Only the first 16 bytes of
// key and iv are used; shorter values are rejected.
func NewCBCCipher(key, iv string) (*CBCCipher, error) {
	if len(key) < KeySize {
		return nil, fmt.Errorf("%w: key has %d bytes, need %d", model.ErrInsufficientKeyMaterial, len(key), KeySize)
	}
	if len(iv) < aes.BlockSize {
		return nil, fmt.Errorf("%w: iv has %d bytes, need %d", model.ErrInsufficientKeyMaterial, len(iv), aes.BlockSize)
	}

	block, err := aes.NewCipher([]byte(key[:KeySize]))
	if err != nil {
		return nil, fmt.Errorf("failed to create aes cipher: %w", err)
	}

	return &CBCCipher{
		block: block,
		iv:    []byte(iv[:aes.BlockSize]),
	}, nil
}

// Encrypt pads plaintext with PKCS7 and encrypts it. The result length is a
// non-zero multiple of the block size.
func (c *CBCCipher) Encrypt(plaintext []byte) []byte {
	padded := Pad(plaintext, aes.BlockSize)
	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(c.block, c.iv).CryptBlocks(out, padded)
	return out
}

// Decrypt reverses Encrypt and strips the padding.
func (c *CBCCipher) Decrypt(ciphertext []byte) ([]byte, error) {
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext length %d is not a multiple of %d", model.ErrMalformedPayload, len(ciphertext), aes.BlockSize)
	}
	out := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(c.block, c.iv).CryptBlocks(out, ciphertext)
	return Unpad(out, aes.BlockSize)
}

// Pad appends n bytes of value n so len(b)+n is a multiple of blockSize.
// A full block is added when b is already aligned.
func Pad(b []byte, blockSize int) []byte {
	n := blockSize - len(b)%blockSize
	out := make([]byte, len(b), len(b)+n)
	copy(out, b)
	return append(out, bytes.Repeat([]byte{byte(n)}, n)...)
}

// Unpad validates and strips PKCS7 padding.
func Unpad(b []byte, blockSize int) ([]byte, error) {
	if len(b) == 0 || len(b)%blockSize != 0 {
		return nil, fmt.Errorf("%w: length %d", model.ErrInvalidPadding, len(b))
	}
	n := int(b[len(b)-1])
	if n == 0 || n > blockSize {
		return nil, fmt.Errorf("%w: pad byte %d", model.ErrInvalidPadding, n)
	}
	for _, p := range b[len(b)-n:] {
		if int(p) != n {
			return nil, fmt.Errorf("%w: inconsistent pad bytes", model.ErrInvalidPadding)
		}
	}
	return b[:len(b)-n], nil
}
