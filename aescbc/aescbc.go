// Package aescbc provides AES-256-CBC decryption with PKCS#7 padding removal.
//
// The package is decrypt-only: there is no encryption counterpart, ciphertexts
// are produced elsewhere and keys are managed by the caller.
package aescbc

// ////////////////////////////////////////////////////////////////////////////////// //
//                                                                                    //
//                         Copyright (c) 2025 ESSENTIAL KAOS                          //
//      Apache License, Version 2.0 <https://www.apache.org/licenses/LICENSE-2.0>     //
//                                                                                    //
// ////////////////////////////////////////////////////////////////////////////////// //

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
	"unicode/utf8"

	"github.com/essentialkaos/datakit"
)

// ////////////////////////////////////////////////////////////////////////////////// //

const (
	KeySize   = 32            // AES-256 key size
	IVSize    = aes.BlockSize // CBC initialization vector size
	BlockSize = aes.BlockSize // AES block size
)

// ////////////////////////////////////////////////////////////////////////////////// //

var (
	ErrInvalidKeySize   = fmt.Errorf("Key must be %d bytes", KeySize)
	ErrInvalidIVSize    = fmt.Errorf("IV must be %d bytes", IVSize)
	ErrEmptyData        = fmt.Errorf("Ciphertext is empty")
	ErrInvalidDataSize  = fmt.Errorf("Ciphertext size is not a multiple of the block size")
	ErrInvalidBlockSize = fmt.Errorf("Block size must be between 1 and 255")
	ErrInvalidPadding   = fmt.Errorf("Invalid PKCS#7 padding")
	ErrInvalidUTF8      = fmt.Errorf("Plaintext is not valid UTF-8 text")
)

// ////////////////////////////////////////////////////////////////////////////////// //

// Decrypt decrypts AES-256-CBC ciphertext and removes PKCS#7 padding
func Decrypt(ciphertext, key, iv []byte) ([]byte, error) {
	data, err := DecryptBlocks(ciphertext, key, iv)

	if err != nil {
		return nil, err
	}

	return Unpad(data, BlockSize)
}

// DecryptString decrypts AES-256-CBC ciphertext and returns plaintext as
// UTF-8 text
func DecryptString(ciphertext, key, iv []byte) (string, error) {
	data, err := Decrypt(ciphertext, key, iv)

	if err != nil {
		return "", err
	}

	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %w", datakit.ErrEncoding, ErrInvalidUTF8)
	}

	return string(data), nil
}

// DecryptBlocks decrypts AES-256-CBC ciphertext without removing padding
func DecryptBlocks(ciphertext, key, iv []byte) ([]byte, error) {
	switch {
	case len(key) != KeySize:
		return nil, cryptoError(ErrInvalidKeySize)
	case len(iv) != IVSize:
		return nil, cryptoError(ErrInvalidIVSize)
	case len(ciphertext) == 0:
		return nil, cryptoError(ErrEmptyData)
	case len(ciphertext)%BlockSize != 0:
		return nil, cryptoError(ErrInvalidDataSize)
	}

	block, err := aes.NewCipher(key)

	if err != nil {
		return nil, cryptoError(err)
	}

	data := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(data, ciphertext)

	return data, nil
}

// Unpad removes PKCS#7 padding. Returned slice shares memory with given data.
func Unpad(data []byte, blockSize int) ([]byte, error) {
	switch {
	case blockSize < 1 || blockSize > 255:
		return nil, cryptoError(ErrInvalidBlockSize)
	case len(data) == 0 || len(data)%blockSize != 0:
		return nil, cryptoError(ErrInvalidDataSize)
	}

	pad := int(data[len(data)-1])

	if pad == 0 || pad > blockSize {
		return nil, cryptoError(ErrInvalidPadding)
	}

	for _, b := range data[len(data)-pad:] {
		if int(b) != pad {
			return nil, cryptoError(ErrInvalidPadding)
		}
	}

	return data[:len(data)-pad], nil
}

// ////////////////////////////////////////////////////////////////////////////////// //

// cryptoError marks error as crypto error
func cryptoError(err error) error {
	return fmt.Errorf("%w: %w", datakit.ErrCrypto, err)
}
