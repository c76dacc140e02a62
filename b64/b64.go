// Package b64 provides Base64 encoding helpers for binary data and UTF-8 text
package b64

// ////////////////////////////////////////////////////////////////////////////////// //
//                                                                                    //
//                         Copyright (c) 2025 ESSENTIAL KAOS                          //
//      Apache License, Version 2.0 <https://www.apache.org/licenses/LICENSE-2.0>     //
//                                                                                    //
// ////////////////////////////////////////////////////////////////////////////////// //

import (
	"encoding/base64"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/essentialkaos/datakit"
)

// ////////////////////////////////////////////////////////////////////////////////// //

var (
	ErrInvalidUTF8 = fmt.Errorf("Decoded data is not valid UTF-8 text")
	ErrLineBreak   = fmt.Errorf("Data contains line breaks")
)

// ////////////////////////////////////////////////////////////////////////////////// //

// Encode encodes given data to Base64 (standard alphabet with padding)
func Encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// EncodeN encodes first length bytes of given data to Base64
func EncodeN(data []byte, length int) string {
	switch {
	case length <= 0:
		return ""
	case length > len(data):
		length = len(data)
	}

	return Encode(data[:length])
}

// Decode decodes Base64-encoded string
func Decode(data string) ([]byte, error) {
	// stdlib decoder silently skips CR and LF
	if strings.ContainsAny(data, "\r\n") {
		return nil, fmt.Errorf("%w: %w", datakit.ErrDecode, ErrLineBreak)
	}

	buf := make([]byte, base64.StdEncoding.DecodedLen(len(data)))
	n, err := base64.StdEncoding.Strict().Decode(buf, []byte(data))

	if err != nil {
		return nil, fmt.Errorf("%w: %w", datakit.ErrDecode, err)
	}

	return buf[:n], nil
}

// EncodeText encodes text to Base64
func EncodeText(text string) string {
	return Encode([]byte(text))
}

// DecodeText decodes Base64-encoded UTF-8 text
func DecodeText(data string) (string, error) {
	raw, err := Decode(data)

	if err != nil {
		return "", err
	}

	if !utf8.Valid(raw) {
		return "", fmt.Errorf("%w: %w", datakit.ErrEncoding, ErrInvalidUTF8)
	}

	return string(raw), nil
}
