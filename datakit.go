// Package datakit provides small stateless helpers for bytes, text, files
// and images
package datakit

// ////////////////////////////////////////////////////////////////////////////////// //
//                                                                                    //
//                         Copyright (c) 2025 ESSENTIAL KAOS                          //
//      Apache License, Version 2.0 <https://www.apache.org/licenses/LICENSE-2.0>     //
//                                                                                    //
// ////////////////////////////////////////////////////////////////////////////////// //

import (
	"fmt"
)

// ////////////////////////////////////////////////////////////////////////////////// //

// Error kinds shared by all datakit packages. Packages wrap the underlying cause,
// so both the kind and the cause can be checked with errors.Is.
var (
	ErrDecode   = fmt.Errorf("Decode error")   // Malformed Base64 data
	ErrEncoding = fmt.Errorf("Encoding error") // Text or image serialization failure
	ErrNotFound = fmt.Errorf("Not found")      // Missing file
	ErrIO       = fmt.Errorf("I/O error")      // Filesystem failure
	ErrCrypto   = fmt.Errorf("Crypto error")   // Bad key, IV, ciphertext or padding
)

// ////////////////////////////////////////////////////////////////////////////////// //
