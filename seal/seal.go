// Package seal provides sealing (encryption at rest) of cached blobs with a key
// derived from secret material
package seal

// ////////////////////////////////////////////////////////////////////////////////// //
//                                                                                    //
//                         Copyright (c) 2025 ESSENTIAL KAOS                          //
//      Apache License, Version 2.0 <https://www.apache.org/licenses/LICENSE-2.0>     //
//                                                                                    //
// ////////////////////////////////////////////////////////////////////////////////// //

import (
	"bytes"
	"crypto/rand"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/scrypt"

	"github.com/essentialkaos/sio"

	"github.com/essentialkaos/datakit"
	"github.com/essentialkaos/datakit/b64"
	"github.com/essentialkaos/datakit/fsutil"
)

// ////////////////////////////////////////////////////////////////////////////////// //

// SALT_SIZE is size of random salt stored in front of every sealed blob
const SALT_SIZE = 32

// scrypt parameters
const (
	scryptN = 32768
	scryptR = 16
	scryptP = 1
)

// ////////////////////////////////////////////////////////////////////////////////// //

// Secret is secret material used for sealing blobs
type Secret struct {
	data []byte
	err  error
}

// Checksum is secret checksum
type Checksum []byte

// ////////////////////////////////////////////////////////////////////////////////// //

var (
	ErrNilSecret       = fmt.Errorf("Secret is nil")
	ErrEmptySecretData = fmt.Errorf("Secret data is empty")
	ErrEmptySecretPath = fmt.Errorf("Secret path is empty")
	ErrEmptyEnvVarName = fmt.Errorf("Environment variable name is empty")
	ErrEmptyEnvVar     = fmt.Errorf("Environment variable is empty")
	ErrShortData       = fmt.Errorf("Sealed data is too short")
)

// ////////////////////////////////////////////////////////////////////////////////// //

// NewSecret creates new secret from given string
func NewSecret(data string) *Secret {
	s := &Secret{}
	return s.Add(data)
}

// ////////////////////////////////////////////////////////////////////////////////// //

// Add appends string to secret material
func (s *Secret) Add(data string) *Secret {
	if !s.canAdd(data, ErrEmptySecretData) {
		return s.orNil()
	}

	s.append([]byte(data))

	return s
}

// AddHex appends hex-encoded data to secret material
func (s *Secret) AddHex(data string) *Secret {
	if !s.canAdd(data, ErrEmptySecretData) {
		return s.orNil()
	}

	buf, err := hex.DecodeString(data)

	if err != nil {
		s.err = err
		return s
	}

	s.append(buf)

	return s
}

// AddBase64 appends Base64-encoded data to secret material
func (s *Secret) AddBase64(data string) *Secret {
	if !s.canAdd(data, ErrEmptySecretData) {
		return s.orNil()
	}

	buf, err := b64.Decode(data)

	if err != nil {
		s.err = err
		return s
	}

	s.append(buf)

	return s
}

// AddEnv appends value of environment variable to secret material and clears
// the variable
func (s *Secret) AddEnv(name string) *Secret {
	if !s.canAdd(name, ErrEmptyEnvVarName) {
		return s.orNil()
	}

	value := os.Getenv(name)

	if value == "" {
		s.err = ErrEmptyEnvVar
		return s
	}

	s.append([]byte(value))

	err := os.Unsetenv(name)

	if err != nil {
		s.err = fmt.Errorf("Can't clean secret from environment variable: %w", err)
	}

	return s
}

// AddFile appends SHA-512 hash of the file to secret material
func (s *Secret) AddFile(file string) *Secret {
	if !s.canAdd(file, ErrEmptySecretPath) {
		return s.orNil()
	}

	data, err := fsutil.ReadFile(file)

	if err != nil {
		s.err = err
		return s
	}

	hash := sha512.Sum512(data)
	s.append(hash[:])

	return s
}

// Validate validates secret
func (s *Secret) Validate() error {
	switch {
	case s == nil:
		return ErrNilSecret
	case s.err != nil:
		return s.err
	case len(s.data) == 0:
		return ErrEmptySecretData
	}

	return nil
}

// Checksum returns secret checksum
func (s *Secret) Checksum() Checksum {
	if s == nil || len(s.data) == 0 {
		return nil
	}

	hash := sha512.Sum512_256(s.data)

	return Checksum(hash[:])
}

// String returns string representation of secret
func (s *Secret) String() string {
	return fmt.Sprintf("seal.Secret{%s}", s.Checksum().Short())
}

// ////////////////////////////////////////////////////////////////////////////////// //

// Seal encrypts given data
func (s *Secret) Seal(data []byte) ([]byte, error) {
	err := s.Validate()

	if err != nil {
		return nil, err
	}

	salt := make([]byte, SALT_SIZE)
	_, err = io.ReadFull(rand.Reader, salt)

	if err != nil {
		return nil, fmt.Errorf("%w: Can't generate salt: %w", datakit.ErrCrypto, err)
	}

	cfg, err := s.sioConfig(salt)

	if err != nil {
		return nil, err
	}

	buf := bytes.NewBuffer(salt)
	_, err = sio.Encrypt(buf, bytes.NewReader(data), cfg)

	if err != nil {
		return nil, fmt.Errorf("%w: Can't seal data: %w", datakit.ErrCrypto, err)
	}

	return buf.Bytes(), nil
}

// Open decrypts data sealed by Seal
func (s *Secret) Open(data []byte) ([]byte, error) {
	err := s.Validate()

	if err != nil {
		return nil, err
	}

	if len(data) < SALT_SIZE {
		return nil, fmt.Errorf("%w: %w", datakit.ErrCrypto, ErrShortData)
	}

	cfg, err := s.sioConfig(data[:SALT_SIZE])

	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer

	_, err = sio.Decrypt(&buf, bytes.NewReader(data[SALT_SIZE:]), cfg)

	if err != nil {
		return nil, fmt.Errorf("%w: Can't open sealed data: %w", datakit.ErrCrypto, err)
	}

	return buf.Bytes(), nil
}

// ReadFile reads and opens sealed file
func (s *Secret) ReadFile(path string) ([]byte, error) {
	err := s.Validate()

	if err != nil {
		return nil, err
	}

	data, err := fsutil.ReadFile(path)

	if err != nil {
		return nil, err
	}

	return s.Open(data)
}

// WriteFile seals data and writes it to the named file
func (s *Secret) WriteFile(path string, data []byte) error {
	sealed, err := s.Seal(data)

	if err != nil {
		return err
	}

	return fsutil.WriteFile(path, sealed)
}

// ////////////////////////////////////////////////////////////////////////////////// //

// String returns full checksum as string
func (c Checksum) String() string {
	if len(c) != 32 {
		return ""
	}

	return fmt.Sprintf("%064x", []byte(c))
}

// Short returns short checksum (first 7 symbols)
func (c Checksum) Short() string {
	if len(c) != 32 {
		return ""
	}

	return c.String()[:7]
}

// ////////////////////////////////////////////////////////////////////////////////// //

// canAdd checks if secret can accept more data
func (s *Secret) canAdd(value string, emptyErr error) bool {
	switch {
	case s == nil, s.err != nil:
		return false
	case value == "":
		s.err = emptyErr
		return false
	}

	return true
}

// orNil returns secret or secret with error if secret is nil
func (s *Secret) orNil() *Secret {
	if s == nil {
		return &Secret{err: ErrNilSecret}
	}

	return s
}

// append appends data to secret material and wipes the source
func (s *Secret) append(data []byte) {
	s.data = append(s.data, data...)
	clear(data)
}

// sioConfig derives key and returns configuration for SIO
func (s *Secret) sioConfig(salt []byte) (sio.Config, error) {
	key, err := scrypt.Key(s.data, salt, scryptN, scryptR, scryptP, 32)

	if err != nil {
		return sio.Config{}, fmt.Errorf("%w: Can't derive key: %w", datakit.ErrCrypto, err)
	}

	return sio.Config{
		Key:          key,
		CipherSuites: []byte{sio.CHACHA20_POLY1305},
	}, nil
}
