package seal

// ////////////////////////////////////////////////////////////////////////////////// //
//                                                                                    //
//                         Copyright (c) 2025 ESSENTIAL KAOS                          //
//      Apache License, Version 2.0 <https://www.apache.org/licenses/LICENSE-2.0>     //
//                                                                                    //
// ////////////////////////////////////////////////////////////////////////////////// //

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/essentialkaos/datakit"

	. "github.com/essentialkaos/check"
)

// ////////////////////////////////////////////////////////////////////////////////// //

func Test(t *testing.T) { TestingT(t) }

type SealSuite struct{}

// ////////////////////////////////////////////////////////////////////////////////// //

var _ = Suite(&SealSuite{})

// ////////////////////////////////////////////////////////////////////////////////// //

func (s *SealSuite) TestSecretBuild(c *C) {
	os.Setenv("DATAKIT_TEST_KEY", "[ENV]")

	tempFile := c.MkDir() + "/file.tmp"
	err := os.WriteFile(tempFile, []byte("TESTdata1234"), 0644)
	c.Assert(err, IsNil)

	sk := NewSecret("ABCD")
	c.Assert(sk, NotNil)
	c.Assert(sk.Validate(), IsNil)
	c.Assert(sk.data, DeepEquals, []byte("ABCD"))

	sk.Add("[STATIC]").AddHex("5b4845585d").AddBase64("W0JBU0Vd")
	c.Assert(string(sk.data), Equals, "ABCD[STATIC][HEX][BASE]")

	sk.AddEnv("DATAKIT_TEST_KEY")
	c.Assert(string(sk.data), Equals, "ABCD[STATIC][HEX][BASE][ENV]")
	c.Assert(os.Getenv("DATAKIT_TEST_KEY"), Equals, "")

	sk.AddFile(tempFile)
	c.Assert(sk.data, HasLen, 28+64)
	c.Assert(sk.Validate(), IsNil)

	c.Assert(sk.Checksum().String(), HasLen, 64)
	c.Assert(sk.Checksum().Short(), HasLen, 7)
	c.Assert(sk.String(), Equals, "seal.Secret{"+sk.Checksum().Short()+"}")
}

func (s *SealSuite) TestSecretErrors(c *C) {
	var skn *Secret

	c.Assert(NewSecret("").Validate(), Equals, ErrEmptySecretData)

	ske := &Secret{err: fmt.Errorf("TEST-ERROR")}

	c.Assert(NewSecret("!").Add("").Validate(), Equals, ErrEmptySecretData)
	c.Assert(skn.Add("test").Validate(), Equals, ErrNilSecret)
	c.Assert(ske.Add("test").Validate().Error(), Equals, "TEST-ERROR")

	c.Assert(NewSecret("!").AddHex("").Validate(), Equals, ErrEmptySecretData)
	c.Assert(skn.AddHex("test").Validate(), Equals, ErrNilSecret)
	c.Assert(ske.AddHex("test").Validate().Error(), Equals, "TEST-ERROR")
	c.Assert(NewSecret("!").AddHex("%!$%").Validate().Error(), Equals, "encoding/hex: invalid byte: U+0025 '%'")

	c.Assert(NewSecret("!").AddBase64("").Validate(), Equals, ErrEmptySecretData)
	c.Assert(skn.AddBase64("test").Validate(), Equals, ErrNilSecret)
	c.Assert(ske.AddBase64("test").Validate().Error(), Equals, "TEST-ERROR")
	c.Assert(errors.Is(NewSecret("!").AddBase64("%!$%").Validate(), datakit.ErrDecode), Equals, true)

	c.Assert(NewSecret("!").AddEnv("").Validate(), Equals, ErrEmptyEnvVarName)
	c.Assert(NewSecret("!").AddEnv("DATAKIT_UNKNOWN_VAR").Validate(), Equals, ErrEmptyEnvVar)
	c.Assert(skn.AddEnv("test").Validate(), Equals, ErrNilSecret)
	c.Assert(ske.AddEnv("test").Validate().Error(), Equals, "TEST-ERROR")

	c.Assert(NewSecret("!").AddFile("").Validate(), Equals, ErrEmptySecretPath)
	c.Assert(skn.AddFile("test").Validate(), Equals, ErrNilSecret)
	c.Assert(ske.AddFile("test").Validate().Error(), Equals, "TEST-ERROR")
	c.Assert(errors.Is(NewSecret("!").AddFile("/_unknown_").Validate(), datakit.ErrNotFound), Equals, true)

	c.Assert(skn.Validate(), Equals, ErrNilSecret)
	c.Assert(skn.Checksum(), IsNil)
	c.Assert(skn.String(), Equals, "seal.Secret{}")

	skm := &Secret{}
	c.Assert(skm.Validate(), Equals, ErrEmptySecretData)
}

func (s *SealSuite) TestSealOpen(c *C) {
	sk := NewSecret("Test1234")

	for _, data := range [][]byte{
		[]byte("TEST-DATA-1234"),
		{0x00, 0xFF, 0x10},
	} {
		sealed, err := sk.Seal(data)
		c.Assert(err, IsNil)
		c.Assert(len(sealed) > SALT_SIZE, Equals, true)

		opened, err := sk.Open(sealed)
		c.Assert(err, IsNil)
		c.Assert(opened, HasLen, len(data))
		c.Assert(string(opened), Equals, string(data))
	}

	sealed1, _ := sk.Seal([]byte("SAME"))
	sealed2, _ := sk.Seal([]byte("SAME"))
	c.Assert(sealed1, Not(DeepEquals), sealed2)
}

func (s *SealSuite) TestOpenErrors(c *C) {
	var skn *Secret

	_, err := skn.Seal([]byte("TEST"))
	c.Assert(err, Equals, ErrNilSecret)
	_, err = skn.Open([]byte("TEST"))
	c.Assert(err, Equals, ErrNilSecret)

	sk := NewSecret("Test1234")

	_, err = sk.Open([]byte("SHORT"))
	c.Assert(errors.Is(err, datakit.ErrCrypto), Equals, true)
	c.Assert(errors.Is(err, ErrShortData), Equals, true)

	sealed, err := sk.Seal([]byte("TEST-DATA"))
	c.Assert(err, IsNil)

	_, err = NewSecret("Wrong1234").Open(sealed)
	c.Assert(errors.Is(err, datakit.ErrCrypto), Equals, true)

	sealed[len(sealed)-1] ^= 0xFF

	_, err = sk.Open(sealed)
	c.Assert(errors.Is(err, datakit.ErrCrypto), Equals, true)
}

func (s *SealSuite) TestFiles(c *C) {
	var skn *Secret

	_, err := skn.ReadFile("/test")
	c.Assert(err, Equals, ErrNilSecret)
	c.Assert(skn.WriteFile("/test", nil), Equals, ErrNilSecret)

	sk := NewSecret("Test1234")
	file := c.MkDir() + "/file.bin"

	c.Assert(sk.WriteFile(file, []byte("TEST-DATA-1234-2")), IsNil)

	raw, err := os.ReadFile(file)
	c.Assert(err, IsNil)
	c.Assert(string(raw), Not(Equals), "TEST-DATA-1234-2")

	data, err := sk.ReadFile(file)
	c.Assert(err, IsNil)
	c.Assert(string(data), Equals, "TEST-DATA-1234-2")

	_, err = sk.ReadFile(file + ".unknown")
	c.Assert(errors.Is(err, datakit.ErrNotFound), Equals, true)

	err = sk.WriteFile(c.MkDir()+"/unknown/file.bin", []byte("TEST"))
	c.Assert(errors.Is(err, datakit.ErrIO), Equals, true)
}
