package main

// ////////////////////////////////////////////////////////////////////////////////// //
//                                                                                    //
//                         Copyright (c) 2025 ESSENTIAL KAOS                          //
//      Apache License, Version 2.0 <https://www.apache.org/licenses/LICENSE-2.0>     //
//                                                                                    //
// ////////////////////////////////////////////////////////////////////////////////// //

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/essentialkaos/datakit/aescbc"
	"github.com/essentialkaos/datakit/b64"
)

// ////////////////////////////////////////////////////////////////////////////////// //

// decryptCmd decrypts AES-256-CBC ciphertext
func (a *app) decryptCmd() *cobra.Command {
	var keyHex, ivHex string
	var text, base64 bool

	cmd := &cobra.Command{
		Use:   "decrypt [file]",
		Short: "Decrypt AES-256-CBC data",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := hex.DecodeString(keyHex)

			if err != nil {
				return fmt.Errorf("Can't decode key: %w", err)
			}

			iv, err := hex.DecodeString(ivHex)

			if err != nil {
				return fmt.Errorf("Can't decode IV: %w", err)
			}

			var ciphertext []byte

			if base64 {
				input, err := readTextInput(cmd, args)

				if err != nil {
					return err
				}

				ciphertext, err = b64.Decode(input)

				if err != nil {
					return err
				}
			} else {
				ciphertext, err = readInput(cmd, args)

				if err != nil {
					return err
				}
			}

			if text {
				str, err := aescbc.DecryptString(ciphertext, key, iv)

				if err != nil {
					a.log.Debug().Err(err).Msg("Decryption failed")
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), str)

				return nil
			}

			data, err := aescbc.Decrypt(ciphertext, key, iv)

			if err != nil {
				a.log.Debug().Err(err).Msg("Decryption failed")
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}

	cmd.Flags().StringVar(&keyHex, "key", "", "Hex-encoded 256-bit key (required)")
	cmd.Flags().StringVar(&ivHex, "iv", "", "Hex-encoded 128-bit IV (required)")
	cmd.Flags().BoolVar(&text, "text", false, "Require plaintext to be UTF-8 text")
	cmd.Flags().BoolVar(&base64, "base64", false, "Input is Base64-encoded")
	cmd.MarkFlagRequired("key")
	cmd.MarkFlagRequired("iv")

	return cmd
}
