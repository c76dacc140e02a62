package main

// ////////////////////////////////////////////////////////////////////////////////// //
//                                                                                    //
//                         Copyright (c) 2025 ESSENTIAL KAOS                          //
//      Apache License, Version 2.0 <https://www.apache.org/licenses/LICENSE-2.0>     //
//                                                                                    //
// ////////////////////////////////////////////////////////////////////////////////// //

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/essentialkaos/datakit/b64"
)

// ////////////////////////////////////////////////////////////////////////////////// //

// b64Cmd is Base64 encoding command group
func (a *app) b64Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "b64",
		Short: "Encode and decode Base64 data",
	}

	cmd.AddCommand(a.b64EncodeCmd())
	cmd.AddCommand(a.b64DecodeCmd())

	return cmd
}

// b64EncodeCmd encodes input to Base64
func (a *app) b64EncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode [file]",
		Short: "Encode data to Base64",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)

			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), b64.Encode(data))

			return nil
		},
	}
}

// b64DecodeCmd decodes Base64 input
func (a *app) b64DecodeCmd() *cobra.Command {
	var text bool

	cmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "Decode Base64 data",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readTextInput(cmd, args)

			if err != nil {
				return err
			}

			if text {
				str, err := b64.DecodeText(input)

				if err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), str)

				return nil
			}

			data, err := b64.Decode(input)

			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}

	cmd.Flags().BoolVar(&text, "text", false, "Require decoded data to be UTF-8 text")

	return cmd
}
