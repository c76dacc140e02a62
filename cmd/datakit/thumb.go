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

	"github.com/essentialkaos/datakit/fsutil"
	"github.com/essentialkaos/datakit/thumb"
)

// ////////////////////////////////////////////////////////////////////////////////// //

// thumbCmd creates thumbnail or compressed copy of image
func (a *app) thumbCmd() *cobra.Command {
	var target, maxBytes int
	var compress bool

	cmd := &cobra.Command{
		Use:   "thumb <input> <output>",
		Short: "Create JPEG thumbnail or compressed copy of image",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if target <= 0 {
				return fmt.Errorf("--target must be greater than 0")
			}

			src, err := fsutil.ReadFile(args[0])

			if err != nil {
				return err
			}

			img, err := thumb.Decode(src)

			if err != nil {
				return err
			}

			var data []byte

			switch {
			case maxBytes > 0:
				data, err = thumb.CompressToSize(img, target, maxBytes)
			case compress:
				data, err = thumb.Compress(img, target)
			default:
				data, err = thumb.Thumbnail(img, target)
			}

			if err != nil {
				return err
			}

			a.log.Debug().
				Str("input", args[0]).
				Int("target", target).
				Int("size", len(data)).
				Msg("Image processed")

			return fsutil.WriteFile(args[1], data)
		},
	}

	cmd.Flags().IntVar(&target, "target", 0, "Maximum length of the longest edge in pixels (required)")
	cmd.Flags().BoolVar(&compress, "compress", false, "Use compression quality instead of thumbnail quality")
	cmd.Flags().IntVar(&maxBytes, "max-bytes", 0, "Lower quality until result fits given size")
	cmd.MarkFlagRequired("target")

	return cmd
}
