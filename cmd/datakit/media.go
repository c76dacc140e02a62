package main

// ////////////////////////////////////////////////////////////////////////////////// //
//                                                                                    //
//                         Copyright (c) 2025 ESSENTIAL KAOS                          //
//      Apache License, Version 2.0 <https://www.apache.org/licenses/LICENSE-2.0>     //
//                                                                                    //
// ////////////////////////////////////////////////////////////////////////////////// //

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/essentialkaos/datakit/fsutil"
	"github.com/essentialkaos/datakit/media"
	"github.com/essentialkaos/datakit/seal"
)

// ////////////////////////////////////////////////////////////////////////////////// //

// mediaCmd is media store command group
func (a *app) mediaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "media",
		Short: "Read and write cached media blobs",
	}

	cmd.AddCommand(a.mediaGetCmd())
	cmd.AddCommand(a.mediaPutCmd())
	cmd.AddCommand(a.mediaPathCmd())

	return cmd
}

// mediaGetCmd reads blob from media store
func (a *app) mediaGetCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "get <audio|thumbnail|image> <date>",
		Short: "Read media blob",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, date, err := parseMediaArgs(args)

			if err != nil {
				return err
			}

			store, err := a.mediaStore()

			if err != nil {
				return err
			}

			data, err := store.Get(kind, date)

			if err != nil {
				return err
			}

			if output != "" {
				return fsutil.WriteFile(output, data)
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write blob to file instead of stdout")

	return cmd
}

// mediaPutCmd writes blob to media store
func (a *app) mediaPutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "put <audio|thumbnail|image> <date> [file]",
		Short: "Write media blob",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, date, err := parseMediaArgs(args)

			if err != nil {
				return err
			}

			data, err := readInput(cmd, args[2:])

			if err != nil {
				return err
			}

			store, err := a.mediaStore()

			if err != nil {
				return err
			}

			return store.Put(kind, date, data)
		},
	}
}

// mediaPathCmd prints path of media blob
func (a *app) mediaPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path <audio|thumbnail|image> <date>",
		Short: "Print path of media blob",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, date, err := parseMediaArgs(args)

			if err != nil {
				return err
			}

			store, err := a.mediaStore()

			if err != nil {
				return err
			}

			path, err := store.Path(kind, date)

			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), path)

			return nil
		},
	}
}

// ////////////////////////////////////////////////////////////////////////////////// //

// mediaStore creates media store from configuration
func (a *app) mediaStore() (*media.Store, error) {
	store := media.NewStore(a.cfg.MediaDir)
	store.Logger = &a.log

	if a.cfg.SealSecret != "" {
		secret := seal.NewSecret(a.cfg.SealSecret)
		err := secret.Validate()

		if err != nil {
			return nil, err
		}

		store.Secret = secret
		a.log.Debug().Stringer("secret", secret).Msg("Sealed media enabled")
	}

	return store, nil
}

// parseMediaArgs parses media kind and date
func parseMediaArgs(args []string) (media.Kind, int64, error) {
	kind, err := media.ParseKind(args[0])

	if err != nil {
		return 0, 0, err
	}

	date, err := strconv.ParseInt(args[1], 10, 64)

	if err != nil {
		return 0, 0, fmt.Errorf("Invalid date %q: %w", args[1], err)
	}

	return kind, date, nil
}
