// Package main is datakit command-line tool
package main

// ////////////////////////////////////////////////////////////////////////////////// //
//                                                                                    //
//                         Copyright (c) 2025 ESSENTIAL KAOS                          //
//      Apache License, Version 2.0 <https://www.apache.org/licenses/LICENSE-2.0>     //
//                                                                                    //
// ////////////////////////////////////////////////////////////////////////////////// //

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/essentialkaos/datakit/fsutil"
	"github.com/essentialkaos/datakit/internal/config"
	"github.com/essentialkaos/datakit/internal/logger"
)

// ////////////////////////////////////////////////////////////////////////////////// //

const (
	APP  = "datakit"
	VER  = "1.0.0"
	DESC = "Tool for encoding, decrypting and caching media blobs"
)

// ////////////////////////////////////////////////////////////////////////////////// //

// app contains state shared by all commands
type app struct {
	envFile string
	cfg     *config.Config
	log     zerolog.Logger
}

// ////////////////////////////////////////////////////////////////////////////////// //

func main() {
	err := newRootCmd().Execute()

	if err != nil {
		os.Exit(1)
	}
}

// newRootCmd creates root command with all subcommands
func newRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop()}

	rootCmd := &cobra.Command{
		Use:          APP,
		Short:        DESC,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.envFile)

			if err != nil {
				return err
			}

			a.cfg = cfg
			a.log = logger.New(cmd.ErrOrStderr(), cfg.Debug)

			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "Path to env file")

	rootCmd.AddCommand(a.b64Cmd())
	rootCmd.AddCommand(a.decryptCmd())
	rootCmd.AddCommand(a.thumbCmd())
	rootCmd.AddCommand(a.mediaCmd())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

// versionCmd prints version info
func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", APP, VER)
		},
	}
}

// ////////////////////////////////////////////////////////////////////////////////// //

// readInput reads data from file given as the first argument or from stdin
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) != 0 && args[0] != "-" {
		return fsutil.ReadFile(args[0])
	}

	return io.ReadAll(cmd.InOrStdin())
}

// readTextInput reads input and trims surrounding whitespace
func readTextInput(cmd *cobra.Command, args []string) (string, error) {
	data, err := readInput(cmd, args)

	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(data)), nil
}
