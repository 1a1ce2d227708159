// ripesum prints RIPEMD-160 (or Hash160) digests of its arguments.
//
//	ripesum "Hello world!"
//	ripesum --hex 616263
//	ripesum --hash160 "message"
//
// Arguments are hashed as given; the tool deliberately does not read files
// or stdin.
package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/consensys/ripemd160"
	"github.com/consensys/ripemd160/debug"
	"github.com/consensys/ripemd160/hash160"
	"github.com/consensys/ripemd160/logger"
	"github.com/spf13/cobra"
)

var (
	fHex     bool
	fHash160 bool
)

var rootCmd = &cobra.Command{
	Use:     "ripesum [flags] message [message...]",
	Short:   "print RIPEMD-160 digests of the given messages",
	Version: ripemd160.Version.String(),
	Args:    cobra.MinimumNArgs(1),
	RunE:    run,

	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.Flags().BoolVar(&fHex, "hex", false, "decode each message as a hex string before hashing")
	rootCmd.Flags().BoolVar(&fHash160, "hash160", false, "compute RIPEMD160(SHA256(message)) instead")
}

func run(_ *cobra.Command, args []string) error {
	for _, arg := range args {
		msg := []byte(arg)
		if fHex {
			var err error
			if msg, err = hex.DecodeString(arg); err != nil {
				return fmt.Errorf("decoding %q: %w", arg, err)
			}
		}
		var sum [ripemd160.Size]byte
		if fHash160 {
			sum = hash160.Sum(msg)
		} else {
			sum = ripemd160.Sum160(msg)
		}
		fmt.Printf("%x  %s\n", sum, arg)
	}
	return nil
}

func main() {
	log := logger.Logger()
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("recovered", r).Str("stack", debug.Stack()).Msg("ripesum panicked")
			os.Exit(1)
		}
	}()
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("ripesum")
		os.Exit(1)
	}
}
