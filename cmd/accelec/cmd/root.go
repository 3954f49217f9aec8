// Package cmd wires the accelec front end into a cobra CLI, grounded on the
// rootCmd/init()-registered-flags shape of go-corset's pkg/cmd package (the
// teacher's own cmd/funxy drives everything off raw os.Args instead, so this
// layer is authored fresh against that other pack member rather than ported).
package cmd

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Version is filled when building via -ldflags, but not when installed with
// "go install".
var Version string

// rootCmd represents the base command when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "accelec",
	Short: "A front end for the accele language.",
	Long:  "Lexes, parses, and resolves accele source files (.accele / .acldef).",
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "version") {
			printVersion()
			return
		}
		cmd.Help()
	},
}

// Execute runs the root command. Called once from main.main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Print("accelec ")
	switch {
	case Version != "":
		fmt.Print(Version)
	default:
		if info, ok := debug.ReadBuildInfo(); ok {
			fmt.Print(info.Main.Version)
		} else {
			fmt.Print("(unknown version)")
		}
	}
	fmt.Println()
}

func init() {
	rootCmd.Flags().Bool("version", false, "report the version of this executable")
	rootCmd.AddCommand(buildCmd)
}
