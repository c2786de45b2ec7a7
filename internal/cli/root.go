// Package cli implements the geodesy command-line interface: read-only
// inspection of the built-in ellipsoid and datum catalog.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is the release version (set at build time).
var Version = "0.1.0"

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "geodesy",
		Short: "Reference ellipsoids, geodetic datums, and EPSG codes",
		Long: `geodesy inspects a built-in catalog of reference ellipsoids and geodetic
datums: defining parameters, derived shape values, Helmert parameters
toward WGS 84, and OGC URN identifiers.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(NewListCommand())
	rootCmd.AddCommand(NewShowCommand())
	rootCmd.AddCommand(NewVersionCommand(Version))

	return rootCmd
}

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "geodesy v%s\n", version)
		},
	}
}

// Execute runs the root command and reports any error on stderr.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
