// Command manchu-morph is the CLI driver for the morphological analyzer:
// one subcommand prints the best-path JSON for a sentence, another prints
// the full segmentation lattice.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	manchu "github.com/sj-h4/manchu-morph"
)

var (
	dataDir string
	verbose bool
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "manchu-morph",
		Short: "Morphological analysis for romanized Manchu",
	}
	root.PersistentFlags().StringVar(&dataDir, "data", "data", "path to the resource data directory")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log resource-loading and analysis debug events")
	root.AddCommand(newAnalyzeCmd(), newLatticeCmd())
	return root
}

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).With().Timestamp().Logger()
}

func newAnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <sentence>",
		Short: "Print the minimum-cost morpheme sequence for a sentence as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lat, err := buildLattice(args[0])
			if err != nil {
				return err
			}
			lat.ComputeBestPath()
			out, err := lat.ToBestPathJSON()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newLatticeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lattice <sentence>",
		Short: "Print the full segmentation lattice for a sentence as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lat, err := buildLattice(args[0])
			if err != nil {
				return err
			}
			lat.ComputeBestPath()
			out, err := lat.ToJSON()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func buildLattice(sentence string) (*manchu.Lattice, error) {
	an, err := manchu.New(dataDir, manchu.WithLogger(newLogger()))
	if err != nil {
		return nil, fmt.Errorf("loading resources from %s: %w", dataDir, err)
	}
	return an.FromSentence(sentence), nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
