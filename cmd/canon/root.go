package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var v = viper.New()

var rootCmd = &cobra.Command{
	Use:   "canon",
	Short: "Compute a graph's canonical labeling and automorphism group",
	Long: `canon builds or loads a graph and runs equitable partition
refinement plus backtracking search to compute its canonical labeling,
automorphism group, orbit partition, and minimum cell representatives.`,
	RunE: runCanon,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringP("topology", "t", "", "named topology to build: complete|cycle|path|star|random-sparse|random-regular")
	flags.Int("n", 0, "vertex count (required with --topology)")
	flags.Float64("p", 0.5, "edge probability (random-sparse only)")
	flags.Int("d", 0, "regular degree (random-regular only)")
	flags.Int64P("seed", "s", 0, "RNG seed for random-sparse/random-regular (0 = fixed default seed)")
	flags.StringP("input", "i", "", "path to an adjacency matrix file (alternative to --topology)")
	flags.StringP("output", "o", "", "path to write the canonically relabeled adjacency matrix (optional)")
	flags.BoolP("verbose", "v", false, "log each new best label and automorphism as it is found")

	for _, name := range []string{"topology", "n", "p", "d", "seed", "input", "output", "verbose"} {
		if err := v.BindPFlag(name, flags.Lookup(name)); err != nil {
			log.Fatalf("canon: bind flag %s: %v", name, err)
		}
	}
	v.SetEnvPrefix("canon")
	v.AutomaticEnv()
}

// Execute runs the root command, exiting nonzero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
