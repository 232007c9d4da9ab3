package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/DireMonarch/graph-canonical-relabel/builder"
	"github.com/DireMonarch/graph-canonical-relabel/canon"
	"github.com/DireMonarch/graph-canonical-relabel/core"
	"github.com/DireMonarch/graph-canonical-relabel/graphio"
)

var errNoGraphSource = errors.New("canon: exactly one of --topology or --input must be given")

func runCanon(cmd *cobra.Command, args []string) error {
	g, err := loadGraph()
	if err != nil {
		return err
	}

	var opts []canon.Option
	if v.GetBool("verbose") {
		opts = append(opts,
			canon.WithOnNewCL(func(cl []int) {
				log.Printf("new best label: %v", cl)
			}),
			canon.WithOnNewAutomorphism(func(aut []int) {
				log.Printf("new automorphism: %v", aut)
			}),
		)
	}

	result, err := canon.Run(g, opts...)
	if err != nil {
		return fmt.Errorf("canon: %w", err)
	}

	printResult(cmd, g, result)

	if out := v.GetString("output"); out != "" {
		if err := writeCanonicalForm(out, g, result); err != nil {
			return err
		}
	}

	return nil
}

// loadGraph builds a graph from --topology or reads one from --input,
// per root.go's flag binding. Exactly one source must be given.
func loadGraph() (*core.Graph, error) {
	topology := v.GetString("topology")
	input := v.GetString("input")

	switch {
	case topology != "" && input != "":
		return nil, errNoGraphSource
	case topology != "":
		return buildTopology(topology)
	case input != "":
		f, err := os.Open(input)
		if err != nil {
			return nil, fmt.Errorf("canon: open %s: %w", input, err)
		}
		defer f.Close()

		g, err := graphio.ReadAdjacencyMatrix(f)
		if err != nil {
			return nil, fmt.Errorf("canon: read %s: %w", input, err)
		}
		return g, nil
	default:
		return nil, errNoGraphSource
	}
}

func buildTopology(name string) (*core.Graph, error) {
	n := v.GetInt("n")
	seed := v.GetInt64("seed")

	var seedOpts []builder.BuilderOption
	if seed != 0 {
		seedOpts = append(seedOpts, builder.WithSeed(seed))
	}

	switch name {
	case "complete":
		return builder.Complete(n)
	case "cycle":
		return builder.Cycle(n)
	case "path":
		return builder.Path(n)
	case "star":
		return builder.Star(n)
	case "random-sparse":
		return builder.RandomSparse(n, v.GetFloat64("p"), seedOpts...)
	case "random-regular":
		return builder.RandomRegular(n, v.GetInt("d"), seedOpts...)
	default:
		return nil, fmt.Errorf("canon: unknown topology %q", name)
	}
}

func printResult(cmd *cobra.Command, g *core.Graph, result *canon.Result) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "n:               %d\n", g.N())
	fmt.Fprintf(out, "nodes_processed: %d\n", result.NodesProcessed)
	fmt.Fprintf(out, "cl:              %v\n", result.CL.Lab)
	fmt.Fprintf(out, "theta:           %v\n", result.Theta.Lab)
	fmt.Fprintf(out, "mcr:             %v\n", result.MCR)
	fmt.Fprintf(out, "automorphisms:   %d\n", len(result.AutoGroup))
	for i, aut := range result.AutoGroup {
		fmt.Fprintf(out, "  generator[%d]:  %v\n", i, aut.Lab)
	}
}

func writeCanonicalForm(path string, g *core.Graph, result *canon.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("canon: create %s: %w", path, err)
	}
	defer f.Close()

	relabeled, err := core.NewGraph(g.N())
	if err != nil {
		return fmt.Errorf("canon: %w", err)
	}
	for u := 0; u < g.N(); u++ {
		for w := u + 1; w < g.N(); w++ {
			if g.Adjacent(u, w) {
				if err := relabeled.AddEdge(result.CL.Lab[u], result.CL.Lab[w]); err != nil {
					return fmt.Errorf("canon: %w", err)
				}
			}
		}
	}

	if err := graphio.WriteAdjacencyMatrix(f, relabeled); err != nil {
		return fmt.Errorf("canon: write %s: %w", path, err)
	}

	return nil
}
