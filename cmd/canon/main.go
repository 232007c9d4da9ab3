// Command canon computes the canonical labeling and automorphism group of
// a graph, either built from a named topology or read from an adjacency
// matrix file, and prints the result.
package main

func main() {
	Execute()
}
