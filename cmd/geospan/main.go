// Command geospan connects a set of cities with a minimum spanning network.
//
// Usage:
//
//	geospan solve  [-config geospan.toml] [-start n] [-workers n] [-metric haversine|euclidean] < cities.json > result.json
//	geospan verify < result.json
//
// solve reads a JSON array of cities on stdin and writes the serialized
// result (tree edges, total weight and distance matrix) on stdout.
// verify reads a serialized result on stdin and exits 0 if it is a minimum
// spanning tree of its matrix, 1 otherwise.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
)

// Exit statuses.
const (
	exitOK       = 0
	exitFailure  = 1
	exitBadUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run dispatches a subcommand and returns the process exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return exitBadUsage
	}

	switch args[0] {
	case "solve":
		return runSolve(args[1:], stdin, stdout, stderr)
	case "verify":
		return runVerify(args[1:], stdin, stderr)
	case "-h", "-help", "--help", "help":
		usage(stdout)
		return exitOK
	default:
		fmt.Fprintf(stderr, "geospan: unknown command %q\n", args[0])
		usage(stderr)
		return exitBadUsage
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: geospan solve [-config path] [-start n] [-workers n] [-metric name] < cities.json")
	fmt.Fprintln(w, "       geospan verify [-config path] < result.json")
}

// commonFlags registers the flags shared by every subcommand.
func commonFlags(name string, stderr io.Writer) (*flag.FlagSet, *string) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "Path to TOML configuration file")

	return fs, configPath
}
