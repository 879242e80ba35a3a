// Command fmcheck reports the accuracy of the fastmath approximations.
//
// Usage:
//
//	fmcheck [flags] [function-name ...]
//
// Without arguments it checks every function over its documented interval
// and prints the boundary values the approximations are expected to hit.
//
// Examples:
//
//	fmcheck
//	fmcheck exp log
//	fmcheck -n 100000 -approx sin cos
//	fmcheck -bench
//	fmcheck -bits 1 -0 0.1 -2.5
//	fmcheck -spur
//	fmcheck -cpu
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

func main() {
	n := flag.Int("n", 1<<20, "number of sample points per function")
	withApprox := flag.Bool("approx", false, "add a column comparing against algo-approx where it has a counterpart")
	bench := flag.Bool("bench", false, "time the block functions over shuffled inputs")
	benchSize := flag.Int("bench-size", 1<<16, "block length for -bench")
	bits := flag.Bool("bits", false, "treat arguments as numbers and print their float32 bit layout")
	spur := flag.Bool("spur", false, "measure spectral purity of sin and cos")
	list := flag.Bool("list", false, "list available function names")
	showCPU := flag.Bool("cpu", false, "print detected CPU features and the active block implementation")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: fmcheck [flags] [function-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Reports error statistics of the fastmath approximations against package math.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, checks every function.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  fmcheck exp log\n")
		fmt.Fprintf(os.Stderr, "  fmcheck -approx\n")
		fmt.Fprintf(os.Stderr, "  fmcheck -bench sin cos\n")
		fmt.Fprintf(os.Stderr, "  fmcheck -bits 1 -0 0.1\n")
		fmt.Fprintf(os.Stderr, "  fmcheck -list\n")
	}
	flag.Parse()

	switch {
	case *list:
		printList()
		return
	case *bits:
		values, err := parseValues(flag.Args())
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		if err := printBits(os.Stdout, values); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	case *showCPU:
		if err := printCPU(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	case *spur:
		if err := printSpur(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	names := flag.Args()
	if len(names) == 0 {
		for _, e := range functions {
			names = append(names, e.name)
		}
	}

	entries := resolveEntries(names)
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching functions\n")
		os.Exit(1)
	}

	if *bench {
		if err := printBench(os.Stdout, entries, *benchSize); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := printAccuracy(os.Stdout, entries, *n, *withApprox); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println()
	if err := printBoundaries(os.Stdout, entries); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printList() {
	names := make([]string, len(functions))
	for i, e := range functions {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

func resolveEntries(names []string) []funcEntry {
	byName := make(map[string]funcEntry, len(functions))
	for _, e := range functions {
		byName[e.name] = e
	}

	var result []funcEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown function %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, e)
	}
	return result
}

func parseValues(args []string) ([]float32, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("-bits needs at least one number")
	}
	values := make([]float32, 0, len(args))
	for _, a := range args {
		v, err := strconv.ParseFloat(strings.TrimSpace(a), 32)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", a, err)
		}
		values = append(values, float32(v))
	}
	return values, nil
}
