// Package main provides the CLI entrypoint for enum-generator.
//
// enum-generator is a go:generate companion that:
//   - Parses Go packages (AST + go/types) to find //enum: annotated types
//   - Validates the naming schema declared in the directives
//   - Resolves display names per variant and format key
//   - Generates name accessors, tag predicates and variant enumerators
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
