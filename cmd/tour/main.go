// Package main provides the tour CLI, a guided tour of the Go language.
package main

import (
	"os"

	"github.com/leapstack-labs/tour/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
