// Package main is the entry point for the univariate binary.
package main

import (
	"os"

	"univariate/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
