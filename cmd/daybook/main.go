// Package main is the entry point for the daybook CLI.
package main

import (
	"daybook/internal/cli"
)

func main() {
	cli.Execute()
}
