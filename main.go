// main package for fixturegen command-line tool
// Package main is the entry point for the fixturegen CLI.
package main

import "github.com/diffscope/fixturegen/cmd"

func main() {
	cmd.Execute()
}
