// Package main is the entry point for the res2cpp CLI.
package main

import "res2cpp.dev/pkg/res2cpp/cmd"

func main() {
	cmd.Execute()
}
