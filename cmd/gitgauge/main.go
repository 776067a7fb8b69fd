// main is the entry point for the gitgauge CLI.
package main

import "github.com/gitgauge/gitgauge/internal/cli"

func main() {
	cli.Execute()
}
