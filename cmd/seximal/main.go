// Command seximal reads, writes, converts and computes with base-6 numerals.
package main

import (
	"os"

	"github.com/shabbyrobe/go-seximal/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
