// Package main is the entry point for the mkm CLI.
package main

import (
	"github.com/donaldgifford/mkm/cmd/mkm/cmd"
)

func main() {
	cmd.Execute()
}
