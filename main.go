// Package main is the entry point for the pokerhud CLI tool, which parses
// poker hand histories and computes per-player HUD statistics.
package main

import "github.com/pable/go-poker-hud/cmd"

func main() {
	cmd.Execute()
}
