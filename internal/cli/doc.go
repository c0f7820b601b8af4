// Package cli implements the command-line interface for hoopscore.
//
// The cli package provides the Cobra-based CLI with commands for listing a team's recent
// games, showing a box score with fantasy scores, scoring arbitrary stat lines and an
// interactive browse mode that pairs a game list with a box score detail view. Output is
// either go-pretty text tables or indented JSON.
package cli
