package main

import "github.com/pfrederiksen/hoopscore/internal/cli"

func main() {
	cli.Execute()
}
