package main

import "github.com/linesgame/linesim/internal/cli"

func main() {
	cli.Execute()
}
