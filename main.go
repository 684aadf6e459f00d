package main

import "github.com/R167/pysmoke/internal/cli"

func main() {
	cli.Execute()
}
