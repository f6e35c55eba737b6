package main

import "github.com/landbridge/michrazim/internal/cli"

func main() {
	cli.Execute()
}
