package main

import (
	"talentlab/internal/cli"
)

func main() {
	cli.Execute()
}
