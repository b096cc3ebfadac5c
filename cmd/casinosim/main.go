package main

import (
	"github.com/shoockrates/casinosim/internal/cli"
)

func main() {
	cli.Execute()
}
