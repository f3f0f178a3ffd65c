package main

import (
	"os"

	"github.com/dmitrymomot/inputkit/cmd/inputcheck/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
