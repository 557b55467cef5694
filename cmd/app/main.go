package main

import (
	"os"

	"github.com/Rjayskie12/hazards-sub000/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
