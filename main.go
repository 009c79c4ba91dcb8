package main

import (
	"os"

	"github.com/pydojo/pydojo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
