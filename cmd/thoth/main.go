package main

import (
	"fmt"
	"os"

	"github.com/thoth-note/thoth/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "thoth:", err)
		os.Exit(1)
	}
}
