package main

import (
	"fmt"
	"os"

	"github.com/zeebo/sha2/internal/cli"
)

func main() {
	if err := cli.NewCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "sha2sum:", err)
		os.Exit(1)
	}
}
