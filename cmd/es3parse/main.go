package main

import (
	"fmt"
	"os"

	"github.com/t14raptor/es3parse/cmd/es3parse/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
