package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/alx/cmd/alx"
	"github.com/arthur-debert/alx/pkg/style"
)

func main() {
	rootCmd := alx.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.FormatError(err))
		os.Exit(1)
	}
}
