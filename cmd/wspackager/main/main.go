package main

import (
	"os"

	"github.com/arthur-debert/wspackager/cmd/wspackager"
	"github.com/arthur-debert/wspackager/pkg/style"
)

func main() {
	rootCmd := wspackager.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		style.Error(os.Stderr, err)
		os.Exit(1)
	}
}
