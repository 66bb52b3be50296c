package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/wspackager/cmd/wspackager"
	"github.com/arthur-debert/wspackager/internal/version"
)

// Writes wspackager(1) to stdout, or one page per command into the
// directory given as the first argument.
func main() {
	rootCmd := wspackager.NewRootCmd()
	rootCmd.DisableAutoGenTag = true

	header := &doc.GenManHeader{
		Title:   "WSPACKAGER",
		Section: "1",
		Source:  "wspackager " + version.Resolved(),
		Manual:  "wspackager manual",
	}

	var err error
	if len(os.Args) > 1 {
		dir := os.Args[1]
		if err = os.MkdirAll(dir, 0755); err == nil {
			err = doc.GenManTree(rootCmd, header, dir)
		}
	} else {
		err = doc.GenMan(rootCmd, header, os.Stdout)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
