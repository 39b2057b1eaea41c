package main

import (
	"os"

	"github.com/lazycommit/cli/cmd"
	"github.com/lazycommit/cli/internal/errs"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errs.ExitCode(err))
	}
}
