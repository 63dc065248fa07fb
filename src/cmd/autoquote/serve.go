package main

import (
	"github.com/spf13/cobra"

	"autoquote/src/cmd/autoquote/servecmd"
)

// newServeCmd creates the "serve" command running the web front end.
func newServeCmd() *cobra.Command { return servecmd.New() }
