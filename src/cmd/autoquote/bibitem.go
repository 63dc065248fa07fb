package main

import (
	"github.com/spf13/cobra"

	"autoquote/src/cmd/autoquote/bibitemcmd"
)

// newBibitemCmd creates the "bibitem" command emitting a LaTeX \bibitem block.
func newBibitemCmd() *cobra.Command { return bibitemcmd.New() }
