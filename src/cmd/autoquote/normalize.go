package main

import (
	"github.com/spf13/cobra"

	"autoquote/src/cmd/autoquote/normalizecmd"
)

// newNormalizeCmd creates the "normalize" command converting raw citation
// strings into GB/T 7714 references.
func newNormalizeCmd() *cobra.Command { return normalizecmd.New() }
