package main

import (
	"github.com/spf13/cobra"

	"autoquote/src/cmd/autoquote/democmd"
)

// newDemoCmd creates the "demo" command printing built-in example references.
func newDemoCmd() *cobra.Command { return democmd.New() }
