package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "autoquote",
	Short: "Normalize citation strings to GB/T 7714-2015",
}

func execute() error {
	rootCmd.AddCommand(newDemoCmd())
	rootCmd.AddCommand(newNormalizeCmd())
	rootCmd.AddCommand(newBibitemCmd())
	rootCmd.AddCommand(newServeCmd())
	return rootCmd.Execute()
}

func main() {
	if err := execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
