package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	var root = &cobra.Command{
		Use:   "receptbanken",
		Short: "Flat-file recipe content service",
	}

	root.AddCommand(serveCMD(), checkCMD(), indexCMD())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
