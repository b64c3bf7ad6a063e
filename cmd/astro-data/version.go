package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/York-Lucis/astro-data/internal/constants"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("astro-data %s\n", constants.Version)
		},
	}
}
