package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/learnkeep/learnkeep/cmd/service"
)

func main() {
	root := &cobra.Command{
		Use:   "learnkeep",
		Short: "learnkeep",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("empty command")
		},
	}

	root.AddCommand(service.NewCommand(), service.NewInstallCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
