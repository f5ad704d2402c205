package main

import (
	"fmt"
	"os"

	"github.com/port-russell/marina-api/cmd/api/commands"
)

func main() {
	rootCmd := commands.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
