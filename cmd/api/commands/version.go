package commands

import (
	"github.com/spf13/cobra"

	"github.com/port-russell/marina-api/version"
)

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			if jsonOutput {
				out, err := version.GetVersionInfo().JSON()
				if err != nil {
					return err
				}
				cmd.Println(out)
				return nil
			}
			version.Print()
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	return cmd
}
