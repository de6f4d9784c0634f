package cli

import (
	"github.com/spf13/cobra"

	"github.com/asad/ReactionDecoder-sub000/config"
)

func newDefaultsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Print the default thresholds as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.Default().Encode(cmd.OutOrStdout())
		},
	}
}
