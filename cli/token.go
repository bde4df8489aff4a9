package cli

import (
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/config"
	"github.com/beka-birhanu/vinom-pathfinder/infrastruture/token"
	"github.com/spf13/cobra"
)

func newTokenCommand() *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for the protected API routes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tokenizer, err := token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
			if err != nil {
				return withStatus(ExitFailure, err)
			}

			signed, err := tokenizer.Generate(map[string]interface{}{"sub": subject}, ttl)
			if err != nil {
				return withStatus(ExitFailure, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), signed)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "pathfinder-client", "token subject")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	return cmd
}
