package cli

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/taskboard-backend/internal/auth"
	"github.com/heartmarshall/taskboard-backend/internal/config"
	"github.com/heartmarshall/taskboard-backend/pkg/ctxutil"
)

// TokenOptions contains the options for the token command.
type TokenOptions struct {
	Tenant string
	UserID string
}

// NewTokenCommand creates the token command.
func NewTokenCommand(global *GlobalOptions) *cobra.Command {
	opts := &TokenOptions{}

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an access token for a tenant user",
		Long: `Issue a signed access token with the configured secret, issuer and TTL.
The token is printed to stdout so it can be captured by scripts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := global.load()
			if err != nil {
				return err
			}
			return runToken(cmd, cfg.Auth, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Tenant, "tenant", "", "company domain the token acts for")
	cmd.Flags().StringVar(&opts.UserID, "user", "", "user id (default: a new random id)")
	_ = cmd.MarkFlagRequired("tenant")

	return cmd
}

func runToken(cmd *cobra.Command, cfg config.AuthConfig, opts *TokenOptions) error {
	id := ctxutil.Identity{CompanyDomain: strings.TrimSpace(opts.Tenant), UserID: uuid.New()}
	if opts.UserID != "" {
		parsed, err := uuid.Parse(opts.UserID)
		if err != nil {
			return fmt.Errorf("--user: %w", err)
		}
		id.UserID = parsed
	}

	manager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTokenTTL)
	token, err := manager.GenerateAccessToken(id)
	if err != nil {
		return fmt.Errorf("issue token: %w", err)
	}

	printf(cmd.OutOrStdout(), "%s\n", token)
	return nil
}
