package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/taskboard-backend/internal/app"
	"github.com/heartmarshall/taskboard-backend/internal/cli"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "taskctl",
		Short: "Operator tooling for the taskboard backend",
		Long: `taskctl runs maintenance jobs against the taskboard database:
applying migrations, closing periods and issuing access tokens for
scripts and smoke tests.`,
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	global := cli.AddGlobalFlags(rootCmd)

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(cli.NewMigrateCommand(global))
	rootCmd.AddCommand(cli.NewCompletePeriodCommand(global))
	rootCmd.AddCommand(cli.NewTokenCommand(global))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
