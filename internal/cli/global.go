// Package cli provides the Cobra subcommands of taskctl, the operator CLI.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/taskboard-backend/internal/config"
)

// GlobalOptions are shared by every subcommand.
type GlobalOptions struct {
	ConfigPath string
}

// AddGlobalFlags registers persistent flags on the root command.
func AddGlobalFlags(root *cobra.Command) *GlobalOptions {
	opts := &GlobalOptions{}
	root.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file path (default $CONFIG_PATH or ./config.yaml)")
	return opts
}

// load reads configuration; --config wins over $CONFIG_PATH.
func (o *GlobalOptions) load() (*config.Config, error) {
	if o.ConfigPath != "" {
		return config.LoadFrom(o.ConfigPath)
	}
	return config.Load()
}

func printf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
