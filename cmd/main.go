// file: cmd/main.go

package main

import (
	"fmt"
	"os"
	"scoring-api/app"
	"scoring-api/config"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// @title           Scoring API
// @version         1.0
// @description     Validation, authentication and dispatch layer of the scoring service.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	var configPath string

	cmd := &cobra.Command{
		Use:           "scoring-api",
		Short:         "Serve the scoring method API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, configPath)
			if err != nil {
				return err
			}
			return app.Run(cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", ".", "directory containing config.yml")
	cmd.Flags().StringP("port", "p", "8080", "port to listen on")
	cmd.Flags().String("log-level", "info", "log level")
	_ = v.BindPFlag("server.port", cmd.Flags().Lookup("port"))
	_ = v.BindPFlag("log.level", cmd.Flags().Lookup("log-level"))

	return cmd
}
