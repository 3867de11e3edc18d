// Command racechart renders the cycling doping scatter chart.
//
// Usage:
//
//	racechart serve --addr :9080
//	racechart render --output chart.html
//	racechart render --surface svg --data-url ./cyclist-data.json
//	racechart verify --url http://localhost:9080
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// flags shared by every subcommand; empty values keep the configured ones.
type flags struct {
	dataURL  string
	logLevel string
}

func main() {
	// Load .env if present; real environment variables win.
	_ = godotenv.Load(".env")

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags
	root := &cobra.Command{
		Use:           "racechart",
		Short:         "Scatter chart of cycling climb times and doping allegations",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&f.dataURL, "data-url", "", "dataset URL or file path (overrides RACECHART_DATA_URL)")
	root.PersistentFlags().StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error (overrides RACECHART_LOG_LEVEL)")

	root.AddCommand(serveCmd(&f))
	root.AddCommand(renderCmd(&f))
	root.AddCommand(verifyCmd())
	return root
}
