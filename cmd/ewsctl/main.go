package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version задается при сборке через -ldflags
var version = "dev"

// options - общие флаги всех команд
type options struct {
	modelDir      string
	referenceFile string
	databaseURL   string
	logLevel      string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "ewsctl",
		Short: "Food insecurity early warning toolkit",
		Long:  "ewsctl scores counties offline, checks model artifacts against the\nfeature contract and seeds the county reference table.",
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		SilenceUsage: true,
		Version:      version,
	}

	f := root.PersistentFlags()
	f.StringVar(&opts.modelDir, "model-dir", envOr("MODEL_DIR", "./models"), "Directory with model artifacts")
	f.StringVar(&opts.referenceFile, "reference-file", os.Getenv("REFERENCE_FILE"), "County reference YAML (embedded catalog when empty)")
	f.StringVar(&opts.databaseURL, "database-url", os.Getenv("DATABASE_URL"), "PostgreSQL DSN with the counties table")
	f.StringVar(&opts.logLevel, "log-level", envOr("LOG_LEVEL", "warn"), "Log level")

	root.AddCommand(newPredictCmd(opts))
	root.AddCommand(newCountyRisksCmd(opts))
	root.AddCommand(newValidateCmd(opts))
	root.AddCommand(newSeedCmd(opts))
	return root
}

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
