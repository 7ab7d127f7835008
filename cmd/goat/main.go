package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/brocode/goat/internal/config"
)

//nolint:gochecknoglobals // Cobra requires package-level vars for flag bindings in current structure.
var (
	// Version metadata populated at build time via -ldflags.
	releaseVersion = "dev"
	commit         = "none"
	date           = "unknown"

	// Used for flags.
	seconds    uint32
	title      string
	mappings   []string
	configPath string
	noColor    bool
	verbose    bool

	rootCmd = &cobra.Command{
		Use:   "goat",
		Short: "better sleep",
		Long: `goat waits for the given number of seconds while showing a progress gauge.
Pressing a mapped key ends the wait early with that key's exit code, so a calling
script can tell why the wait ended. 'q' aborts (exit 1), 'c' continues (exit 0).`,
		Example: `  goat -t 30
  goat -t 600 --title deploy -m "64:r:retry" -m "65:s:skip"`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		Run:           runRoot,
	}
)

//nolint:gochecknoinits // Cobra command wiring performed in init in current structure.
func init() {
	// Route logs to stderr; stdout belongs to the fallback status line.
	logrus.SetOutput(os.Stderr)

	flags := rootCmd.Flags()
	flags.Uint32VarP(&seconds, "time", "t", 0, "timer in seconds")
	flags.StringVar(&title, "title", config.DefaultTitle, "title shown above the key bindings")
	flags.StringArrayVarP(&mappings, "mapping", "m", nil,
		"Keybinding mapping. Format: <retcode>:<key>:<label> (64 <= retcode <= 113)")
	flags.StringVar(&configPath, "config", "",
		"YAML config file (default $"+config.EnvPath+" or "+config.DefaultPath+")")
	flags.BoolVar(&noColor, "no-color", false, "Render without colors")
	_ = rootCmd.MarkFlagRequired("time")

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable detailed logging output")

	// Built-in version flag: set version string and a custom template.
	rootCmd.Version = releaseVersion
	rootCmd.Annotations = map[string]string{"commit": commit, "date": date}
	rootCmd.SetVersionTemplate("{{printf \"%s %s\\ncommit: %s\\ndate: %s\\n\" .DisplayName .Version (index .Annotations \"commit\") (index .Annotations \"date\")}}")
}

func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logrus.Fatal(err)
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	Execute(ctx)
}
