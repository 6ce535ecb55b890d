package cli

import (
	"errors"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/youruser/assetkit/internal/config"
	"github.com/youruser/assetkit/internal/domain"
	"github.com/youruser/assetkit/internal/logging"
	"github.com/youruser/assetkit/internal/pipeline"
)

func Execute() {
	cmd := newRootCmd(os.Stderr)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type globals struct {
	configPath string
	debug      bool
	logOut     io.Writer
}

func (g *globals) logger() zerolog.Logger {
	return logging.New(g.logOut, g.debug)
}

// pipeline resolves the configuration once for the invoked command.
func (g *globals) pipeline(log zerolog.Logger) (*pipeline.Pipeline, error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		logFailure(log, "config", err)
		return nil, err
	}
	log.Debug().Str("source", cfg.SourcePath).Str("output", cfg.OutputDir).Msg("config.loaded")
	return pipeline.New(cfg, log), nil
}

func newRootCmd(logOut io.Writer) *cobra.Command {
	g := &globals{logOut: logOut}

	cmd := &cobra.Command{
		Use:           "assetkit",
		Short:         "assetkit: launcher icons, store graphics and a marketing poster from one source image",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "config file (default "+config.DefaultPath+" if present)")
	cmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "enable debug logging")

	cmd.AddCommand(
		stepCmd(g, "icons", "Write legacy square and round launcher icons per density"),
		stepCmd(g, "adaptive", "Write adaptive icon layers and descriptors"),
		stepCmd(g, "store", "Write store listing assets"),
		stepCmd(g, "poster", "Render the marketing poster"),
		stepCmd(g, "preview", "Render a launcher mask preview of the adaptive icon"),
		allCmd(g),
		serveCmd(g),
	)
	return cmd
}

// logFailure names the failing asset and, when known, the file involved.
func logFailure(log zerolog.Logger, asset string, err error) {
	ev := log.Error().Err(err).Str("asset", asset)
	var oe *domain.OpError
	if errors.As(err, &oe) {
		ev = ev.Str("kind", string(oe.Kind))
		if oe.Path != "" {
			ev = ev.Str("path", oe.Path)
		}
	}
	ev.Msg("assetkit.failed")
}
