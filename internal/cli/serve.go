package cli

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/youruser/assetkit/internal/api"
)

func serveCmd(g *globals) *cobra.Command {
	var addr string

	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve in-memory renders over HTTP for previewing",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			log := g.logger()
			p, err := g.pipeline(log)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = p.Cfg.Serve.Addr
			}
			if !g.debug {
				gin.SetMode(gin.ReleaseMode)
			}

			r := api.NewRouter(api.NewServer(p, log))
			log.Info().Str("addr", addr).Msg("serve.listening")
			if err := r.Run(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logFailure(log, "serve", err)
				return err
			}
			return nil
		},
	}

	c.Flags().StringVar(&addr, "addr", "", "listen address (overrides serve.addr)")
	return c
}
