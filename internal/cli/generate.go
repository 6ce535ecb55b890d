package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func stepCmd(g *globals, name, short string) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			log := g.logger()
			p, err := g.pipeline(log)
			if err != nil {
				return err
			}
			step, ok := p.Step(name)
			if !ok {
				return fmt.Errorf("unknown step %q", name)
			}
			written, err := step.Run()
			if err != nil {
				logFailure(log, name, err)
				return err
			}
			log.Info().Str("asset", name).Int("files", len(written)).Msg("assetkit.done")
			return nil
		},
	}
}

func allCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Run every generator in order, stopping at the first failure",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			log := g.logger()
			p, err := g.pipeline(log)
			if err != nil {
				return err
			}
			total := 0
			for _, step := range p.Steps() {
				written, err := step.Run()
				total += len(written)
				if err != nil {
					logFailure(log, step.Name, err)
					return err
				}
				log.Info().Str("asset", step.Name).Int("files", len(written)).Msg("assetkit.done")
			}
			log.Info().Int("files", total).Msg("assetkit.all_done")
			return nil
		},
	}
}
