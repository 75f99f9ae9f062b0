// Package cli provides the command-line interface for slideback.
package cli

import (
	"fmt"
	"time"

	"go-slideback/internal/config"
	"go-slideback/internal/logging"
	"go-slideback/pkg/render"
	"go-slideback/pkg/slideback"

	"github.com/spf13/cobra"
)

// options is shared by all subcommands; settings is filled in before any
// subcommand runs.
type options struct {
	configPath string
	settings   *config.Settings
}

// NewRootCmd creates the root command for slideback
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "slideback",
		Short:         "Render the edge pull-to-go-back affordance",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.load(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "config file (toml, yaml or json)")
	pf.String("side", "left", "edge the panel is anchored to: left or right")
	pf.String("bg", render.FormatHexColor(config.DefaultBackgroundColor), "background colour, #RRGGBB or #AARRGGBB")
	pf.String("arrow", render.FormatHexColor(config.DefaultArrowColor), "arrow colour, #RRGGBB or #AARRGGBB")
	pf.Float64("density", config.DefaultDensity, "pixels per device-independent unit")
	pf.String("log-level", "info", "trace, debug, info, warn or error")
	pf.String("log-format", "console", "console or json")

	root.AddCommand(
		newRenderCmd(opts),
		newStripCmd(opts),
		newInspectCmd(opts),
		newDemoCmd(opts),
	)
	return root
}

func (o *options) load(cmd *cobra.Command) error {
	s, err := config.Load(o.configPath, cmd.Flags())
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(s.Logging.Level)
	if err != nil {
		return err
	}
	format, err := logging.ParseFormat(s.Logging.Format)
	if err != nil {
		return err
	}
	logger := logging.NewWithWriter(cmd.ErrOrStderr(), logging.Config{
		Level:      level,
		Format:     format,
		TimeFormat: time.RFC3339,
	})
	cmd.SetContext(logging.WithContext(cmd.Context(), logger))

	o.settings = s
	logger.Debug().
		Str("config", o.configPath).
		Str("side", s.Side).
		Float64("density", s.Density).
		Msg("settings loaded")
	return nil
}

// renderer builds a Renderer from the loaded settings.
func (o *options) renderer() (*slideback.Renderer, error) {
	side, err := slideback.ParseSide(o.settings.Side)
	if err != nil {
		return nil, err
	}
	r := slideback.NewRenderer(slideback.Density(o.settings.Density))
	r.SetSide(side)
	r.SetBackgroundColor(o.settings.BackgroundColor)
	r.SetArrowColor(o.settings.ArrowColor)
	return r, nil
}

func validateProgress(p float64) error {
	if p < 0 || p > 1 {
		return fmt.Errorf("progress must be within [0, 1], got %v", p)
	}
	return nil
}
