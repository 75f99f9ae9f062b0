package cli

import (
	"fmt"
	"io"
	"strings"

	"go-slideback/internal/app"
	"go-slideback/pkg/render"
	"go-slideback/pkg/slideback"

	"github.com/spf13/cobra"
)

func newInspectCmd(opts *options) *cobra.Command {
	var progress float64
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the drawing primitives of one frame",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateProgress(progress); err != nil {
				return err
			}
			r, err := opts.renderer()
			if err != nil {
				return err
			}
			rec := slideback.NewRecorder()
			r.Draw(rec, float32(progress)*float32(r.Width()))
			return printCommands(cmd.OutOrStdout(), r, float32(progress), rec.Commands())
		},
	}
	cmd.Flags().Float64VarP(&progress, "progress", "p", 1, "pull progress in [0, 1]")
	return cmd
}

func newDemoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Open an interactive window; drag from a side edge",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := opts.renderer()
			if err != nil {
				return err
			}
			return app.Run(cmd.Context(), r)
		},
	}
}

func printCommands(w io.Writer, r *slideback.Renderer, progress float32, cmds []slideback.Command) error {
	if _, err := fmt.Fprintf(w, "panel %dx%d  side %s  progress %.2f\n", r.Width(), r.Height(), r.Side(), progress); err != nil {
		return err
	}
	if len(cmds) == 0 {
		_, err := fmt.Fprintln(w, "(nothing drawn)")
		return err
	}
	for _, c := range cmds {
		if _, err := fmt.Fprintln(w, formatCommand(c)); err != nil {
			return err
		}
	}
	return nil
}

func formatCommand(c slideback.Command) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-6s %s ", c.Kind, render.FormatHexColor(c.Color))

	switch c.Kind {
	case slideback.CommandFillPath:
		fmt.Fprintf(&b, "M %s", formatPoint(c.Path.Start))
		for _, cu := range c.Path.Curves {
			fmt.Fprintf(&b, " C %s %s %s", formatPoint(cu.C1), formatPoint(cu.C2), formatPoint(cu.End))
		}
		b.WriteString(" Z")
	case slideback.CommandStrokeLine:
		fmt.Fprintf(&b, "%s -> %s width %.2f", formatPoint(c.Line.From), formatPoint(c.Line.To), c.Width)
	}
	return b.String()
}

func formatPoint(p slideback.Point) string {
	return fmt.Sprintf("%.2f,%.2f", p.X, p.Y)
}
