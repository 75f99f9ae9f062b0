package cli

import (
	"fmt"
	"io"
	"os"

	"go-slideback/internal/backend/ggbackend"
	"go-slideback/internal/logging"

	"github.com/spf13/cobra"
)

func newRenderCmd(opts *options) *cobra.Command {
	var (
		progress float64
		out      string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write one frame as PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateProgress(progress); err != nil {
				return err
			}
			r, err := opts.renderer()
			if err != nil {
				return err
			}
			distance := float32(progress) * float32(r.Width())

			err = writeOutput(cmd, out, func(w io.Writer) error {
				return ggbackend.RenderPNG(w, r, distance)
			})
			if err != nil {
				return err
			}
			logging.FromContext(cmd.Context()).Info().
				Str("out", out).
				Float64("progress", progress).
				Msg("frame written")
			return nil
		},
	}
	cmd.Flags().Float64VarP(&progress, "progress", "p", 1, "pull progress in [0, 1]")
	cmd.Flags().StringVarP(&out, "out", "o", "slideback.png", "output file, - for stdout")
	return cmd
}

func newStripCmd(opts *options) *cobra.Command {
	var (
		frames int
		out    string
	)
	cmd := &cobra.Command{
		Use:   "strip",
		Short: "Write evenly spaced frames side by side as one PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if frames <= 0 {
				return fmt.Errorf("frames must be positive, got %d", frames)
			}
			r, err := opts.renderer()
			if err != nil {
				return err
			}
			distances := ggbackend.EvenDistances(r.Width(), frames)

			err = writeOutput(cmd, out, func(w io.Writer) error {
				return ggbackend.RenderStrip(w, r, distances)
			})
			if err != nil {
				return err
			}
			logging.FromContext(cmd.Context()).Info().
				Str("out", out).
				Int("frames", frames).
				Msg("strip written")
			return nil
		},
	}
	cmd.Flags().IntVarP(&frames, "frames", "n", 10, "number of frames")
	cmd.Flags().StringVarP(&out, "out", "o", "slideback-strip.png", "output file, - for stdout")
	return cmd
}

// writeOutput runs write against stdout for "-" or a freshly created file.
func writeOutput(cmd *cobra.Command, path string, write func(io.Writer) error) error {
	if path == "-" {
		return write(cmd.OutOrStdout())
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
