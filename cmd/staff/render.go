package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/minikomi/staffnote/internal/staff"
	"github.com/minikomi/staffnote/internal/staff/svgdoc"
)

func (a *app) renderCmd() *cobra.Command {
	var (
		out        string
		layoutPath string
		clefName   string
	)
	cmd := &cobra.Command{
		Use:   "render [chord]...",
		Short: "render a measure to SVG; chords are <w|h|q>:<position or note>,...",
		Example: "  staff render h:5,7,9 q:-2,0,2 q:-2,0,2\n" +
			"  staff render --clef bass -o bass.svg w:G2,B2,D3",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clef, ok := staff.ClefByName(clefName)
			if !ok {
				return fmt.Errorf("unknown clef %q", clefName)
			}
			layout := staff.DefaultLayout()
			if layoutPath != "" {
				l, err := staff.LoadLayout(layoutPath)
				if err != nil {
					return err
				}
				layout = l
			}

			m, err := staff.ParseMeasure(args, clef)
			if err != nil {
				return err
			}
			doc := m.Render(layout)

			var w io.Writer = cmd.OutOrStdout()
			if out != "-" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("create %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}
			if err := svgdoc.Write(w, doc); err != nil {
				return err
			}
			a.log.Info("rendered measure",
				zap.String("out", out),
				zap.String("clef", clef.Name),
				zap.Int("chords", m.Len()),
				zap.Int("cursor", doc.Cursor),
			)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "staff.svg", "output file, - for stdout")
	cmd.Flags().StringVar(&layoutPath, "layout", "", "YAML file overriding layout constants")
	cmd.Flags().StringVar(&clefName, "clef", staff.Treble.Name, "clef used to place named notes (treble or bass)")
	return cmd
}
