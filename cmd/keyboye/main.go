// Command keyboye turns the computer keyboard into a MIDI keyboard and shows
// the held chord on a staff.
package main

import (
	"fmt"
	"os"

	"github.com/gomidi/connect"
	driver "github.com/minikomi/rtmididrv"
	"github.com/spf13/cobra"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/minikomi/staffnote/internal/logger"
	"github.com/minikomi/staffnote/internal/midiout"
	"github.com/minikomi/staffnote/internal/staff"
)

var winTitle string = "🎹"
var winWidth, winHeight int32 = 800, 600

type options struct {
	octave     int
	port       int
	layoutPath string
	debug      bool
}

func main() {
	opts := options{}
	root := &cobra.Command{
		Use:          "keyboye",
		Short:        "play MIDI from the computer keyboard",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}
	root.Flags().IntVar(&opts.octave, "octave", 4, "starting octave of the a key")
	root.Flags().IntVar(&opts.port, "port", 0, "MIDI out port number")
	root.Flags().StringVar(&opts.layoutPath, "layout", "", "YAML file overriding staff layout constants")
	root.Flags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	root.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "list MIDI ports",
		RunE: func(cmd *cobra.Command, args []string) error {
			drv, err := driver.New()
			if err != nil {
				return fmt.Errorf("midi driver: %w", err)
			}
			defer drv.Close()
			ins, err := drv.Ins()
			if err != nil {
				return err
			}
			outs, err := drv.Outs()
			if err != nil {
				return err
			}
			PrintInPorts(cmd.OutOrStdout(), ins)
			PrintOutPorts(cmd.OutOrStdout(), outs)
			return nil
		},
	})

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func selectOut(outs []connect.Out, n int) (connect.Out, error) {
	for _, out := range outs {
		if out.Number() == n {
			return out, nil
		}
	}
	return nil, fmt.Errorf("no MIDI out port %d (%d available)", n, len(outs))
}

func run(opts options) error {
	log, err := logger.New(opts.debug)
	if err != nil {
		return err
	}
	defer log.Sync()

	layout := staff.DefaultLayout()
	if opts.layoutPath != "" {
		if layout, err = staff.LoadLayout(opts.layoutPath); err != nil {
			return err
		}
	}

	if err := sdl.Init(sdl.INIT_EVERYTHING); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow(winTitle, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		winWidth, winHeight, sdl.WINDOW_SHOWN)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	defer renderer.Destroy()

	// midi
	drv, err := driver.New()
	if err != nil {
		return fmt.Errorf("midi driver: %w", err)
	}
	defer drv.Close()

	outs, err := drv.Outs()
	if err != nil {
		return fmt.Errorf("midi outs: %w", err)
	}
	out, err := selectOut(outs, opts.port)
	if err != nil {
		return err
	}
	if err := out.Open(); err != nil {
		return fmt.Errorf("open %s: %w", out.String(), err)
	}
	log.Info("midi out", zap.Int("port", out.Number()), zap.String("name", out.String()))

	wr := midiout.NewWriter(portWriter(out), midiout.WithLogger(log))
	defer func() {
		if err := wr.AllOff(); err != nil {
			log.Warn("release notes", zap.Error(err))
		}
	}()

	state := NewState(opts.octave)
	Draw(renderer, state, layout, log)

	running := true
	for running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch ev := event.(type) {
			case *sdl.KeyboardEvent:
				if state.HandleKeyEvent(ev, wr, log) {
					Draw(renderer, state, layout, log)
				}
			case *sdl.QuitEvent:
				log.Info("quit")
				running = false
			}
		}
		sdl.Delay(5)
	}
	return nil
}
