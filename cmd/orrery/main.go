package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/orrery/app"
	"github.com/lixenwraith/orrery/audio"
	"github.com/lixenwraith/orrery/config"
	"github.com/lixenwraith/orrery/constants"
	"github.com/lixenwraith/orrery/feed"
	"github.com/lixenwraith/orrery/tui"
)

func main() {
	if err := newRootCommand(run).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "orrery: %v\n", err)
		os.Exit(1)
	}
}

// newRootCommand builds the CLI; start receives the merged configuration
func newRootCommand(start func(config.Config) error) *cobra.Command {
	v := config.NewViper()
	var configPath string

	cmd := &cobra.Command{
		Use:           "orrery",
		Short:         "Build and watch a planetary system in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, configPath)
			if err != nil {
				return err
			}
			return start(cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configPath, "config", "", "config file (toml, yaml or json)")
	flags.Int("fps", 60, "frames per second")
	flags.Int("cell-size", constants.DefaultCellWidth, "logical pixels per terminal column")
	flags.String("share", "", "serve a live websocket feed on this address, e.g. :8080")
	flags.Bool("audio", false, "enable sound cues")
	flags.Bool("debug", false, "write logs to "+logDir+"/"+logFileName)
	flags.Uint64("seed", 0, "random seed for presets and stars, 0 uses the clock")

	bind := map[string]string{
		"fps":       config.KeyFPS,
		"cell-size": config.KeyCellSize,
		"share":     config.KeyShareAddr,
		"audio":     config.KeyAudioEnabled,
		"debug":     config.KeyDebug,
		"seed":      config.KeySeed,
	}
	for flag, key := range bind {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(err)
		}
	}
	return cmd
}

func run(cfg config.Config) error {
	if f := setupLogging(cfg.Debug); f != nil {
		defer f.Close()
	}

	screen, err := tui.NewScreen()
	if err != nil {
		return err
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: restore the terminal before printing the trace
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mORRERY CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	var opts []app.Option

	if cfg.Audio.Enabled {
		sm := audio.NewSoundManager()
		sm.SetVolume(cfg.Audio.Volume)
		if err := sm.Initialize(); err != nil {
			log.Printf("audio init failed: %v (continuing without audio)", err)
		} else {
			defer sm.Cleanup()
			opts = append(opts, app.WithCues(sm))
		}
	}

	if cfg.Share.Addr != "" {
		hub := feed.NewHub(constants.ShareClientBuffer)
		srv, err := feed.Listen(cfg.Share.Addr, hub)
		if err != nil {
			return err
		}
		log.Printf("share feed on ws://%s/ws", srv.Addr())
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				log.Printf("share shutdown: %v", err)
			}
		}()
		opts = append(opts, app.WithPublisher(feed.NewPublisher(hub, cfg.Share.Interval)))
	}

	a, err := app.New(screen, cfg, opts...)
	if err != nil {
		return err
	}

	events := make(chan tcell.Event, constants.EventChannelSize)
	quit := make(chan struct{})
	defer close(quit)

	// Input polling uses raw goroutine as it interacts directly with terminal
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()
		defer close(events)

		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	return a.Run(events)
}
