package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"gioui.org/app"
	"github.com/spf13/cobra"
	"github.com/vsariola/tabula"
	"github.com/vsariola/tabula/store"
	"github.com/vsariola/tabula/tracker"
	"github.com/vsariola/tabula/tracker/gioui"
)

type options struct {
	Backend       string
	MIDIOut       string
	SampleRate    int
	Tempo         float64
	TimeSignature string
	Recovery      string
	LogLevel      string
	LogJSON       bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:          "tabula [track.yml]",
		Short:        "Tabula - a guitar tablature editor",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(opts)
			if err != nil {
				return err
			}
			return run(opts, args, logger)
		},
	}
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "warn", "log level (debug|info|warn|error)")
	cmd.PersistentFlags().BoolVar(&opts.LogJSON, "log-json", false, "write logs as JSON")
	cmd.Flags().StringVar(&opts.Backend, "backend", "synth", "audio backend (synth|beep|midi)")
	cmd.Flags().StringVar(&opts.MIDIOut, "midi-out", "", "connect the midi backend to the output whose name starts with `prefix`")
	cmd.Flags().IntVar(&opts.SampleRate, "sample-rate", 44100, "sample rate of the synth and beep backends")
	cmd.Flags().Float64Var(&opts.Tempo, "tempo", tabula.DefaultTempo, "tempo of a new track")
	cmd.Flags().StringVar(&opts.TimeSignature, "time-signature", tabula.DefaultTimeSignature, "time signature of a new track")
	cmd.Flags().StringVar(&opts.Recovery, "recovery", defaultRecoveryPath(), "recovery file; empty disables recovery")
	cmd.AddCommand(newDevicesCommand(opts))
	return cmd
}

func newDevicesCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "devices",
		Short: "List the MIDI output ports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := midiOutputs()
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newLogger(opts *options) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(opts.LogLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", opts.LogLevel, err)
	}
	handlerOpts := &slog.HandlerOptions{Level: level}
	if opts.LogJSON {
		return slog.New(slog.NewJSONHandler(os.Stderr, handlerOpts)), nil
	}
	return slog.New(slog.NewTextHandler(os.Stderr, handlerOpts)), nil
}

func defaultRecoveryPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, tracker.ConfigDirName, store.RecoveryFileName)
}

// loadTrack reads the track given on the command line, falling back to the
// recovery file and finally to a new track.
func loadTrack(opts *options, args []string, logger *slog.Logger) (tabula.Track, error) {
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return tabula.Track{}, err
		}
		defer f.Close()
		return tabula.ReadTrack(f)
	}
	if opts.Recovery != "" {
		track, ok, err := store.LoadRecovery(opts.Recovery)
		if err != nil {
			logger.Warn("could not load recovery file", "path", opts.Recovery, "err", err)
		} else if ok {
			return track, nil
		}
	}
	return tabula.NewTrack(opts.Tempo, opts.TimeSignature), nil
}

func run(opts *options, args []string, logger *slog.Logger) error {
	track, err := loadTrack(opts, args, logger)
	if err != nil {
		return err
	}
	st := store.New(track, logger)
	st.SetRecoveryFilePath(opts.Recovery)

	backend, err := openBackend(strings.ToLower(opts.Backend), opts, logger)
	if err != nil {
		return err
	}
	broker := tracker.NewBroker()
	broker.NotifyReady(backend.Ready())

	bindings, err := tracker.LoadKeyBindings()
	if err != nil {
		logger.Warn("could not load custom key bindings", "err", err)
		bindings = tracker.DefaultKeyBindings()
	}
	frames := tracker.NewFrameQueue()
	model := tracker.NewModel(broker, tracker.Collaborators{
		Document:  st,
		Measures:  st,
		Notes:     st,
		Clipboard: st,
		History:   st,
		Backend:   backend,
		Frames:    frames,
		Logger:    logger,
		Bindings:  bindings,
	})
	var recovery gioui.Recovery
	if opts.Recovery != "" {
		recovery = st
	}
	trackerUi := gioui.NewTracker(model, frames, recovery, logger)

	go func() {
		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
		<-interrupt
		tracker.TrySend(broker.CloseGUI, struct{}{})
		if _, ok := tracker.TimeoutReceive(broker.FinishedGUI, closeTimeout); !ok {
			logger.Error("GUI did not close in time")
			os.Exit(1)
		}
	}()
	go func() {
		trackerUi.Main()
		if err := backend.Close(); err != nil {
			logger.Warn("could not close audio backend", "err", err)
		}
		os.Exit(0)
	}()
	app.Main()
	return nil
}

// closeTimeout is how long the GUI gets to shut down after a close request.
const closeTimeout = 3 * time.Second
