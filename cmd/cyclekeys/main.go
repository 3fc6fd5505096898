// Package main is the entry point for the cyclekeys remapping daemon.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dshills/cyclekeys/internal/action"
	"github.com/dshills/cyclekeys/internal/autorelease"
	"github.com/dshills/cyclekeys/internal/config"
	"github.com/dshills/cyclekeys/internal/dispatcher"
	"github.com/dshills/cyclekeys/internal/input"
	"github.com/dshills/cyclekeys/internal/input/evdev"
	"github.com/dshills/cyclekeys/internal/macro"
	"github.com/dshills/cyclekeys/internal/profile"
	"github.com/dshills/cyclekeys/internal/recorder"
	"github.com/dshills/cyclekeys/internal/synth"

	// Registers the StateToggle action with the default registry.
	_ "github.com/dshills/cyclekeys/internal/action/statetoggle"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// stopTimeout bounds macro queue drain on shutdown.
const stopTimeout = 5 * time.Second

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	if opts.record {
		return runRecord()
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	sy, closeSynth, err := newSynthesizer(cfg.DryRun)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create synthesizer: %v\n", err)
		return 1
	}
	defer closeSynth()

	queue, err := macro.NewQueue(sy,
		macro.WithBufferSize(cfg.QueueSize),
		macro.WithErrorHandler(func(err error) {
			fmt.Fprintf(os.Stderr, "Warning: macro playback: %v\n", err)
		}),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create macro queue: %v\n", err)
		return 1
	}
	if err := queue.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to start macro queue: %v\n", err)
		return 1
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), stopTimeout)
		defer cancel()
		if err := queue.Stop(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: macro queue shutdown: %v\n", err)
		}
	}()

	release := autorelease.NewRegistry()

	disp, err := dispatcher.New(queue, release)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create dispatcher: %v\n", err)
		return 1
	}

	if err := loadProfile(disp, cfg.ProfilePath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Fprintf(os.Stderr, "Loaded profile %s (%d bindings)\n", cfg.ProfilePath, disp.Bindings())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		cancel()
	}()

	if cfg.WatchProfile {
		watcher, err := profile.Watch(cfg.ProfilePath, func() {
			if err := loadProfile(disp, cfg.ProfilePath); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: profile reload: %v\n", err)
				return
			}
			fmt.Fprintf(os.Stderr, "Reloaded profile %s (%d bindings)\n", cfg.ProfilePath, disp.Bindings())
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: profile watch disabled: %v\n", err)
		} else {
			defer watcher.Close()
		}
	}

	events := make(chan input.Event, 64)
	if err := startReaders(ctx, cfg, events); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if err := disp.Run(ctx, events); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// options are the parsed command line settings.
type options struct {
	configPath  string
	profilePath string
	devices     []string
	dryRun      bool
	grab        bool
	record      bool
}

func parseFlags() options {
	var opts options
	var devices string
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.profilePath, "profile", "", "Path to remapping profile")
	flag.StringVar(&opts.profilePath, "p", "", "Path to remapping profile (shorthand)")
	flag.StringVar(&devices, "devices", "", "Comma separated input device nodes")
	flag.BoolVar(&opts.dryRun, "dry-run", false, "Echo synthesized keys instead of injecting them")
	flag.BoolVar(&opts.grab, "grab", false, "Take exclusive hold of input devices")
	flag.BoolVar(&opts.record, "record", false, "Record a key combination and print it")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Cyclekeys - state-cycling key remapper\n\n")
		fmt.Fprintf(os.Stderr, "Usage: cyclekeys [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  cyclekeys                              Run with the default config\n")
		fmt.Fprintf(os.Stderr, "  cyclekeys -p custom.xml -devices /dev/input/event3\n")
		fmt.Fprintf(os.Stderr, "  cyclekeys -dry-run                     Echo keys without injecting\n")
		fmt.Fprintf(os.Stderr, "  cyclekeys -record                      Capture a combination\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("Cyclekeys %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	for _, dev := range strings.Split(devices, ",") {
		if dev = strings.TrimSpace(dev); dev != "" {
			opts.devices = append(opts.devices, dev)
		}
	}
	return opts
}

// loadConfig merges the config file, environment, and flag overrides.
func loadConfig(opts options) (config.Config, error) {
	path := opts.configPath
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return config.Config{}, err
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	if opts.profilePath != "" {
		cfg.ProfilePath = opts.profilePath
	}
	if cfg.ProfilePath == "" {
		if cfg.ProfilePath, err = config.DefaultProfilePath(); err != nil {
			return config.Config{}, err
		}
	}
	if len(opts.devices) > 0 {
		cfg.Devices = opts.devices
	}
	if opts.dryRun {
		cfg.DryRun = true
	}
	if opts.grab {
		cfg.GrabDevices = true
	}
	return cfg, nil
}

// newSynthesizer picks the playback backend. Dry runs echo primitives
// to stdout through the loopback synthesizer.
func newSynthesizer(dryRun bool) (macro.Synthesizer, func(), error) {
	if dryRun {
		lb := synth.NewLoopback()
		lb.OnKey(func(p synth.Primitive) {
			verb := "press"
			if !p.Pressed {
				verb = "release"
			}
			fmt.Printf("%s %s\n", verb, p.Key)
		})
		return lb, func() {}, nil
	}

	ui, err := synth.NewUinput()
	if err != nil {
		return nil, nil, err
	}
	return ui, func() {
		if err := ui.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: closing synthesizer: %v\n", err)
		}
	}, nil
}

func loadProfile(disp *dispatcher.Dispatcher, path string) error {
	prof, err := profile.Load(path, action.Default())
	if err != nil {
		return err
	}
	return disp.LoadProfile(prof)
}

// startReaders opens every configured device and fans its events into
// the shared channel.
func startReaders(ctx context.Context, cfg config.Config, events chan<- input.Event) error {
	if len(cfg.Devices) == 0 {
		return errors.New("no input devices configured; set devices in the config or pass -devices")
	}

	for _, path := range cfg.Devices {
		reader, err := evdev.Open(path)
		if err != nil {
			return err
		}
		if cfg.GrabDevices {
			if err := reader.Grab(); err != nil {
				reader.Close()
				return err
			}
		}
		fmt.Fprintf(os.Stderr, "Reading %s as device %s\n", path, reader.Device())

		go func(r *evdev.Reader) {
			defer r.Close()
			if err := r.Run(ctx, events); err != nil && !errors.Is(err, context.Canceled) {
				fmt.Fprintf(os.Stderr, "Warning: device %s: %v\n", r.Path(), err)
			}
		}(reader)
	}
	return nil
}

// runRecord captures one combination interactively and prints both its
// display form and the profile XML fragment for it.
func runRecord() int {
	rec, err := recorder.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to open terminal: %v\n", err)
		return 1
	}

	combo, err := rec.Record("Record a key combination")
	if err != nil {
		if errors.Is(err, recorder.ErrCancelled) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Printf("Recorded: %s\n\n", combo)
	fmt.Println("<state>")
	for _, id := range combo {
		fmt.Printf("    <key scan-code=\"%d\" extended=%q/>\n",
			id.Code, profile.FormatBool(id.Extended))
	}
	fmt.Println("</state>")
	return 0
}
