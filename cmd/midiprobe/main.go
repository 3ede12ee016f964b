// Command midiprobe lists MIDI backends and ports, monitors incoming
// messages, and sends raw messages from the command line.
package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"
	"unicode"

	"go.uber.org/zap"

	"github.com/robhardwick/rtmidi-go/internal/config"
	"github.com/robhardwick/rtmidi-go/pkg/rtmidi"
	"github.com/robhardwick/rtmidi-go/pkg/rtmidi/logging"
)

var (
	configPath  = flag.String("config", getDefaultConfigPath(), "Path to configuration file")
	clientName  = flag.String("client", "", "Override the MIDI client name")
	apiName     = flag.String("api", "", "Backend to use (core, alsa, jack, winmm, dummy)")
	listMode    = flag.Bool("list", false, "List compiled backends and visible ports, then exit")
	monitorMode = flag.Bool("monitor", false, "Print incoming messages until interrupted")
	pollMode    = flag.Bool("poll", false, "Like -monitor, but poll the queue instead of using a callback")
	sendHex     = flag.String("send", "", "Send the given hex bytes (e.g. 903c7f) and exit")
	portNum     = flag.Int("port", -1, "Port index to attach to")
	portName    = flag.String("port-name", "", "Attach to the first port whose name contains this string")
	virtualPort = flag.Bool("virtual", false, "Open a virtual port instead of binding to an existing one")
	verbose     = flag.Bool("verbose", false, "Enable debug logging")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Command-line overrides
	if *clientName != "" {
		cfg.ClientName = *clientName
	}
	if *apiName != "" {
		cfg.API = *apiName
	}
	if *portNum >= 0 {
		cfg.Port.Number = *portNum
	}
	if *portName != "" {
		cfg.Port.Name = *portName
	}
	if *virtualPort {
		cfg.Port.Virtual = true
	}

	zl, err := newLogger(*verbose)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()
	logger := logging.New(zl)

	switch {
	case *listMode:
		if err := runList(cfg, logger); err != nil {
			fatal(err)
		}
	case *sendHex != "":
		if err := runSend(cfg, logger, *sendHex); err != nil {
			fatal(err)
		}
	case *monitorMode || *pollMode:
		if err := runMonitor(cfg, logger, *pollMode); err != nil {
			fatal(err)
		}
	default:
		fmt.Fprintf(os.Stderr, "Usage: %s [options] -list | -monitor | -poll | -send <hex>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  # List backends and ports\n")
		fmt.Fprintf(os.Stderr, "  %s -list\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\n  # Monitor a port by name\n")
		fmt.Fprintf(os.Stderr, "  %s -monitor -port-name synth\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\n  # Expose a virtual input and print whatever connects to it\n")
		fmt.Fprintf(os.Stderr, "  %s -monitor -virtual\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\n  # Send a note-on to port 1\n")
		fmt.Fprintf(os.Stderr, "  %s -send 903c7f -port 1\n", os.Args[0])
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}

func fatal(err error) {
	if errors.Is(err, rtmidi.ErrNotBuilt) {
		log.Fatalf("midiprobe needs the native rtmidi library; rebuild with CGO_ENABLED=1 and rtmidi installed")
	}
	log.Fatalf("%v", err)
}

// runList prints the compiled backends and every visible port
func runList(cfg *config.Config, logger logging.Logger) error {
	fmt.Printf("rtmidi-go %s", rtmidi.WrapperVersion())
	if gen := rtmidi.Generation(); gen != "" {
		fmt.Printf(" (rtmidi %s)", gen)
	}
	fmt.Println()

	apis := rtmidi.CompiledAPIs()
	fmt.Printf("\nCompiled backends (%d):\n", len(apis))
	for _, api := range apis {
		if name := api.DisplayName(); name != "" {
			fmt.Printf("  %-12s %s\n", api, name)
		} else {
			fmt.Printf("  %s\n", api)
		}
	}

	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	opts = append(opts, rtmidi.WithLogger(logger))

	in, err := rtmidi.NewIn(opts...)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()
	if err := printPorts("Input ports", in); err != nil {
		return err
	}

	out, err := rtmidi.NewOut(opts...)
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}
	defer out.Close()
	return printPorts("Output ports", out)
}

// runMonitor attaches an input and prints messages until interrupted
func runMonitor(cfg *config.Config, logger logging.Logger, pollQueue bool) error {
	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	opts = append(opts, rtmidi.WithLogger(logger))

	in, err := rtmidi.NewIn(opts...)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	if err := in.IgnoreTypes(cfg.Ignore.Sysex, cfg.Ignore.Timing, cfg.Ignore.ActiveSensing); err != nil {
		return fmt.Errorf("set ignore flags: %w", err)
	}
	if err := attach(in, cfg.Port, cfg.ClientName); err != nil {
		return fmt.Errorf("attach input: %w", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	fmt.Println("Monitoring; press Ctrl-C to stop")
	if pollQueue {
		ticker := time.NewTicker(time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-sigChan:
				return nil
			case <-ticker.C:
				for {
					msg, ts, err := in.Message()
					if err != nil {
						return fmt.Errorf("read queue: %w", err)
					}
					if len(msg) == 0 {
						break
					}
					printMessage(ts, msg)
				}
			}
		}
	}

	if err := in.SetCallback(func(ts float64, msg []byte) {
		printMessage(ts, msg)
	}); err != nil {
		return fmt.Errorf("set callback: %w", err)
	}
	<-sigChan
	return nil
}

// runSend opens an output, sends one message, and exits
func runSend(cfg *config.Config, logger logging.Logger, raw string) error {
	clean := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)
	msg, err := hex.DecodeString(clean)
	if err != nil {
		return fmt.Errorf("parse message %q: %w", raw, err)
	}
	if len(msg) == 0 {
		return errors.New("empty message")
	}

	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	opts = append(opts, rtmidi.WithLogger(logger))

	out, err := rtmidi.NewOut(opts...)
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}
	defer out.Close()

	if err := attach(out, cfg.Port, cfg.ClientName); err != nil {
		return fmt.Errorf("attach output: %w", err)
	}
	if err := out.SendMessage(msg); err != nil {
		return fmt.Errorf("send: %w", err)
	}
	fmt.Printf("Sent [% X]\n", msg)
	return nil
}

type portLister interface {
	PortCount() (rtmidi.Port, error)
	PortName(rtmidi.Port) (string, error)
}

type porter interface {
	portLister
	OpenPort(rtmidi.Port, string) error
	OpenVirtualPort(string) error
}

// attach binds the handle to the configured port, or opens a virtual one
func attach(h porter, port config.PortConfig, label string) error {
	if port.Virtual {
		return h.OpenVirtualPort(label)
	}
	idx := rtmidi.Port(0)
	if port.Name != "" {
		p, ok, err := findPort(h, port.Name)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("no port matching %q", port.Name)
		}
		idx = p
	} else if port.Number > 0 {
		idx = rtmidi.Port(port.Number)
	}
	return h.OpenPort(idx, label)
}

// findPort returns the first port whose name contains substr, case-insensitively
func findPort(h portLister, substr string) (rtmidi.Port, bool, error) {
	count, err := h.PortCount()
	if err != nil {
		return 0, false, err
	}
	for p := rtmidi.Port(0); p < count; p++ {
		name, err := h.PortName(p)
		if err != nil {
			return 0, false, err
		}
		if strings.Contains(strings.ToLower(name), strings.ToLower(substr)) {
			return p, true, nil
		}
	}
	return 0, false, nil
}

func printPorts(label string, h portLister) error {
	count, err := h.PortCount()
	if err != nil {
		return fmt.Errorf("count ports: %w", err)
	}
	fmt.Printf("\n%s (%d):\n", label, count)
	for p := rtmidi.Port(0); p < count; p++ {
		name, err := h.PortName(p)
		if err != nil {
			return fmt.Errorf("port %d name: %w", p, err)
		}
		fmt.Printf("  %3d  %s\n", p, name)
	}
	return nil
}

func printMessage(ts float64, msg []byte) {
	fmt.Printf("%10.4f  [% X]\n", ts, msg)
}

func getDefaultConfigPath() string {
	// Check common locations
	locations := []string{
		"./midiprobe.yaml",
		filepath.Join(os.Getenv("HOME"), ".config", "midiprobe", "config.yaml"),
	}

	for _, loc := range locations {
		if _, err := os.Stat(loc); err == nil {
			return loc
		}
	}

	// Default to first location if none exist
	return locations[0]
}
