// Command oscquery-server serves an OSCQuery namespace over HTTP and
// advertises it via mDNS.
//
// The namespace is declared in a YAML configuration file; without one
// the server exposes a small demo tree.
//
// Usage:
//
//	oscquery-server [flags]
//
// Flags:
//
//	-config string   Configuration file path
//	-addr string     HTTP listen address (default ":8080")
//	-name string     Advertised host name
//	-osc-ip string   OSC transport IP announced in HOST_INFO
//	-osc-port int    OSC transport port announced in HOST_INFO
//	-log-level string  Log level: debug, info, warn, error (default "info")
//	-log-file string   Protocol event log file (CBOR)
//	-no-mdns         Disable mDNS advertising
//
// Examples:
//
//	# Serve the demo tree on the default port
//	oscquery-server -name "My Synth" -osc-port 9000
//
//	# Serve a declared namespace
//	oscquery-server -config synth.yaml
package main

import (
	"context"
	"flag"
	"fmt"
	stdlog "log"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/revilo196/oscquery-go/pkg/discovery"
	"github.com/revilo196/oscquery-go/pkg/log"
	"github.com/revilo196/oscquery-go/pkg/model"
	"github.com/revilo196/oscquery-go/pkg/osc"
	"github.com/revilo196/oscquery-go/pkg/service"
	"github.com/revilo196/oscquery-go/pkg/unit"
	"github.com/revilo196/oscquery-go/pkg/version"
)

var flags struct {
	configFile string
	address    string
	name       string
	oscIP      string
	oscPort    uint
	logLevel   string
	logFile    string
	noMDNS     bool
}

func init() {
	flag.StringVar(&flags.configFile, "config", "", "Configuration file path")
	flag.StringVar(&flags.address, "addr", "", "HTTP listen address")
	flag.StringVar(&flags.name, "name", "", "Advertised host name")
	flag.StringVar(&flags.oscIP, "osc-ip", "", "OSC transport IP announced in HOST_INFO")
	flag.UintVar(&flags.oscPort, "osc-port", 0, "OSC transport port announced in HOST_INFO")
	flag.StringVar(&flags.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flag.StringVar(&flags.logFile, "log-file", "", "Protocol event log file (CBOR)")
	flag.BoolVar(&flags.noMDNS, "no-mdns", false, "Disable mDNS advertising")
}

func main() {
	flag.Parse()
	setupLogging(flags.logLevel)

	config, err := resolveConfig()
	if err != nil {
		stdlog.Fatalf("Invalid configuration: %v", err)
	}

	root, err := buildRoot(config)
	if err != nil {
		stdlog.Fatalf("Failed to build namespace: %v", err)
	}

	var loggers []log.Logger
	if flags.logFile != "" {
		fileLogger, err := log.NewFileLogger(flags.logFile)
		if err != nil {
			stdlog.Fatalf("Failed to open log file: %v", err)
		}
		defer fileLogger.Close()
		loggers = append(loggers, fileLogger)
	}
	if flags.logLevel == "debug" {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		loggers = append(loggers, log.NewSlogAdapter(slog.New(handler)))
	}

	var protocolLog log.Logger
	switch len(loggers) {
	case 0:
	case 1:
		protocolLog = loggers[0]
	default:
		protocolLog = log.NewMultiLogger(loggers...)
	}

	server := service.NewServer(root, service.ServerConfig{
		Address: config.Address,
		Logger:  protocolLog,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := server.Start(ctx); err != nil {
		stdlog.Fatalf("Failed to start server: %v", err)
	}
	stdlog.Printf("oscquery-server %s", version.Current)
	stdlog.Printf("Serving %q on http://%s", config.Name, server.Addr())

	if !flags.noMDNS {
		advertiser := discovery.NewMDNSAdvertiser(discovery.AdvertiserConfig{
			Logger: protocolLog,
		})
		info := &discovery.ServiceInfo{
			Name:         config.Name,
			QueryPort:    listenPort(server.Addr()),
			OSCPort:      config.OSC.Port,
			OSCTransport: config.OSC.Transport,
		}
		if err := advertiser.Advertise(ctx, info); err != nil {
			stdlog.Printf("Warning: mDNS advertising failed: %v", err)
		} else {
			stdlog.Printf("Advertising %q as %s", config.Name, discovery.ServiceTypeOSCQuery)
			defer advertiser.Stop()
		}
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh

	stdlog.Printf("Received signal: %v", sig)
	stdlog.Println("Shutting down...")

	if err := server.Stop(); err != nil {
		stdlog.Printf("Error stopping server: %v", err)
	}
}

func setupLogging(level string) {
	stdlog.SetFlags(stdlog.Ltime | stdlog.Lmicroseconds)

	switch level {
	case "debug":
		stdlog.SetFlags(stdlog.Ltime | stdlog.Lmicroseconds | stdlog.Lshortfile)
	case "warn", "error":
		stdlog.SetFlags(stdlog.Ltime)
	}
}

// resolveConfig loads the configuration file (or the demo defaults) and
// applies flag overrides.
func resolveConfig() (*Config, error) {
	var config *Config
	if flags.configFile != "" {
		loaded, err := LoadConfig(flags.configFile)
		if err != nil {
			return nil, err
		}
		config = loaded
	} else {
		config = demoConfig()
	}

	if flags.address != "" {
		config.Address = flags.address
	}
	if flags.name != "" {
		config.Name = flags.name
	}
	if flags.oscIP != "" {
		config.OSC.IP = flags.oscIP
	}
	if flags.oscPort != 0 {
		if flags.oscPort > 65535 {
			return nil, fmt.Errorf("osc-port out of range: %d", flags.oscPort)
		}
		config.OSC.Port = uint16(flags.oscPort)
	}
	if config.Name == "" {
		config.Name = "OSCQuery Server"
	}
	if config.Address == "" {
		config.Address = service.DefaultAddress
	}
	return config, nil
}

// demoConfig is the namespace served when no config file is given.
func demoConfig() *Config {
	return &Config{
		Name:    "OSCQuery Demo",
		Address: service.DefaultAddress,
		OSC:     OSCConfig{IP: "127.0.0.1", Port: 9000},
		Extensions: []string{
			"ACCESS", "VALUE", "RANGE", "DESCRIPTION", "UNIT",
		},
	}
}

// buildRoot assembles the namespace: declared parameters when the
// configuration has any, the demo tree otherwise.
func buildRoot(config *Config) (*model.Node, error) {
	if len(config.Parameters) == 0 {
		return demoTree(config)
	}
	return config.BuildTree()
}

// demoTree is served when the configuration declares no parameters.
func demoTree(config *Config) (*model.Node, error) {
	info, err := config.HostInfo()
	if err != nil {
		return nil, err
	}
	root := model.NewRoot(info)

	params := []model.Parameter{
		model.NewParameter("/synth/volume", osc.Float(0.8)).
			WithDescription("Master volume").
			WithAccess(model.ReadWrite).
			WithMinMax(0, 1).
			WithUnit(unit.Linear),
		model.NewParameter("/synth/frequency", osc.Float(440)).
			WithDescription("Oscillator frequency").
			WithAccess(model.ReadWrite).
			WithMinMax(20, 20000).
			WithUnit(unit.Hz),
		model.NewParameter("/synth/waveform", osc.String("sine")).
			WithDescription("Oscillator waveform").
			WithAccess(model.ReadWrite),
		model.NewParameter("/status/voices", osc.Int(0)).
			WithDescription("Active voice count").
			WithAccess(model.Read),
	}
	for _, p := range params {
		if err := root.Add(p); err != nil {
			return nil, err
		}
	}
	return root, nil
}

func listenPort(addr net.Addr) uint16 {
	if tcp, ok := addr.(*net.TCPAddr); ok {
		return uint16(tcp.Port)
	}
	return 0
}
