package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses command-line configuration flags from args.
//
// Flags:
//
//	-a control API address in format [host]:[port]
//	-d database DSN
//	-engine-dir chain engine state directory
//	-legacy-path legacy key file path
//	-c/-config JSON or YAML file path with configs
//	-store-key secure store secret
//	-device-id device identifier override
//	-mainnet use mainnet networks
//	-log-level log level (e.g., "debug", "info")
//	-log-file log file path
//	-time-server trusted time backend base URL
//	-request-timeout control API request timeout (e.g., "30s", "1m")
//	-close-delay session close delay after leaving Enabled (e.g., "30s")
//	-networks comma separated network codes (e.g., "btc,eth")
//	-wallets comma separated currency ids enabled by default
//	-candidate-selection account choice among several on-chain accounts
//	-control-token bearer token required by the control API
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("walletd", flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN, engineDir, legacyPath string
	var configPath string
	var storeKey, deviceID string
	var mainnet bool
	var logLevel, logFile string
	var timeServer string
	var requestTimeout, closeDelay time.Duration
	var networks, wallets string
	var candidateSelection, controlToken string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&engineDir, "engine-dir", "", "Chain engine state directory")
	fs.StringVar(&legacyPath, "legacy-path", "", "Legacy key file path")
	fs.StringVar(&configPath, "c", "", "Config file path")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")
	fs.StringVar(&storeKey, "store-key", "", "Secure store secret")
	fs.StringVar(&deviceID, "device-id", "", "Device identifier override")
	fs.BoolVar(&mainnet, "mainnet", false, "Use mainnet networks")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&timeServer, "time-server", "", "Trusted time backend base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&closeDelay, "close-delay", 0, "Session close delay (e.g., 30s)")
	fs.StringVar(&networks, "networks", "", "Comma separated network codes")
	fs.StringVar(&wallets, "wallets", "", "Comma separated default currency ids")
	fs.StringVar(&candidateSelection, "candidate-selection", "", "lowest_balance or highest_balance")
	fs.StringVar(&controlToken, "control-token", "", "Control API bearer token")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			DeviceID: deviceID,
			Mainnet:  mainnet,
			StoreKey: storeKey,
			LogLevel: logLevel,
			LogFile:  logFile,
		},
		Storage: Storage{
			DB:         DB{DSN: databaseDSN},
			EngineDir:  engineDir,
			LegacyPath: legacyPath,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			ControlToken:   controlToken,
		},
		Adapter: Adapter{
			TimeServerURL: timeServer,
		},
		Engine: Engine{
			Networks:           splitList(networks),
			CandidateSelection: candidateSelection,
		},
		Workers: Workers{
			CloseDelay: closeDelay,
		},
		Wallets: Wallets{
			DefaultEnabled: splitList(wallets),
		},
		FilePath: configPath,
	}, nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the default server address.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
