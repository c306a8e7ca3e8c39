package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
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

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a WebCRM API base URL (e.g. http://localhost:5000/)
//	-request-timeout API request timeout (e.g. "30s")
//	-d local database path
//	-summary-interval summary refresh interval (e.g. "1m")
//	-phone-region region for mobile number validation (e.g. "IT")
//	-s sandbox listen address in format [host]:[port]
//	-rate-limit sandbox requests per second
//	-token-sign-key sandbox token signing key
//	-token-duration sandbox token lifetime
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("webcrm", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress NetAddress
	var adapterAddress string
	var requestTimeout time.Duration
	var databaseDSN string
	var summaryInterval time.Duration
	var phoneRegion string
	var rateLimit int
	var tokenSignKey string
	var tokenDuration time.Duration
	var jsonConfigPath string

	fs.StringVar(&adapterAddress, "a", "", "WebCRM API base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&databaseDSN, "d", "", "Local database path")
	fs.DurationVar(&summaryInterval, "summary-interval", 0, "Summary refresh interval")
	fs.StringVar(&phoneRegion, "phone-region", "", "Region for mobile number validation")
	fs.Var(&serverAddress, "s", "Sandbox net address host:port")
	fs.IntVar(&rateLimit, "rate-limit", 0, "Sandbox requests per second")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Sandbox token signing key")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Sandbox token duration")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{PhoneRegion: phoneRegion},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Server: Server{
			HTTPAddress:   serverAddress.String(),
			RateLimit:     rateLimit,
			TokenSignKey:  tokenSignKey,
			TokenDuration: tokenDuration,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
		},
		Workers:      Workers{SummaryInterval: summaryInterval},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
