package config

import (
	"errors"
	"flag"
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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-secret-key token signing key for self-service links
//	-deployment-key shared deployment secret (envelope + webhook)
//	-token-ttl self-service token lifetime (e.g., "60m")
//	-allowed-failed-logins failed attempts before blocking (0 disables)
//	-lockout-cooldown wait after the last failed attempt (e.g., "10m")
//	-min-password-length minimum accepted password length
//	-request-timeout inbound request timeout (e.g., "30s")
//	-email-service-url base URL of the platform email service
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var secretKey string
	var deploymentKey string
	var tokenTTL time.Duration
	var allowedFailedLogins int
	var lockoutCooldown time.Duration
	var minPasswordLength int
	var requestTimeout time.Duration
	var emailServiceURL string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&secretKey, "secret-key", "", "Self-service token signing key")
	flag.StringVar(&deploymentKey, "deployment-key", "", "Shared deployment secret")
	flag.DurationVar(&tokenTTL, "token-ttl", 0, "Self-service token lifetime (e.g., 60m)")
	flag.IntVar(&allowedFailedLogins, "allowed-failed-logins", 0, "Failed attempts before blocking (0 disables)")
	flag.DurationVar(&lockoutCooldown, "lockout-cooldown", 0, "Wait after the last failed attempt (e.g., 10m)")
	flag.IntVar(&minPasswordLength, "min-password-length", 0, "Minimum accepted password length")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&emailServiceURL, "email-service-url", "", "Base URL of the platform email service")

	flag.Parse()

	return &StructuredConfig{
		Auth: Auth{
			SecretKey:             secretKey,
			DeploymentKey:         deploymentKey,
			TokenTTL:              tokenTTL,
			AllowedFailedLogins:   allowedFailedLogins,
			LockoutCooldown:       lockoutCooldown,
			MinimumPasswordLength: minPasswordLength,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Email: Email{
			ServiceURL: emailServiceURL,
		},
		Workers:      Workers{},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string so the merge
// step can fall through to other sources.
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
