// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

// ParseFlags parses command-line arguments (without the program name).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-db-driver database driver (pgx, sqlite3)
//	-c/-config json file path with configs
//	-token-sign-key session token signing key
//	-token-issuer session token issuer name
//	-token-duration session token duration (e.g., "24h")
//	-activation-secret activation token secret
//	-activation-timeout activation link validity (e.g., "72h")
//	-base-url public base URL used in activation links
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-redis-url redis URL for the geolocation cache
//	-geo-url geolocation provider URL
//	-geo-timeout geolocation lookup timeout
//	-smtp-host, -smtp-port, -smtp-user, -smtp-password, -mail-from SMTP relay
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-profiles", flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN, databaseDriver string
	var jsonConfigPath string
	var tokenSignKey, tokenIssuer string
	var tokenDuration time.Duration
	var activationSecret string
	var activationTimeout time.Duration
	var baseURL string
	var requestTimeout time.Duration
	var redisURL string
	var geoURL string
	var geoTimeout time.Duration
	var smtpHost, smtpUser, smtpPassword, mailFrom string
	var smtpPort int

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&databaseDriver, "db-driver", "", "Database driver (pgx, sqlite3)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Session token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Session token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Session token duration (e.g., 24h)")
	fs.StringVar(&activationSecret, "activation-secret", "", "Activation token secret")
	fs.DurationVar(&activationTimeout, "activation-timeout", 0, "Activation link validity (e.g., 72h)")
	fs.StringVar(&baseURL, "base-url", "", "Public base URL for activation links")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&redisURL, "redis-url", "", "Redis URL for the geolocation cache")
	fs.StringVar(&geoURL, "geo-url", "", "Geolocation provider URL")
	fs.DurationVar(&geoTimeout, "geo-timeout", 0, "Geolocation lookup timeout")
	fs.StringVar(&smtpHost, "smtp-host", "", "SMTP host")
	fs.IntVar(&smtpPort, "smtp-port", 0, "SMTP port")
	fs.StringVar(&smtpUser, "smtp-user", "", "SMTP username")
	fs.StringVar(&smtpPassword, "smtp-password", "", "SMTP password")
	fs.StringVar(&mailFrom, "mail-from", "", "Sender address of activation emails")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:      tokenSignKey,
			TokenIssuer:       tokenIssuer,
			TokenDuration:     tokenDuration,
			ActivationSecret:  activationSecret,
			ActivationTimeout: activationTimeout,
			BaseURL:           baseURL,
		},
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
			Cache: Cache{
				RedisURL: redisURL,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			Geo: Geo{
				BaseURL: geoURL,
				Timeout: geoTimeout,
			},
			Mail: Mail{
				Host:     smtpHost,
				Port:     smtpPort,
				Username: smtpUser,
				Password: smtpPassword,
				From:     mailFrom,
			},
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
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
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
