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
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-destination-url download manager base url
//	-u destination username
//	-p destination password
//	-adapter-timeout outbound request timeout (e.g., "30s")
//	-no-notify disable desktop notifications
//	-no-clipboard disable the clipboard fallback
//	-pretty human readable console logs
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var requestTimeout time.Duration
	var destinationURL string
	var destinationUsername string
	var destinationPassword string
	var adapterTimeout time.Duration
	var noNotify bool
	var noClipboard bool
	var pretty bool
	var jsonConfigPath string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Inbound request timeout (e.g., 30s, 1m)")
	flag.StringVar(&destinationURL, "destination-url", "", "Download manager base URL")
	flag.StringVar(&destinationUsername, "u", "", "Download manager username")
	flag.StringVar(&destinationPassword, "p", "", "Download manager password")
	flag.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Outbound request timeout (e.g., 30s)")
	flag.BoolVar(&noNotify, "no-notify", false, "Disable desktop notifications")
	flag.BoolVar(&noClipboard, "no-clipboard", false, "Disable copying links to the clipboard")
	flag.BoolVar(&pretty, "pretty", false, "Human readable console logs")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Destination: Destination{
			URL:      destinationURL,
			Username: destinationUsername,
			Password: destinationPassword,
		},
		Adapter: Adapter{
			RequestTimeout: adapterTimeout,
		},
		Notify: Notify{
			Disabled:    noNotify,
			NoClipboard: noClipboard,
		},
		Log: Log{
			Pretty: pretty,
		},
		JSONFilePath: jsonConfigPath,
	}
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
		return errors.New("port number is a positive integer up to 65535")
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
