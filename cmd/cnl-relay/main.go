package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-cnl-relay/internal/adapter"
	"github.com/MKhiriev/go-cnl-relay/internal/config"
	"github.com/MKhiriev/go-cnl-relay/internal/handler"
	"github.com/MKhiriev/go-cnl-relay/internal/logger"
	"github.com/MKhiriev/go-cnl-relay/internal/notify"
	"github.com/MKhiriev/go-cnl-relay/internal/server"
	"github.com/MKhiriev/go-cnl-relay/internal/service"
	"github.com/MKhiriev/go-cnl-relay/internal/utils"
	"github.com/MKhiriev/go-cnl-relay/models"
)

const role = "cnl-relay"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		fail(logger.NewConsoleLogger(role), err, "error getting configs")
	}

	log := newLogger(cfg.Log)
	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("destination", cfg.Destination.URL).
		Bool("notify_disabled", cfg.Notify.Disabled).
		Msg("received configs")

	var destination adapter.Destination
	if cfg.Destination.Configured() {
		destination, err = adapter.NewPyloadAdapter(cfg.Destination, cfg.Adapter, log)
		if err != nil {
			fail(log, err, "error creating destination adapter")
		}
	} else {
		log.Warn().Msg("no destination configured, links will only be copied to the clipboard")
	}

	notifier := notify.NewDesktopNotifier(cfg.Notify, log)
	services := service.NewServices(*cfg, destination, notifier, buildInfo, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		fail(log, err, "error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		fail(log, err, "error creating server")
	}

	if err := srv.RunServer(); err != nil {
		fail(log, err, "error running server")
	}
}

func newLogger(cfg config.Log) *logger.Logger {
	if cfg.Pretty {
		return logger.NewConsoleLogger(role)
	}
	return logger.NewLogger(role)
}

// fail logs err and keeps the console open until a key is pressed, so a
// relay started by double-click does not vanish before the error is read.
func fail(log *logger.Logger, err error, msg string) {
	log.Error().Err(err).Msg(msg)
	if waitErr := utils.WaitForKeypress(os.Stdin, os.Stderr, "Press any key to exit..."); waitErr != nil {
		log.Err(waitErr).Msg("error waiting for keypress")
	}
	os.Exit(1)
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
