// Package notify tells the desktop user about received ClickNLoad packages.
//
// A notification is shown for every package. When the links could not be
// handed to a download manager they are copied to the clipboard instead, so
// they are never lost.
package notify

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cnl-relay/internal/config"
	"github.com/MKhiriev/go-cnl-relay/internal/logger"
	"github.com/MKhiriev/go-cnl-relay/models"
	"github.com/atotto/clipboard"
	"github.com/gen2brain/beeep"
)

//go:generate mockgen -source=notify.go -destination=../mock/notifier_mock.go -package=mock

// Title is the title of every desktop notification.
const Title = "Pyload Click'N'Load"

// Notifier reports the outcome of one received package. Implementations log
// their own failures; a failed notification never fails the request.
type Notifier interface {
	PackageReceived(ctx context.Context, pkg models.Package, result models.RelayResult, relayErr error)
}

type desktopNotifier struct {
	cfg config.Notify

	alert     func(title, message string) error
	writeText func(text string) error
	dispatch  func(func())

	logger *logger.Logger
}

// NewDesktopNotifier returns a [Notifier] that shows desktop notifications
// with beeep and falls back to the system clipboard for links that were not
// forwarded. The clipboard is written before PackageReceived returns; the
// notification is shown on its own goroutine, since beeep can block for a
// long time on desktops without a notification daemon.
func NewDesktopNotifier(cfg config.Notify, logger *logger.Logger) Notifier {
	return &desktopNotifier{
		cfg: cfg,
		alert: func(title, message string) error {
			return beeep.Notify(title, message, "")
		},
		writeText: clipboard.WriteAll,
		dispatch:  func(f func()) { go f() },
		logger:    logger,
	}
}

func (n *desktopNotifier) PackageReceived(_ context.Context, pkg models.Package, result models.RelayResult, relayErr error) {
	log := n.logger
	copied := false
	if !result.Forwarded && !n.cfg.NoClipboard && pkg.Links != "" {
		if err := n.writeText(pkg.Links); err != nil {
			log.Warn().Err(err).Str("package", pkg.Name).Msg("copy links to clipboard failed")
		} else {
			copied = true
			log.Info().Str("package", pkg.Name).Int("links", result.LinkCount).Msg("links copied to clipboard")
		}
	}

	if n.cfg.Disabled {
		return
	}

	msg := message(result, relayErr, copied)
	n.dispatch(func() {
		if err := n.alert(Title, msg); err != nil {
			log.Warn().Err(err).Msg("desktop notification failed")
		}
	})
}

func message(result models.RelayResult, relayErr error, copied bool) string {
	switch {
	case relayErr != nil && copied:
		return fmt.Sprintf("Found %d links but adding them to Pyload %s failed, copied them to your clipboard", result.LinkCount, result.Destination)
	case relayErr != nil:
		return fmt.Sprintf("Found %d links but adding them to Pyload %s failed", result.LinkCount, result.Destination)
	case result.Forwarded:
		return fmt.Sprintf("Found %d links and added them to Pyload %s", result.LinkCount, result.Destination)
	case copied:
		return fmt.Sprintf("Found %d links and copied them to your clipboard", result.LinkCount)
	default:
		return fmt.Sprintf("Found %d links", result.LinkCount)
	}
}
