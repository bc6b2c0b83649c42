package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-cnl-relay/internal/config"
	"github.com/MKhiriev/go-cnl-relay/internal/logger"
	"github.com/MKhiriev/go-cnl-relay/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	titles   []string
	messages []string
	copied   []string

	alertErr error
	copyErr  error
}

func newTestNotifier(cfg config.Notify, rec *recorder) *desktopNotifier {
	n := NewDesktopNotifier(cfg, logger.Nop()).(*desktopNotifier)
	n.alert = func(title, message string) error {
		rec.titles = append(rec.titles, title)
		rec.messages = append(rec.messages, message)
		return rec.alertErr
	}
	n.writeText = func(text string) error {
		if rec.copyErr != nil {
			return rec.copyErr
		}
		rec.copied = append(rec.copied, text)
		return nil
	}
	n.dispatch = func(f func()) { f() }
	return n
}

var testPackage = models.Package{Name: "pkg", Links: "http://a\nhttp://b"}

func TestPackageReceived_Forwarded(t *testing.T) {
	rec := &recorder{}
	n := newTestNotifier(config.Notify{}, rec)

	n.PackageReceived(context.Background(), testPackage,
		models.RelayResult{LinkCount: 2, Forwarded: true, Destination: "http://nas:8000"}, nil)

	require.Len(t, rec.messages, 1)
	assert.Equal(t, Title, rec.titles[0])
	assert.Equal(t, "Found 2 links and added them to Pyload http://nas:8000", rec.messages[0])
	assert.Empty(t, rec.copied)
}

func TestPackageReceived_NotConfiguredCopiesLinks(t *testing.T) {
	rec := &recorder{}
	n := newTestNotifier(config.Notify{}, rec)

	n.PackageReceived(context.Background(), testPackage, models.RelayResult{LinkCount: 2}, nil)

	assert.Equal(t, []string{testPackage.Links}, rec.copied)
	assert.Equal(t, []string{"Found 2 links and copied them to your clipboard"}, rec.messages)
}

func TestPackageReceived_RelayFailedCopiesLinks(t *testing.T) {
	rec := &recorder{}
	n := newTestNotifier(config.Notify{}, rec)

	n.PackageReceived(context.Background(), testPackage,
		models.RelayResult{LinkCount: 2, Destination: "http://nas:8000"}, errors.New("login failed"))

	assert.Equal(t, []string{testPackage.Links}, rec.copied)
	require.Len(t, rec.messages, 1)
	assert.Contains(t, rec.messages[0], "failed, copied them to your clipboard")
}

func TestPackageReceived_NoClipboard(t *testing.T) {
	rec := &recorder{}
	n := newTestNotifier(config.Notify{NoClipboard: true}, rec)

	n.PackageReceived(context.Background(), testPackage, models.RelayResult{LinkCount: 2}, nil)

	assert.Empty(t, rec.copied)
	assert.Equal(t, []string{"Found 2 links"}, rec.messages)
}

func TestPackageReceived_ClipboardFailure(t *testing.T) {
	rec := &recorder{copyErr: errors.New("no clipboard utility")}
	n := newTestNotifier(config.Notify{}, rec)

	n.PackageReceived(context.Background(), testPackage,
		models.RelayResult{LinkCount: 2, Destination: "http://nas:8000"}, errors.New("boom"))

	assert.Equal(t, []string{"Found 2 links but adding them to Pyload http://nas:8000 failed"}, rec.messages)
}

func TestPackageReceived_DisabledStillCopies(t *testing.T) {
	rec := &recorder{}
	n := newTestNotifier(config.Notify{Disabled: true}, rec)

	n.PackageReceived(context.Background(), testPackage, models.RelayResult{LinkCount: 2}, nil)

	assert.Empty(t, rec.messages)
	assert.Equal(t, []string{testPackage.Links}, rec.copied)
}

func TestPackageReceived_AlertFailureIsSwallowed(t *testing.T) {
	rec := &recorder{alertErr: errors.New("no notification daemon")}
	n := newTestNotifier(config.Notify{NoClipboard: true}, rec)

	assert.NotPanics(t, func() {
		n.PackageReceived(context.Background(), testPackage, models.RelayResult{LinkCount: 2, Forwarded: true}, nil)
	})
	assert.Len(t, rec.messages, 1)
}

func TestPackageReceived_EmptyLinksNotCopied(t *testing.T) {
	rec := &recorder{}
	n := newTestNotifier(config.Notify{}, rec)

	n.PackageReceived(context.Background(), models.Package{Name: "empty"}, models.RelayResult{}, nil)

	assert.Empty(t, rec.copied)
	assert.Equal(t, []string{"Found 0 links"}, rec.messages)
}

func TestPackageReceived_AlertDoesNotBlock(t *testing.T) {
	release := make(chan struct{})
	shown := make(chan string, 1)

	n := NewDesktopNotifier(config.Notify{NoClipboard: true}, logger.Nop()).(*desktopNotifier)
	n.alert = func(_, message string) error {
		<-release
		shown <- message
		return nil
	}

	returned := make(chan struct{})
	go func() {
		n.PackageReceived(context.Background(), testPackage, models.RelayResult{LinkCount: 2}, nil)
		close(returned)
	}()

	select {
	case <-returned:
	case <-time.After(5 * time.Second):
		t.Fatal("PackageReceived waited for the notification")
	}

	close(release)
	select {
	case msg := <-shown:
		assert.Equal(t, "Found 2 links", msg)
	case <-time.After(5 * time.Second):
		t.Fatal("notification was never shown")
	}
}
