package efa

import (
	"testing"
	"time"

	"github.com/mobil-koeln/efa-go/command"
	"github.com/mobil-koeln/efa-go/internal/testutil"
)

func TestConfigDefaults(t *testing.T) {
	cfg := Config{BaseURL: "https://efa.vgn.de/vgnExt_oeffi/"}
	testutil.AssertNil(t, cfg.normalize())

	testutil.AssertEqual(t, cfg.Format, command.FormatRapidJSON)
	testutil.AssertEqual(t, cfg.Timeout, 10*time.Second)
}

func TestConfigAppendsTrailingSlash(t *testing.T) {
	cfg := Config{BaseURL: "https://efa.vgn.de/vgnExt_oeffi"}
	testutil.AssertNil(t, cfg.normalize())
	testutil.AssertEqual(t, cfg.BaseURL, "https://efa.vgn.de/vgnExt_oeffi/")
}

func TestConfigKeepsTrailingSlash(t *testing.T) {
	cfg := Config{BaseURL: "https://efa.vgn.de/vgnExt_oeffi/"}
	testutil.AssertNil(t, cfg.normalize())
	testutil.AssertEqual(t, cfg.BaseURL, "https://efa.vgn.de/vgnExt_oeffi/")
}

func TestConfigRejectsMissingURL(t *testing.T) {
	cfg := Config{}
	testutil.AssertError(t, cfg.normalize())
}

func TestConfigRejectsBadURL(t *testing.T) {
	cfg := Config{BaseURL: "not a url"}
	testutil.AssertError(t, cfg.normalize())
}

func TestConfigRejectsUnknownFormat(t *testing.T) {
	cfg := Config{BaseURL: "https://efa.vgn.de/", Format: "XML"}
	testutil.AssertErrorIs(t, cfg.normalize(), ErrFormatNotSupported)
}

func TestConfigRejectsNegativeTimeout(t *testing.T) {
	cfg := Config{BaseURL: "https://efa.vgn.de/", Timeout: -time.Second}
	testutil.AssertError(t, cfg.normalize())
}
