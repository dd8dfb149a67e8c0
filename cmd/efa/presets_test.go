package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mobil-koeln/efa-go/internal/testutil"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

const sampleConfig = `default: vgn
endpoints:
  vgn: https://efa.vgn.de/vgnExt_oeffi/
  mvv: https://efa.mvv-muenchen.de/ng/
`

func TestLoadPresets(t *testing.T) {
	path := writeConfig(t, sampleConfig)

	pf, err := loadPresets(path)
	testutil.AssertNil(t, err)
	testutil.AssertEqual(t, pf.Default, "vgn")
	testutil.AssertEqual(t, pf.Endpoints["mvv"], "https://efa.mvv-muenchen.de/ng/")
}

func TestLoadPresetsMissingFile(t *testing.T) {
	pf, err := loadPresets(filepath.Join(t.TempDir(), "nope.yaml"))
	testutil.AssertNil(t, err)
	testutil.AssertEqual(t, pf.Default, "")
	testutil.AssertEqual(t, len(pf.Endpoints), 0)
}

func TestLoadPresetsInvalidYAML(t *testing.T) {
	path := writeConfig(t, "endpoints: [not: a: map")

	_, err := loadPresets(path)
	testutil.AssertError(t, err)
	testutil.AssertContains(t, err.Error(), "failed to parse config file")
}

func TestResolveEndpointURLPassthrough(t *testing.T) {
	// A URL never touches the config file.
	url, err := resolveEndpoint("https://efa.example.com/std3/", filepath.Join(t.TempDir(), "nope.yaml"))
	testutil.AssertNil(t, err)
	testutil.AssertEqual(t, url, "https://efa.example.com/std3/")
}

func TestResolveEndpointByPresetName(t *testing.T) {
	path := writeConfig(t, sampleConfig)

	url, err := resolveEndpoint("mvv", path)
	testutil.AssertNil(t, err)
	testutil.AssertEqual(t, url, "https://efa.mvv-muenchen.de/ng/")
}

func TestResolveEndpointDefaultPreset(t *testing.T) {
	path := writeConfig(t, sampleConfig)

	url, err := resolveEndpoint("", path)
	testutil.AssertNil(t, err)
	testutil.AssertEqual(t, url, "https://efa.vgn.de/vgnExt_oeffi/")
}

func TestResolveEndpointUnknownPreset(t *testing.T) {
	path := writeConfig(t, sampleConfig)

	_, err := resolveEndpoint("kvv", path)
	testutil.AssertError(t, err)
	testutil.AssertContains(t, err.Error(), "unknown endpoint preset")
}

func TestResolveEndpointNothingSelected(t *testing.T) {
	_, err := resolveEndpoint("", filepath.Join(t.TempDir(), "nope.yaml"))
	testutil.AssertError(t, err)
	testutil.AssertContains(t, err.Error(), "no endpoint selected")
}

func TestParseFilters(t *testing.T) {
	filters, err := parseFilters([]string{"stops", "POIs", " addresses "})
	testutil.AssertNil(t, err)
	testutil.AssertLen(t, filters, 3)

	_, err = parseFilters([]string{"trains"})
	testutil.AssertError(t, err)
	testutil.AssertContains(t, err.Error(), "unknown filter")
}

func TestParseDateTime(t *testing.T) {
	got := parseDateTime("24.12.2026", "18:05")
	testutil.AssertEqual(t, got.Year(), 2026)
	testutil.AssertEqual(t, int(got.Month()), 12)
	testutil.AssertEqual(t, got.Day(), 24)
	testutil.AssertEqual(t, got.Hour(), 18)
	testutil.AssertEqual(t, got.Minute(), 5)

	got = parseDateTime("2026-12-24", "")
	testutil.AssertEqual(t, got.Year(), 2026)
	testutil.AssertEqual(t, got.Day(), 24)

	// Two-digit years land in the 2000s.
	got = parseDateTime("24.12.26", "")
	testutil.AssertEqual(t, got.Year(), 2026)
}
