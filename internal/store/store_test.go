package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mozilla-releng/pushapk/internal/errs"
)

// --- helpers ---

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pushapk.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

const testConfig = `
has_nightly_track = true

[channels.release]
service_account = "release_account"
certificate = "/path/to/release.p12"

[channels.dep]
service_account = "dummy_dep"
certificate = "/path/to/dummy_non_p12_file"
`

// --- Load ---

func TestLoad(t *testing.T) {
	t.Parallel()
	s, err := Load(writeConfig(t, testConfig))
	if err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}

	if !s.HasNightlyTrack {
		t.Error("HasNightlyTrack = false, want true")
	}
	if len(s.Channels) != 2 {
		t.Fatalf("len(Channels) = %d, want 2", len(s.Channels))
	}
	release := s.Channels["release"]
	if release.ServiceAccount != "release_account" {
		t.Errorf("release.ServiceAccount = %q, want %q", release.ServiceAccount, "release_account")
	}
	if release.Certificate != "/path/to/release.p12" {
		t.Errorf("release.Certificate = %q, want %q", release.Certificate, "/path/to/release.p12")
	}
}

func TestLoad_MissingFileIsFatal(t *testing.T) {
	t.Parallel()
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err == nil {
		t.Fatal("Load(missing): expected error, got nil")
	}
}

func TestLoad_MalformedTOML(t *testing.T) {
	t.Parallel()
	_, err := Load(writeConfig(t, "[channels.release\nbroken"))
	if err == nil {
		t.Fatal("Load(malformed): expected error, got nil")
	}
}

// --- Credentials ---

func TestCredentials(t *testing.T) {
	t.Parallel()
	s, err := Load(writeConfig(t, testConfig))
	if err != nil {
		t.Fatal(err)
	}

	creds, err := s.Credentials("release")
	if err != nil {
		t.Fatalf("Credentials(release): unexpected error: %v", err)
	}
	if creds.ServiceAccount != "release_account" {
		t.Errorf("ServiceAccount = %q, want %q", creds.ServiceAccount, "release_account")
	}
}

func TestCredentials_UnknownChannel(t *testing.T) {
	t.Parallel()
	s, err := Load(writeConfig(t, testConfig))
	if err != nil {
		t.Fatal(err)
	}

	_, err = s.Credentials("non_existing_channel")
	if errs.Code(err) != errs.CodeChannelNotConfigured {
		t.Errorf("Credentials(unknown): got %v, want code %q", err, errs.CodeChannelNotConfigured)
	}
}

func TestCredentials_EmptyStore(t *testing.T) {
	t.Parallel()
	s := &Store{}
	_, err := s.Credentials("release")
	if errs.Code(err) != errs.CodeChannelNotConfigured {
		t.Errorf("Credentials(empty store): got %v, want code %q", err, errs.CodeChannelNotConfigured)
	}
}

// --- ChannelNames ---

func TestChannelNames_Sorted(t *testing.T) {
	t.Parallel()
	s := &Store{Channels: map[string]Credentials{
		"release": {},
		"aurora":  {},
		"dep":     {},
	}}
	got := s.ChannelNames()
	want := []string{"aurora", "dep", "release"}
	if len(got) != len(want) {
		t.Fatalf("ChannelNames() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ChannelNames()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
