package scope

import (
	"testing"

	"github.com/mozilla-releng/pushapk/internal/channel"
	"github.com/mozilla-releng/pushapk/internal/errs"
)

func TestResolveChannel_SingleScope(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name   string
		scopes []string
		want   channel.Channel
	}{
		{"release", []string{"project:releng:googleplay:release"}, "release"},
		{"beta", []string{"project:releng:googleplay:beta"}, "beta"},
		{"aurora", []string{"project:releng:googleplay:aurora"}, "aurora"},
		{"custom channel", []string{"project:releng:googleplay:dep"}, "dep"},
		{
			"unrelated scopes ignored",
			[]string{"queue:get-artifact:*", "project:releng:googleplay:release", "docker-worker:cache:level-3"},
			"release",
		},
	}
	for _, tc := range cases {
		got, err := ResolveChannel(tc.scopes)
		if err != nil {
			t.Errorf("%s: ResolveChannel(%v): unexpected error: %v", tc.name, tc.scopes, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%s: ResolveChannel(%v) = %q, want %q", tc.name, tc.scopes, got, tc.want)
		}
	}
}

func TestResolveChannel_NoMatchingScope(t *testing.T) {
	t.Parallel()
	cases := [][]string{
		nil,
		{},
		{"queue:get-artifact:*"},
		{"project:releng:signing:release"},
	}
	for _, scopes := range cases {
		_, err := ResolveChannel(scopes)
		if errs.Code(err) != errs.CodeScopeInvalid {
			t.Errorf("ResolveChannel(%v): got %v, want code %q", scopes, err, errs.CodeScopeInvalid)
		}
	}
}

func TestResolveChannel_AmbiguousScopes(t *testing.T) {
	t.Parallel()
	scopes := []string{
		"project:releng:googleplay:beta",
		"project:releng:googleplay:release",
	}
	_, err := ResolveChannel(scopes)
	if errs.Code(err) != errs.CodeScopeInvalid {
		t.Errorf("ResolveChannel(%v): got %v, want code %q", scopes, err, errs.CodeScopeInvalid)
	}
}

func TestResolveChannel_NoExistenceCheck(t *testing.T) {
	t.Parallel()
	// Unknown channels resolve fine here; the trusted table rejects them
	// later with a distinct error code.
	got, err := ResolveChannel([]string{"project:releng:googleplay:non_existing_channel"})
	if err != nil {
		t.Fatalf("ResolveChannel: unexpected error: %v", err)
	}
	if got != "non_existing_channel" {
		t.Errorf("ResolveChannel = %q, want %q", got, "non_existing_channel")
	}
}

func TestResolve_CustomPrefix(t *testing.T) {
	t.Parallel()
	got, err := Resolve([]string{"project:mobile:focus:googleplay:release"}, "project:mobile:focus:googleplay:")
	if err != nil {
		t.Fatalf("Resolve: unexpected error: %v", err)
	}
	if got != "release" {
		t.Errorf("Resolve = %q, want %q", got, "release")
	}
}
