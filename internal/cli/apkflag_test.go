package cli

import (
	"reflect"
	"testing"
)

func TestParseAPKFlags(t *testing.T) {
	t.Parallel()
	got, err := parseAPKFlags([]string{"x86=/path/to/x86.apk", "arm_v15=/path/to/arm_v15.apk"})
	if err != nil {
		t.Fatalf("parseAPKFlags: unexpected error: %v", err)
	}
	want := map[string]string{
		"x86":     "/path/to/x86.apk",
		"arm_v15": "/path/to/arm_v15.apk",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseAPKFlags = %v, want %v", got, want)
	}
}

func TestParseAPKFlags_PathMayContainEquals(t *testing.T) {
	t.Parallel()
	got, err := parseAPKFlags([]string{"x86=/weird=path.apk"})
	if err != nil {
		t.Fatalf("parseAPKFlags: unexpected error: %v", err)
	}
	if got["x86"] != "/weird=path.apk" {
		t.Errorf("parseAPKFlags = %v", got)
	}
}

func TestParseAPKFlags_Invalid(t *testing.T) {
	t.Parallel()
	cases := [][]string{
		{"no-separator"},
		{"=path-only"},
		{"arch-only="},
		{"x86=/a.apk", "x86=/b.apk"}, // duplicate arch
	}
	for _, flags := range cases {
		if _, err := parseAPKFlags(flags); err == nil {
			t.Errorf("parseAPKFlags(%v): expected error, got nil", flags)
		}
	}
}

func TestParseAPKFlags_Empty(t *testing.T) {
	t.Parallel()
	got, err := parseAPKFlags(nil)
	if err != nil {
		t.Fatalf("parseAPKFlags(nil): unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("parseAPKFlags(nil) = %v, want empty", got)
	}
}
