package ratelimit

import (
	"testing"

	"golang.org/x/time/rate"
)

func TestAllow_EnforcesBurst(t *testing.T) {
	l := New(rate.Limit(0.001), 2)

	if !l.Allow("10.0.0.1") {
		t.Fatal("expected first attempt to pass")
	}
	if !l.Allow("10.0.0.1") {
		t.Fatal("expected second attempt to pass")
	}
	if l.Allow("10.0.0.1") {
		t.Error("expected third attempt to be throttled")
	}
}

func TestAllow_TracksClientsIndependently(t *testing.T) {
	l := New(rate.Limit(0.001), 1)

	if !l.Allow("10.0.0.1") {
		t.Fatal("expected first client to pass")
	}
	if l.Allow("10.0.0.1") {
		t.Error("expected first client to be throttled")
	}
	if !l.Allow("10.0.0.2") {
		t.Error("expected second client to be unaffected")
	}
}

func TestReset(t *testing.T) {
	l := New(rate.Limit(0.001), 1)

	l.Allow("10.0.0.1")
	if l.Allow("10.0.0.1") {
		t.Fatal("expected throttling before reset")
	}

	l.Reset()
	if !l.Allow("10.0.0.1") {
		t.Error("expected a fresh allowance after reset")
	}
}
