package acrotex

import (
	"strings"
	"testing"
)

func TestDetectOSC8SupportHonorsOptOut(t *testing.T) {
	t.Setenv("OSC8", "0")
	t.Setenv("WT_SESSION", "1")
	if DetectOSC8Support() {
		t.Fatalf("OSC8=0 must disable hyperlinks")
	}
}

func TestDetectOSC8SupportVTE(t *testing.T) {
	for _, key := range []string{"OSC8", "DOMTERM", "WT_SESSION", "TERM_PROGRAM", "TERM"} {
		t.Setenv(key, "")
	}
	t.Setenv("VTE_VERSION", "6003")
	if !DetectOSC8Support() {
		t.Fatalf("expected VTE >= 5000 to support OSC8")
	}
	t.Setenv("VTE_VERSION", "4000")
	if DetectOSC8Support() {
		t.Fatalf("expected old VTE to lack OSC8")
	}
}

func TestFileHyperlink(t *testing.T) {
	link := fileHyperlink("/tmp/out.tex", "out.tex")
	if !strings.HasPrefix(link, osc8Start+"file:///tmp/out.tex"+osc8Sep+"out.tex") || !strings.HasSuffix(link, osc8End) {
		t.Fatalf("unexpected hyperlink %q", link)
	}
}
