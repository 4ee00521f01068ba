package logging

import (
	"bytes"
	"context"
	"log/slog"
	"math/big"
	"strings"
	"testing"
)

func TestLoggerWritesThroughSlog(t *testing.T) {
	var buf bytes.Buffer
	l := New(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	l.With("party", "alice").Debug(context.Background(), "step", "name", "start", Redacted("a2"))

	out := buf.String()
	for _, want := range []string{"party=alice", "name=start", "a2=" + Placeholder()} {
		if !strings.Contains(out, want) {
			t.Fatalf("log output %q missing %q", out, want)
		}
	}
}

func TestNopDiscards(t *testing.T) {
	l := Nop()
	l.Error(context.Background(), "ignored")
	l.With("k", "v").Info(context.Background(), "ignored")
}

func TestFingerprintStableAndShort(t *testing.T) {
	v := new(big.Int).Lsh(big.NewInt(1), 1500)
	a := Fingerprint("g2a", v)
	b := Fingerprint("g2a", new(big.Int).Set(v))
	if a.Value.String() != b.Value.String() {
		t.Fatal("fingerprint not stable")
	}
	if len(a.Value.String()) != 8 {
		t.Fatalf("fingerprint %q has unexpected length", a.Value.String())
	}
	if Fingerprint("x", big.NewInt(2)).Value.String() == a.Value.String() {
		t.Fatal("distinct values share a fingerprint")
	}
	if Fingerprint("x", nil).Value.String() != "<nil>" {
		t.Fatal("nil value not rendered")
	}
}
