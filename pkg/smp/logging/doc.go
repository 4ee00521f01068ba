// Package logging provides the small logging facade used by smp-go.
//
// Logger wraps the context-aware subset of log/slog. New binds it to an
// slog.Logger (slog.Default() when nil) and Nop discards everything, which is
// the session default.
//
//	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
//	logger := logging.New(slog.New(handler))
//	alice, _ := smp.NewAlice(grp, secret, smp.WithLogger(logger))
//
// # Secrets
//
// Never log secrets, exponents or nonces. Use Redacted to record that a value
// was withheld and Fingerprint to correlate public group elements across the
// two parties' logs.
package logging
