package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math/big"
	"os"
	"sync"
	"time"

	"github.com/cryptotoy/smp-go/pkg/smp"
	"github.com/cryptotoy/smp-go/pkg/smp/group"
	"github.com/cryptotoy/smp-go/pkg/smp/logging"
	"github.com/cryptotoy/smp-go/pkg/smp/mocknet"
	"github.com/cryptotoy/smp-go/pkg/smp/random"
)

type element = *group.MultiplicativeElement

func main() {
	var (
		aliceSecret = flag.String("alice", "", "Alice's secret: a decimal integer or any text (hashed)")
		bobSecret   = flag.String("bob", "", "Bob's secret: a decimal integer or any text (hashed)")
		configPath  = flag.String("config", "", "path to a JSON group/hash configuration")
		seed        = flag.String("seed", "", "seed for a reproducible run (never use for real secrets)")
		verbose     = flag.Bool("v", false, "log protocol steps")
		timeout     = flag.Duration("timeout", 30*time.Second, "overall run timeout")
	)
	flag.Parse()

	if *aliceSecret == "" || *bobSecret == "" {
		log.Fatal("--alice and --bob are required")
	}

	log.Printf("smp-go version: %s", smp.ModuleVersion())

	cfg := smp.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = smp.LoadConfig(*configPath); err != nil {
			log.Fatalf("load config: %v", err)
		}
	}
	grp, err := cfg.ModPGroup()
	if err != nil {
		log.Fatalf("group: %v", err)
	}
	opts, err := cfg.Options()
	if err != nil {
		log.Fatalf("options: %v", err)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := logging.New(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	opts = append(opts, smp.WithLogger(logger))

	aliceOpts, bobOpts, err := randomness(*seed, opts)
	if err != nil {
		log.Fatalf("seed: %v", err)
	}

	alice, err := smp.NewAlice[element](grp, parseSecret(*aliceSecret), aliceOpts...)
	if err != nil {
		log.Fatalf("NewAlice: %v", err)
	}
	bob, err := smp.NewBob[element](grp, parseSecret(*bobSecret), bobOpts...)
	if err != nil {
		log.Fatalf("NewBob: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	net := mocknet.New()
	defer net.Close()
	aliceEp, bobEp := net.Pair()

	var (
		wg               sync.WaitGroup
		aliceRes, bobRes smp.Result
		aliceErr, bobErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		aliceRes, aliceErr = smp.RunAlice(ctx, aliceEp, alice)
	}()
	go func() {
		defer wg.Done()
		bobRes, bobErr = smp.RunBob(ctx, bobEp, bob)
		if bobErr != nil {
			net.Close()
		}
	}()
	wg.Wait()

	if err := errors.Join(aliceErr, bobErr); err != nil {
		if errors.Is(err, smp.ErrProtocolAbort) {
			log.Fatalf("protocol aborted: %v", err)
		}
		log.Fatalf("run failed: %v", err)
	}
	if aliceRes.Equal != bobRes.Equal {
		log.Fatalf("parties disagree: alice=%t bob=%t", aliceRes.Equal, bobRes.Equal)
	}

	if aliceRes.Equal {
		fmt.Println("secrets match")
	} else {
		fmt.Println("secrets differ")
	}
}

func parseSecret(s string) *big.Int {
	if v, ok := new(big.Int).SetString(s, 10); ok && v.Sign() >= 0 {
		return v
	}
	return smp.HashSecret([]byte(s))
}

// randomness returns per-party options. With a seed each party gets its own
// deterministic stream.
func randomness(seed string, opts []smp.Option) ([]smp.Option, []smp.Option, error) {
	aliceOpts := append([]smp.Option(nil), opts...)
	bobOpts := append([]smp.Option(nil), opts...)
	if seed == "" {
		return aliceOpts, bobOpts, nil
	}
	ra, err := random.NewDeterministic([]byte(seed + "/alice"))
	if err != nil {
		return nil, nil, fmt.Errorf("alice stream: %w", err)
	}
	rb, err := random.NewDeterministic([]byte(seed + "/bob"))
	if err != nil {
		return nil, nil, fmt.Errorf("bob stream: %w", err)
	}
	return append(aliceOpts, smp.WithRand(ra)), append(bobOpts, smp.WithRand(rb)), nil
}
