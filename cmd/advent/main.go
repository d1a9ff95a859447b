package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"

	httpadapter "svw.info/advent/internal/adapters/http"
	"svw.info/advent/internal/config"
	"svw.info/advent/internal/domain"
	"svw.info/advent/internal/infrastructure/storage"
	"svw.info/advent/internal/sample"
	"svw.info/advent/internal/solver"
	"svw.info/advent/internal/usecase"
)

func main() {
	cfg := config.Load()

	day := flag.Int("day", 0, "day to run; 0 runs every registered day")
	inputPath := flag.String("input", "", "input file (default: the day's file under -data)")
	dataDir := flag.String("data", cfg.DataDir, "directory holding inputs and saved answers")
	serve := flag.String("serve", "", "listen address; serve the HTTP API instead of solving (e.g. "+cfg.Addr+")")
	levelStr := flag.String("log-level", cfg.LogLevel, "debug|info|warn|error")
	onlySample := flag.Bool("sample", false, "only run the worked example")
	skipSample := flag.Bool("skip-sample", false, "skip checking the worked example")
	prof := flag.String("profile", "", "write a profile: cpu|mem")
	flag.Parse()

	log := config.NewLogger(*levelStr)
	opts := options{
		day:        *day,
		inputPath:  *inputPath,
		dataDir:    *dataDir,
		serve:      *serve,
		profile:    strings.ToLower(*prof),
		profileDir: ".",
		onlySample: *onlySample,
		skipSample: *skipSample,
	}
	// Fatal exits without running defers, so it stays out of run.
	if err := run(log, opts); err != nil {
		log.Fatal(err)
	}
}

type options struct {
	day        int
	inputPath  string
	dataDir    string
	serve      string
	profile    string
	profileDir string
	onlySample bool
	skipSample bool
}

func run(log *logrus.Logger, opts options) error {
	switch opts.profile {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(opts.profileDir), profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(opts.profileDir), profile.Quiet).Stop()
	default:
		return fmt.Errorf("unknown profile kind %q", opts.profile)
	}

	// Wire providers → use cases → adapters
	st := storage.NewFS(opts.dataDir)
	uc := usecase.NewService(st, log, solver.All()...)

	if opts.serve != "" {
		return runServer(log, uc, opts.serve)
	}

	days := []int{opts.day}
	if opts.day == 0 {
		if opts.inputPath != "" {
			return errors.New("-input needs -day")
		}
		days = days[:0]
		for _, d := range uc.Days() {
			days = append(days, d.Day)
		}
	}
	ctx := context.Background()
	for _, d := range days {
		if err := runDay(ctx, log, uc, d, opts.inputPath, opts.onlySample, opts.skipSample); err != nil {
			return fmt.Errorf("day %d: %w", d, err)
		}
	}
	return nil
}

func runDay(ctx context.Context, log logrus.FieldLogger, uc *usecase.Service, day int, inputPath string, onlySample, skipSample bool) error {
	if !skipSample {
		smp, err := sample.For(day)
		if err != nil {
			return err
		}
		t0 := time.Now()
		got, _, err := uc.Solve(ctx, day, smp.Input)
		if err != nil {
			return fmt.Errorf("sample: %w", err)
		}
		if err := smp.Check(got); err != nil {
			return err
		}
		log.WithFields(logrus.Fields{"day": day, "dur": time.Since(t0).Round(time.Microsecond)}).Info("sample ok")
	}
	if onlySample {
		return nil
	}

	var (
		a   domain.Answer
		err error
	)
	t0 := time.Now()
	if inputPath != "" {
		b, rerr := os.ReadFile(inputPath)
		if rerr != nil {
			return rerr
		}
		a, _, err = uc.Solve(ctx, day, string(b))
	} else {
		a, _, err = uc.SolveStored(ctx, day)
	}
	if err != nil {
		return err
	}
	dur := time.Since(t0).Round(time.Microsecond)
	fmt.Printf("day %d (%s)\n", a.Day, a.Title)
	fmt.Printf("  part 1: %d\n", a.Part1)
	fmt.Printf("  part 2: %d\n", a.Part2)
	log.WithFields(logrus.Fields{"day": day, "dur": dur}).Debug("done")
	return nil
}

func runServer(log *logrus.Logger, uc *usecase.Service, addr string) error {
	if log.GetLevel() < logrus.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), httpadapter.RequestLogger(log))
	httpadapter.New(uc).Register(r)

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.WithFields(logrus.Fields{"addr": addr, "days": len(uc.Days())}).Info("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
