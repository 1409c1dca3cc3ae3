// Command flightwatch lists flights near a position through the flight tower proxy.
//
// Usage:
//
//	flightwatch nearby [--lat 52.23 --lon 21.01] [--radius 25] [--limit 10] [--interval 30s] [-o table|json|csv]
//	flightwatch detail <flight-id> [-o table|json]
//
// Every flag can also be set as FLIGHTWATCH_<FLAG> or in the YAML file given by --config.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/flight-tower/flight-tower/internal/client"
	"github.com/flight-tower/flight-tower/internal/domain"
	"github.com/flight-tower/flight-tower/internal/infrastructure/logger"
	"github.com/flight-tower/flight-tower/internal/infrastructure/timeutil"
)

const usage = `usage: flightwatch <command> [flags]

commands:
  nearby          list flights around a position (IP location when --lat/--lon are omitted)
  detail <id>     show the detail of one flight
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr, os.LookupEnv))
}

// run executes one command and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, lookupEnv func(string) (string, bool)) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	command, rest := args[0], args[1:]
	fs := newFlagSet(command)
	fs.SetOutput(stderr)

	cfg, err := loadConfig(fs, rest, lookupEnv)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, "flightwatch:", err)
		return 2
	}

	log := logger.NewWithOutput(logger.Config{
		Level:       cfg.LogLevel,
		Format:      "console",
		ServiceName: "flightwatch",
	}, stderr)
	ctx = log.WithContext(ctx)

	c, err := client.New(cfg.Server,
		client.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		client.WithRetry(cfg.RetryPolicy()),
	)
	if err != nil {
		fmt.Fprintln(stderr, "flightwatch:", err)
		return 2
	}

	switch command {
	case "nearby":
		err = nearby(ctx, c, cfg, stdout)
	case "detail":
		if fs.NArg() != 1 {
			fmt.Fprintln(stderr, "flightwatch: detail needs exactly one flight id")
			return 2
		}
		err = detail(ctx, c, cfg, domain.FlightID(fs.Arg(0)), stdout)
	default:
		fmt.Fprintf(stderr, "flightwatch: unknown command %q\n\n%s", command, usage)
		return 2
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Str("command", command).Msg("Command failed")
		return 1
	}
	return 0
}

// nearby prints the flights around the configured position, once or every cfg.Interval.
func nearby(ctx context.Context, c *client.Client, cfg *watchConfig, out io.Writer) error {
	if !cfg.HasPosition {
		loc, err := c.GetIPLocation(ctx)
		if err != nil {
			return fmt.Errorf("resolve position: %w", err)
		}
		if loc.IsZero() {
			zerolog.Ctx(ctx).Warn().Msg("IP location unavailable, searching around 0,0")
		}
		cfg.Lat, cfg.Lon = loc.Lat, loc.Lon
	}

	return watch(ctx, client.NewSearchCache(c, timeutil.NewRealClock(), cfg.CacheTTL), cfg, out)
}

// watch renders one snapshot and repeats on every tick until ctx is done.
func watch(ctx context.Context, cache *client.SearchCache, cfg *watchConfig, out io.Writer) error {
	criteria := cfg.Criteria()

	render := func() error {
		snap, err := cache.Get(ctx, criteria)
		if err != nil {
			return err
		}
		if snap.Stale {
			zerolog.Ctx(ctx).Warn().Err(snap.Err).Msg("Refresh failed, showing previous result")
		}
		return renderSearch(out, cfg.Format, snap)
	}

	if err := render(); err != nil || cfg.Interval == 0 {
		return err
	}

	ticker := time.NewTicker(cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := render(); err != nil {
				return err
			}
		}
	}
}

func detail(ctx context.Context, c *client.Client, cfg *watchConfig, id domain.FlightID, out io.Writer) error {
	if cfg.Format == formatCSV {
		return errCSVDetail
	}
	d, err := c.GetFlight(ctx, id)
	if err != nil {
		return err
	}
	return renderDetail(out, cfg.Format, id, d)
}
