// Command snrcalc computes the signal-to-noise ratio of an observation.
//
// Usage:
//
//	snrcalc [flags] -request obs.yaml
//
// The instrument and calibration catalog come from -config (or ETC_CONFIG)
// layered under ETC_* environment variables. A scalar exposure prints one
// row; a range such as "10-100" prints the whole sweep.
//
// Examples:
//
//	snrcalc -config etc.yaml -request obs.yaml
//	snrcalc -config etc.yaml -request obs.yaml -json
//	snrcalc -config etc.yaml -list
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/cwbudde/algo-etc/calib/curve"
	"github.com/cwbudde/algo-etc/internal/config"
	"github.com/cwbudde/algo-etc/internal/logging"
	"github.com/cwbudde/algo-etc/observe/sweep"
)

var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	if errors.Is(err, errUsage) || errors.Is(err, flag.ErrHelp) {
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "snrcalc: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("snrcalc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "configuration file (default $ETC_CONFIG)")
	requestPath := fs.String("request", "", "observation request file (YAML)")
	asJSON := fs.Bool("json", false, "print the report as JSON")
	list := fs.Bool("list", false, "list configured filters, grisms and templates")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: snrcalc [flags] -request obs.yaml\n\n")
		fmt.Fprintf(stderr, "Computes the signal-to-noise ratio of an imaging or spectroscopic observation.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	log := logging.NewWithWriter(cfg.Log, stderr)

	store, err := cfg.Catalog.Open()
	if err != nil {
		return err
	}

	if *list {
		fmt.Fprint(stdout, renderCatalog(store))
		return nil
	}
	if *requestPath == "" {
		fs.Usage()
		return errUsage
	}

	req, err := config.LoadRequest(*requestPath)
	if err != nil {
		return err
	}

	driver := sweep.NewDriver(store, cfg.Instrument.Params(), curve.DefaultGrid(),
		sweep.WithLogger(log),
		sweep.WithSweepOptions(
			sweep.WithWorkers(cfg.Sweep.Workers),
			sweep.WithTimeout(cfg.Sweep.Timeout),
		),
	)
	report, err := driver.Do(ctx, req)
	if err != nil {
		return err
	}

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	fmt.Fprint(stdout, renderReport(req, report))
	return nil
}
