package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/scenewright/sceneqc/cli/config"
	"github.com/scenewright/sceneqc/cli/render"
	"github.com/scenewright/sceneqc/cli/tui"
	"github.com/scenewright/sceneqc/iox"
	"github.com/scenewright/sceneqc/log"
	"github.com/scenewright/sceneqc/memstage"
	"github.com/scenewright/sceneqc/metrics"
	"github.com/scenewright/sceneqc/report"
	"github.com/scenewright/sceneqc/stage"
	"github.com/scenewright/sceneqc/types"
	"github.com/scenewright/sceneqc/validate"
)

// Exit codes for scan.
const (
	exitPassed      = 0
	exitErrorsFound = 1
	exitScanFailure = 2
)

// ScanCommand returns the scan command, the only command that executes work.
func ScanCommand() *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:  "stage",
			Usage: "Path to the scene document to scan",
		},
		&cli.StringFlag{
			Name:  "config",
			Usage: "Path to sceneqc.yaml config file",
		},
		&cli.StringFlag{
			Name:  "checks",
			Usage: "Comma-separated validators: references, materials, render, attributes, or all",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "Emit structured scan diagnostics to stderr",
		},
		&cli.BoolFlag{
			Name:  "quiet",
			Usage: "Suppress report output",
		},
		// Report sink flags
		&cli.StringFlag{
			Name:  "report-backend",
			Usage: "Report sink backend: file or s3",
		},
		&cli.StringFlag{
			Name:  "report-path",
			Usage: "Base directory for the file report sink",
		},
		&cli.StringFlag{
			Name:  "s3-bucket",
			Usage: "Bucket for the s3 report sink, format bucket or bucket/prefix",
		},
		&cli.StringFlag{
			Name:  "s3-region",
			Usage: "AWS region for the s3 report sink",
		},
		&cli.StringFlag{
			Name:  "s3-endpoint",
			Usage: "Custom S3 endpoint (R2, MinIO)",
		},
		&cli.BoolFlag{
			Name:  "s3-path-style",
			Usage: "Force path-style S3 addressing",
		},
	}
	flags = append(flags, OutputFlags()...)

	return &cli.Command{
		Name:   "scan",
		Usage:  "Run QC validators over a scene document",
		Flags:  flags,
		Action: scanAction,
	}
}

func scanAction(c *cli.Context) error {
	cfg := &config.Config{}
	if path := c.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cli.Exit(err.Error(), exitScanFailure)
		}
		cfg = loaded
	}

	stagePath := c.String("stage")
	if stagePath == "" {
		stagePath = cfg.Stage
	}
	if stagePath == "" {
		return cli.Exit("no scene document: pass --stage or set stage in the config file", exitScanFailure)
	}

	st, err := memstage.LoadFile(stagePath)
	if err != nil {
		return cli.Exit(err.Error(), exitScanFailure)
	}

	checks, err := resolveChecks(c, cfg)
	if err != nil {
		return cli.Exit(err.Error(), exitScanFailure)
	}

	sink, err := buildSink(c, cfg)
	if err != nil {
		return cli.Exit(err.Error(), exitScanFailure)
	}

	if c.Bool("tui") {
		return runDialog(c, st, checks, sink)
	}

	r, err := render.NewRenderer(c)
	if err != nil {
		return cli.Exit(err.Error(), exitScanFailure)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rep, err := runScan(ctx, c, st, checks)
	if err != nil {
		return cli.Exit(fmt.Sprintf("scan aborted: %v", err), exitScanFailure)
	}

	if sink != nil {
		defer iox.DiscardClose(sink)
		if err := sink.Write(ctx, rep); err != nil {
			return cli.Exit(fmt.Sprintf("report sink: %v", err), exitScanFailure)
		}
	}

	if !c.Bool("quiet") {
		if err := r.RenderReport(rep); err != nil {
			return cli.Exit(err.Error(), exitScanFailure)
		}
	}

	if len(rep.Errors) > 0 {
		return cli.Exit("", exitErrorsFound)
	}
	return nil
}

// runScan executes one scan session over st with the given selection.
func runScan(ctx context.Context, c *cli.Context, st stage.Stage, checks types.CheckSet) (*types.Report, error) {
	scanID := uuid.NewString()
	opts := []validate.Option{
		validate.WithScanID(scanID),
		validate.WithChecks(checks),
		validate.WithMetrics(metrics.NewCollector()),
	}
	if c.Bool("verbose") {
		logger := log.NewLogger(log.ScanMeta{ScanID: scanID, Stage: st.Identifier()})
		opts = append(opts, validate.WithLogger(logger))
	}
	return validate.NewScanner(st, opts...).Run(ctx)
}

// runDialog drives the interactive QC dialog. Each run action creates a
// fresh scan session with the dialog's current selection; reports are
// persisted through the sink when one is configured.
func runDialog(c *cli.Context, st stage.Stage, initial types.CheckSet, sink report.Sink) error {
	if sink != nil {
		defer iox.DiscardClose(sink)
	}
	scan := func(set types.CheckSet) (*types.Report, error) {
		rep, err := runScan(c.Context, c, st, set)
		if err != nil {
			return nil, err
		}
		if sink != nil {
			if err := sink.Write(c.Context, rep); err != nil {
				return nil, err
			}
		}
		return rep, nil
	}
	if err := tui.RunDialog(st.Identifier(), initial, scan); err != nil {
		return cli.Exit(err.Error(), exitScanFailure)
	}
	return nil
}

// resolveChecks applies the flag > config > all-enabled precedence.
func resolveChecks(c *cli.Context, cfg *config.Config) (types.CheckSet, error) {
	if s := c.String("checks"); s != "" {
		return types.ParseCheckSet(s)
	}
	return cfg.CheckSet()
}

// buildSink constructs the configured report sink, or nil when report
// persistence is not requested. CLI flags override config values.
func buildSink(c *cli.Context, cfg *config.Config) (report.Sink, error) {
	backend := c.String("report-backend")
	if backend == "" {
		backend = cfg.Report.Backend
	}

	switch backend {
	case "":
		return nil, nil
	case "file":
		base := c.String("report-path")
		if base == "" {
			base = cfg.Report.Path
		}
		if base == "" {
			return nil, fmt.Errorf("file report sink requires --report-path")
		}
		return report.NewFileSink(base), nil
	case "s3":
		s3cfg := report.S3Config{
			Bucket:       cfg.Report.Bucket,
			Prefix:       cfg.Report.Prefix,
			Region:       cfg.Report.Region,
			Endpoint:     cfg.Report.Endpoint,
			UsePathStyle: cfg.Report.S3PathStyle,
		}
		if path := c.String("s3-bucket"); path != "" {
			s3cfg.Bucket, s3cfg.Prefix = report.ParseS3Path(path)
		}
		if region := c.String("s3-region"); region != "" {
			s3cfg.Region = region
		}
		if endpoint := c.String("s3-endpoint"); endpoint != "" {
			s3cfg.Endpoint = endpoint
		}
		if c.Bool("s3-path-style") {
			s3cfg.UsePathStyle = true
		}
		return report.NewS3Sink(c.Context, s3cfg)
	default:
		return nil, fmt.Errorf("unknown report backend %q (must be file or s3)", backend)
	}
}
