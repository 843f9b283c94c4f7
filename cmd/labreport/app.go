package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/joseph-ayodele/labreport-extractor/internal/common"
	"github.com/joseph-ayodele/labreport-extractor/internal/extract"
	"github.com/joseph-ayodele/labreport-extractor/internal/pdftext"
	"github.com/joseph-ayodele/labreport-extractor/internal/profile"
)

// deps holds everything the commands share. Sources are factories so tests
// can swap the pdftotext backend out.
type deps struct {
	stdout, stderr io.Writer

	newSource    func(cfg *common.Config, logger *slog.Logger) extract.PageSource
	newProfileFn func(cfg *common.Config, logger *slog.Logger) profile.PageExtractor

	cfg    *common.Config
	logger *slog.Logger
}

func defaultDeps(stdout, stderr io.Writer) *deps {
	return &deps{
		stdout: stdout,
		stderr: stderr,
		newSource: func(cfg *common.Config, logger *slog.Logger) extract.PageSource {
			return extract.NewPDFSource(pdftext.NewExtractor(pdftext.Config{
				Pdftotext:   cfg.PDF.Pdftotext,
				MaxPages:    cfg.PDF.MaxPages,
				PageTimeout: cfg.PDF.PageTimeout,
			}, logger), logger)
		},
		newProfileFn: func(cfg *common.Config, logger *slog.Logger) profile.PageExtractor {
			return pdftext.NewExtractor(pdftext.Config{
				Pdftotext:   cfg.PDF.Pdftotext,
				MaxPages:    cfg.Profile.MaxPages,
				PageTimeout: cfg.PDF.PageTimeout,
			}, logger)
		},
	}
}

func newApp(d *deps) *cli.App {
	return &cli.App{
		Name:      "labreport",
		Usage:     "extract structured chemical results from laboratory report PDFs",
		Writer:    d.stdout,
		ErrWriter: d.stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "YAML config file (env vars override it)"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "debug logging"},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "only log errors"},
		},
		Before: d.setup,
		Commands: []*cli.Command{
			extractCommand(d),
			profileCommand(d),
		},
	}
}

// setup loads configuration and installs the JSON logger on stderr.
func (d *deps) setup(c *cli.Context) error {
	cfg, err := common.LoadConfig(c.String("config"))
	if err != nil {
		return err
	}
	if c.Bool("verbose") {
		cfg.Log.Level = "debug"
	}
	if c.Bool("quiet") {
		cfg.Log.Level = "error"
	}

	d.logger = slog.New(slog.NewJSONHandler(d.stderr, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}))
	slog.SetDefault(d.logger)
	d.cfg = cfg
	d.logger.Debug("config loaded", "config", cfg.String())
	return nil
}

func usageError(format string, args ...any) cli.ExitCoder {
	return cli.Exit(fmt.Sprintf("usage: "+format, args...), 1)
}
