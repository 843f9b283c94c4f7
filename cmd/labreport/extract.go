package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/joseph-ayodele/labreport-extractor/constants"
	"github.com/joseph-ayodele/labreport-extractor/internal/common"
	"github.com/joseph-ayodele/labreport-extractor/internal/export"
	"github.com/joseph-ayodele/labreport-extractor/internal/pipeline"
	"github.com/joseph-ayodele/labreport-extractor/internal/schema"
)

func extractCommand(d *deps) *cli.Command {
	return &cli.Command{
		Name:      "extract",
		Usage:     "extract site, sample and certificate data from one report",
		ArgsUsage: "<pdf_path> [output_path]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: "output format: json or yaml (default from config)"},
			&cli.StringFlag{Name: "xlsx", Usage: "also write an XLSX workbook to this path"},
			&cli.BoolFlag{Name: "no-validate", Usage: "skip schema validation of the output"},
		},
		Action: d.extractAction,
	}
}

func (d *deps) extractAction(c *cli.Context) error {
	src := strings.TrimSpace(c.Args().Get(0))
	if src == "" {
		return usageError("%s extract <pdf_path> [output_path]", c.App.Name)
	}

	cfg := *d.cfg
	if f := c.String("format"); f != "" {
		cfg.Output.Format = strings.ToLower(f)
	}
	if c.Bool("no-validate") {
		cfg.Output.Validate = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	p := pipeline.NewPipeline(d.logger, d.newSource(&cfg, d.logger))
	report, err := p.Run(c.Context, src)
	if err != nil {
		return err
	}

	if cfg.Output.Validate {
		asJSON, err := pipeline.Encode(report, common.FormatJSON)
		if err != nil {
			return err
		}
		if err := schema.ValidateJSONAgainstSchema(schema.BuildReportJSONSchema(), asJSON); err != nil {
			return err
		}
	}

	data, err := pipeline.Encode(report, cfg.Output.Format)
	if err != nil {
		return err
	}

	out := c.Args().Get(1)
	if out == "" {
		out = defaultOutputPath(src, cfg.Output.Format)
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return common.WrapError(err, "write output")
	}

	if xlsxPath := c.String("xlsx"); xlsxPath != "" {
		book, err := export.NewService(d.logger).ReportXLSX(c.Context, report)
		if err != nil {
			return err
		}
		if err := os.WriteFile(xlsxPath, book, 0o644); err != nil {
			return common.WrapError(err, "write xlsx")
		}
	}

	if _, err := d.stdout.Write(data); err != nil {
		return err
	}
	fmt.Fprintf(d.stderr, "Wrote structured chemical summary to %s\n", out)
	return nil
}

// defaultOutputPath puts "<stem>_chemical_summary.<ext>" next to the source.
func defaultOutputPath(src, format string) string {
	ext := ".json"
	if format == common.FormatYAML {
		ext = ".yaml"
	}
	stem := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	return filepath.Join(filepath.Dir(src), stem+constants.SummarySuffix+ext)
}
