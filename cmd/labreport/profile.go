package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/joseph-ayodele/labreport-extractor/internal/common"
	"github.com/joseph-ayodele/labreport-extractor/internal/profile"
)

func profileCommand(d *deps) *cli.Command {
	return &cli.Command{
		Name:      "profile",
		Usage:     "summarize the structure of every PDF in a directory",
		ArgsUsage: "<directory>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Value: "pdf_analysis_results.json", Usage: "where to write per-file profiles"},
			&cli.IntFlag{Name: "workers", Usage: "files profiled at once (default from config)"},
		},
		Action: d.profileAction,
	}
}

func (d *deps) profileAction(c *cli.Context) error {
	dir := strings.TrimSpace(c.Args().Get(0))
	if dir == "" {
		return usageError("%s profile <directory>", c.App.Name)
	}

	cfg := *d.cfg
	if w := c.Int("workers"); w > 0 {
		cfg.Profile.Workers = w
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	profiler := profile.NewProfiler(d.newProfileFn(&cfg, d.logger), cfg.Profile, d.logger)
	results, err := profiler.ProfileDirectory(c.Context, dir)
	if err != nil {
		return err
	}
	fmt.Fprintf(d.stdout, "Found %d PDF files\n", len(results))

	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return common.WrapError(err, "encode profiles")
	}
	if err := os.WriteFile(c.String("out"), data, 0o644); err != nil {
		return common.WrapError(err, "write profiles")
	}

	fmt.Fprintf(d.stdout, "\n%s", profile.Summarize(results))
	return nil
}
