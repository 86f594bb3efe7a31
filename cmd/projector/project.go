package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/yourusername/scoreline/internal/engine"
	"github.com/yourusername/scoreline/internal/models"
	"github.com/yourusername/scoreline/internal/snapshot"
)

// Output formats of the project command
const (
	OutputJSON  = "json"
	OutputYAML  = "yaml"
	OutputTable = "table"
)

func newProjectCmd() *cobra.Command {
	var (
		input  string
		output string
	)

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project fair prices for one market snapshot",
		Example: `  projector project --input event.yaml
  projector project --input event.json --format table`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkOutputFormat(output); err != nil {
				return err
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			log := newAppLogger(cfg, cmd)

			snap, err := snapshot.LoadFile(input)
			if err != nil {
				return fmt.Errorf("failed to load snapshot %s: %w", input, err)
			}

			e, err := engine.NewFromConfig(&cfg.Engine, log)
			if err != nil {
				return fmt.Errorf("failed to build engine: %w", err)
			}

			p, err := e.ProjectSnapshot(context.Background(), snap)
			if err != nil {
				return fmt.Errorf("projection failed: %w", err)
			}

			return writeProjection(cmd.OutOrStdout(), p, output)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Snapshot file (.json, .yaml or .yml)")
	cmd.Flags().StringVarP(&output, "format", "f", OutputJSON, "Output format: json, yaml or table")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func checkOutputFormat(format string) error {
	switch format {
	case OutputJSON, OutputYAML, OutputTable:
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want json, yaml or table)", format)
	}
}

func writeProjection(w io.Writer, p *models.Projection, format string) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(p); err != nil {
			return err
		}
		return enc.Close()
	case OutputTable:
		return writeTable(w, p)
	default:
		return checkOutputFormat(format)
	}
}

func writeTable(w io.Writer, p *models.Projection) error {
	if p.EventID != "" {
		fmt.Fprintf(w, "Event: %s\n", p.EventID)
	}
	fmt.Fprintf(w, "Path: %s\n", p.Path)
	if p.Path == models.PathInsufficient {
		fmt.Fprintln(w, "No usable market data; nothing projected.")
		return nil
	}
	fmt.Fprintf(w, "Rates: home %.3f, away %.3f (mu %.3f)\n", p.Rates.Home, p.Rates.Away, p.Mu)
	for _, fb := range p.Fallbacks {
		fmt.Fprintf(w, "Fallback: %s\n", fb)
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "MARKET\tOUTCOME\tFAIR ODDS")
	fmt.Fprintln(tw, strings.Join([]string{"------", "-------", "---------"}, "\t"))
	for _, m := range p.Markets {
		fmt.Fprintf(tw, "%s\t%s\t%.3f\n", m.MarketType, m.Outcome, m.FairOdds)
	}
	return tw.Flush()
}
