package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/n8nlint/n8nlint/pkg/loader"
	"github.com/n8nlint/n8nlint/pkg/log"
	"github.com/n8nlint/n8nlint/pkg/models"
	"github.com/n8nlint/n8nlint/pkg/reporter"
	"github.com/n8nlint/n8nlint/pkg/rules"
)

func NewValidateCommand() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Aliases:   []string{"v"},
		Usage:     "Validate workflow files against the built-in rules",
		ArgsUsage: "FILE [FILE...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output results as JSON",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			log.Setup(command.String("log-level"))

			paths := command.Args().Slice()
			if len(paths) == 0 {
				return cli.Exit("no workflow files given", 2)
			}

			logger := log.WithModule("n8nlint")
			runner := rules.NewRunner(logger)
			registry := rules.DefaultRegistry(rules.DefaultCatalog())

			reports := make([]*models.ValidationReport, 0, len(paths))
			failed := false

			for _, result := range loader.New(logger).LoadAll(paths) {
				if result.Err != nil {
					fmt.Fprintf(os.Stderr, "Error: %v\n", result.Err)

					failed = true

					continue
				}

				report, err := runner.Run(result.Workflow, registry.Rules())
				if err != nil {
					return fmt.Errorf("validation failed for %s: %w", result.Path, err)
				}

				reports = append(reports, report)
			}

			if err := printReports(command.Bool("json"), reports); err != nil {
				return err
			}

			for _, report := range reports {
				if !report.IsValid() {
					failed = true
				}
			}

			if failed {
				return cli.Exit("", 1)
			}

			return nil
		},
	}
}

func printReports(asJSON bool, reports []*models.ValidationReport) error {
	if !asJSON {
		for _, report := range reports {
			fmt.Println(reporter.Text(report))
			fmt.Println()
		}

		return nil
	}

	if len(reports) == 1 {
		out, err := reporter.JSONString(reports[0])
		if err != nil {
			return err
		}

		fmt.Println(out)

		return nil
	}

	documents := make([]reporter.Document, 0, len(reports))
	for _, report := range reports {
		documents = append(documents, reporter.JSON(report))
	}

	out, err := json.MarshalIndent(documents, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode reports: %w", err)
	}

	fmt.Println(string(out))

	return nil
}
