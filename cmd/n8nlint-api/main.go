package main

import (
	"context"
	"os"

	cli "github.com/urfave/cli/v3"
	noop "go.opentelemetry.io/otel/trace/noop"

	"github.com/n8nlint/n8nlint/pkg/log"
	"github.com/n8nlint/n8nlint/pkg/otelhelper"
	"github.com/n8nlint/n8nlint/pkg/rules"
)

const defaultPort = 9090

func main() {
	cmd := &cli.Command{
		Name:                  "n8nlint-api",
		Usage:                 "Validate n8n workflows over HTTP",
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to run the API server on",
				Value:   defaultPort,
				Sources: cli.EnvVars("PORT"),
			},
			&cli.BoolFlag{
				Name:    "tracing",
				Usage:   "Export traces to the OTLP endpoint configured via OTEL_* env vars",
				Sources: cli.EnvVars("TRACING_ENABLED"),
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

			logger := log.WithModule("api")
			logger.InfoContext(ctx, "Initializing n8nlint API")

			tracer := noop.NewTracerProvider().Tracer("n8nlint-api")

			if command.Bool("tracing") {
				t, err := otelhelper.NewTracer(ctx, "n8nlint-api")
				if err != nil {
					logger.ErrorContext(ctx, "Failed to initialize tracer", "error", err)

					return err
				}

				tracer = t
			}

			api := NewAPI(logger, rules.DefaultRegistry(rules.DefaultCatalog()), tracer)

			if err := api.Start(command.Int("port")); err != nil {
				logger.ErrorContext(ctx, "Failed to start API server", "error", err)

				return err
			}

			return nil
		},
	}

	err := cmd.Run(context.Background(), os.Args)
	if err != nil {
		panic(err)
	}
}
