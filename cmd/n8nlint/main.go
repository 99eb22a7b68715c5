package main

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:                  "n8nlint",
		Usage:                 "Validate n8n workflow JSON files",
		EnableShellCompletion: true,
		Commands: []*cli.Command{
			NewValidateCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
