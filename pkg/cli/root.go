// Copyright (c) 2025, The Cookbook Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/devdonalds/cookbook/pkg/defaults"
	"github.com/devdonalds/cookbook/pkg/logging"
	"github.com/devdonalds/cookbook/pkg/serializer"
)

const (
	name           = "cookbook"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file path (default: stdout)",
	}

	fetchTimeoutFlag = &cli.DurationFlag{
		Name:  "fetch-timeout",
		Value: defaults.HTTPClientTimeout,
		Usage: "total timeout for fetching an http/https document",
	}

	maxDocumentBytesFlag = &cli.Int64Flag{
		Name:  "max-document-bytes",
		Value: defaults.MaxDocumentBytes,
		Usage: "reject http/https documents larger than this",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatJSON),
		Usage: fmt.Sprintf("output format (supported values: %s)",
			strings.Join(serializer.SupportedFormats(), ", ")),
	}
)

// documentFlag is a fresh --file flag; Required flags carry parse state.
func documentFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "file",
		Aliases:  []string{"f"},
		Usage:    "path or http/https URL of the cookbook document",
		Required: true,
	}
}

// fetchOptions configures remote document fetches from command flags.
func fetchOptions(cmd *cli.Command) []serializer.HttpReaderOption {
	return []serializer.HttpReaderOption{
		serializer.WithUserAgent(name + "/" + version),
		serializer.WithTotalTimeout(cmd.Duration("fetch-timeout")),
		serializer.WithMaxBytes(cmd.Int64("max-document-bytes")),
	}
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "cookbook - recipe registry and resolution",
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		EnableShellCompletion: true,
		Description: `Register base ingredients and composite recipes, then resolve a recipe
into the total quantity of every base ingredient and the total cook time.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "log level (debug, info, warn, error)",
				Sources: cli.EnvVars(logging.EnvLogLevel),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logLevel := cmd.String("log-level")
			logging.SetDefaultStructuredLoggerWithLevel(name, version, logLevel)
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date,
				"logLevel", logLevel)
			return ctx, nil
		},
		Commands: []*cli.Command{
			serveCmd(),
			summaryCmd(),
			listCmd(),
			parseCmd(),
		},
	}
}

// Execute runs the root command with os.Args and exits non-zero on error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// parseOutputFormat validates the --format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	format := serializer.Format(cmd.String("format"))
	if format.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q", format)
	}
	return format, nil
}
