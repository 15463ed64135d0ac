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
	"time"

	"github.com/urfave/cli/v3"

	"github.com/devdonalds/cookbook/pkg/cookbook"
	"github.com/devdonalds/cookbook/pkg/defaults"
	"github.com/devdonalds/cookbook/pkg/header"
	"github.com/devdonalds/cookbook/pkg/serializer"
)

// summaryDocument is a resolved report with a document header.
type summaryDocument struct {
	header.Header `json:",inline" yaml:",inline"`

	cookbook.Report `json:",inline" yaml:",inline"`
}

func summaryCmd() *cli.Command {
	return &cli.Command{
		Name:                  "summary",
		EnableShellCompletion: true,
		Usage:                 "Resolve a recipe from a cookbook document",
		Description: `Load a cookbook document into an in-memory registry and resolve one
recipe into its base ingredient totals and total cook time.

The document may be JSON or YAML and is read from a local path or an
http/https URL. Entries are inserted in order; loading stops at the first
rejected entry.`,
		Flags: []cli.Flag{
			documentFlag(),
			&cli.StringFlag{
				Name:     "name",
				Aliases:  []string{"n"},
				Usage:    "recipe to resolve (case-insensitive)",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "header",
				Usage: "wrap the report in a document header",
			},
			fetchTimeoutFlag,
			maxDocumentBytesFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			reg := cookbook.New(cookbook.WithCacheTTL(0))
			if _, err := cookbook.LoadFile(ctx, reg, cmd.String("file"), fetchOptions(cmd)...); err != nil {
				return err
			}

			resolveCtx, cancel := context.WithTimeout(ctx, defaults.SummaryResolveTimeout)
			defer cancel()

			report, err := reg.Resolve(resolveCtx, cmd.String("name"))
			if err != nil {
				return fmt.Errorf("failed to summarize %q: %w", cmd.String("name"), err)
			}

			var out any = report
			if cmd.Bool("header") {
				hdr := header.New(
					header.WithKind(header.KindSummary),
					header.WithAPIVersion(header.APIVersionV1),
					header.WithTimestamp(time.Now()),
					header.WithMetadata("version", version),
					header.WithMetadata("source", cmd.String("file")),
				)
				out = &summaryDocument{Header: *hdr, Report: *report}
			}

			ser, err := serializer.NewFileWriter(outFormat, cmd.String("output"))
			if err != nil {
				return err
			}
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			return ser.Serialize(ctx, out)
		},
	}
}
