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

	"github.com/urfave/cli/v3"

	"github.com/devdonalds/cookbook/pkg/api"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the cookbook HTTP API",
		Description: `Serve POST /entry, GET /summary and POST /parse along with /health,
/ready and /metrics. The registry starts empty unless --seed names a
cookbook document to load first.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "listen port (default: 8080)",
				Sources: cli.EnvVars("PORT"),
			},
			&cli.StringFlag{
				Name:    "address",
				Usage:   "listen address (default: all interfaces)",
				Sources: cli.EnvVars("COOKBOOK_ADDRESS"),
			},
			&cli.StringFlag{
				Name:    "seed",
				Aliases: []string{"f"},
				Usage:   "path or http/https URL of a cookbook document to load at startup",
				Sources: cli.EnvVars("COOKBOOK_SEED"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return api.Serve(ctx,
				api.WithPort(cmd.Int("port")),
				api.WithAddress(cmd.String("address")),
				api.WithSeed(cmd.String("seed")),
			)
		},
	}
}
