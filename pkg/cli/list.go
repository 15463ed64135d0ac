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

	"github.com/urfave/cli/v3"

	"github.com/devdonalds/cookbook/pkg/cookbook"
)

func listCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List the entries of a cookbook document",
		Description: `Load a cookbook document and print every entry name, one per line,
ordered case-insensitively. Loading stops at the first rejected entry.`,
		Flags: []cli.Flag{
			documentFlag(),
			fetchTimeoutFlag,
			maxDocumentBytesFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			reg := cookbook.New(cookbook.WithCacheTTL(0))
			if _, err := cookbook.LoadFile(ctx, reg, cmd.String("file"), fetchOptions(cmd)...); err != nil {
				return err
			}

			w := cmd.Root().Writer
			for _, n := range reg.Names() {
				fmt.Fprintln(w, n)
			}
			return nil
		},
	}
}
