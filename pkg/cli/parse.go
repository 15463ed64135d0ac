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
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/devdonalds/cookbook/pkg/normalize"
)

func parseCmd() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "Normalize handwritten recipe names",
		ArgsUsage: "TEXT...",
		Description: `Print the normalized form of each argument on its own line: hyphens and
underscores become spaces, anything other than letters and whitespace is
dropped, and each word is title-cased.`,
		Action: func(_ context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) == 0 {
				return fmt.Errorf("at least one name is required")
			}

			w := cmd.Root().Writer
			var failed []string
			for _, arg := range args {
				msg, err := normalize.Normalize(arg)
				if err != nil {
					failed = append(failed, fmt.Sprintf("%q", arg))
					continue
				}
				fmt.Fprintln(w, msg)
			}

			if len(failed) > 0 {
				return fmt.Errorf("%w: %s", normalize.ErrInvalidName, strings.Join(failed, ", "))
			}
			return nil
		},
	}
}
