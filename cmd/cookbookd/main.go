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

package main

import (
	"context"
	"log"
	"os"

	"github.com/devdonalds/cookbook/pkg/api"
	"github.com/devdonalds/cookbook/pkg/logging"
)

func main() {
	logging.SetDefaultStructuredLogger("cookbookd", api.Version())

	if err := api.Serve(context.Background(), api.WithSeed(os.Getenv("COOKBOOK_SEED"))); err != nil {
		log.Fatal(err)
	}
}
