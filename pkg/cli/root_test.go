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
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/devdonalds/cookbook/pkg/cookbook"
	"github.com/devdonalds/cookbook/pkg/header"
	"github.com/devdonalds/cookbook/pkg/normalize"
	"github.com/devdonalds/cookbook/pkg/serializer"
)

const testCookbook = `kind: Cookbook
apiVersion: cookbook.dev/v1
entries:
  - type: recipe
    name: Skibidi Spaghetti
    requiredItems:
      - name: Meatball
        quantity: 3
      - name: Pasta
        quantity: 1
      - name: Tomato
        quantity: 2
  - type: recipe
    name: Meatball
    requiredItems:
      - name: Beef
        quantity: 2
      - name: Egg
        quantity: 1
  - type: recipe
    name: Pasta
    requiredItems:
      - name: Flour
        quantity: 3
      - name: Egg
        quantity: 1
  - type: ingredient
    name: Beef
    cookTime: 5
  - type: ingredient
    name: Egg
    cookTime: 3
  - type: ingredient
    name: Flour
    cookTime: 0
  - type: ingredient
    name: Tomato
    cookTime: 2
`

func writeCookbook(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cookbook.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.Writer = &out
	root.ErrWriter = &out
	err := root.Run(context.Background(), append([]string{name}, args...))
	return out.String(), err
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		name       string
		format     string
		wantFormat serializer.Format
		wantErr    bool
	}{
		{name: "valid yaml format", format: "yaml", wantFormat: serializer.FormatYAML},
		{name: "valid json format", format: "json", wantFormat: serializer.FormatJSON},
		{name: "valid table format", format: "table", wantFormat: serializer.FormatTable},
		{name: "invalid format xml", format: "xml", wantErr: true},
		{name: "empty format", format: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cli.Command{
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Value: tt.format,
					},
				},
				Action: func(_ context.Context, c *cli.Command) error {
					got, err := parseOutputFormat(c)
					if (err != nil) != tt.wantErr {
						t.Errorf("parseOutputFormat() error = %v, wantErr %v", err, tt.wantErr)
						return nil
					}
					if !tt.wantErr && got != tt.wantFormat {
						t.Errorf("parseOutputFormat() = %v, want %v", got, tt.wantFormat)
					}
					return nil
				},
			}

			if err := cmd.Run(context.Background(), []string{"test"}); err != nil {
				t.Fatalf("failed to run command: %v", err)
			}
		})
	}
}

func TestRootCmd_CommandStructure(t *testing.T) {
	root := newRootCmd()
	assert.Equal(t, name, root.Name)

	want := map[string]bool{"serve": false, "summary": false, "list": false, "parse": false}
	for _, c := range root.Commands {
		if _, ok := want[c.Name]; ok {
			want[c.Name] = true
		}
		assert.NotEmpty(t, c.Usage, "command %s has no usage", c.Name)
	}
	for cmdName, found := range want {
		assert.True(t, found, "missing command %s", cmdName)
	}
}

func TestSummaryCmd_Flags(t *testing.T) {
	cmd := summaryCmd()

	for _, flagName := range []string{"file", "name", "header", "fetch-timeout", "max-document-bytes", "output", "format"} {
		found := false
		for _, f := range cmd.Flags {
			if hasName(f, flagName) {
				found = true
				break
			}
		}
		assert.True(t, found, "summary missing flag %s", flagName)
	}
}

func hasName(flag cli.Flag, name string) bool {
	for _, n := range flag.Names() {
		if n == name {
			return true
		}
	}
	return false
}

func TestSummaryCmd(t *testing.T) {
	path := writeCookbook(t, testCookbook)
	outPath := filepath.Join(t.TempDir(), "summary.json")

	_, err := runRoot(t, "summary", "--file", path, "--name", "skibidi spaghetti", "--output", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var report cookbook.Report
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, "Skibidi Spaghetti", report.Name)
	assert.Equal(t, int64(46), report.CookTime)
	assert.Equal(t, []cookbook.IngredientQuantity{
		{Name: "Beef", Quantity: 6},
		{Name: "Egg", Quantity: 4},
		{Name: "Flour", Quantity: 3},
		{Name: "Tomato", Quantity: 2},
	}, report.Ingredients)
}

func TestSummaryCmd_YAMLWithHeader(t *testing.T) {
	path := writeCookbook(t, testCookbook)
	outPath := filepath.Join(t.TempDir(), "summary.yaml")

	_, err := runRoot(t, "summary", "-f", path, "-n", "Meatball", "--header", "-t", "yaml", "-o", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var doc summaryDocument
	require.NoError(t, yaml.Unmarshal(data, &doc))
	assert.Equal(t, header.KindSummary, doc.Kind)
	assert.Equal(t, header.APIVersionV1, doc.APIVersion)
	assert.NotEmpty(t, doc.Metadata["timestamp"])
	assert.Equal(t, path, doc.Metadata["source"])
	assert.Equal(t, version, doc.Metadata["version"])
	assert.Equal(t, "Meatball", doc.Name)
	assert.Equal(t, int64(13), doc.CookTime)
}

func TestSummaryCmd_Table(t *testing.T) {
	path := writeCookbook(t, testCookbook)
	outPath := filepath.Join(t.TempDir(), "summary.txt")

	_, err := runRoot(t, "summary", "-f", path, "-n", "Pasta", "-t", "table", "-o", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, []string{"INGREDIENT", "QUANTITY"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"Egg", "1"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"Flour", "3"}, strings.Fields(lines[3]))
	assert.Equal(t, []string{"(cook", "time)", "3"}, strings.Fields(lines[4]))
}

func TestSummaryCmd_Errors(t *testing.T) {
	path := writeCookbook(t, testCookbook)

	tests := []struct {
		name string
		args []string
		want error
	}{
		{name: "ingredient root", args: []string{"summary", "-f", path, "-n", "Egg"}, want: cookbook.ErrRootIsIngredient},
		{name: "unknown root", args: []string{"summary", "-f", path, "-n", "Lasagne"}, want: cookbook.ErrRootNotFound},
		{name: "bad format", args: []string{"summary", "-f", path, "-n", "Pasta", "-t", "xml"}},
		{name: "bad output", args: []string{"summary", "-f", path, "-n", "Pasta", "-o", filepath.Join(t.TempDir(), "no", "out.json")}},
		{name: "missing file", args: []string{"summary", "-f", filepath.Join(t.TempDir(), "nope.yaml"), "-n", "Pasta"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runRoot(t, tt.args...)
			require.Error(t, err)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestSummaryCmd_InvalidDocument(t *testing.T) {
	path := writeCookbook(t, `entries:
  - type: ingredient
    name: Egg
    cookTime: 1
  - type: ingredient
    name: EGG
    cookTime: 2
`)

	_, err := runRoot(t, "summary", "-f", path, "-n", "Egg")
	require.Error(t, err)
	assert.ErrorIs(t, err, cookbook.ErrDuplicateName)
	assert.Contains(t, err.Error(), "entry 1")
}

func TestListCmd(t *testing.T) {
	path := writeCookbook(t, testCookbook)

	out, err := runRoot(t, "list", "-f", path)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Beef", "Egg", "Flour", "Meatball", "Pasta", "Skibidi Spaghetti", "Tomato",
	}, strings.Split(strings.TrimSpace(out), "\n"))
}

func TestListCmd_Remote(t *testing.T) {
	var gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.UserAgent()
		_, _ = w.Write([]byte(testCookbook))
	}))
	defer srv.Close()

	out, err := runRoot(t, "list", "-f", srv.URL+"/cookbook.yaml", "--fetch-timeout", "5s")
	require.NoError(t, err)
	assert.Contains(t, out, "Skibidi Spaghetti")
	assert.Equal(t, name+"/"+version, gotAgent)

	_, err = runRoot(t, "list", "-f", srv.URL+"/cookbook.yaml", "--max-document-bytes", "32")
	require.Error(t, err)
	assert.ErrorIs(t, err, serializer.ErrDocumentTooLarge)
}

func TestParseCmd(t *testing.T) {
	out, err := runRoot(t, "parse", "Riz@z RISO00tto!", "meatball")
	require.NoError(t, err)
	assert.Equal(t, []string{"Rizz Risotto", "Meatball"}, strings.Split(strings.TrimSpace(out), "\n"))
}

func TestParseCmd_Invalid(t *testing.T) {
	out, err := runRoot(t, "parse", "alpha", "1234")
	require.Error(t, err)
	assert.ErrorIs(t, err, normalize.ErrInvalidName)
	assert.Contains(t, out, "Alpha")

	_, err = runRoot(t, "parse")
	assert.Error(t, err)
}
