// Copyright 2025 Emiliano Spinella (eminwux)
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
//
// SPDX-License-Identifier: Apache-2.0

package shared

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format type.
type OutputFormat string

const (
	OutputFormatYAML  OutputFormat = "yaml"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatTable OutputFormat = "table"
)

// ParseOutputFormat parses and validates the --output flag from the command.
func ParseOutputFormat(cmd *cobra.Command) (OutputFormat, error) {
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return OutputFormatTable, err
	}
	if output == "" {
		return OutputFormatTable, nil
	}

	format := OutputFormat(strings.ToLower(strings.TrimSpace(output)))
	switch format {
	case OutputFormatYAML, OutputFormatJSON, OutputFormatTable:
		return format, nil
	default:
		return OutputFormatTable, fmt.Errorf("invalid output format: %s (supported: yaml, json, table)", output)
	}
}

// PrintYAML prints the resource as YAML on the command's output stream.
func PrintYAML(cmd *cobra.Command, doc interface{}) error {
	encoder := yaml.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent(2)
	defer encoder.Close()
	return encoder.Encode(doc)
}

// PrintJSON prints the resource as JSON on the command's output stream.
func PrintJSON(cmd *cobra.Command, doc interface{}) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}

// PrintTable prints rows in an aligned table format.
func PrintTable(cmd *cobra.Command, headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var header strings.Builder
	for i, h := range headers {
		if i > 0 {
			header.WriteString("  ")
		}
		header.WriteString(fmt.Sprintf("%-*s", widths[i], h))
	}
	cmd.Println(header.String())

	var separator strings.Builder
	for i, w := range widths {
		if i > 0 {
			separator.WriteString("  ")
		}
		separator.WriteString(strings.Repeat("-", w))
	}
	cmd.Println(separator.String())

	for _, row := range rows {
		var line strings.Builder
		for i, cell := range row {
			if i < len(widths) {
				if i > 0 {
					line.WriteString("  ")
				}
				line.WriteString(fmt.Sprintf("%-*s", widths[i], cell))
			}
		}
		cmd.Println(line.String())
	}
}
