// Copyright 2026 The gVisor Authors.
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

// Package config provides basic infrastructure to set configuration settings
// for abitable. Each setting has a flag, and may also be set in a TOML file
// named by the --config flag. Flags that were explicitly set on the command
// line take precedence over the file.
package config

import (
	"fmt"
	"strings"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatYAML = "yaml"
)

// Errno tables.
const (
	ErrnosBase = "base"
	ErrnosAll  = "all"
)

// Config holds configuration that is shared by all commands.
type Config struct {
	// ConfigFile is the path of an optional TOML file holding default values
	// for the settings below.
	ConfigFile string `flag:"config"`

	// Format is the output format of the commands: text, json, csv or yaml.
	Format string `flag:"format" toml:"format"`

	// Debug enables debug logging.
	Debug bool `flag:"debug" toml:"debug"`

	// LogFormat is the log format: text or json.
	LogFormat string `flag:"log-format" toml:"log_format"`

	// Errnos selects the errno table: "base" lists only the Linux errno
	// values, "all" also lists the kernel-private values compiled into this
	// binary.
	Errnos string `flag:"errnos" toml:"errnos"`
}

func (c *Config) validate() error {
	switch c.Format {
	case FormatText, FormatJSON, FormatCSV, FormatYAML:
	default:
		return fmt.Errorf("invalid output format %q, must be one of %s", c.Format, strings.Join([]string{FormatText, FormatJSON, FormatCSV, FormatYAML}, ", "))
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q, must be 'text' or 'json'", c.LogFormat)
	}
	switch c.Errnos {
	case ErrnosBase, ErrnosAll:
	default:
		return fmt.Errorf("invalid errno table %q, must be 'base' or 'all'", c.Errnos)
	}
	return nil
}
