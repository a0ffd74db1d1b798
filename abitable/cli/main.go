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

// Package cli is the main entrypoint for abitable.
package cli

import (
	"context"
	"flag"
	"os"

	"github.com/abitable/abitable/abitable/cmd"
	"github.com/abitable/abitable/abitable/cmd/util"
	"github.com/abitable/abitable/abitable/config"
	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

// Main is the main entrypoint.
func Main() {
	// Register all commands.
	forEachCmd(subcommands.Register)

	// Register with the main command line.
	config.RegisterFlags(flag.CommandLine)

	// All subcommands must be registered before flag parsing.
	flag.Parse()

	// Create a new Config from the flags.
	conf, err := config.NewFromFlags(flag.CommandLine)
	if err != nil {
		util.Fatalf("%v", err)
	}

	setupLogging(conf)
	logrus.WithFields(logrus.Fields{
		"args":   os.Args,
		"format": conf.Format,
		"errnos": conf.Errnos,
		"flags":  conf.ToFlags(),
	}).Debug("abitable starting")

	// Call the subcommand and pass in the configuration.
	subcmdCode := subcommands.Execute(context.Background(), conf)
	logrus.Debugf("Exiting with status: %v", subcmdCode)
	os.Exit(int(subcmdCode))
}

// setupLogging configures the standard logrus logger. Tables are written to
// stdout, so logs always go to stderr.
func setupLogging(conf *config.Config) {
	logrus.SetOutput(os.Stderr)
	if conf.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.WarnLevel)
	}
	switch conf.LogFormat {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

// forEachCmd invokes the passed callback for each command supported by
// abitable.
func forEachCmd(cb func(cmd subcommands.Command, group string)) {
	// Help and flags commands are generated automatically.
	cb(subcommands.HelpCommand(), "")
	cb(subcommands.FlagsCommand(), "")
	cb(subcommands.CommandsCommand(), "")

	const tableGroup = "tables"
	cb(new(cmd.Errno), tableGroup)
	cb(new(cmd.Syscall), tableGroup)
	cb(new(cmd.Layout), tableGroup)
	cb(new(cmd.Mask), tableGroup)
	cb(new(cmd.Prctl), tableGroup)
	cb(new(cmd.Ioctl), tableGroup)
	cb(new(cmd.Values), tableGroup)
}
