// Copyright 2018, RadiantBlue Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	cli "gopkg.in/urfave/cli.v1"
)

var commands = cli.Commands{
	cli.Command{
		Name:    "fetch",
		Aliases: []string{"f"},
		Usage:   "Fetch, crop and save imagery for every configured location",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "config, c",
				Value: "config.json",
				Usage: "Path to the run configuration file",
			},
		},
		Action: fetchAction,
	},
	cli.Command{
		Name:    "version",
		Aliases: []string{"v"},
		Usage:   "Print the version number of the fishpond-validator CLI",
		Action:  versionAction,
	},
}

func createCliApp() (app *cli.App) {
	app = cli.NewApp()
	app.Name = "fishpond-validator"
	app.Usage = "Collect satellite imagery crops around known pond locations"
	app.Commands = commands
	return
}
