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
	"fmt"

	"github.com/andreaschandra/fishpond-validator/batch"
	"github.com/andreaschandra/fishpond-validator/catalog"
	"github.com/andreaschandra/fishpond-validator/util"
	cli "gopkg.in/urfave/cli.v1"
)

func fetchAction(c *cli.Context) error {
	logContext := &(util.BasicLogContext{})
	util.LoadEnvFile()

	config, err := batch.LoadRunConfig(c.String("config"))
	if err != nil {
		return util.LogSimpleErr(logContext, "Failed to load run configuration.", err)
	}

	driver := batch.Driver{
		Config:  *config,
		Catalog: catalog.NewContext(),
	}

	statuses, err := driver.Run(logContext)
	if err != nil {
		return err
	}

	var saved, skipped, failed int
	for _, status := range statuses {
		switch {
		case status.Err == nil:
			saved++
			fmt.Printf("saved   %v -> %s\n", status.Location, status.OutputPath)
		case status.Skipped:
			skipped++
			fmt.Printf("skipped %v (no candidate scene)\n", status.Location)
		default:
			failed++
			fmt.Printf("failed  %v: %v\n", status.Location, status.Err)
		}
	}
	fmt.Printf("%d saved, %d skipped, %d failed of %d locations\n", saved, skipped, failed, len(statuses))
	return nil
}
