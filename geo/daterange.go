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

package geo

import "time"

const dateRangeLayout = "2006-01-02"

// SearchDateRange formats the catalog query interval covering the sample
// date and lookbackDays days prior, as two ISO-8601 dates joined by `/`
func SearchDateRange(target time.Time, lookbackDays int) string {
	start := target.AddDate(0, 0, -lookbackDays)
	return start.Format(dateRangeLayout) + "/" + target.Format(dateRangeLayout)
}
