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

package scene

import (
	"sort"
	"time"

	"github.com/andreaschandra/fishpond-validator/model"
)

// SelectBestScene picks the single candidate best matching the sample point
// and date. Candidates whose bounding box does not strictly contain the point
// are discarded; if any Sentinel imagery survives, only Sentinel candidates
// are considered; the closest candidate by time wins, with ties broken by
// input order. Returns nil when no candidate qualifies.
func SelectBestScene(candidates []model.SceneCandidate, targetDate time.Time, latitude, longitude float64) *model.SelectedScene {
	var containing []model.SceneCandidate
	for _, candidate := range candidates {
		if candidate.Contains(latitude, longitude) {
			containing = append(containing, candidate)
		}
	}
	if len(containing) == 0 {
		return nil
	}

	anySentinel := false
	for _, candidate := range containing {
		if candidate.IsSentinel() {
			anySentinel = true
			break
		}
	}
	if anySentinel {
		sentinelOnly := containing[:0]
		for _, candidate := range containing {
			if candidate.IsSentinel() {
				sentinelOnly = append(sentinelOnly, candidate)
			}
		}
		containing = sentinelOnly
	}

	// stable keeps input order on equal time distances
	sort.SliceStable(containing, func(i, j int) bool {
		return timeDistance(containing[i].AcquiredDate, targetDate) < timeDistance(containing[j].AcquiredDate, targetDate)
	})

	return &model.SelectedScene{SceneCandidate: containing[0]}
}

func timeDistance(acquired, target time.Time) time.Duration {
	d := target.Sub(acquired)
	if d < 0 {
		d = -d
	}
	return d
}
