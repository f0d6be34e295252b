// Copyright 2025 Poiesic Systems
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
	"fmt"
	"io"

	"github.com/poiesic/phonemescape/similarity"
)

// textMonitor prints k-means progress.
type textMonitor struct {
	w io.Writer
}

var _ similarity.ClusterMonitor = (*textMonitor)(nil)

func (m *textMonitor) Start(symbols []string, k int) {
	fmt.Fprintf(m.w, "clustering %d phonemes into %d groups\n", len(symbols), k)
}

func (m *textMonitor) AfterSeeding(centroids [][]float32) {
	for i, c := range centroids {
		fmt.Fprintf(m.w, "  seed %d at %v\n", i, c)
	}
}

func (m *textMonitor) AfterIteration(iteration int, moved int) {
	fmt.Fprintf(m.w, "  iteration %d: %d reassigned\n", iteration, moved)
}

func (m *textMonitor) Finish(clusters similarity.Clusters, iterations int) {
	fmt.Fprintf(m.w, "converged after %d iterations, %d clusters\n", iterations, len(clusters))
}
