// Copyright 2024 The serpentwrk Authors. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package restart

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	decodedMaterials = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "serpentwrk_decoded_materials",
		Help: "Count of material blocks decoded from restart streams.",
	})

	decodedSteps = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "serpentwrk_decoded_steps",
		Help: "Count of burnup steps assembled from decoded materials.",
	})

	decodeErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "serpentwrk_decode_errors",
		Help: "Count of restart stream decode failures.",
	})

	encodedMaterials = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "serpentwrk_encoded_materials",
		Help: "Count of material blocks written to restart streams.",
	})

	encodedBytes = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "serpentwrk_encoded_bytes",
		Help: "Count of bytes written to restart streams.",
	})
)

// RegisterMonitoring registers all of this package's monitoring metrics.
func RegisterMonitoring(reg prometheus.Registerer) {
	reg.MustRegister(
		decodedMaterials,
		decodedSteps,
		decodeErrors,
		encodedMaterials,
		encodedBytes,
	)
}
