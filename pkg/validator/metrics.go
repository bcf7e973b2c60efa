/*
Copyright © 2026 NetVerify
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusValid   = "valid"
	statusInvalid = "invalid"
	statusError   = "error"
)

var (
	validationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mtuctl_validation_total",
			Help: "Total number of MTU validations",
		},
		[]string{"status"}, // valid, invalid or error
	)

	validationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mtuctl_validation_duration_seconds",
			Help:    "Duration of MTU validations in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1, 10},
		},
	)
)

func observeValidation(status string, d time.Duration) {
	validationTotal.WithLabelValues(status).Inc()
	validationDuration.Observe(d.Seconds())
}
