/*
Copyright 2025 The Crossplane Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package metrics exports run statistics in the Prometheus text format.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/kritic-dev/kritic/internal/engine"
	"github.com/kritic-dev/kritic/internal/timer"
)

// Namespace prefixes every metric name.
const Namespace = "kritic"

// Recorder is an engine.Printer that counts the events of a run. Each Recorder owns its registry.
type Recorder struct {
	registry *prometheus.Registry

	testsTotal         *prometheus.CounterVec
	assertionsTotal    *prometheus.CounterVec
	testDuration       prometheus.Histogram
	capturedLinesTotal prometheus.Counter
	runDuration        prometheus.Gauge
}

// NewRecorder returns a Recorder with its metrics registered.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		testsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "tests_total",
			Help:      "Number of tests by final status",
		}, []string{
			"status",
		}),
		assertionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "assertions_total",
			Help:      "Number of evaluated assertions by result",
		}, []string{
			"result",
		}),
		testDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "test_duration_seconds",
			Help:      "Duration of timed tests",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 10, 6), //nolint:mnd // 100us to 10s
		}),
		capturedLinesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "captured_lines_total",
			Help:      "Number of lines captured from test bodies",
		}),
		runDuration: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "run_duration_seconds",
			Help:      "Duration of the last run",
		}),
	}
}

// Registry returns the registry holding the recorder's metrics.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile writes the current metric values to path.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}

	return nil
}

func (r *Recorder) Init(engine.RunInfo) {}

func (r *Recorder) PreTest(engine.TestInfo) {}

func (r *Recorder) PostTest(test engine.TestInfo) {
	r.testsTotal.WithLabelValues(test.Status.String()).Inc()

	if !timer.IsUnavailable(test.Duration) {
		r.testDuration.Observe(test.Duration.Seconds())
	}
}

func (r *Recorder) Summary(run engine.RunInfo) {
	if !timer.IsUnavailable(run.Duration) {
		r.runDuration.Set(run.Duration.Seconds())
	}
}

func (r *Recorder) Assert(event engine.AssertionEvent) {
	result := "fail"
	if event.Passed {
		result = "pass"
	}

	r.assertionsTotal.WithLabelValues(result).Inc()
}

func (r *Recorder) Stdout(line engine.CapturedLine) {
	if !line.Split {
		r.capturedLinesTotal.Inc()
	}
}

func (r *Recorder) Skip(engine.SkipEvent) {}

func (r *Recorder) DepFailed(test, _ engine.TestInfo) {
	r.testsTotal.WithLabelValues(engine.StatusDepFailed.String()).Inc()
}
