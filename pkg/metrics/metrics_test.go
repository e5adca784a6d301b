package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

// value returns the first sample of the family called name, or -1.
func value(reg *prometheus.Registry, name string) float64 {
	families, err := reg.Gather()
	if err != nil {
		return -1
	}
	for _, mf := range families {
		if mf.GetName() != name || len(mf.GetMetric()) == 0 {
			continue
		}
		m := mf.GetMetric()[0]
		switch {
		case m.GetCounter() != nil:
			return m.GetCounter().GetValue()
		case m.GetGauge() != nil:
			return m.GetGauge().GetValue()
		case m.GetHistogram() != nil:
			return float64(m.GetHistogram().GetSampleCount())
		}
	}
	return -1
}

func TestManager(t *testing.T) {
	Convey("Given a manager on a private registry", t, func() {
		reg := prometheus.NewRegistry()
		m := NewManager(
			WithPrometheusRegistry(reg),
			WithNamespace("test"),
			WithSubsystem("run"),
			WithHistogramBuckets([]float64{0.1, 1, 10}),
			WithCustomLabels(map[string]string{"env": "test"}),
		)

		Convey("When a run is recorded", func() {
			m.RecordRun(StatusSuccess, 0.5)
			m.SetRecordsLoaded(2024, 1200)
			m.SetParticipants(900, 5)
			m.AddRecordsExcluded("age_out_of_range", 3)
			m.AddRecordsExcluded("age_out_of_range", 0)

			Convey("Then the values are exposed under the configured names", func() {
				So(value(reg, "test_run_runs_total"), ShouldEqual, 1)
				So(value(reg, "test_run_run_duration_seconds"), ShouldEqual, 1)
				So(value(reg, "test_run_records_loaded"), ShouldEqual, 1200)
				So(value(reg, "test_run_participants"), ShouldEqual, 900)
				So(value(reg, "test_run_editions"), ShouldEqual, 5)
				So(value(reg, "test_run_records_excluded_total"), ShouldEqual, 3)
			})
		})

		Convey("When HTTP traffic and errors are recorded", func() {
			m.RecordHTTPRequest("/analytics", "GET", "200", 4)
			m.RecordHTTPRequest("/analytics", "GET", "200", 6)
			m.RecordError("source", "missing_year")
			m.ObserveSourceLoad("file", 2.5)

			Convey("Then counters and histograms advance", func() {
				So(value(reg, "test_run_http_requests_total"), ShouldEqual, 2)
				So(value(reg, "test_run_http_request_duration_milliseconds"), ShouldEqual, 2)
				So(value(reg, "test_run_errors_total"), ShouldEqual, 1)
				So(value(reg, "test_run_source_load_latency_milliseconds"), ShouldEqual, 1)
			})
		})
	})

	Convey("Given a disabled manager", t, func() {
		reg := prometheus.NewRegistry()
		m := NewManager(WithPrometheusRegistry(reg), WithMetricsEnabled(false))

		Convey("Then recording leaves the registry untouched", func() {
			m.RecordRun(StatusFailure, 1)
			m.SetParticipants(10, 2)
			So(value(reg, "ayda_analytics_runs_total"), ShouldEqual, -1)
			So(value(reg, "ayda_analytics_participants"), ShouldEqual, 0)
		})
	})
}

func TestGlobalHelpers(t *testing.T) {
	Convey("Given the global manager", t, func() {
		Convey("Then the package helpers do not panic", func() {
			So(func() {
				RecordRun(StatusSuccess, 0.1)
				SetRecordsLoaded(2022, 10)
				AddRecordsExcluded("no_name", 1)
				SetParticipants(5, 1)
				ObserveSourceLoad("memory", 0.2)
				RecordHTTPRequest("/healthz", "GET", "200", 1)
				RecordError("http", "encode")
			}, ShouldNotPanic)
			So(GetRegistry(), ShouldNotBeNil)
		})
	})
}
