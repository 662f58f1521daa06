// Package metric provides Prometheus metrics for sfsession.
package metric

import "github.com/prometheus/client_golang/prometheus"

// BuildInfoCollector exposes build information as a constant metric,
// the usual sfsession_build_info{version,commit} = 1 shape.
type BuildInfoCollector struct {
	desc    *prometheus.Desc
	version string
	commit  string
}

// NewBuildInfoCollector creates a collector for build information.
func NewBuildInfoCollector(version, commit string) *BuildInfoCollector {
	return &BuildInfoCollector{
		desc: prometheus.NewDesc(
			namespace+"_build_info",
			"Build information, constant 1 labeled by version and commit.",
			nil,
			prometheus.Labels{"version": version, "commit": commit},
		),
		version: version,
		commit:  commit,
	}
}

// Describe implements prometheus.Collector.
func (c *BuildInfoCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc
}

// Collect implements prometheus.Collector.
func (c *BuildInfoCollector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.desc, prometheus.GaugeValue, 1)
}
