// Package prometheus provides the Prometheus metrics collector for the test server.
package prometheus
