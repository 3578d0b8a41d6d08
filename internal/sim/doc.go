// Package sim steps the half-Atwood apparatus through time by resolving
// forces once per frame, mirroring the cadence of the interactive view.
// It records a [Frame] history and feeds [Metric] and [Observer] hooks.
package sim
