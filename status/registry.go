// Package status is the metrics registry shared by simulation drivers and the spectator API
package status

import "sync/atomic"

// Registry is the central metrics facade
// Drivers cache pointers once; tick loops write directly to the atomics
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Export copies every metric into a flat map suitable for JSON
// Keys are unique across types by convention; a later type wins on collision
func (r *Registry) Export() map[string]any {
	out := make(map[string]any, r.TotalCount())
	r.Bools.Range(func(k string, v *atomic.Bool) { out[k] = v.Load() })
	r.Ints.Range(func(k string, v *atomic.Int64) { out[k] = v.Load() })
	r.Floats.Range(func(k string, v *AtomicFloat) { out[k] = v.Get() })
	r.Strings.Range(func(k string, v *AtomicString) { out[k] = v.Load() })
	return out
}

// Recorder writes metrics under a fixed key prefix, one per game or service
type Recorder struct {
	reg    *Registry
	prefix string
}

// Recorder returns a view that prefixes every key with prefix and a dot
func (r *Registry) Recorder(prefix string) *Recorder {
	return &Recorder{reg: r, prefix: prefix + "."}
}

// Count increments an integer counter and returns the new value
func (rec *Recorder) Count(name string) int64 {
	return rec.reg.Ints.Get(rec.prefix + name).Add(1)
}

// Int sets an integer gauge
func (rec *Recorder) Int(name string, v int64) {
	rec.reg.Ints.Get(rec.prefix + name).Store(v)
}

// Float sets a float gauge
func (rec *Recorder) Float(name string, v float64) {
	rec.reg.Floats.Get(rec.prefix + name).Set(v)
}

// Flag sets a boolean gauge
func (rec *Recorder) Flag(name string, v bool) {
	rec.reg.Bools.Get(rec.prefix + name).Store(v)
}

// Label sets a short string gauge
func (rec *Recorder) Label(name string, v string) {
	rec.reg.Strings.Get(rec.prefix + name).Store(v)
}
