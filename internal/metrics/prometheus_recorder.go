package metrics

import (
	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "zentime"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	transitions *prom.CounterVec
	completions *prom.CounterVec
	remaining   prom.Gauge
	focusTally  prom.Gauge
	running     prom.Gauge
	tipResults  *prom.CounterVec
	cueFailures prom.Counter
}

// NewPrometheusRecorder constructs the metrics and registers them on reg.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		transitions: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "transitions_total",
			Help:      "Timer state transitions by event",
		}, []string{"event"}),
		completions: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "completions_total",
			Help:      "Intervals that counted down to zero, by mode",
		}, []string{"mode"}),
		remaining: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "remaining_seconds",
			Help:      "Seconds left in the loaded countdown",
		}),
		focusTally: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "focus_sessions_completed",
			Help:      "Focus sessions completed in this run",
		}),
		running: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "running",
			Help:      "1 while the countdown is running",
		}),
		tipResults: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "tip_results_total",
			Help:      "Delivered tips by source",
		}, []string{"source"}),
		cueFailures: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "cue_failures_total",
			Help:      "Completion cues that failed to play",
		}),
	}
	reg.MustRegister(pr.transitions, pr.completions, pr.remaining, pr.focusTally, pr.running, pr.tipResults, pr.cueFailures)
	return pr
}

func (p *PrometheusRecorder) IncTransition(event string) {
	if p == nil {
		return
	}
	p.transitions.WithLabelValues(event).Inc()
}

func (p *PrometheusRecorder) IncCompletion(mode string) {
	if p == nil {
		return
	}
	p.completions.WithLabelValues(mode).Inc()
}

func (p *PrometheusRecorder) SetRemaining(seconds int) {
	if p == nil {
		return
	}
	p.remaining.Set(float64(seconds))
}

func (p *PrometheusRecorder) SetFocusTally(n int) {
	if p == nil {
		return
	}
	p.focusTally.Set(float64(n))
}

func (p *PrometheusRecorder) SetRunning(running bool) {
	if p == nil {
		return
	}
	if running {
		p.running.Set(1)
		return
	}
	p.running.Set(0)
}

func (p *PrometheusRecorder) IncTipResult(source string) {
	if p == nil {
		return
	}
	p.tipResults.WithLabelValues(source).Inc()
}

func (p *PrometheusRecorder) IncCueFailure() {
	if p == nil {
		return
	}
	p.cueFailures.Inc()
}
