package metrics

import (
	"net/http"

	"github.com/MrBrad8989/gta-events-bot/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "gta_events"

type Recorder struct {
	deliveries  *prometheus.CounterVec
	transitions *prometheus.CounterVec
	sweeps      prometheus.Counter
	reminders   prometheus.Counter
}

func New(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		deliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deliveries_total",
			Help:      "Advisory notifications by kind and outcome",
		}, []string{"kind", "outcome"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "moderation_transitions_total",
			Help:      "Event records moved out of PENDING",
		}, []string{"status"}),
		sweeps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reminder_sweeps_total",
			Help:      "Completed reminder sweeps",
		}),
		reminders: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "start_notices_total",
			Help:      "Events announced as starting",
		}),
	}

	reg.MustRegister(r.deliveries, r.transitions, r.sweeps, r.reminders)

	return r
}

func (r *Recorder) RecordDelivery(kind string, outcome domain.DeliveryOutcome) {
	r.deliveries.WithLabelValues(kind, string(outcome)).Inc()
}

func (r *Recorder) RecordTransition(status domain.EventStatus) {
	r.transitions.WithLabelValues(string(status)).Inc()
}

func (r *Recorder) RecordSweep(notified int) {
	r.sweeps.Inc()
	r.reminders.Add(float64(notified))
}

func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
