package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "closing_table"

// Negotiation holds the counters of the offer/result lifecycle. Labels carry
// only outcome classes, never amounts or identifiers.
type Negotiation struct {
	OffersCreated prometheus.Counter
	Submissions   *prometheus.CounterVec
	OfferLookups  *prometheus.CounterVec
	ResultLookups *prometheus.CounterVec
	Reaped        *prometheus.CounterVec
	Notifications *prometheus.CounterVec
}

func NewNegotiation(registerer prometheus.Registerer) *Negotiation {
	m := &Negotiation{
		OffersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "offers_created_total",
			Help:      "Offers accepted by the offer store.",
		}),
		Submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "Offer submissions by resulting status.",
		}, []string{"status"}),
		OfferLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "offer_lookups_total",
			Help:      "Offer status lookups by lookup status.",
		}, []string{"status"}),
		ResultLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "result_lookups_total",
			Help:      "Result lookups by lookup status.",
		}, []string{"status"}),
		Reaped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reaped_total",
			Help:      "Expired entries removed by the periodic sweep.",
		}, []string{"store"}),
		Notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Result notifications by delivery outcome.",
		}, []string{"outcome"}),
	}

	if registerer != nil {
		registerer.MustRegister(
			m.OffersCreated,
			m.Submissions,
			m.OfferLookups,
			m.ResultLookups,
			m.Reaped,
			m.Notifications,
		)
	}

	return m
}
