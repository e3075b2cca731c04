package usecase

import "github.com/prometheus/client_golang/prometheus"

const (
	opMount          = "mount"
	opUnmount        = "unmount"
	opDetail         = "detail"
	opSearch         = "search"
	opGoToPage       = "go_to_page"
	opToggleSelect   = "toggle_select"
	opTogglePage     = "toggle_page_selection"
	opClearSelection = "clear_selection"
	opStartEdit      = "start_edit"
	opUpdateField    = "update_field"
	opSaveEdit       = "save_edit"
	opDelete         = "delete"
	opDeleteSelected = "delete_selected"
	opDeletePage     = "delete_page"
)

type metrics struct {
	openViews     prometheus.Gauge
	operations    *prometheus.CounterVec
	fetchFailures *prometheus.CounterVec
	fetchDuration *prometheus.HistogramVec
	deletedRows   prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		openViews: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "member_admin",
			Name:      "open_views",
			Help:      "Number of mounted table views.",
		}),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "member_admin",
			Name:      "view_operations_total",
			Help:      "Table operations applied, by operation.",
		}, []string{"operation"}),
		fetchFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "member_admin",
			Name:      "source_fetch_failures_total",
			Help:      "Mount-time member fetches that failed, by source.",
		}, []string{"source"}),
		fetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "member_admin",
			Name:      "source_fetch_duration_seconds",
			Help:      "Mount-time member fetch latency, by source.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"source"}),
		deletedRows: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "member_admin",
			Name:      "deleted_rows_total",
			Help:      "Rows removed from views.",
		}),
	}

	if reg != nil {
		reg.MustRegister(m.openViews, m.operations, m.fetchFailures, m.fetchDuration, m.deletedRows)
	}
	return m
}
