package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var examSubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "schoolnet_exam_submissions_total",
	Help: "Exam submissions processed, by outcome.",
}, []string{"outcome"})

var dashboardCacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "schoolnet_dashboard_cache_total",
	Help: "Dashboard reads served from or past the cache.",
}, []string{"result"})
