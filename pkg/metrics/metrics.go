// Package metrics: 매칭 서비스 prometheus 지표
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// CompatibilityScore: 계산된 궁합 점수 분포
	CompatibilityScore = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "bandhan_compatibility_score",
		Help:    "Distribution of computed compatibility scores",
		Buckets: prometheus.LinearBuckets(0, 10, 11),
	})

	// RankingDuration: 후보 조회부터 정렬까지 걸린 시간 (mode = suggestions, search)
	RankingDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bandhan_ranking_duration_seconds",
		Help:    "Time spent filtering, scoring and ranking candidates",
		Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
	}, []string{"mode"})

	LikesCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "bandhan_likes_created_total",
		Help: "Total number of like edges created",
	})

	MutualMatches = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "bandhan_mutual_matches_total",
		Help: "Total number of likes that completed a mutual match",
	})

	ShortlistOps = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "bandhan_shortlist_operations_total",
		Help: "Total number of shortlist operations",
	}, []string{"op"}) // op = "add", "remove"

	// NotificationFailures: 실패해도 요청은 성공한다. 실패 횟수만 센다.
	NotificationFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "bandhan_notification_failures_total",
		Help: "Notification or email events that could not be published",
	})
)

func init() {
	prometheus.MustRegister(
		CompatibilityScore,
		RankingDuration,
		LikesCreated,
		MutualMatches,
		ShortlistOps,
		NotificationFailures,
	)
}

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
