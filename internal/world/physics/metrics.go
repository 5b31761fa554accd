package physics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Метрики подсистемы падающих блоков. Регистрируются один раз через
// RegisterMetrics; до регистрации счетчики работают вхолостую.
var (
	fallsTriggered = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "physics",
		Name:      "falls_triggered_total",
		Help:      "Число сработавших триггеров падения по направлениям.",
	}, []string{"direction"})

	spawnsCompleted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "physics",
		Name:      "falling_spawns_total",
		Help:      "Число реально созданных падающих сущностей.",
	})

	abortedStale = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "physics",
		Name:      "spawns_aborted_stale_total",
		Help:      "Спаунов, отмененных защитой от устаревшего триггера.",
	})

	abortedDuplicate = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "physics",
		Name:      "spawns_aborted_duplicate_total",
		Help:      "Спаунов, отмененных защитой от дублей.",
	})

	placementsRejected = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "physics",
		Name:      "placements_rejected_total",
		Help:      "Отказов установки по причине отсутствия опоры.",
	})
)

// RegisterMetrics регистрирует метрики подсистемы в указанном регистре
func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(fallsTriggered, spawnsCompleted, abortedStale, abortedDuplicate, placementsRejected)
}

// CountPlacementRejected учитывает отказ установки (вызывается слоем мира)
func CountPlacementRejected() {
	placementsRejected.Inc()
}
