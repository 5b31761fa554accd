package eventbus

import (
	"context"

	"github.com/annel0/voxel-physics/internal/logging"
)

// StartLoggingListener подписывается на все события и пишет их в стандартный
// лог. Падение и приземление блоков идут на уровне Info, остальной поток
// (отказы, эффекты, сохранения) на Debug, чтобы не зашумлять лог.
// Функция неблокирующая.
func StartLoggingListener(bus EventBus) error {
	_, err := bus.Subscribe(context.Background(), Filter{}, func(ctx context.Context, ev *Envelope) {
		switch ev.EventType {
		case EventBlockFall, EventEntitySettle:
			logging.Info("[EventBus] %s src=%s prio=%d size=%dB id=%s", ev.EventType, ev.Source, ev.Priority, len(ev.Payload), ev.ID)
		default:
			logging.Debug("[EventBus] %s src=%s prio=%d size=%dB id=%s", ev.EventType, ev.Source, ev.Priority, len(ev.Payload), ev.ID)
		}
	})
	if err != nil {
		return err
	}
	logging.Info("🪵 LoggingListener: подписка на все события активирована")
	return nil
}
