package eventbus

import "context"

// Глобальная шина процесса. Устанавливается один раз при старте сервера;
// мир публикует через нее с потока тиков. Неинициализированная шина
// превращает публикацию в no-op, что позволяет тестам мира работать
// без шины вовсе.
var globalBus EventBus

// Init устанавливает глобальную шину.
func Init(bus EventBus) { globalBus = bus }

// Publish отправляет событие в глобальную шину, если она инициализирована.
func Publish(ctx context.Context, ev *Envelope) error {
	if globalBus == nil {
		return nil
	}
	return globalBus.Publish(ctx, ev)
}
