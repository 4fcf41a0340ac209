package event

import (
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// HandlerFunc 事件处理函数
// tx 是触发方的事务句柄, 整条级联链共用同一个事务
type HandlerFunc func(tx *gorm.DB, e Event) error

// Bus 进程内同步事件总线
// 发布方与订阅方解耦, 但派发是同步的: Publish 返回前所有handler执行完毕
// 无重试, 无持久化, 不跨进程
type Bus struct {
	logger   *zap.Logger
	handlers map[string][]HandlerFunc
}

func NewBus(logger *zap.Logger) *Bus {
	return &Bus{
		logger:   logger,
		handlers: make(map[string][]HandlerFunc),
	}
}

// Subscribe 注册事件处理函数, 同一事件按注册顺序派发
// 启动时显式调用, 不做反射扫描
func (b *Bus) Subscribe(name string, h HandlerFunc) {
	b.handlers[name] = append(b.handlers[name], h)
}

// Publish 同步派发事件
// 任一handler返回错误即中止派发, 错误向上传播以回滚所在事务
func (b *Bus) Publish(tx *gorm.DB, e Event) error {
	handlers := b.handlers[e.Name()]
	b.logger.Debug("派发领域事件",
		zap.String("event", e.Name()),
		zap.Int("handlers", len(handlers)))

	for _, h := range handlers {
		if err := h(tx, e); err != nil {
			b.logger.Error("事件处理失败, 中止派发",
				zap.String("event", e.Name()),
				zap.Error(err))
			return err
		}
	}
	return nil
}
