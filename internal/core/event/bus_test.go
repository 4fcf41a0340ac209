package event

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type testEvent struct{ name string }

func (e testEvent) Name() string { return e.name }

func TestBusDispatchOrder(t *testing.T) {
	bus := NewBus(zap.NewNop())

	var order []int
	bus.Subscribe("test.event", func(tx *gorm.DB, e Event) error {
		order = append(order, 1)
		return nil
	})
	bus.Subscribe("test.event", func(tx *gorm.DB, e Event) error {
		order = append(order, 2)
		return nil
	})
	bus.Subscribe("test.event", func(tx *gorm.DB, e Event) error {
		order = append(order, 3)
		return nil
	})

	err := bus.Publish(nil, testEvent{name: "test.event"})
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestBusErrorAbortsDispatch(t *testing.T) {
	bus := NewBus(zap.NewNop())

	boom := errors.New("handler failed")
	var called []int
	bus.Subscribe("test.event", func(tx *gorm.DB, e Event) error {
		called = append(called, 1)
		return nil
	})
	bus.Subscribe("test.event", func(tx *gorm.DB, e Event) error {
		called = append(called, 2)
		return boom
	})
	bus.Subscribe("test.event", func(tx *gorm.DB, e Event) error {
		called = append(called, 3)
		return nil
	})

	err := bus.Publish(nil, testEvent{name: "test.event"})
	assert.ErrorIs(t, err, boom)
	// 第三个handler不应被调用
	assert.Equal(t, []int{1, 2}, called)
}

func TestBusNoHandlers(t *testing.T) {
	bus := NewBus(zap.NewNop())

	err := bus.Publish(nil, testEvent{name: "nobody.listens"})
	assert.NoError(t, err)
}

func TestBusIsolatesEventNames(t *testing.T) {
	bus := NewBus(zap.NewNop())

	var aCount, bCount int
	bus.Subscribe("event.a", func(tx *gorm.DB, e Event) error {
		aCount++
		return nil
	})
	bus.Subscribe("event.b", func(tx *gorm.DB, e Event) error {
		bCount++
		return nil
	})

	assert.NoError(t, bus.Publish(nil, testEvent{name: "event.a"}))
	assert.Equal(t, 1, aCount)
	assert.Equal(t, 0, bCount)
}
