package observer

import (
	"go.uber.org/zap"

	"github.com/suriya-shanmugam/design-patterns/global"
)

// Observer 观察者接口，推模式，温度变化时被回调
type Observer interface {
	UpdateTemperature(temp float64)
}

// 观察者实例

type PhoneDisplay struct {
	lastReading float64
}

func (p *PhoneDisplay) UpdateTemperature(temp float64) {
	p.lastReading = temp
	global.GLog.Info("Phone display updated", zap.Float64("temperature", temp))
}

func (p *PhoneDisplay) LastReading() float64 {
	return p.lastReading
}

type WindowDisplay struct {
	lastReading float64
}

func (w *WindowDisplay) UpdateTemperature(temp float64) {
	w.lastReading = temp
	global.GLog.Info("Window display updated", zap.Float64("temperature", temp))
}

func (w *WindowDisplay) LastReading() float64 {
	return w.lastReading
}
