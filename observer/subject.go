package observer

// Push mode

import (
	"errors"

	"go.uber.org/zap"

	"github.com/suriya-shanmugam/design-patterns/global"
)

var (
	ErrNilObserver      = errors.New("observer: nil observer")
	ErrObserverNotFound = errors.New("observer: observer not attached")
)

// WeatherStation 被观察者，维护观察者列表和当前温度。
// 非线程安全，多协程环境需要外部加锁。
type WeatherStation struct {
	temp      float64
	observers []Observer
}

func NewWeatherStation() *WeatherStation {
	return &WeatherStation{}
}

// Attach 按注册顺序追加，不去重，同一个观察者注册两次每轮广播会收到两次
func (w *WeatherStation) Attach(o Observer) error {
	if o == nil {
		return ErrNilObserver
	}
	w.observers = append(w.observers, o)
	return nil
}

// Detach 移除第一个匹配的观察者，没注册过返回 ErrObserverNotFound
func (w *WeatherStation) Detach(o Observer) error {
	for i, v := range w.observers {
		if v == o {
			w.observers = append(w.observers[:i], w.observers[i+1:]...)
			return nil
		}
	}
	return ErrObserverNotFound
}

// SetTemperature 更新温度后同步广播
func (w *WeatherStation) SetTemperature(t float64) {
	w.temp = t
	w.Notify()
}

func (w *WeatherStation) Temperature() float64 {
	return w.temp
}

// Notify 按注册顺序把当前温度推给每个观察者。
// 广播前先拷贝一份列表，回调里 Attach/Detach 只对下一轮广播生效。
func (w *WeatherStation) Notify() {
	snapshot := make([]Observer, len(w.observers))
	copy(snapshot, w.observers)
	for _, o := range snapshot {
		o.UpdateTemperature(w.temp)
	}
	global.GLog.Debug("weather station broadcast",
		zap.Float64("temp", w.temp), zap.Int("observers", len(snapshot)))
}
