package funcdecorator

import (
	"time"

	"go.uber.org/zap"

	"github.com/suriya-shanmugam/design-patterns/global"
)

// HandlerFunc 被装饰的函数
type HandlerFunc func(args ...interface{}) interface{}

// Decorator 函数装饰器，包一层 HandlerFunc
type Decorator func(HandlerFunc) HandlerFunc

// Wrap 从内到外依次套装饰器，第一个装饰器在最外层
func Wrap(fn HandlerFunc, decorators ...Decorator) HandlerFunc {
	for i := len(decorators) - 1; i >= 0; i-- {
		fn = decorators[i](fn)
	}
	return fn
}

// Logging 调用前打一行日志再透传
func Logging(name string) Decorator {
	return func(next HandlerFunc) HandlerFunc {
		return func(args ...interface{}) interface{} {
			global.GLog.Info("I am a wrapper",
				zap.String("func", name), zap.Any("args", args))
			return next(args...)
		}
	}
}

// Timing 统计函数耗时
func Timing(name string) Decorator {
	return func(next HandlerFunc) HandlerFunc {
		return func(args ...interface{}) interface{} {
			start := time.Now()
			ret := next(args...)
			global.GLog.Info("function finished",
				zap.String("func", name), zap.Duration("elapsed", time.Since(start)))
			return ret
		}
	}
}
