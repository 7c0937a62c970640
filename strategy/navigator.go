package strategy

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/suriya-shanmugam/design-patterns/global"
)

var ErrNilStrategy = errors.New("strategy: nil strategy")

// Navigator 持有当前路径算法，调用方不感知具体实现。
// 任何时刻有且只有一个生效的策略。
type Navigator struct {
	strategy RouteStrategy
}

func NewNavigator(initial RouteStrategy) (*Navigator, error) {
	if initial == nil {
		return nil, ErrNilStrategy
	}
	return &Navigator{strategy: initial}, nil
}

// SetStrategy 单槽替换当前策略
func (n *Navigator) SetStrategy(next RouteStrategy) error {
	if next == nil {
		return ErrNilStrategy
	}
	global.GLog.Info("switching route strategy",
		zap.String("from", fmt.Sprintf("%T", n.strategy)),
		zap.String("to", fmt.Sprintf("%T", next)))
	n.strategy = next
	return nil
}

// GetDirections 委托给当前策略，结果和错误原样返回
func (n *Navigator) GetDirections(origin, destination string) (string, error) {
	return n.strategy.BuildRoute(origin, destination)
}
