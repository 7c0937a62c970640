package main

import (
	"fmt"

	"github.com/suriya-shanmugam/design-patterns/core"
	"github.com/suriya-shanmugam/design-patterns/global"
	"github.com/suriya-shanmugam/design-patterns/strategy"
)

func main() {
	//启动日志
	global.GLog = core.Zap("")

	loc1 := "Home"
	loc2 := "Office"
	nav, err := strategy.NewNavigator(strategy.RoadStrategy{})
	if err != nil {
		global.GLog.Error("navigator init failed: " + err.Error())
		return
	}
	route, _ := nav.GetDirections(loc1, loc2)
	fmt.Println(route)

	_ = nav.SetStrategy(strategy.WalkStrategy{})
	route, _ = nav.GetDirections(loc1, loc2)
	fmt.Println(route)

	_ = nav.SetStrategy(strategy.BikeStrategy{SpeedKmh: 20})
	route, _ = nav.GetDirections(loc1, loc2)
	fmt.Println(route)
}
