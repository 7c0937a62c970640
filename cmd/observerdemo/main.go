package main

import (
	"fmt"

	"github.com/suriya-shanmugam/design-patterns/core"
	"github.com/suriya-shanmugam/design-patterns/global"
	"github.com/suriya-shanmugam/design-patterns/observer"
)

func main() {
	//启动日志
	global.GLog = core.Zap("")

	w := observer.NewWeatherStation()
	pd := &observer.PhoneDisplay{}
	wd := &observer.WindowDisplay{}
	_ = w.Attach(pd)
	_ = w.Attach(wd)

	w.SetTemperature(50)
	fmt.Println("phone display reading:", pd.LastReading())
	fmt.Println("window display reading:", wd.LastReading())

	//摘掉一个再广播
	_ = w.Detach(wd)
	w.SetTemperature(60)
	fmt.Println("phone display reading:", pd.LastReading())
	fmt.Println("window display reading:", wd.LastReading())
}
