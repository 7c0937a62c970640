package main

import (
	"fmt"

	"github.com/suriya-shanmugam/design-patterns/core"
	"github.com/suriya-shanmugam/design-patterns/factory"
	"github.com/suriya-shanmugam/design-patterns/global"
)

func main() {
	//启动日志和配置
	global.GLog = core.Zap("")
	cfg := core.LoadConfig()

	s, err := factory.GetSerializer(cfg.Media.Format)
	if err != nil {
		fmt.Println(err)
		return
	}
	out, err := s.Serialize("My business data")
	if err != nil {
		global.GLog.Error("serialize failed: " + err.Error())
		return
	}
	fmt.Println(out)
}
