package main

import (
	"fmt"

	"github.com/suriya-shanmugam/design-patterns/core"
	"github.com/suriya-shanmugam/design-patterns/global"
)

func main() {
	//启动日志
	global.GLog = core.Zap("")

	config1 := core.LoadConfig()
	config2 := core.LoadConfig()
	fmt.Println("Is both reference pointing to same memory location - ", config1 == config2)
	fmt.Println("url:", config1.Server.URL)
	fmt.Println("username:", config1.Server.UserName)
}
