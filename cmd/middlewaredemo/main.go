package main

import (
	"fmt"

	"github.com/suriya-shanmugam/design-patterns/core"
	"github.com/suriya-shanmugam/design-patterns/funcdecorator"
	"github.com/suriya-shanmugam/design-patterns/global"
)

func main() {
	//启动日志
	global.GLog = core.Zap("")

	//函数装饰器
	function1 := funcdecorator.HandlerFunc(func(args ...interface{}) interface{} {
		fmt.Println("I am actual function")
		fmt.Println(args...)
		return len(args)
	})
	wrapped := funcdecorator.Wrap(function1,
		funcdecorator.Logging("function1"),
		funcdecorator.Timing("function1"),
	)
	wrapped(1, 3)

	//生产代码里的同一个思路：gin 中间件
	r := funcdecorator.NewRouter()
	fmt.Println("try: curl http://localhost:8080/greet?name=suriya")
	if err := r.Run(); err != nil {
		global.GLog.Error("server is fail!")
	}
}
