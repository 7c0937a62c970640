package main

import (
	"fmt"

	"github.com/suriya-shanmugam/design-patterns/core"
	"github.com/suriya-shanmugam/design-patterns/decorator"
	"github.com/suriya-shanmugam/design-patterns/global"
)

func main() {
	//启动日志
	global.GLog = core.Zap("")

	msg := decorator.NewSimpleText("Hello world")
	fmt.Println(msg.Publish())

	htmlMsg := decorator.NewHTMLDecorator(msg)
	fmt.Println(htmlMsg.Publish())

	upperEncoded := decorator.NewUpperCaseDecorator(htmlMsg)
	fmt.Println(upperEncoded.Publish())

	//用 Chain 一次套完
	chained := decorator.Chain(msg,
		decorator.NewHTMLDecorator,
		decorator.NewUpperCaseDecorator,
		decorator.NewAsteriskDecorator,
	)
	fmt.Println(chained.Publish())
}
