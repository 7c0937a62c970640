package funcdecorator

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/suriya-shanmugam/design-patterns/global"
)

// gin 中间件就是生产代码里的函数装饰器，和 Wrap 是同一个思路

func AccessLog(c *gin.Context) {
	global.GLog.Info("access",
		zap.String("method", c.Request.Method), zap.String("path", c.Request.URL.Path))
	c.Next()
}

func Elapsed(c *gin.Context) {
	start := time.Now()
	c.Next()
	global.GLog.Info("request done",
		zap.String("path", c.Request.URL.Path),
		zap.Int("status", c.Writer.Status()),
		zap.Duration("elapsed", time.Since(start)))
}

// NewRouter 演示路由，/greet 被两个中间件装饰
func NewRouter() *gin.Engine {
	r := gin.New()
	r.Use(AccessLog, Elapsed)
	r.GET("/greet", func(c *gin.Context) {
		name := c.DefaultQuery("name", "world")
		c.JSON(200, gin.H{
			"message": "hello " + name,
		})
	})
	return r
}
