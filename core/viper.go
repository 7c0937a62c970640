package core

import (
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/suriya-shanmugam/design-patterns/global"
)

var loadOnce sync.Once

// LoadConfig 全局配置单例，进程内只加载一次，重复调用拿到同一份 *AppConfig。
// 配置文件缺失时退回默认值，demo 在任意目录下都能跑起来。
func LoadConfig() *global.AppConfig {
	loadOnce.Do(func() {
		global.GLog.Info("Loading from files...")
		global.G_Config = global.DefaultConfig()

		config := viper.New()
		config.SetConfigName("config")
		config.AddConfigPath("./")
		config.SetConfigType("yaml")
		if err := config.ReadInConfig(); err != nil {
			global.GLog.Warn("config file not found, using defaults", zap.Error(err))
			global.G_Viper = config
			return
		}
		if err := config.Unmarshal(global.G_Config); err != nil {
			global.GLog.Error("unable to unmarshal config:", zap.Error(err))
		}

		//热加载，文件变化时重新 unmarshal
		config.WatchConfig()
		config.OnConfigChange(func(e fsnotify.Event) {
			if err := config.ReadInConfig(); err != nil {
				global.GLog.Error("Fatal error config file:", zap.Error(err))
				return
			}
			if err := config.Unmarshal(global.G_Config); err != nil {
				global.GLog.Error("unable to unmarshal config:", zap.Error(err))
			}
		})
		global.G_Viper = config
	})
	return global.G_Config
}
