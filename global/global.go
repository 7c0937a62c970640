package global

import (
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	GLog     = zap.NewNop() //各 demo 启动时用 core.Zap() 替换
	G_Viper  *viper.Viper
	G_Config *AppConfig
)

type AppConfig struct {
	Server Server `mapstructure:"server"`
	Media  Media  `mapstructure:"media"`
	Log    Log    `mapstructure:"log"`
}

type Server struct {
	URL      string `mapstructure:"url"`
	UserName string `mapstructure:"username"`
}

type Media struct {
	UseVLC bool   `mapstructure:"use-vlc"`
	Format string `mapstructure:"format"`
}

type Log struct {
	Dir string `mapstructure:"dir"`
}

// DefaultConfig 配置文件缺失时的兜底配置
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: Server{URL: "https://localhost:4999", UserName: "suriya"},
		Media:  Media{UseVLC: true, Format: "json"},
		Log:    Log{Dir: "./Log"},
	}
}
