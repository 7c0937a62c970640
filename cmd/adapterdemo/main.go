package main

import (
	"github.com/suriya-shanmugam/design-patterns/adapter"
	"github.com/suriya-shanmugam/design-patterns/core"
	"github.com/suriya-shanmugam/design-patterns/global"
)

func runMusicApp(player adapter.MediaPlayer, songPath string) {
	if err := player.Play(songPath); err != nil {
		global.GLog.Error("play failed: " + err.Error())
	}
}

func main() {
	//启动日志和配置
	global.GLog = core.Zap("")
	cfg := core.LoadConfig()

	player := adapter.NewMediaPlayer(cfg.Media.UseVLC)
	runMusicApp(player, "let_it_be.mp3")
}
