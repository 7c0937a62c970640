package adapter

import (
	"go.uber.org/zap"

	"github.com/suriya-shanmugam/design-patterns/global"
)

// MediaPlayer 播放器统一接口，上层只认这个
type MediaPlayer interface {
	Play(fileName string) error
}

type MP3Player struct {
	LastFile string
}

func (p *MP3Player) Play(fileName string) error {
	p.LastFile = fileName
	global.GLog.Info("mp3 player playing", zap.String("file", fileName))
	return nil
}

// VLCPlayer 第三方播放器，接口和 MediaPlayer 不兼容
type VLCPlayer struct {
	LastFile      string
	LastSpeed     float64
	LastNormalize bool
}

func (p *VLCPlayer) HeavyPlay(fileName string, speed float64, normalize bool) {
	p.LastFile = fileName
	p.LastSpeed = speed
	p.LastNormalize = normalize
	global.GLog.Info("vlc heavy play",
		zap.String("file", fileName), zap.Float64("speed", speed), zap.Bool("normalize", normalize))
}

// VLCAdapter 把 Play() 适配成 HeavyPlay()
type VLCAdapter struct {
	player *VLCPlayer
	speed  float64
}

func NewVLCAdapter(player *VLCPlayer, speed float64) *VLCAdapter {
	if speed <= 0 {
		speed = 1.0
	}
	return &VLCAdapter{player: player, speed: speed}
}

func (a *VLCAdapter) Play(fileName string) error {
	global.GLog.Info("[VLCAdapter] Adapting [Play()] to [HeavyPlay()]")
	a.player.HeavyPlay(fileName, a.speed, true)
	return nil
}
