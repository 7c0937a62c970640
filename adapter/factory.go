package adapter

// NewMediaPlayer 按配置选择播放器，useVLC 一般来自 AppConfig
func NewMediaPlayer(useVLC bool) MediaPlayer {
	if useVLC {
		return NewVLCAdapter(&VLCPlayer{}, 1.0)
	}
	return &MP3Player{}
}
