package core

import (
	"os"
	"time"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func getCore(filename string, level zapcore.LevelEnabler) zapcore.Core {
	lumberJackLogger := &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    1, //在进行切割之前，日志文件的最大大小（以MB为单位）
		MaxBackups: 1, //旧文件的个数
		MaxAge:     1, //天数
		Compress:   false,
	}
	writer := zapcore.AddSync(lumberJackLogger)
	//自定义时间格式
	config := zapcore.EncoderConfig{
		MessageKey:   "msg",
		LevelKey:     "level",
		TimeKey:      "ts",
		CallerKey:    "file",
		EncodeLevel:  zapcore.CapitalLevelEncoder,
		EncodeCaller: zapcore.ShortCallerEncoder,
		EncodeTime: func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(t.Format("2006-01-02 15:04:05"))
		},
		EncodeDuration: func(d time.Duration, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendInt64(int64(d) / 1000000)
		},
	}
	encoder := zapcore.NewJSONEncoder(config)

	return zapcore.NewCore(encoder, writer, level)
}

// 控制台输出，demo 的演示信息都从这里打出来
func getConsoleCore() zapcore.Core {
	config := zap.NewDevelopmentEncoderConfig()
	config.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.Format("2006-01-02 15:04:05"))
	}
	encoder := zapcore.NewConsoleEncoder(config)
	return zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), zap.DebugLevel)
}

// Zap 生成日志对象，按等级拆分文件，另外 tee 一份到控制台
func Zap(logDir string) (logger *zap.Logger) {
	if logDir == "" {
		logDir = "./Log"
	}
	//判断文件夹是否存在，不存在就新建
	_, err := os.Stat(logDir)
	if err != nil {
		if os.IsNotExist(err) {
			_ = os.MkdirAll(logDir, os.ModePerm)
		}
	}

	debugLog := zap.LevelEnablerFunc(func(level zapcore.Level) bool {
		return level == zap.DebugLevel
	})
	infoLog := zap.LevelEnablerFunc(func(level zapcore.Level) bool {
		return level == zap.InfoLevel
	})
	warnLog := zap.LevelEnablerFunc(func(level zapcore.Level) bool {
		return level == zap.WarnLevel
	})
	errorLog := zap.LevelEnablerFunc(func(level zapcore.Level) bool {
		return level >= zap.ErrorLevel
	})

	cores := [...]zapcore.Core{
		getCore(logDir+"/demo_debug.log", debugLog),
		getCore(logDir+"/demo_info.log", infoLog),
		getCore(logDir+"/demo_warn.log", warnLog),
		getCore(logDir+"/demo_error.log", errorLog),
		getConsoleCore(),
	}
	return zap.New(zapcore.NewTee(cores[:]...), zap.AddCaller())
}
