package config

import (
	"fmt"
	"os"
	"time"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Logger *zap.Logger

// InitLogger initializes the Zap logger with Lumberjack log rotation and a
// 'logs' folder; files are named by date and compressed once rotated.
func InitLogger() {
	err := os.MkdirAll("logs", os.ModePerm)
	if err != nil {
		panic(fmt.Sprintf("Failed to create logs directory: %v", err))
	}

	logFile := &lumberjack.Logger{
		Filename:   fmt.Sprintf("logs/%s.log", time.Now().Format("2006-01-02")),
		MaxSize:    10, // megabytes per file before rotation
		MaxBackups: 7,
		MaxAge:     28, // days
		Compress:   true,
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoder := zapcore.NewConsoleEncoder(encoderConfig)

	core := zapcore.NewCore(
		encoder,
		zapcore.AddSync(logFile),
		zapcore.InfoLevel,
	)

	Logger = zap.New(core)

	defer Logger.Sync()
}
