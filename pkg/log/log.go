package log

import (
	"context"
	"os"
	"time"
	
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type ctxLoggerKey struct{}

type Logger struct {
	*zap.Logger
}

// NewLog builds the application logger. Records go to stdout and, when
// app.log.log_file_name is set, to a rotating file.
func NewLog(conf *viper.Viper) *Logger {
	var level zapcore.Level
	switch conf.GetString("app.log.log_level") {
	case "debug":
		level = zap.DebugLevel
	case "warn":
		level = zap.WarnLevel
	case "error":
		level = zap.ErrorLevel
	default:
		level = zap.InfoLevel
	}
	
	var encoder zapcore.Encoder
	if conf.GetString("app.log.encoding") == "console" {
		encoder = zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
			TimeKey:        "ts",
			LevelKey:       "level",
			NameKey:        "Logger",
			CallerKey:      "caller",
			MessageKey:     "msg",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseColorLevelEncoder,
			EncodeTime:     timeEncoder,
			EncodeDuration: zapcore.SecondsDurationEncoder,
			EncodeCaller:   zapcore.FullCallerEncoder,
		})
	} else {
		encoder = zapcore.NewJSONEncoder(zapcore.EncoderConfig{
			TimeKey:        "ts",
			LevelKey:       "level",
			NameKey:        "logger",
			CallerKey:      "caller",
			FunctionKey:    zapcore.OmitKey,
			MessageKey:     "msg",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.EpochTimeEncoder,
			EncodeDuration: zapcore.SecondsDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		})
	}
	
	writers := []zapcore.WriteSyncer{zapcore.AddSync(os.Stdout)}
	if filename := conf.GetString("app.log.log_file_name"); filename != "" {
		writers = append(writers, zapcore.AddSync(&lumberjack.Logger{
			Filename:   filename,
			MaxSize:    conf.GetInt("app.log.max_size"), // megabytes
			MaxBackups: conf.GetInt("app.log.max_backups"),
			MaxAge:     conf.GetInt("app.log.max_age"), // days
			Compress:   conf.GetBool("app.log.compress"),
		}))
	}
	core := zapcore.NewCore(encoder, zapcore.NewMultiWriteSyncer(writers...), level)
	
	if conf.GetString("app.env") != "prod" {
		return &Logger{zap.New(core, zap.Development(), zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel))}
	}
	return &Logger{zap.New(core, zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel))}
}

// NewNop returns a Logger that discards everything.
func NewNop() *Logger {
	return &Logger{zap.NewNop()}
}

func timeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("2006-01-02 15:04:05.000000000"))
}

// WithValue stores a child logger carrying fields in ctx.
func (l *Logger) WithValue(ctx context.Context, fields ...zapcore.Field) context.Context {
	return context.WithValue(ctx, ctxLoggerKey{}, l.WithContext(ctx).With(fields...))
}

// WithContext returns the logger stored in ctx, or l itself.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	if zl, ok := ctx.Value(ctxLoggerKey{}).(*zap.Logger); ok {
		return &Logger{zl}
	}
	return l
}
