package logs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Logger *zap.Logger

type ctxKey struct{}

func LogInit(serviceName string) {
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	logConfig := []byte(fmt.Sprint(`{
       "level" :"`, logLevel, `",
       "encoding": "json",
       "outputPaths":["stdout"],
       "errorOutputPaths":["stderr"],
 	   "initialFields": {"service": "`, serviceName, `"},
       "encoderConfig": {
           "messageKey":"msg",
           "levelKey":"level",
           "timeKey":"ts",
           "callerKey":"src",
           "levelEncoder":"lowercase"
       }
   }`))

	var zapConfig zap.Config

	if err := json.Unmarshal(logConfig, &zapConfig); err != nil {
		panic(err)
	}
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapConfig.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	var err error
	Logger, err = zapConfig.Build()
	if err != nil {
		panic(err)
	}
	undo := zap.ReplaceGlobals(Logger)
	defer undo()

	defer Logger.Sync()
}

func NewContext(ctx context.Context, fields ...zap.Field) context.Context {
	return context.WithValue(ctx, ctxKey{}, WithContext(ctx).With(fields...))
}

func WithContext(ctx context.Context) *zap.Logger {
	if Logger == nil {
		// LogInit not called (tests)
		Logger = zap.NewNop()
	}
	if ctx == nil {
		return Logger
	}
	if ctxLogger, ok := ctx.Value(ctxKey{}).(*zap.Logger); ok {
		return ctxLogger
	}
	return Logger
}
