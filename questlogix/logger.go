package questlogix

import (
	"github.com/heroiclabs/nakama-common/runtime"
	"go.uber.org/zap"
)

// ZapLogger adapts a zap logger to the runtime.Logger interface so the
// systems can be exercised outside a running Nakama server, for example
// from local tooling or integration harnesses.
type ZapLogger struct {
	sugar  *zap.SugaredLogger
	fields map[string]interface{}
}

var _ runtime.Logger = &ZapLogger{}

// NewZapLogger wraps the given zap logger in a runtime.Logger.
func NewZapLogger(logger *zap.Logger) *ZapLogger {
	return &ZapLogger{
		sugar:  logger.WithOptions(zap.AddCallerSkip(1)).Sugar(),
		fields: make(map[string]interface{}),
	}
}

func (l *ZapLogger) Debug(format string, v ...interface{}) { l.sugar.Debugf(format, v...) }
func (l *ZapLogger) Info(format string, v ...interface{})  { l.sugar.Infof(format, v...) }
func (l *ZapLogger) Warn(format string, v ...interface{})  { l.sugar.Warnf(format, v...) }
func (l *ZapLogger) Error(format string, v ...interface{}) { l.sugar.Errorf(format, v...) }

func (l *ZapLogger) WithField(key string, v interface{}) runtime.Logger {
	return l.WithFields(map[string]interface{}{key: v})
}

func (l *ZapLogger) WithFields(fields map[string]interface{}) runtime.Logger {
	merged := make(map[string]interface{}, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	args := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		merged[k] = v
		args = append(args, k, v)
	}
	return &ZapLogger{sugar: l.sugar.With(args...), fields: merged}
}

func (l *ZapLogger) Fields() map[string]interface{} {
	return l.fields
}
