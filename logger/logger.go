package logger

import "go.uber.org/zap"

var log *zap.Logger

func Init() error {
	l, err := zap.NewProduction()
	if err != nil {
		return err
	}
	log = l
	return nil
}

// L returns the process logger. Falls back to a no-op logger so tests can
// construct services without calling Init.
func L() *zap.Logger {
	if log == nil {
		log = zap.NewNop()
	}
	return log
}
