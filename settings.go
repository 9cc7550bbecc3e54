package rxcore

import (
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

const (
	KeyLogLevel         = "rx.log.level"
	KeyLogFormatter     = "rx.log.formatter"
	KeySchedulerWorkers = "rx.scheduler.workers"
)

type Config interface {
	Get(string) interface{}
	GetBool(string) bool
	GetInt(string) int
	GetString(string) string
	GetDuration(string) time.Duration

	IsSet(string) bool

	GetDefault(string, interface{}) interface{}
	GetBoolDefault(string, bool) bool
	GetIntDefault(string, int) int
	GetStringDefault(string, string) string
	GetDurationDefault(string, time.Duration) time.Duration

	GetConfig(string) (Config, bool)
}

var envOnce sync.Once

// Settings returns the process wide configuration. Keys can be overridden by
// environment variables, e.g. RX_LOG_LEVEL for rx.log.level.
func Settings() Config {
	envOnce.Do(func() {
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()
	})
	return &viperWrapper{
		viper.GetViper(),
	}
}

type viperWrapper struct {
	*viper.Viper
}

func (w *viperWrapper) GetDefault(key string, v interface{}) interface{} {
	if w.IsSet(key) {
		return w.Get(key)
	}
	return v
}

func (w *viperWrapper) GetBoolDefault(key string, v bool) bool {
	if w.IsSet(key) {
		return w.GetBool(key)
	}
	return v
}

func (w *viperWrapper) GetIntDefault(key string, v int) int {
	if w.IsSet(key) {
		return w.GetInt(key)
	}
	return v
}

func (w *viperWrapper) GetStringDefault(key string, v string) string {
	if w.IsSet(key) {
		return w.GetString(key)
	}
	return v
}

func (w *viperWrapper) GetDurationDefault(key string, v time.Duration) time.Duration {
	if w.IsSet(key) {
		return w.GetDuration(key)
	}
	return v
}

func (w *viperWrapper) GetConfig(key string) (Config, bool) {
	if sub := w.Sub(key); sub != nil {
		return &viperWrapper{sub}, true
	}
	return nil, false
}
