package rxcore

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsDefaults(t *testing.T) {
	conf := Settings()

	assert.Equal(t, 8, conf.GetIntDefault("rx.test.missing", 8))
	assert.Equal(t, "text", conf.GetStringDefault("rx.test.missing", "text"))
	assert.True(t, conf.GetBoolDefault("rx.test.missing", true))
	assert.Equal(t, time.Second, conf.GetDurationDefault("rx.test.missing", time.Second))
	assert.Equal(t, 1, conf.GetDefault("rx.test.missing", 1))
}

func TestSettingsFromEnv(t *testing.T) {
	t.Setenv("RX_SCHEDULER_WORKERS", "3")

	conf := Settings()
	assert.True(t, conf.IsSet(KeySchedulerWorkers))
	assert.Equal(t, 3, conf.GetIntDefault(KeySchedulerWorkers, 8))
}

func TestSettingsSubConfig(t *testing.T) {
	viper.Set("rx.test.sub.timeout", "2s")

	sub, ok := Settings().GetConfig("rx.test.sub")
	require.True(t, ok)
	assert.Equal(t, 2*time.Second, sub.GetDurationDefault("timeout", time.Second))

	_, ok = Settings().GetConfig("rx.test.none")
	assert.False(t, ok)
}
