package app

import (
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestInitLogger(t *testing.T) {
	defer log.SetLevel(log.InfoLevel)

	t.Run("Trace Level", func(t *testing.T) {
		Config.Logger.Level = "trace"

		InitLogger()

		assert.Equal(t, log.TraceLevel, log.GetLevel())
	})

	t.Run("Error Level", func(t *testing.T) {
		Config.Logger.Level = "error"

		InitLogger()

		assert.Equal(t, log.ErrorLevel, log.GetLevel())
	})

	t.Run("Unknown Level Defaults To Info", func(t *testing.T) {
		Config.Logger.Level = "verbose"

		InitLogger()

		assert.Equal(t, log.InfoLevel, log.GetLevel())
	})
}
