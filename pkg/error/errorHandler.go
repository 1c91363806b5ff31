package error

import (
	"streamsphere/configs"
	"streamsphere/pkg/logging"

	"github.com/getsentry/sentry-go"
)

func SaveError(message string, err error) {
	if configs.GetConfigs().PrintErrors {
		if err != nil {
			logging.Log.WithError(err).Error(message)
		} else {
			logging.Log.Error(message)
		}
	}

	if err == nil {
		sentry.CaptureMessage(message)
	} else {
		sentry.CaptureException(err)
	}
}
