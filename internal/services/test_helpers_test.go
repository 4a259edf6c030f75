package services_test

import (
	"time"

	"github.com/skybook/skybook-web/internal/toast"
	"github.com/skybook/skybook-web/pkg/logger"
)

func init() {
	// Initialize logger for tests
	if err := logger.Initialize(logger.Config{
		Level:       "debug",
		Environment: "development",
	}); err != nil {
		panic(err)
	}
}

func newToasts() *toast.Channel {
	return toast.New(toast.NewManualClock(time.Now()), 0)
}

func lastToast(ch *toast.Channel) toast.Message {
	list := ch.List()
	if len(list) == 0 {
		return toast.Message{}
	}
	return list[len(list)-1]
}
