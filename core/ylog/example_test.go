package ylog_test

import (
	"context"

	"github.com/yomorun/lambda-stream/core/ylog"
)

func Example() {
	logger := ylog.NewFromConfig(ylog.Config{
		Level:       "warn",
		Format:      "json",
		ErrorOutput: "stdout",
		DisableTime: true,
	})

	ylog.SetDefault(logger.With("run", "demo").WithGroup("invoke"))

	ylog.Debug("debug", "aaa", "bbb")
	ylog.Info("info", "ccc", "ddd")
	ylog.Warn("warn", "eee", "fff")
	ylog.Error("error", "err", context.DeadlineExceeded, "eee", "fff")

	// Output:
	// {"level":"WARN","msg":"warn","run":"demo","invoke":{"eee":"fff"}}
	// {"level":"ERROR","msg":"error","run":"demo","invoke":{"err":"context deadline exceeded","eee":"fff"}}
}
