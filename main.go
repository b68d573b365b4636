package main

import (
	"log/slog"

	"parbox.dev/parbox/cli"
	ms "parbox.dev/parbox/settings"
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelError)
	ms.Settings.Load()
	cli.Handle()
}
