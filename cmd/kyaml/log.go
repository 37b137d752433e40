package main

import (
	"io"
	"log/slog"
	"os"
)

var (
	theLog = newLog(io.Discard)
)

func newLog(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			if a.Key == slog.LevelKey {
				if a.Value.String() == "INFO" {
					return slog.Attr{}
				}
			}
			return a
		},
	}))
}

func setVerbose(v bool) {
	if v {
		theLog = newLog(os.Stderr)
	}
}
