package internal

import (
	"fmt"
	"os"
	"strings"
)

// Exit codes reported by hexcrypt front-ends. Scripted callers rely on the
// distinction between bad invocations, bad input files, and I/O failures.
const (
	ExitUsage = 1
	ExitParse = 2
	ExitIO    = 3
)

// Fatal will Echo the message and os.Exit with the given code.
func Fatal(code int, msg string, args ...any) {
	Echo(msg, args...)
	os.Exit(code)
}

// Echo will emit the given message without any logging formatting.
func Echo(msg string, args ...any) {
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	_, _ = fmt.Fprintf(os.Stderr, msg, args...)
}
