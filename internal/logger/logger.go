package logger

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color" // Import the fatih/color package for colored console output
	"gopkg.in/natefinch/lumberjack.v2"
)

// output is where console messages go. It defaults to color.Output so that
// Windows consoles get ANSI translation through go-colorable.
var output io.Writer = color.Output

// mirror receives an uncolored, timestamped copy of every message when a log
// file has been configured with SetLogFile. Nil otherwise.
var mirror io.Writer

// Info logs informational messages in green color.
var Info = leveled(color.New(color.FgGreen))

// Warn logs warning messages in bright magenta color.
// Magenta stands out, signaling caution without being too alarming.
var Warn = leveled(color.New(color.FgHiMagenta))

// Error logs error messages in red color.
var Error = leveled(color.New(color.FgRed))

// Debug logs debug messages in cyan color if enabled, otherwise is a no-op.
// It is assigned during Init based on the debug flag.
var Debug = func(format string, a ...any) {}

// Alert prints a single bold line on a red background, used for conditions
// the user has to act on (for example a missing build tool).
var Alert = banner(color.New(color.Bold, color.BgRed))

// Success prints a single bold line on a green background.
var Success = banner(color.New(color.Bold, color.BgGreen))

// Init enables or disables debug logging.
// When enabled, Debug prints cyan-colored messages; otherwise it silently drops them.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = leveled(color.New(color.FgCyan))
	} else {
		Debug = func(format string, a ...any) {}
	}
}

// SetOutput redirects console output. Mostly useful in tests.
func SetOutput(w io.Writer) {
	output = w
}

// SetLogFile mirrors every message into a size-rotated log file at path.
// The returned closer flushes and detaches the file.
func SetLogFile(path string) io.Closer {
	lj := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}
	mirror = lj
	return closerFunc(func() error {
		mirror = nil
		return lj.Close()
	})
}

func leveled(c *color.Color) func(format string, a ...any) {
	return func(format string, a ...any) {
		c.Fprintf(output, format, a...)
		writeMirror(format, a...)
	}
}

// banner colors the text only; the newline is written uncolored.
func banner(c *color.Color) func(format string, a ...any) {
	return func(format string, a ...any) {
		c.Fprintf(output, format, a...)
		fmt.Fprintln(output)
		writeMirror(format, a...)
	}
}

func writeMirror(format string, a ...any) {
	if mirror == nil {
		return
	}
	line := strings.TrimRight(fmt.Sprintf(format, a...), "\n")
	fmt.Fprintf(mirror, "%s %s\n", time.Now().Format(time.RFC3339), line)
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }
