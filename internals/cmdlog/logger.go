package cmdlog

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/jwalton/gchalk"
)

// Logger loggs pretty stuff to the console
type Logger struct {
	emojis    bool
	indention int
}

// New returns a new Logger
func New() *Logger {
	emojis := runtime.GOOS != "windows"

	// disable color for CI
	if os.Getenv("CI") != "" {
		emojis = false
		gchalk.SetLevel(0)
	}
	return &Logger{emojis: emojis}
}

// helper for indention
func (l *Logger) println(a string) {
	fmt.Println(strings.Repeat(" ", l.indention) + a)
}

// printEmoji prints string e only when emojis are enabled
func (l *Logger) printEmoji(e string) {
	if l.emojis {
		fmt.Print(e + " ")
	}
}

// Headline prints a blue line
func (l *Logger) Headline(s string) {
	fmt.Println(gchalk.WithBold().Cyan(s))
}

// Info prints a "normal" line
func (l *Logger) Info(s string) {
	l.println(s)
}

// Log prints a muted line
func (l *Logger) Log(s string) {
	l.println(gchalk.BrightWhite(s))
}

// Warn will print a warning
func (l *Logger) Warn(s string) {
	l.printEmoji("⚠️ ")
	fmt.Println(gchalk.WithBold().Yellow(s))
}

// Fail will print the given message and then exit 1
func (l *Logger) Fail(s string) {
	l.printEmoji("💣")
	fmt.Print(gchalk.WithBold().Red("Error: "))
	fmt.Println(gchalk.WithBold().White(s))
	os.Exit(1)
}

// Fail will print the given message with PrintLn and then exit 1
func Fail(a ...interface{}) {
	fmt.Println(a...)
	os.Exit(1)
}

// Failf will print the given message with Printf and then exit 1
func Failf(format string, a ...interface{}) {
	fmt.Printf(format, a...)
	os.Exit(1)
}
