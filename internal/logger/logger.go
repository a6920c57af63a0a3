// Package logger provides the leveled, colored terminal output used by
// every repo-setup command. Levels map to colors: Info is green, Warn is
// bright magenta, Error is red, and Debug is cyan. Debug output is a
// no-op until enabled via Init.
package logger

import "github.com/fatih/color"

var (
	infoPrintf  = color.New(color.FgGreen).PrintfFunc()
	warnPrintf  = color.New(color.FgHiMagenta).PrintfFunc()
	errorPrintf = color.New(color.FgRed).PrintfFunc()
	debugPrintf = func(string, ...any) {}
)

// Init enables or disables debug logging. Called once from the CLI's
// PersistentPreRun hook; safe to call again, the last call wins.
func Init(enableDebug bool) {
	if enableDebug {
		debugPrintf = color.New(color.FgCyan).PrintfFunc()
	} else {
		debugPrintf = func(string, ...any) {}
	}
}

// Info reports normal progress, one line per call.
func Info(format string, a ...any) {
	infoPrintf("[INFO] "+format+"\n", a...)
}

// Warn reports conditions the user should know about but that do not
// stop the run.
func Warn(format string, a ...any) {
	warnPrintf("[WARN] "+format+"\n", a...)
}

// Error reports failures. Whether a failure is fatal is the caller's
// decision, not the logger's.
func Error(format string, a ...any) {
	errorPrintf("[ERROR] "+format+"\n", a...)
}

// Debug reports diagnostic detail. Silent unless Init(true) was called.
func Debug(format string, a ...any) {
	debugPrintf("[DEBUG] "+format+"\n", a...)
}
