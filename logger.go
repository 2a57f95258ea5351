package markdown2confluence

import (
	"log"
	"os"
)

// Logger is the package logger. Conversion never fails, so it only
// reports preprocessing that degraded: malformed front matter or an
// unknown extension name.
var Logger = log.New(os.Stderr, "[markdown2confluence] ", log.LstdFlags)

// SetLogger replaces the package logger.
func SetLogger(logger *log.Logger) {
	Logger = logger
}
