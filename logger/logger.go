package logger

import (
	"log"
	"os"
)

// WarningLogger emits a warning for each non fatal error, like
// declarations dropped for invalid or unsupported values.
var WarningLogger = log.New(os.Stderr, "cssdecl.warning: ", log.Lmsgprefix)
