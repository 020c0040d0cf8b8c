package huffpack

import (
	"github.com/op/go-logging"
)

// LogModule is the go-logging module name used by this package.  Programs can
// pass it to logging.SetLevel to control the package's verbosity.
const LogModule = "huffpack"

var log = logging.MustGetLogger(LogModule)
