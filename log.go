package huffmantree

import (
	"github.com/op/go-logging"
)

const logModule = "huffmantree"

var log = logging.MustGetLogger(logModule)

func init() {
	// Quiet by default.  Callers may raise this with
	// logging.SetLevel(logging.DEBUG, "huffmantree").
	logging.SetLevel(logging.WARNING, logModule)
}
