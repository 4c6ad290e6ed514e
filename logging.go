// logging.go sets up the package-level logger used for lifecycle and
// diagnostic messages. The core Board/Engine types never log themselves,
// since loggers belong to the caller, not to a library's data types; the
// only user is LoadConfigOrDefault in config.go, which cmd/checkers's main
// calls when given a config path (main itself does not log).
package checkers

import (
	"os"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("checkers")

func init() {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatter := logging.NewBackendFormatter(backend, logging.MustStringFormatter(
		`%{time:15:04:05.000} %{level:.4s} %{message}`,
	))
	logging.SetBackend(formatter)
}
