package projection

import "github.com/rs/zerolog/log"

// Fatal reports an unrecoverable contract violation, such as applying a
// matrix to vectors of a dimensionality it was not built for. The default
// handler logs the diagnostic and panics; left unrecovered, the panic
// terminates the process. Hosts that route invariant violations elsewhere
// may replace it. Handlers must not return.
var Fatal = func(msg string) {
	log.Error().Msg(msg)
	panic(msg)
}
