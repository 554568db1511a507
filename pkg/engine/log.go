package engine

import "log"

func (e *Engine) logf(format string, args ...any) {
	if e.verbose {
		log.Printf(format, args...)
	}
}
