package workflow

import "github.com/rs/zerolog/log"

// LogAlerter renders alerts as warning log lines. It stands in for the
// modal dialog a graphical client would show.
type LogAlerter struct{}

func (LogAlerter) Alert(title, message string) {
	log.Warn().Str("title", title).Msg(message)
}
