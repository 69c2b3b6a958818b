package draft

import (
	"strings"
	"sync"
	"time"
)

// Validation messages shown in the input's error slot.
const (
	MsgSpacesNotAllowed = "Spaces are not allowed"
	MsgInvalidURL       = "Should start with http:// or https://"
	MsgEmptyURL         = "Please enter a URL"
)

const defaultDismissTimeout = 10 * time.Second

// Draft owns the URL text being typed and its inline validation message.
// The message clears itself after a fixed delay unless replaced or cleared
// first. Each Draft owns its timer; instances do not interfere.
type Draft struct {
	mu           sync.Mutex
	text         string
	errMsg       string
	errGen       uint64
	dismissAfter time.Duration
	dismissTimer *time.Timer
}

// New creates a Draft with the default error dismiss timeout.
func New() *Draft {
	return NewWithDismissTimeout(defaultDismissTimeout)
}

// NewWithDismissTimeout creates a Draft whose errors auto-clear after d.
func NewWithDismissTimeout(d time.Duration) *Draft {
	return &Draft{dismissAfter: d}
}

// SetText normalizes raw input and stores it: leading and trailing
// whitespace is trimmed, embedded spaces are removed and the result is
// lowercased. Raw input containing a space also raises the spaces message;
// otherwise any existing message is left alone.
func (d *Draft) SetText(raw string) {
	normalized := strings.TrimSpace(raw)
	normalized = strings.ReplaceAll(normalized, " ", "")
	normalized = strings.ToLower(normalized)

	d.mu.Lock()
	d.text = normalized
	hadSpace := strings.Contains(raw, " ")
	if hadSpace {
		d.showErrorLocked(MsgSpacesNotAllowed)
	}
	d.mu.Unlock()
}

// ShowError sets the message and arms the auto-dismiss timer. Re-arming on
// a newer message replaces the previous timer; only one dismiss ever fires.
func (d *Draft) ShowError(msg string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.showErrorLocked(msg)
}

func (d *Draft) showErrorLocked(msg string) {
	if d.dismissTimer != nil {
		d.dismissTimer.Stop()
	}

	d.errMsg = msg
	d.errGen++

	// A stale timer callback may still run after Stop; the generation check
	// keeps it from clearing a newer message.
	gen := d.errGen
	d.dismissTimer = time.AfterFunc(d.dismissAfter, func() {
		d.mu.Lock()
		defer d.mu.Unlock()

		if d.errGen == gen {
			d.errMsg = ""
			d.dismissTimer = nil
		}
	})
}

// ClearError clears the message and stops any pending auto-dismiss timer.
func (d *Draft) ClearError() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.dismissTimer != nil {
		d.dismissTimer.Stop()
		d.dismissTimer = nil
	}
	d.errMsg = ""
	d.errGen++
}

// Validate applies the submit-time rules, first match wins. It returns the
// message for the failed rule and whether the text is submittable.
func (d *Draft) Validate() (string, bool) {
	text := d.Text()

	if text == "" {
		return MsgEmptyURL, false
	}

	if !strings.HasPrefix(text, "http://") && !strings.HasPrefix(text, "https://") {
		return MsgInvalidURL, false
	}

	return "", true
}

// Text returns the current normalized draft text.
func (d *Draft) Text() string {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.text
}

// Err returns the current validation message, empty when there is none.
func (d *Draft) Err() string {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.errMsg
}
