package workflow

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"shortlinks/internal/draft"
	"shortlinks/internal/model"
)

const (
	submitAlertTitle    = "Failed to add shortened link"
	lookupAlertTitle    = "Failed to get shortened link data"
	unknownErrorMessage = "Unknown error"
)

// ShortenerClient is the remote side of the workflow.
type ShortenerClient interface {
	CreateShortLink(ctx context.Context, originalURL string) (*model.LinkRecord, error)
	FetchShortLink(ctx context.Context, id string) (*model.LinkRecord, error)
}

// LinkStore holds the records created so far.
type LinkStore interface {
	Append(rec model.LinkRecord)
	List() []model.LinkRecord
	FindByID(id string) (model.LinkRecord, bool)
}

// Alerter receives the user-facing failure dialogs.
type Alerter interface {
	Alert(title, message string)
}

// Workflow drives one submission cycle at a time: validate the draft, run
// the create request, append the result to the store and surface failures.
// All collaborators are injected; independent instances do not share state.
type Workflow struct {
	client  ShortenerClient
	store   LinkStore
	draft   *draft.Draft
	alerter Alerter

	mu        sync.Mutex
	pending   bool
	attempted string
}

// New constructs a Workflow over the given collaborators.
func New(client ShortenerClient, store LinkStore, d *draft.Draft, alerter Alerter) *Workflow {
	return &Workflow{
		client:  client,
		store:   store,
		draft:   d,
		alerter: alerter,
	}
}

// Pending reports whether a create request is in flight.
func (w *Workflow) Pending() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.pending
}

// Links returns the shortened links created so far, most recent first.
func (w *Workflow) Links() []model.LinkRecord {
	return w.store.List()
}

// Submit runs one submission cycle for the current draft text. A call while
// a previous submission is still pending is a silent no-op: the attempt is
// dropped, not queued. Validation failures populate the draft's error slot
// and never reach the network; remote failures restore the draft text and
// raise a single alert.
func (w *Workflow) Submit(ctx context.Context) {
	w.mu.Lock()
	if w.pending {
		w.mu.Unlock()
		return
	}
	w.pending = true
	w.mu.Unlock()

	// pending must be false again once the cycle ends, whatever the outcome.
	defer func() {
		w.mu.Lock()
		w.pending = false
		w.attempted = ""
		w.mu.Unlock()
	}()

	w.draft.ClearError()

	if msg, valid := w.draft.Validate(); !valid {
		w.draft.ShowError(msg)
		return
	}

	url := w.draft.Text()

	w.mu.Lock()
	w.attempted = url
	w.mu.Unlock()

	w.draft.SetText("")

	rec, err := w.client.CreateShortLink(ctx, url)
	if err != nil {
		// The user must not lose the attempted URL.
		w.mu.Lock()
		attempted := w.attempted
		w.mu.Unlock()
		w.draft.SetText(attempted)

		w.alerter.Alert(submitAlertTitle, errorMessage(err))
		log.Error().Err(err).Str("url", url).Msg("Failed to create short link")
		return
	}

	w.store.Append(*rec)
}

// GetShortenedLinkData returns the record for id, straight from the store
// when it is already known, otherwise from the service. Failures raise an
// alert and yield nil instead of propagating.
func (w *Workflow) GetShortenedLinkData(ctx context.Context, id string) *model.LinkRecord {
	if rec, ok := w.store.FindByID(id); ok {
		return &rec
	}

	rec, err := w.client.FetchShortLink(ctx, id)
	if err != nil {
		w.alerter.Alert(lookupAlertTitle, errorMessage(err))
		log.Error().Err(err).Str("id", id).Msg("Failed to fetch short link")
		return nil
	}

	return rec
}

// errorMessage extracts the user-facing message, falling back when the
// failure carries none.
func errorMessage(err error) string {
	if err == nil || err.Error() == "" {
		return unknownErrorMessage
	}
	return err.Error()
}
