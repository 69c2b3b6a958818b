package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"shortlinks/internal/client"
	"shortlinks/internal/config"
	"shortlinks/internal/draft"
	"shortlinks/internal/store/memory"
	"shortlinks/internal/workflow"
)

// App wires the client, store, draft and workflow together and drives them
// from an interactive line loop standing in for the mobile screen.
type App struct {
	config *config.Config
	draft  *draft.Draft
	flow   *workflow.Workflow

	in  io.Reader
	out io.Writer
}

// NewApp builds the application from the given configuration.
func NewApp(cfg *config.Config) *App {
	d := draft.New()
	shortener := client.New(cfg.BaseURL, cfg.RequestTimeout)
	links := memory.NewStore()

	flow := workflow.New(shortener, links, d, workflow.LogAlerter{})

	return &App{
		config: cfg,
		draft:  d,
		flow:   flow,
		in:     os.Stdin,
		out:    os.Stdout,
	}
}

// Run reads lines until EOF. A plain line is a URL to shorten; ":list"
// prints the history newest first; ":get <id>" looks up a single alias.
func (a *App) Run() error {
	log.Info().Str("baseURL", a.config.BaseURL).Msg("Shortener client started")

	ctx := context.Background()

	scanner := bufio.NewScanner(a.in)
	for scanner.Scan() {
		a.handleLine(ctx, scanner.Text())
	}
	return scanner.Err()
}

func (a *App) handleLine(ctx context.Context, line string) {
	switch {
	case strings.TrimSpace(line) == ":list":
		a.printHistory()
	case strings.HasPrefix(line, ":get "):
		a.printLink(ctx, strings.TrimSpace(strings.TrimPrefix(line, ":get ")))
	default:
		a.submit(ctx, line)
	}
}

func (a *App) submit(ctx context.Context, line string) {
	a.draft.SetText(line)

	before := len(a.flow.Links())
	a.flow.Submit(ctx)

	if msg := a.draft.Err(); msg != "" {
		fmt.Fprintln(a.out, msg)
		return
	}

	links := a.flow.Links()
	if len(links) > before {
		rec := links[0]
		fmt.Fprintf(a.out, "%s  %s -> %s\n", rec.ID, rec.OriginalURL, rec.ShortenedURL)
	}
}

func (a *App) printHistory() {
	links := a.flow.Links()
	if len(links) == 0 {
		fmt.Fprintln(a.out, "no shortened links yet")
		return
	}

	for _, rec := range links {
		fmt.Fprintf(a.out, "%s  %s -> %s\n", rec.ID, rec.OriginalURL, rec.ShortenedURL)
	}
}

func (a *App) printLink(ctx context.Context, id string) {
	rec := a.flow.GetShortenedLinkData(ctx, id)
	if rec == nil {
		// The failure has already been surfaced through the alerter.
		return
	}

	fmt.Fprintf(a.out, "%s  %s -> %s\n", rec.ID, rec.OriginalURL, rec.ShortenedURL)
}
