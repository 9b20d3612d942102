package session

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/1rvyn/log-a-line/models"
	"github.com/1rvyn/log-a-line/transcript"
)

var (
	ErrEmptySourceName = errors.New("source name is empty")
	ErrNoSource        = errors.New("no source selected")
)

// State is the controller lifecycle. It only moves forward.
type State string

const (
	StateNoSource       State = "no_source"
	StateSourceSelected State = "source_selected"
)

// DraftStore persists raw editable text by document key.
type DraftStore interface {
	Get(ctx context.Context, name string) (models.Draft, bool, error)
	Put(ctx context.Context, name, text string) error
}

// Config tunes background store operations.
type Config struct {
	OpTimeout time.Duration
	// OnError receives store failures. They never interrupt editing.
	OnError func(error)
}

// Status is a snapshot of the editing session.
type Status struct {
	State  State  `json:"state"`
	Source string `json:"source"`
	Key    string `json:"key"`
	Text   string `json:"text"`
}

// Controller loads the draft of the selected source and writes the
// editable text back on every change.
type Controller struct {
	store DraftStore
	cfg   Config

	mu         sync.Mutex
	state      State
	source     string
	key        string
	text       string
	generation uint64
	edited     bool
	// loaded is closed when the current selection's load has finished.
	loaded chan struct{}

	inflight sync.WaitGroup
}

func NewController(store DraftStore, cfg Config) *Controller {
	if cfg.OpTimeout <= 0 {
		cfg.OpTimeout = 5 * time.Second
	}
	if cfg.OnError == nil {
		cfg.OnError = func(err error) { log.Printf("Draft store error: %v", err) }
	}
	loaded := make(chan struct{})
	close(loaded)
	return &Controller{store: store, cfg: cfg, state: StateNoSource, loaded: loaded}
}

// SelectSource makes fileName the active source. The editable text is
// cleared and replaced by the stored draft once it loads, unless the source
// changed or the text was edited in the meantime.
func (c *Controller) SelectSource(fileName string) error {
	if strings.TrimSpace(fileName) == "" {
		return ErrEmptySourceName
	}
	key := transcript.DraftKey(fileName)

	c.mu.Lock()
	c.generation++
	gen := c.generation
	c.state = StateSourceSelected
	c.source = fileName
	c.key = key
	c.text = ""
	c.edited = false
	loaded := make(chan struct{})
	c.loaded = loaded
	c.mu.Unlock()

	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()
		defer close(loaded)
		c.load(gen, key)
	}()
	return nil
}

// AwaitLoad blocks until the draft of the current selection has been
// loaded or discarded.
func (c *Controller) AwaitLoad(ctx context.Context) error {
	c.mu.Lock()
	loaded := c.loaded
	c.mu.Unlock()

	select {
	case <-loaded:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Controller) load(gen uint64, key string) {
	ctx, cancel := context.WithTimeout(context.Background(), c.cfg.OpTimeout)
	defer cancel()

	draft, found, err := c.store.Get(ctx, key)
	if err != nil {
		c.cfg.OnError(err)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generation != gen || c.edited {
		return
	}
	if found {
		c.text = draft.Text
	} else {
		c.text = ""
	}
}

// SetText replaces the editable text and, when a source is selected,
// persists it in the background. Writes are not ordered against each other:
// the stored value is whichever completes last.
func (c *Controller) SetText(text string) {
	c.mu.Lock()
	key, ok := c.setTextLocked(text)
	c.mu.Unlock()
	if ok {
		c.persist(key, text)
	}
}

// setTextLocked updates the text and reports the key to persist under, if
// any. c.mu must be held.
func (c *Controller) setTextLocked(text string) (string, bool) {
	c.text = text
	if c.state != StateSourceSelected {
		return "", false
	}
	c.edited = true
	return c.key, true
}

func (c *Controller) persist(key, text string) {
	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()
		ctx, cancel := context.WithTimeout(context.Background(), c.cfg.OpTimeout)
		defer cancel()
		if err := c.store.Put(ctx, key, text); err != nil {
			c.cfg.OnError(err)
		}
	}()
}

// FormatText canonicalizes the editable text. Empty text is left alone.
// The read and the write happen under one lock so a concurrent SetText is
// never replaced by a formatted copy of older text.
func (c *Controller) FormatText() string {
	c.mu.Lock()
	if c.text == "" {
		c.mu.Unlock()
		return ""
	}
	formatted := transcript.Format(c.text)
	key, ok := c.setTextLocked(formatted)
	c.mu.Unlock()
	if ok {
		c.persist(key, formatted)
	}
	return formatted
}

// Segments parses the current text on demand.
func (c *Controller) Segments() ([]models.TranscriptSegment, error) {
	return transcript.Parse(c.Text())
}

// Text returns the current editable text.
func (c *Controller) Text() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text
}

// Status returns the current session snapshot.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Status{State: c.state, Source: c.source, Key: c.key, Text: c.text}
}

// Wait blocks until background loads and writes have finished.
func (c *Controller) Wait() {
	c.inflight.Wait()
}
