// Package ledger implements the session and todo ledgers on top of the
// blob store. Every mutation loads the full collection, transforms it in
// memory and writes it back.
package ledger

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/rcliao/study-tracker/internal/model"
	"github.com/rcliao/study-tracker/internal/store"
)

// SessionLedger owns the study session collection.
type SessionLedger struct {
	store   store.Store
	log     *zap.Logger
	entropy *rand.Rand
	now     func() time.Time
}

// NewSessionLedger creates a session ledger over the given store.
func NewSessionLedger(s store.Store, log *zap.Logger) *SessionLedger {
	if log == nil {
		log = zap.NewNop()
	}
	return &SessionLedger{
		store:   s,
		log:     log,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
		now:     time.Now,
	}
}

func (l *SessionLedger) newID() string {
	return ulid.MustNew(ulid.Timestamp(l.now()), l.entropy).String()
}

// load reads the full session collection. An absent or unparseable blob
// loads as an empty collection, never as an error.
func (l *SessionLedger) load(ctx context.Context) ([]model.StudySession, error) {
	value, ok, err := l.store.Load(ctx, store.SessionsKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var sessions []model.StudySession
	if err := json.Unmarshal([]byte(value), &sessions); err != nil {
		l.log.Warn("discarding malformed session data", zap.Error(err))
		return nil, nil
	}
	return sessions, nil
}

func (l *SessionLedger) save(ctx context.Context, sessions []model.StudySession) error {
	b, err := json.Marshal(sessions)
	if err != nil {
		return err
	}
	return l.store.Save(ctx, store.SessionsKey, string(b))
}

// AddParams holds the caller-supplied fields of a new session. Topic is
// trusted to match Category; the ledger does not validate the shape.
type AddParams struct {
	Title     string
	Category  model.Category
	Topic     model.Topic
	Duration  int
	Resources []string
}

// List returns all sessions, newest first.
func (l *SessionLedger) List(ctx context.Context) ([]model.StudySession, error) {
	return l.load(ctx)
}

// Add creates a session, prepends it to the collection and persists.
// Returns the created record.
func (l *SessionLedger) Add(ctx context.Context, p AddParams) (*model.StudySession, error) {
	sessions, err := l.load(ctx)
	if err != nil {
		return nil, err
	}

	sess := model.StudySession{
		ID:        l.newID(),
		Title:     p.Title,
		Category:  p.Category,
		Topic:     p.Topic,
		Duration:  p.Duration,
		Resources: p.Resources,
		CreatedAt: l.now().UTC(),
	}

	sessions = append([]model.StudySession{sess}, sessions...)
	if err := l.save(ctx, sessions); err != nil {
		return nil, err
	}
	return &sess, nil
}

// Toggle flips the completed flag of the matching session. Unknown ids
// are a silent no-op.
func (l *SessionLedger) Toggle(ctx context.Context, id string) error {
	sessions, err := l.load(ctx)
	if err != nil {
		return err
	}
	for i := range sessions {
		if sessions[i].ID == id {
			sessions[i].Completed = !sessions[i].Completed
			return l.save(ctx, sessions)
		}
	}
	return nil
}

// Delete removes the matching session. Unknown ids are a silent no-op.
func (l *SessionLedger) Delete(ctx context.Context, id string) error {
	sessions, err := l.load(ctx)
	if err != nil {
		return err
	}
	kept := sessions[:0]
	for _, s := range sessions {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	return l.save(ctx, kept)
}
