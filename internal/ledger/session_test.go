package ledger

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rcliao/study-tracker/internal/model"
	"github.com/rcliao/study-tracker/internal/store"
)

func newTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	dir := t.TempDir()
	s, err := store.NewSQLiteStore(filepath.Join(dir, "test.db"), nil)
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func newTestSessions(t *testing.T) *SessionLedger {
	t.Helper()
	return NewSessionLedger(newTestStore(t), nil)
}

func linuxParams(title, distro string, duration int) AddParams {
	return AddParams{
		Title:    title,
		Category: model.CategoryLinux,
		Topic:    model.Topic{Linux: &model.LinuxDistro{Name: distro, PackageManager: "APT", InitSystem: "systemd"}},
		Duration: duration,
	}
}

func TestAddAndList(t *testing.T) {
	ctx := context.Background()
	l := newTestSessions(t)

	sess, err := l.Add(ctx, AddParams{
		Title:    "goroutines deep dive",
		Category: model.CategoryProgramming,
		Topic: model.Topic{Programming: &model.ProgrammingTopic{
			Language: "Go", Concepts: []string{"Concurrency"}, Color: "#00ADD8",
		}},
		Duration:  45,
		Resources: []string{"https://go.dev/tour"},
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if sess.ID == "" {
		t.Error("expected non-empty ID")
	}
	if sess.Completed {
		t.Error("expected completed=false at creation")
	}
	if sess.CreatedAt.IsZero() {
		t.Error("expected createdAt to be set")
	}

	got, err := l.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 session, got %d", len(got))
	}
	if got[0].Title != "goroutines deep dive" {
		t.Errorf("unexpected title %q", got[0].Title)
	}
	if got[0].Topic.Programming == nil || got[0].Topic.Programming.Language != "Go" {
		t.Errorf("topic payload not preserved: %+v", got[0].Topic)
	}
	if len(got[0].Resources) != 1 {
		t.Errorf("resources not preserved: %v", got[0].Resources)
	}
}

func TestListNewestFirst(t *testing.T) {
	ctx := context.Background()
	l := newTestSessions(t)

	l.Add(ctx, linuxParams("first", "Ubuntu", 30))
	l.Add(ctx, linuxParams("second", "Debian", 30))
	l.Add(ctx, linuxParams("third", "Fedora", 30))

	got, _ := l.List(ctx)
	if len(got) != 3 {
		t.Fatalf("expected 3, got %d", len(got))
	}
	if got[0].Title != "third" || got[2].Title != "first" {
		t.Errorf("expected newest first, got %q..%q", got[0].Title, got[2].Title)
	}
}

func TestToggleIsIdempotentPair(t *testing.T) {
	ctx := context.Background()
	l := newTestSessions(t)

	sess, _ := l.Add(ctx, linuxParams("pipes", "Ubuntu", 20))

	l.Toggle(ctx, sess.ID)
	got, _ := l.List(ctx)
	if !got[0].Completed {
		t.Error("expected completed=true after first toggle")
	}

	l.Toggle(ctx, sess.ID)
	got, _ = l.List(ctx)
	if got[0].Completed {
		t.Error("expected completed=false after second toggle")
	}
}

func TestToggleUnknownIDIsNoop(t *testing.T) {
	ctx := context.Background()
	l := newTestSessions(t)

	l.Add(ctx, linuxParams("pipes", "Ubuntu", 20))

	if err := l.Toggle(ctx, "no-such-id"); err != nil {
		t.Fatalf("expected silent no-op, got %v", err)
	}
	got, _ := l.List(ctx)
	if got[0].Completed {
		t.Error("no-op toggle mutated a session")
	}
}

func TestDeleteIsTerminal(t *testing.T) {
	ctx := context.Background()
	l := newTestSessions(t)

	sess, _ := l.Add(ctx, linuxParams("pipes", "Ubuntu", 20))
	keep, _ := l.Add(ctx, linuxParams("systemd", "Debian", 40))

	if err := l.Delete(ctx, sess.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	// Subsequent toggle and delete of the same id stay silent no-ops.
	if err := l.Toggle(ctx, sess.ID); err != nil {
		t.Fatalf("toggle after delete: %v", err)
	}
	if err := l.Delete(ctx, sess.ID); err != nil {
		t.Fatalf("second delete: %v", err)
	}

	got, _ := l.List(ctx)
	if len(got) != 1 || got[0].ID != keep.ID {
		t.Errorf("expected only %q to remain, got %+v", keep.ID, got)
	}
	for _, s := range got {
		if s.ID == sess.ID {
			t.Error("deleted id reappeared in list")
		}
	}
}

func TestStatsSums(t *testing.T) {
	ctx := context.Background()
	l := newTestSessions(t)

	l.Add(ctx, linuxParams("a", "Ubuntu", 30))
	l.Add(ctx, linuxParams("b", "Ubuntu", 45))
	l.Add(ctx, AddParams{
		Title:    "rust ownership",
		Category: model.CategoryProgramming,
		Topic:    model.Topic{Programming: &model.ProgrammingTopic{Language: "Rust"}},
		Duration: 60,
	})
	l.Add(ctx, AddParams{
		Title:    "pandas basics",
		Category: model.CategoryDataAnalysis,
		Topic:    model.Topic{DataAnalysis: &model.DataAnalysisTopic{Name: "Python Data Stack", Kind: "language"}},
		Duration: 25,
	})

	sess, _ := l.List(ctx)
	l.Toggle(ctx, sess[0].ID)

	st, err := l.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if st.LinuxTime != 75 {
		t.Errorf("expected linux time 75, got %d", st.LinuxTime)
	}
	if st.ProgrammingTime != 60 {
		t.Errorf("expected programming time 60, got %d", st.ProgrammingTime)
	}
	if st.DataAnalysisTime != 25 {
		t.Errorf("expected data-analysis time 25, got %d", st.DataAnalysisTime)
	}
	if got := st.LinuxSessions + st.ProgrammingSessions + st.DataAnalysisSessions; got != st.TotalSessions {
		t.Errorf("category counts sum to %d, total is %d", got, st.TotalSessions)
	}
	if st.TotalSessions != 4 {
		t.Errorf("expected 4 total, got %d", st.TotalSessions)
	}
	if st.CompletedSessions != 1 {
		t.Errorf("expected 1 completed, got %d", st.CompletedSessions)
	}
}

func TestStatsDistinctTopics(t *testing.T) {
	ctx := context.Background()
	l := newTestSessions(t)

	l.Add(ctx, linuxParams("a", "Ubuntu", 30))
	l.Add(ctx, linuxParams("b", "Ubuntu", 45))
	l.Add(ctx, linuxParams("c", "Arch Linux", 15))

	st, _ := l.Stats(ctx)
	count := 0
	for _, d := range st.StudiedDistros {
		if d == "Ubuntu" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected Ubuntu exactly once, got %d occurrences in %v", count, st.StudiedDistros)
	}
	if len(st.StudiedDistros) != 2 {
		t.Errorf("expected 2 distinct distros, got %v", st.StudiedDistros)
	}
}

func TestMalformedBlobLoadsAsEmpty(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	l := NewSessionLedger(s, nil)

	if err := s.Save(ctx, store.SessionsKey, "{definitely not json"); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := l.List(ctx)
	if err != nil {
		t.Fatalf("expected graceful degradation, got %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty list, got %d", len(got))
	}

	// The ledger recovers: a new session replaces the corrupt blob.
	if _, err := l.Add(ctx, linuxParams("fresh", "Ubuntu", 10)); err != nil {
		t.Fatalf("add after corruption: %v", err)
	}
	got, _ = l.List(ctx)
	if len(got) != 1 {
		t.Errorf("expected 1 session after recovery, got %d", len(got))
	}
}

func TestTopicRoundTripPerCategory(t *testing.T) {
	ctx := context.Background()
	l := newTestSessions(t)

	l.Add(ctx, AddParams{
		Title:    "distro tour",
		Category: model.CategoryLinux,
		Topic:    model.Topic{Linux: &model.LinuxDistro{Name: "openSUSE", PackageManager: "zypper", InitSystem: "systemd", Logo: "🦎"}},
		Duration: 30,
	})
	l.Add(ctx, AddParams{
		Title:    "tensor shapes",
		Category: model.CategoryDataAnalysis,
		Topic: model.Topic{DataAnalysis: &model.DataAnalysisTopic{
			Name: "PyTorch", Kind: "ai-framework",
			Technologies:  []string{"torchvision"},
			AIIntegration: []string{"fine-tuning"},
		}},
		Duration: 50,
	})

	got, _ := l.List(ctx)
	if got[1].Topic.Linux == nil || got[1].Topic.Linux.PackageManager != "zypper" {
		t.Errorf("linux topic lost on round trip: %+v", got[1].Topic)
	}
	if got[0].Topic.DataAnalysis == nil || got[0].Topic.DataAnalysis.Kind != "ai-framework" {
		t.Errorf("data-analysis topic lost on round trip: %+v", got[0].Topic)
	}
	if got[0].TopicName() != "PyTorch" || got[1].TopicName() != "openSUSE" {
		t.Errorf("topic names wrong: %q, %q", got[0].TopicName(), got[1].TopicName())
	}
}
