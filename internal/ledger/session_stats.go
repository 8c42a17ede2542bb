package ledger

import (
	"context"

	"github.com/rcliao/study-tracker/internal/model"
)

// SessionStats aggregates the session collection per category. The topic
// name lists hold distinct names in first-seen order (scanning newest
// first, as List returns them).
type SessionStats struct {
	LinuxTime            int      `json:"linuxTime"`
	ProgrammingTime      int      `json:"programmingTime"`
	DataAnalysisTime     int      `json:"dataAnalysisTime"`
	LinuxSessions        int      `json:"linuxSessions"`
	ProgrammingSessions  int      `json:"programmingSessions"`
	DataAnalysisSessions int      `json:"dataAnalysisSessions"`
	StudiedDistros       []string `json:"studiedDistros"`
	StudiedLanguages     []string `json:"studiedLanguages"`
	StudiedDataTopics    []string `json:"studiedDataTopics"`
	TotalSessions        int      `json:"totalSessions"`
	CompletedSessions    int      `json:"completedSessions"`
}

// Stats computes the aggregate statistics over all sessions.
func (l *SessionLedger) Stats(ctx context.Context) (*SessionStats, error) {
	sessions, err := l.load(ctx)
	if err != nil {
		return nil, err
	}

	st := &SessionStats{TotalSessions: len(sessions)}
	seen := map[model.Category]map[string]bool{
		model.CategoryLinux:        {},
		model.CategoryProgramming:  {},
		model.CategoryDataAnalysis: {},
	}

	appendDistinct := func(cat model.Category, name string, names []string) []string {
		if name == "" || seen[cat][name] {
			return names
		}
		seen[cat][name] = true
		return append(names, name)
	}

	for _, s := range sessions {
		if s.Completed {
			st.CompletedSessions++
		}
		switch s.Category {
		case model.CategoryLinux:
			st.LinuxTime += s.Duration
			st.LinuxSessions++
			st.StudiedDistros = appendDistinct(s.Category, s.TopicName(), st.StudiedDistros)
		case model.CategoryProgramming:
			st.ProgrammingTime += s.Duration
			st.ProgrammingSessions++
			st.StudiedLanguages = appendDistinct(s.Category, s.TopicName(), st.StudiedLanguages)
		case model.CategoryDataAnalysis:
			st.DataAnalysisTime += s.Duration
			st.DataAnalysisSessions++
			st.StudiedDataTopics = appendDistinct(s.Category, s.TopicName(), st.StudiedDataTopics)
		}
	}

	return st, nil
}
