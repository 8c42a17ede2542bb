// Package model defines the study tracking data types.
package model

import (
	"encoding/json"
	"time"
)

// Category classifies a study session.
type Category string

const (
	CategoryLinux        Category = "linux"
	CategoryProgramming  Category = "programming"
	CategoryDataAnalysis Category = "data-analysis"
)

// ValidCategories are the allowed session categories.
var ValidCategories = map[Category]bool{
	CategoryLinux:        true,
	CategoryProgramming:  true,
	CategoryDataAnalysis: true,
}

// LinuxDistro describes a Linux distribution study topic.
type LinuxDistro struct {
	Name           string `json:"name" yaml:"name"`
	PackageManager string `json:"packageManager" yaml:"packageManager"`
	InitSystem     string `json:"initSystem" yaml:"initSystem"`
	Logo           string `json:"logo" yaml:"logo"`
}

// ProgrammingTopic describes a programming language study topic.
type ProgrammingTopic struct {
	Language  string   `json:"language" yaml:"language"`
	Framework string   `json:"framework,omitempty" yaml:"framework,omitempty"`
	Concepts  []string `json:"concepts" yaml:"concepts"`
	Color     string   `json:"color" yaml:"color"`
}

// DataAnalysisTopic describes a data-analysis or AI study topic.
// Kind is one of: language, library, tool, ai-framework.
type DataAnalysisTopic struct {
	Name          string   `json:"name" yaml:"name"`
	Kind          string   `json:"category" yaml:"category"`
	Technologies  []string `json:"technologies" yaml:"technologies"`
	AIIntegration []string `json:"aiIntegration" yaml:"aiIntegration"`
	Color         string   `json:"color" yaml:"color"`
}

// Topic is the per-category payload of a session. The field matching the
// session's category is expected to be set; the ledger does not enforce
// the match and persists whatever the caller supplied.
type Topic struct {
	Linux        *LinuxDistro
	Programming  *ProgrammingTopic
	DataAnalysis *DataAnalysisTopic
}

// MarshalJSON emits the payload as a bare object, without a discriminator.
// The owning session's category field identifies the shape on load.
func (t Topic) MarshalJSON() ([]byte, error) {
	switch {
	case t.Linux != nil:
		return json.Marshal(t.Linux)
	case t.Programming != nil:
		return json.Marshal(t.Programming)
	case t.DataAnalysis != nil:
		return json.Marshal(t.DataAnalysis)
	}
	return []byte("null"), nil
}

// StudySession is a single logged study session.
type StudySession struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Category  Category  `json:"category"`
	Topic     Topic     `json:"topic"`
	Duration  int       `json:"duration"`
	Completed bool      `json:"completed"`
	Resources []string  `json:"resources"`
	CreatedAt time.Time `json:"createdAt"`
}

// UnmarshalJSON decodes the topic payload into the variant named by the
// stored category. Payloads under an unknown category are dropped.
func (s *StudySession) UnmarshalJSON(data []byte) error {
	type alias StudySession
	aux := struct {
		*alias
		Topic json.RawMessage `json:"topic"`
	}{alias: (*alias)(s)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if len(aux.Topic) == 0 || string(aux.Topic) == "null" {
		return nil
	}
	switch s.Category {
	case CategoryLinux:
		var d LinuxDistro
		if err := json.Unmarshal(aux.Topic, &d); err != nil {
			return err
		}
		s.Topic.Linux = &d
	case CategoryProgramming:
		var p ProgrammingTopic
		if err := json.Unmarshal(aux.Topic, &p); err != nil {
			return err
		}
		s.Topic.Programming = &p
	case CategoryDataAnalysis:
		var d DataAnalysisTopic
		if err := json.Unmarshal(aux.Topic, &d); err != nil {
			return err
		}
		s.Topic.DataAnalysis = &d
	}
	return nil
}

// TopicName returns the display name of the session's topic: the distro
// name, the language, or the data-analysis topic name. Empty when the
// payload for the session's category is missing.
func (s *StudySession) TopicName() string {
	switch s.Category {
	case CategoryLinux:
		if s.Topic.Linux != nil {
			return s.Topic.Linux.Name
		}
	case CategoryProgramming:
		if s.Topic.Programming != nil {
			return s.Topic.Programming.Language
		}
	case CategoryDataAnalysis:
		if s.Topic.DataAnalysis != nil {
			return s.Topic.DataAnalysis.Name
		}
	}
	return ""
}
