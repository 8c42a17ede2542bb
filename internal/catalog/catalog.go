// Package catalog exposes the predefined study topic catalogs.
//
// The catalogs are static data embedded at build time and parsed once at
// process start; accessors return copies so callers cannot mutate them.
package catalog

import (
	_ "embed"
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rcliao/study-tracker/internal/model"
)

//go:embed catalogs.yaml
var rawCatalogs []byte

var catalogs struct {
	Linux        []model.LinuxDistro       `yaml:"linux"`
	Programming  []model.ProgrammingTopic  `yaml:"programming"`
	DataAnalysis []model.DataAnalysisTopic `yaml:"dataAnalysis"`
}

func init() {
	if err := yaml.Unmarshal(rawCatalogs, &catalogs); err != nil {
		panic(fmt.Sprintf("catalog: parse embedded catalogs: %v", err))
	}
}

// LinuxDistros returns the predefined Linux distributions.
func LinuxDistros() []model.LinuxDistro {
	return slices.Clone(catalogs.Linux)
}

// ProgrammingTopics returns the predefined programming topics.
func ProgrammingTopics() []model.ProgrammingTopic {
	return slices.Clone(catalogs.Programming)
}

// DataAnalysisTopics returns the predefined data-analysis topics.
func DataAnalysisTopics() []model.DataAnalysisTopic {
	return slices.Clone(catalogs.DataAnalysis)
}

// FindLinuxDistro looks up a distro by name, case-insensitively.
func FindLinuxDistro(name string) (model.LinuxDistro, bool) {
	for _, d := range catalogs.Linux {
		if strings.EqualFold(d.Name, name) {
			return d, true
		}
	}
	return model.LinuxDistro{}, false
}

// FindProgrammingTopic looks up a topic by language, case-insensitively.
func FindProgrammingTopic(language string) (model.ProgrammingTopic, bool) {
	for _, p := range catalogs.Programming {
		if strings.EqualFold(p.Language, language) {
			return p, true
		}
	}
	return model.ProgrammingTopic{}, false
}

// FindDataAnalysisTopic looks up a topic by name, case-insensitively.
func FindDataAnalysisTopic(name string) (model.DataAnalysisTopic, bool) {
	for _, d := range catalogs.DataAnalysis {
		if strings.EqualFold(d.Name, name) {
			return d, true
		}
	}
	return model.DataAnalysisTopic{}, false
}
