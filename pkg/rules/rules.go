// Package rules holds the keyword classification rules used when a
// sheet carries no explicit category columns. The groups are evaluated
// top to bottom and the first group with a matching keyword wins, so
// their order is part of the contract.
package rules

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Group struct {
	Label    string   `yaml:"label"`
	Keywords []string `yaml:"keywords"`
}

type Set struct {
	Groups  []Group `yaml:"groups"`
	Default string  `yaml:"default"`
}

// Default returns the built-in rule set. Loans and insurance are
// checked before everything else so a row mentioning both an insurer
// and a gym still lands in 固定費. Communication expenses share the
// 固定費 label.
func Default() *Set {
	return &Set{
		Default: "食費",
		Groups: []Group{
			{Label: "固定費", Keywords: []string{
				"ローン", "保険", "loan", "insurance", "メットライフ",
				"アクサ", "車両保険", "aig", "ネオファースト",
			}},
			{Label: "固定費", Keywords: []string{
				"ソネット", "モバイル", "携帯", "スマホ", "wifi",
				"インターネット", "ネット", "通信", "ドコモ", "netflix",
			}},
			{Label: "光熱費", Keywords: []string{
				"電気", "水道", "ガス", "光熱", "でんき", "みず",
				"東京電力", "東京ガス", "下水", "水道局",
			}},
			{Label: "娯楽費", Keywords: []string{
				"ジム", "アッティーボ", "映画", "レジャー", "娯楽",
			}},
			{Label: "交通費", Keywords: []string{
				"ガソリン", "電車", "バス", "交通", "えき", "タクシー",
				"suica", "パスモ", "etc",
			}},
			{Label: "医療費", Keywords: []string{
				"病院", "薬", "医療", "クリニック", "びょういん",
				"ドラッグ", "薬局",
			}},
		},
	}
}

// Load reads a rule set from a YAML file.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}

	var s Set
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse rules yaml: %w", err)
	}

	if len(s.Groups) == 0 {
		return nil, fmt.Errorf("rules file has no groups")
	}
	for i, g := range s.Groups {
		if g.Label == "" {
			return nil, fmt.Errorf("rules group %d has no label", i)
		}
		if len(g.Keywords) == 0 {
			return nil, fmt.Errorf("rules group %q has no keywords", g.Label)
		}
	}
	if s.Default == "" {
		s.Default = Default().Default
	}
	return &s, nil
}

// Categorize classifies a free-text blob. Matching is case-insensitive
// substring search; the first group with any hit wins.
func (s *Set) Categorize(text string) string {
	text = strings.ToLower(text)
	for _, g := range s.Groups {
		for _, kw := range g.Keywords {
			if strings.Contains(text, strings.ToLower(kw)) {
				return g.Label
			}
		}
	}
	return s.Default
}
