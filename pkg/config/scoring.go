package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

//go:embed scoring.yaml
var defaultScoringYAML []byte

type Weights struct {
	Personality float64 `yaml:"personality"`
	Preference  float64 `yaml:"preference"`
	Lifestyle   float64 `yaml:"lifestyle"`
	Location    float64 `yaml:"location"`
}

type PreferenceFitTable struct {
	Satisfied   float64 `yaml:"satisfied"`
	Unsatisfied float64 `yaml:"unsatisfied"`
	ExactMatch  float64 `yaml:"exact_match"`
	Mismatch    float64 `yaml:"mismatch"`
	Neutral     float64 `yaml:"neutral"`
}

// PairScore는 YAML에서 [a, b, score] 형태로 적는다
type PairScore struct {
	A     string
	B     string
	Score float64
}

func (p *PairScore) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode || len(value.Content) != 3 {
		return fmt.Errorf("line %d: pair must be [a, b, score]", value.Line)
	}
	score, err := strconv.ParseFloat(value.Content[2].Value, 64)
	if err != nil {
		return fmt.Errorf("line %d: invalid pair score %q", value.Line, value.Content[2].Value)
	}
	p.A = normalize(value.Content[0].Value)
	p.B = normalize(value.Content[1].Value)
	p.Score = score
	return nil
}

// GradedTable: 같으면 Identical, 등록된 쌍이면 그 점수, 나머지는 Default
type GradedTable struct {
	Identical float64     `yaml:"identical"`
	Default   float64     `yaml:"default"`
	Pairs     []PairScore `yaml:"pairs"`
}

// Grade는 대칭으로 조회한다
func (t GradedTable) Grade(a, b string) float64 {
	a, b = normalize(a), normalize(b)
	if a == b {
		return t.Identical
	}
	for _, p := range t.Pairs {
		if (p.A == a && p.B == b) || (p.A == b && p.B == a) {
			return p.Score
		}
	}
	return t.Default
}

type LocationTable struct {
	SameCity      float64  `yaml:"same_city"`
	BothMetro     float64  `yaml:"both_metro"`
	MetroAdjacent float64  `yaml:"metro_adjacent"`
	BothAdjacent  float64  `yaml:"both_adjacent"`
	Other         float64  `yaml:"other"`
	Metros        []string `yaml:"metros"`
	Adjacent      []string `yaml:"adjacent"`

	metroSet    map[string]struct{}
	adjacentSet map[string]struct{}
}

func (t *LocationTable) IsMetro(city string) bool {
	_, ok := t.metroSet[normalize(city)]
	return ok
}

func (t *LocationTable) IsAdjacent(city string) bool {
	_, ok := t.adjacentSet[normalize(city)]
	return ok
}

type KundliTable struct {
	RashiMatch           float64             `yaml:"rashi_match"`
	RashiMismatch        float64             `yaml:"rashi_mismatch"`
	NakshatraPlaceholder float64             `yaml:"nakshatra_placeholder"`
	Unassessable         float64             `yaml:"unassessable"`
	Rashi                map[string][]string `yaml:"rashi"`
	Aliases              map[string]string   `yaml:"aliases"`
}

// CanonicalRashi: 영문 별자리 이름도 라시 이름으로 바꾼다
func (t *KundliTable) CanonicalRashi(sign string) string {
	s := normalize(sign)
	if alias, ok := t.Aliases[s]; ok {
		return alias
	}
	return s
}

func (t *KundliTable) RashiCompatible(a, b string) bool {
	return lo.Contains(t.Rashi[t.CanonicalRashi(a)], t.CanonicalRashi(b))
}

// Scoring은 궁합 계산에 쓰이는 모든 테이블
type Scoring struct {
	Weights       Weights            `yaml:"weights"`
	PreferenceFit PreferenceFitTable `yaml:"preference_fit"`
	Diet          GradedTable        `yaml:"diet"`
	Habit         GradedTable        `yaml:"habit"`
	Location      LocationTable      `yaml:"location"`
	Kundli        KundliTable        `yaml:"kundli"`
}

// DefaultScoring은 내장된 기본 테이블
func DefaultScoring() *Scoring {
	s, err := ParseScoring(defaultScoringYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded scoring config is invalid: %v", err))
	}
	return s
}

// LoadScoring: path가 비어있으면 기본값, 아니면 파일에서 읽는다
func LoadScoring(path string) (*Scoring, error) {
	if path == "" {
		return DefaultScoring(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scoring config %s: %w", path, err)
	}
	return ParseScoring(data)
}

func ParseScoring(data []byte) (*Scoring, error) {
	var s Scoring
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scoring config: %w", err)
	}
	s.normalize()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scoring) normalize() {
	s.Location.metroSet = toSet(s.Location.Metros)
	s.Location.adjacentSet = toSet(s.Location.Adjacent)

	rashi := make(map[string][]string, len(s.Kundli.Rashi))
	for sign, partners := range s.Kundli.Rashi {
		rashi[normalize(sign)] = lo.Map(partners, func(p string, _ int) string { return normalize(p) })
	}
	s.Kundli.Rashi = rashi

	aliases := make(map[string]string, len(s.Kundli.Aliases))
	for from, to := range s.Kundli.Aliases {
		aliases[normalize(from)] = normalize(to)
	}
	s.Kundli.Aliases = aliases
}

// Validate: 가중치는 양수, 라시 테이블은 12개 x 4개이며 대칭
func (s *Scoring) Validate() error {
	w := s.Weights
	if w.Personality <= 0 || w.Preference <= 0 || w.Lifestyle <= 0 || w.Location <= 0 {
		return fmt.Errorf("scoring weights must be positive: %+v", w)
	}
	if len(s.Kundli.Rashi) != 12 {
		return fmt.Errorf("rashi table must list 12 signs, got %d", len(s.Kundli.Rashi))
	}
	for sign, partners := range s.Kundli.Rashi {
		if len(partners) != 4 {
			return fmt.Errorf("rashi %s must have exactly 4 compatible signs, got %d", sign, len(partners))
		}
		for _, p := range partners {
			if !lo.Contains(s.Kundli.Rashi[p], sign) {
				return fmt.Errorf("rashi table is not symmetric: %s -> %s", sign, p)
			}
		}
	}
	return nil
}

func normalize(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[normalize(v)] = struct{}{}
	}
	return set
}
