// Package scoring은 두 프로필 사이의 궁합 점수를 계산한다.
// 저장소에 접근하지 않는 순수 함수만 둔다.
package scoring

import (
	"math"
	"strings"
	"time"

	"bandhan/pkg/config"
	"bandhan/pkg/helper"
	"bandhan/pkg/models"
)

// Breakdown: 계산에 포함된 항목만 값이 있다
type Breakdown struct {
	Personality *float64
	Preference  *float64
	Lifestyle   *float64
	Location    *float64
}

type Result struct {
	Score     int
	Breakdown Breakdown
}

type Scorer struct {
	cfg *config.Scoring
}

func NewScorer(cfg *config.Scoring) *Scorer {
	if cfg == nil {
		cfg = config.DefaultScoring()
	}
	return &Scorer{cfg: cfg}
}

// Score는 viewer와 candidate의 0~100 궁합 점수.
// 입력이 없는 항목은 분자와 분모 모두에서 빠진다. 모두 빠지면 0.
func (s *Scorer) Score(viewer, candidate models.Profile, viewerPref, candidatePref *models.Preference, now time.Time) Result {
	w := s.cfg.Weights
	var (
		res         Result
		sum, weight float64
	)

	include := func(slot **float64, value float64, ok bool, wt float64) {
		if !ok {
			return
		}
		v := value
		*slot = &v
		sum += wt * value
		weight += wt
	}

	p, ok := s.Personality(viewer.Answers(), candidate.Answers())
	include(&res.Breakdown.Personality, p, ok, w.Personality)

	p, ok = s.PreferenceFit(viewer, candidate, viewerPref, candidatePref, now)
	include(&res.Breakdown.Preference, p, ok, w.Preference)

	p, ok = s.Lifestyle(viewer, candidate)
	include(&res.Breakdown.Lifestyle, p, ok, w.Lifestyle)

	p, ok = s.Location(viewer.City, candidate.City)
	include(&res.Breakdown.Location, p, ok, w.Location)

	if weight == 0 {
		return res
	}
	res.Score = clamp(int(math.Round(sum / weight)))
	return res
}

// Personality: 양쪽 모두 답한 질문 중 답이 같은 비율(%).
// 한쪽이라도 응답이 없으면 제외, 겹치는 질문이 없으면 0.
func (s *Scorer) Personality(a, b map[string]string) (float64, bool) {
	if len(a) == 0 || len(b) == 0 {
		return 0, false
	}
	common, same := 0, 0
	for key, answer := range a {
		other, ok := b[key]
		if !ok {
			continue
		}
		common++
		if answer == other {
			same++
		}
	}
	if common == 0 {
		return 0, true
	}
	return float64(same) * 100 / float64(common), true
}

// PreferenceFit: 서로가 상대의 선호 조건을 얼마나 만족하는지 양방향 평균.
// 선호 레코드가 한쪽만 없으면 그쪽은 중립값, 둘 다 없으면 제외.
func (s *Scorer) PreferenceFit(viewer, candidate models.Profile, viewerPref, candidatePref *models.Preference, now time.Time) (float64, bool) {
	if viewerPref == nil && candidatePref == nil {
		return 0, false
	}
	forward := s.satisfies(viewerPref, candidate, now)
	backward := s.satisfies(candidatePref, viewer, now)
	return (forward + backward) / 2, true
}

// satisfies: target 프로필이 pref 조건을 만족하는 정도
func (s *Scorer) satisfies(pref *models.Preference, target models.Profile, now time.Time) float64 {
	t := s.cfg.PreferenceFit
	if pref == nil {
		return t.Neutral
	}

	var scores []float64
	rangeDim := func(set, satisfied bool) {
		if !set {
			return
		}
		if satisfied {
			scores = append(scores, t.Satisfied)
		} else {
			scores = append(scores, t.Unsatisfied)
		}
	}
	exactDim := func(want, got string) {
		want = helper.Normalize(want)
		if want == "" {
			return
		}
		if want == models.Any || want == helper.Normalize(got) {
			scores = append(scores, t.ExactMatch)
		} else {
			scores = append(scores, t.Mismatch)
		}
	}

	age := helper.AgeOn(target.DateOfBirth, now)
	rangeDim(pref.AgeMin != nil || pref.AgeMax != nil, inRange(age, pref.AgeMin, pref.AgeMax))

	heightSet := pref.HeightMin != nil || pref.HeightMax != nil
	rangeDim(heightSet, target.HeightCm != nil && inRange(*target.HeightCm, pref.HeightMin, pref.HeightMax))

	exactDim(pref.Religion, target.Religion)
	exactDim(pref.Education, target.Education)

	incomeSet := pref.IncomeMin != nil || pref.IncomeMax != nil
	rangeDim(incomeSet, target.Income != nil && inRange(*target.Income, pref.IncomeMin, pref.IncomeMax))

	if len(scores) == 0 {
		return t.Neutral
	}
	return mean(scores)
}

// Lifestyle: 식습관, 흡연, 음주 중 양쪽 모두 값이 있는 항목의 평균
func (s *Scorer) Lifestyle(a, b models.Profile) (float64, bool) {
	var scores []float64
	if present(a.Diet, b.Diet) {
		scores = append(scores, s.cfg.Diet.Grade(a.Diet, b.Diet))
	}
	if present(a.Smoking, b.Smoking) {
		scores = append(scores, s.cfg.Habit.Grade(a.Smoking, b.Smoking))
	}
	if present(a.Drinking, b.Drinking) {
		scores = append(scores, s.cfg.Habit.Grade(a.Drinking, b.Drinking))
	}
	if len(scores) == 0 {
		return 0, false
	}
	return mean(scores), true
}

func (s *Scorer) Location(a, b string) (float64, bool) {
	if !present(a, b) {
		return 0, false
	}
	loc := &s.cfg.Location
	switch {
	case helper.Normalize(a) == helper.Normalize(b):
		return loc.SameCity, true
	case loc.IsMetro(a) && loc.IsMetro(b):
		return loc.BothMetro, true
	case (loc.IsMetro(a) && loc.IsAdjacent(b)) || (loc.IsAdjacent(a) && loc.IsMetro(b)):
		return loc.MetroAdjacent, true
	case loc.IsAdjacent(a) && loc.IsAdjacent(b):
		return loc.BothAdjacent, true
	default:
		return loc.Other, true
	}
}

type number interface {
	~int | ~int64
}

func inRange[T number](v T, lo, hi *T) bool {
	if lo != nil && v < *lo {
		return false
	}
	if hi != nil && v > *hi {
		return false
	}
	return true
}

func present(a, b string) bool {
	return strings.TrimSpace(a) != "" && strings.TrimSpace(b) != ""
}

func mean(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total / float64(len(values))
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// Round는 breakdown 표시용 정수 변환
func Round(v *float64) *int {
	if v == nil {
		return nil
	}
	r := int(math.Round(*v))
	return &r
}
