package scoring

import (
	"math"
	"strings"

	"bandhan/pkg/models"
)

// Chart는 궁합에 쓰는 출생 차트 정보
type Chart struct {
	Rashi     string
	Nakshatra string
}

func ChartOf(p models.Profile) Chart {
	return Chart{Rashi: p.Rashi, Nakshatra: p.Nakshatra}
}

func (c Chart) Empty() bool {
	return strings.TrimSpace(c.Rashi) == "" && strings.TrimSpace(c.Nakshatra) == ""
}

type KundliResult struct {
	Score           int
	Rashi           *int
	Nakshatra       *int
	RashiCompatible bool
}

// Kundli: 라시 궁합과 낙샤트라 점수의 평균. 둘 다 판단할 수 없으면 Unassessable.
// 메인 궁합 점수에는 섞지 않는다.
func (s *Scorer) Kundli(a, b Chart) KundliResult {
	k := &s.cfg.Kundli
	var (
		res    KundliResult
		scores []float64
	)

	if present(a.Rashi, b.Rashi) {
		res.RashiCompatible = k.RashiCompatible(a.Rashi, b.Rashi)
		score := k.RashiMismatch
		if res.RashiCompatible {
			score = k.RashiMatch
		}
		scores = append(scores, score)
		res.Rashi = Round(&score)
	}

	// TODO: 낙샤트라 궁합(구나 밀란) 공식이 정해지면 상수 대신 계산한다
	if present(a.Nakshatra, b.Nakshatra) {
		score := k.NakshatraPlaceholder
		scores = append(scores, score)
		res.Nakshatra = Round(&score)
	}

	if len(scores) == 0 {
		res.Score = int(math.Round(k.Unassessable))
		return res
	}
	res.Score = clamp(int(math.Round(mean(scores))))
	return res
}
