package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKundliRashiOnly(t *testing.T) {
	s := newScorer(t)

	// 메샤-심하는 삼각(트라인) 관계
	res := s.Kundli(Chart{Rashi: "Mesha"}, Chart{Rashi: "simha"})
	assert.True(t, res.RashiCompatible)
	assert.Equal(t, 100, res.Score)
	require.NotNil(t, res.Rashi)
	assert.Nil(t, res.Nakshatra)

	res = s.Kundli(Chart{Rashi: "mesha"}, Chart{Rashi: "vrishabha"})
	assert.False(t, res.RashiCompatible)
	assert.Equal(t, 50, res.Score)
}

func TestKundliIsSymmetricAndAcceptsAliases(t *testing.T) {
	s := newScorer(t)

	ab := s.Kundli(Chart{Rashi: "aries"}, Chart{Rashi: "leo"})
	ba := s.Kundli(Chart{Rashi: "leo"}, Chart{Rashi: "aries"})
	assert.Equal(t, ab, ba)
	assert.True(t, ab.RashiCompatible)
}

func TestKundliNakshatraIsConstant(t *testing.T) {
	s := newScorer(t)

	a := s.Kundli(Chart{Nakshatra: "Ashwini"}, Chart{Nakshatra: "Rohini"})
	b := s.Kundli(Chart{Nakshatra: "Revati"}, Chart{Nakshatra: "Revati"})
	assert.Equal(t, 50, a.Score)
	assert.Equal(t, a, b)

	// 라시 100 + 낙샤트라 50 -> 75
	res := s.Kundli(Chart{Rashi: "mesha", Nakshatra: "Ashwini"}, Chart{Rashi: "dhanu", Nakshatra: "Mula"})
	assert.Equal(t, 75, res.Score)
}

func TestKundliUnassessable(t *testing.T) {
	s := newScorer(t)

	res := s.Kundli(Chart{}, Chart{Rashi: "mesha"})
	assert.Equal(t, 50, res.Score)
	assert.Nil(t, res.Rashi)
	assert.Nil(t, res.Nakshatra)
	assert.True(t, Chart{}.Empty())
}
