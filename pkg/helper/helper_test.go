package helper

import (
	"errors"
	"testing"
	"time"

	"bandhan/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAgeOn(t *testing.T) {
	now := date(2026, time.October, 19)

	assert.Equal(t, 31, AgeOn(date(1995, time.October, 19), now), "birthday today")
	assert.Equal(t, 30, AgeOn(date(1995, time.October, 20), now), "birthday tomorrow")
	assert.Equal(t, 31, AgeOn(date(1995, time.January, 1), now))
	assert.Equal(t, 30, AgeOn(date(1995, time.December, 31), now))
}

func TestBirthDateBounds(t *testing.T) {
	now := date(2026, time.October, 19)
	minAge, maxAge := 25, 30

	latest, earliest := BirthDateBounds(&minAge, &maxAge, now)
	require.NotNil(t, latest)
	require.NotNil(t, earliest)
	assert.Equal(t, date(2001, time.October, 19), *latest)
	assert.Equal(t, date(1995, time.October, 19), *earliest)

	// 경계값: 정확히 25살, 30살은 포함
	assert.Equal(t, 25, AgeOn(*latest, now))
	assert.Equal(t, 30, AgeOn(earliest.AddDate(0, 0, 1), now))
	assert.Equal(t, 31, AgeOn(*earliest, now))

	// 윤일: 평년으로 가면 2월 28일
	leapDay := date(2028, time.February, 29)
	latest, earliest = BirthDateBounds(&minAge, &maxAge, leapDay)
	assert.Equal(t, date(2003, time.February, 28), *latest)
	assert.Equal(t, date(1997, time.February, 28), *earliest)
	assert.Equal(t, 25, AgeOn(*latest, leapDay))
	assert.Equal(t, 24, AgeOn(latest.AddDate(0, 0, 1), leapDay))
	assert.Equal(t, 31, AgeOn(*earliest, leapDay))
	assert.Equal(t, 30, AgeOn(earliest.AddDate(0, 0, 1), leapDay))

	latest, earliest = BirthDateBounds(nil, nil, now)
	assert.Nil(t, latest)
	assert.Nil(t, earliest)
}

func TestParseUserID(t *testing.T) {
	id, err := ParseUserID(" 3F2504E0-4F89-11D3-9A0C-0305E82C3301 ", "userId")
	require.NoError(t, err)
	assert.Equal(t, "3f2504e0-4f89-11d3-9a0c-0305e82c3301", id)

	_, err = ParseUserID("42", "userId")
	assert.True(t, errors.Is(err, apperr.ErrValidation))

	_, err = ParseUserID("", "userId")
	assert.True(t, errors.Is(err, apperr.ErrValidation))
}

func TestIsConstraint(t *testing.T) {
	assert.True(t, IsConstraint("Hindu"))
	assert.False(t, IsConstraint(""))
	assert.False(t, IsConstraint(" ANY "))
}

func TestPagination(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 3, TotalPages(21, 10))
	assert.Equal(t, 0, Offset(1, 10))
	assert.Equal(t, 20, Offset(3, 10))
	assert.Equal(t, 0, Offset(0, 10))
}

func TestExtractFirstPath(t *testing.T) {
	first, rest := ExtractFirstPath("/matches/status/abc")
	assert.Equal(t, "matches", first)
	assert.Equal(t, "/status/abc", rest)

	first, rest = ExtractFirstPath("/profile")
	assert.Equal(t, "profile", first)
	assert.Equal(t, "/", rest)

	first, _ = ExtractFirstPath("")
	assert.Empty(t, first)
}

func TestYearsBefore(t *testing.T) {
	assert.Equal(t, date(2001, time.October, 19), YearsBefore(date(2026, time.October, 19), 25))
	assert.Equal(t, date(2003, time.February, 28), YearsBefore(date(2028, time.February, 29), 25))
	assert.Equal(t, date(2000, time.February, 29), YearsBefore(date(2028, time.February, 29), 28))
	assert.Equal(t, date(1900, time.February, 28), YearsBefore(date(2000, time.February, 29), 100))
}
