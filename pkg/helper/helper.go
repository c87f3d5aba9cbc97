package helper

import (
	"encoding/json"
	"math"
	"strings"
	"time"

	"bandhan/pkg/apperr"
	"bandhan/pkg/logger"

	"github.com/google/uuid"
)

func ToJSON(data interface{}) json.RawMessage {
	bytes, err := json.Marshal(data)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to marshal data")
		return nil
	}
	return json.RawMessage(bytes)
}

// ParseUserID: UUID 형식 검증 후 정규화된 문자열 반환
func ParseUserID(raw string, field string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", apperr.Validation(field + " is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", apperr.Validation(field + " must be a valid UUID")
	}
	return id.String(), nil
}

// DateOnly는 UTC 자정으로 잘라낸 날짜
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AgeOn: 연도 차이에서 올해 생일이 아직 안 지났으면 1을 뺀다
func AgeOn(dob, now time.Time) int {
	dob = DateOnly(dob)
	now = DateOnly(now)
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	return age
}

// BirthDateBounds는 나이 범위를 생년월일 범위로 바꾼다.
// latest: 이 날짜 이전(포함)에 태어나야 minAge 이상.
// earliestExclusive: 이 날짜 이후(미포함)에 태어나야 maxAge 이하.
func BirthDateBounds(minAge, maxAge *int, now time.Time) (latest, earliestExclusive *time.Time) {
	today := DateOnly(now)
	if minAge != nil {
		t := YearsBefore(today, *minAge)
		latest = &t
	}
	if maxAge != nil {
		t := YearsBefore(today, *maxAge+1)
		earliestExclusive = &t
	}
	return latest, earliestExclusive
}

// YearsBefore: n년 전 같은 날짜. 2월 29일은 평년이면 2월 28일로 (AddDate는 3월 1일로 넘어간다)
func YearsBefore(t time.Time, years int) time.Time {
	t = DateOnly(t)
	y, m, d := t.Year()-years, t.Month(), t.Day()
	if m == time.February && d == 29 && !isLeapYear(y) {
		d = 28
	}
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func isLeapYear(y int) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

// IsConstraint: 값이 있고 "any"가 아니면 필터 조건으로 사용
func IsConstraint(value string) bool {
	v := Normalize(value)
	return v != "" && v != "any"
}

func Normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// ExtractFirstPath: "/matches/like" -> ("matches", "/like")
func ExtractFirstPath(path string) (string, string) {
	parts := strings.SplitN(path, "/", 3)

	if len(parts) > 1 {
		firstPath := parts[1]
		if len(parts) > 2 {
			return firstPath, "/" + parts[2]
		}
		return firstPath, "/"
	}

	return "", "/"
}

func TotalPages(totalCount int64, limit int) int {
	if limit <= 0 || totalCount <= 0 {
		return 0
	}
	return int(math.Ceil(float64(totalCount) / float64(limit)))
}

func Offset(page, limit int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * limit
}
