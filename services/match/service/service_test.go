package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"bandhan/pkg/apperr"
	"bandhan/pkg/config"
	"bandhan/pkg/db/dbtest"
	"bandhan/pkg/dto"
	"bandhan/pkg/helper"
	"bandhan/pkg/models"
	"bandhan/pkg/mq"
	eventtypes "bandhan/pkg/types/eventtype"
	"bandhan/services/match/repository"
	"bandhan/services/match/scoring"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var now = time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC)

type published struct {
	routingKey string
	payload    eventtypes.EventPayload
}

type fakeEmitter struct {
	mu     sync.Mutex
	events []published
	err    error
}

func (f *fakeEmitter) PublishInterestEvent(routingKey string, payload eventtypes.EventPayload) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, published{routingKey: routingKey, payload: payload})
	return nil
}

func (f *fakeEmitter) routingKeys() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return lo.Map(f.events, func(p published, _ int) string { return p.routingKey })
}

type fixture struct {
	t         *testing.T
	db        *gorm.DB
	match     *MatchService
	interest  *InterestService
	emitter   *fakeEmitter
	interests *repository.InterestRepository
	seq       int
}

func newFixture(t *testing.T) *fixture {
	conn := dbtest.Open(t)
	profiles := repository.NewProfileRepository(conn)
	interests := repository.NewInterestRepository(conn)
	emitter := &fakeEmitter{}

	match := NewMatchService(repository.NewCandidateRepository(conn), profiles, interests, scoring.NewScorer(config.DefaultScoring()), 100)
	match.now = func() time.Time { return now }

	return &fixture{
		t:         t,
		db:        conn,
		match:     match,
		interest:  NewInterestService(profiles, interests, emitter),
		emitter:   emitter,
		interests: interests,
	}
}

func (f *fixture) add(gender models.Gender, age int, opts ...func(*models.Profile)) models.Profile {
	f.t.Helper()
	f.seq++
	p := models.Profile{
		UserID:      uuid.NewString(),
		DisplayName: "user",
		Gender:      gender,
		DateOfBirth: helper.DateOnly(now).AddDate(-age, 0, -1),
		IsActive:    true,
		CreatedAt:   now.Add(time.Duration(f.seq) * time.Minute),
	}
	for _, opt := range opts {
		opt(&p)
	}
	require.NoError(f.t, f.db.Create(&p).Error)
	return p
}

func (f *fixture) prefer(pref models.Preference) {
	f.t.Helper()
	require.NoError(f.t, f.db.Create(&pref).Error)
}

func answers(m map[string]string) func(*models.Profile) {
	return func(p *models.Profile) { p.PersonalityAnswers = datatypes.NewJSONType(m) }
}

func userIDs(items []dto.MatchCandidate) []string {
	return lo.Map(items, func(c dto.MatchCandidate, _ int) string { return c.Profile.UserID })
}

var firstPage = dto.PageQuery{Page: 1, Limit: 10}

func TestSuggestionsRankGloballyByScore(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	viewer := f.add(models.GenderFemale, 28, answers(map[string]string{"q1": "a", "q2": "b", "q3": "c", "q4": "d"}))
	low := f.add(models.GenderMale, 30, answers(map[string]string{"q1": "x", "q2": "x", "q3": "x", "q4": "x"}))
	high := f.add(models.GenderMale, 30, answers(map[string]string{"q1": "a", "q2": "b", "q3": "c", "q4": "d"}))
	mid := f.add(models.GenderMale, 30, answers(map[string]string{"q1": "a", "q2": "b", "q3": "c", "q4": "x"}))
	_ = f.add(models.GenderFemale, 30)

	// 최신순 1페이지(크기 2)에는 mid, high가 오지만 점수순 1페이지는 high, mid
	list, err := f.match.Suggestions(ctx, viewer.UserID, dto.PageQuery{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{high.UserID, mid.UserID}, userIDs(list.Items))
	assert.Equal(t, 100, list.Items[0].CompatibilityScore)
	assert.Equal(t, 75, list.Items[1].CompatibilityScore)
	require.NotNil(t, list.Items[1].Breakdown.Personality)
	assert.Equal(t, 75, *list.Items[1].Breakdown.Personality)
	assert.Nil(t, list.Items[1].Breakdown.Location)
	assert.Equal(t, dto.Pagination{CurrentPage: 1, TotalPages: 2, TotalCount: 3, HasNext: true, HasPrev: false}, list.Pagination)

	list, err = f.match.Suggestions(ctx, viewer.UserID, dto.PageQuery{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{low.UserID}, userIDs(list.Items))
	assert.True(t, list.Pagination.HasPrev)
	assert.False(t, list.Pagination.HasNext)

	list, err = f.match.Suggestions(ctx, viewer.UserID, dto.PageQuery{Page: 5, Limit: 2})
	require.NoError(t, err)
	assert.Empty(t, list.Items)
	assert.NotNil(t, list.Items)
}

func TestSuggestionsExcludeInteractedAndApplyPreference(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	viewer := f.add(models.GenderMale, 30)
	f.prefer(models.Preference{UserID: viewer.UserID, AgeMin: lo.ToPtr(25), AgeMax: lo.ToPtr(30)})

	_ = f.add(models.GenderFemale, 24)
	a25 := f.add(models.GenderFemale, 25)
	a30 := f.add(models.GenderFemale, 30)
	_ = f.add(models.GenderFemale, 31)
	liked := f.add(models.GenderFemale, 27)
	shortlisted := f.add(models.GenderFemale, 27)

	_, err := f.interest.Like(ctx, viewer.UserID, dto.LikeRequest{LikedUserID: liked.UserID})
	require.NoError(t, err)
	_, err = f.interest.Shortlist(ctx, viewer.UserID, dto.ShortlistRequest{ShortlistedUserID: shortlisted.UserID})
	require.NoError(t, err)

	list, err := f.match.Suggestions(ctx, viewer.UserID, firstPage)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{a25.UserID, a30.UserID}, userIDs(list.Items))
	assert.NotContains(t, userIDs(list.Items), viewer.UserID)
	for _, item := range list.Items {
		assert.GreaterOrEqual(t, item.Age, 25)
		assert.LessOrEqual(t, item.Age, 30)
	}
}

func TestSuggestionsForOtherGenderIsEmpty(t *testing.T) {
	f := newFixture(t)

	viewer := f.add(models.GenderOther, 30)
	_ = f.add(models.GenderMale, 30)
	_ = f.add(models.GenderFemale, 30)
	_ = f.add(models.GenderOther, 30)

	list, err := f.match.Suggestions(context.Background(), viewer.UserID, firstPage)
	require.NoError(t, err)
	assert.Empty(t, list.Items)
	assert.Zero(t, list.Pagination.TotalCount)
}

func TestSuggestionsUnknownViewer(t *testing.T) {
	f := newFixture(t)

	_, err := f.match.Suggestions(context.Background(), uuid.NewString(), firstPage)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestRetiredViewerIsNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	retired := f.add(models.GenderFemale, 28, func(p *models.Profile) { p.IsActive = false })
	other := f.add(models.GenderMale, 30)

	_, err := f.match.Suggestions(ctx, retired.UserID, firstPage)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))

	_, err = f.match.Search(ctx, retired.UserID, dto.SearchQuery{PageQuery: firstPage})
	assert.True(t, errors.Is(err, apperr.ErrNotFound))

	_, err = f.interest.Like(ctx, retired.UserID, dto.LikeRequest{LikedUserID: other.UserID})
	assert.True(t, errors.Is(err, apperr.ErrNotFound))

	_, err = f.interest.Shortlist(ctx, retired.UserID, dto.ShortlistRequest{ShortlistedUserID: other.UserID})
	assert.True(t, errors.Is(err, apperr.ErrNotFound))

	// 아무 관계도 생기지 않는다
	like, err := f.interests.GetLike(ctx, retired.UserID, other.UserID)
	require.NoError(t, err)
	assert.Nil(t, like)
	assert.Empty(t, f.emitter.events)
}

func TestSearchIncludesInteractedWithFlags(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	viewer := f.add(models.GenderFemale, 28)
	liked := f.add(models.GenderMale, 30, func(p *models.Profile) { p.Religion = "Hindu" })
	shortlisted := f.add(models.GenderMale, 30, func(p *models.Profile) { p.Religion = "hindu" })
	_ = f.add(models.GenderMale, 30, func(p *models.Profile) { p.Religion = "Sikh" })

	_, err := f.interest.Like(ctx, viewer.UserID, dto.LikeRequest{LikedUserID: liked.UserID})
	require.NoError(t, err)
	_, err = f.interest.Shortlist(ctx, viewer.UserID, dto.ShortlistRequest{ShortlistedUserID: shortlisted.UserID})
	require.NoError(t, err)

	list, err := f.match.Search(ctx, viewer.UserID, dto.SearchQuery{PageQuery: firstPage, Religion: lo.ToPtr("Hindu")})
	require.NoError(t, err)
	require.Len(t, list.Items, 2)

	byID := lo.KeyBy(list.Items, func(c dto.MatchCandidate) string { return c.Profile.UserID })
	assert.True(t, byID[liked.UserID].IsLiked)
	assert.False(t, byID[liked.UserID].IsShortlisted)
	assert.True(t, byID[shortlisted.UserID].IsShortlisted)
	assert.False(t, byID[shortlisted.UserID].IsLiked)
}

func TestSearchOverridesPreference(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	viewer := f.add(models.GenderFemale, 28)
	f.prefer(models.Preference{UserID: viewer.UserID, Religion: "Hindu", City: "Pune"})

	hinduPune := f.add(models.GenderMale, 30, func(p *models.Profile) { p.Religion, p.City = "Hindu", "Pune" })
	sikhPune := f.add(models.GenderMale, 30, func(p *models.Profile) { p.Religion, p.City = "Sikh", "Pune" })
	hinduDelhi := f.add(models.GenderMale, 30, func(p *models.Profile) { p.Religion, p.City = "Hindu", "Delhi" })
	woman := f.add(models.GenderFemale, 30, func(p *models.Profile) { p.Religion, p.City = "Hindu", "Pune" })

	// 선호 조건만 적용
	list, err := f.match.Search(ctx, viewer.UserID, dto.SearchQuery{PageQuery: firstPage})
	require.NoError(t, err)
	assert.Equal(t, []string{hinduPune.UserID}, userIDs(list.Items))

	// "any"는 선호 조건 해제
	list, err = f.match.Search(ctx, viewer.UserID, dto.SearchQuery{PageQuery: firstPage, Religion: lo.ToPtr("any")})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{hinduPune.UserID, sikhPune.UserID}, userIDs(list.Items))

	list, err = f.match.Search(ctx, viewer.UserID, dto.SearchQuery{PageQuery: firstPage, City: lo.ToPtr("Delhi")})
	require.NoError(t, err)
	assert.Equal(t, []string{hinduDelhi.UserID}, userIDs(list.Items))

	// 성별 조건도 덮어쓸 수 있다
	list, err = f.match.Search(ctx, viewer.UserID, dto.SearchQuery{PageQuery: firstPage, Gender: lo.ToPtr("any")})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{hinduPune.UserID, woman.UserID}, userIDs(list.Items))
}

func TestSearchSortByNewestKeepsStoreOrder(t *testing.T) {
	f := newFixture(t)

	viewer := f.add(models.GenderFemale, 28, answers(map[string]string{"q1": "a"}))
	older := f.add(models.GenderMale, 30, answers(map[string]string{"q1": "a"}))
	newer := f.add(models.GenderMale, 30, answers(map[string]string{"q1": "b"}))

	list, err := f.match.Search(context.Background(), viewer.UserID, dto.SearchQuery{PageQuery: firstPage, SortBy: dto.SortByNewest})
	require.NoError(t, err)
	assert.Equal(t, []string{newer.UserID, older.UserID}, userIDs(list.Items))
	assert.Equal(t, 0, list.Items[0].CompatibilityScore)
	assert.Equal(t, 100, list.Items[1].CompatibilityScore)
}

func TestSearchValidation(t *testing.T) {
	f := newFixture(t)
	viewer := f.add(models.GenderFemale, 28)

	cases := []dto.SearchQuery{
		{PageQuery: firstPage, AgeMin: lo.ToPtr(35), AgeMax: lo.ToPtr(30)},
		{PageQuery: firstPage, HeightMin: lo.ToPtr(-1)},
		{PageQuery: firstPage, Gender: lo.ToPtr("robot")},
		{PageQuery: firstPage, SortBy: "random"},
	}
	for _, q := range cases {
		_, err := f.match.Search(context.Background(), viewer.UserID, q)
		assert.True(t, errors.Is(err, apperr.ErrValidation), "%+v", q)
	}
}

func TestKundliScoreInListingsAndAdvisory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	viewer := f.add(models.GenderFemale, 28, func(p *models.Profile) { p.Rashi = "mesha" })
	astro := f.add(models.GenderMale, 30, func(p *models.Profile) { p.Rashi = "simha" })
	plain := f.add(models.GenderMale, 30)

	list, err := f.match.Suggestions(ctx, viewer.UserID, firstPage)
	require.NoError(t, err)
	byID := lo.KeyBy(list.Items, func(c dto.MatchCandidate) string { return c.Profile.UserID })
	require.NotNil(t, byID[astro.UserID].KundliScore)
	assert.Equal(t, 100, *byID[astro.UserID].KundliScore)
	assert.Nil(t, byID[plain.UserID].KundliScore)

	res, err := f.match.KundliMatch(ctx, dto.KundliRequest{UserID1: viewer.UserID, UserID2: astro.UserID})
	require.NoError(t, err)
	assert.Equal(t, 100, res.Score)
	assert.True(t, res.RashiCompatible)

	res, err = f.match.KundliMatch(ctx, dto.KundliRequest{UserID1: viewer.UserID, UserID2: plain.UserID})
	require.NoError(t, err)
	assert.Equal(t, 50, res.Score)

	_, err = f.match.KundliMatch(ctx, dto.KundliRequest{UserID1: "nope", UserID2: plain.UserID})
	assert.True(t, errors.Is(err, apperr.ErrValidation))

	_, err = f.match.KundliMatch(ctx, dto.KundliRequest{UserID1: viewer.UserID, UserID2: uuid.NewString()})
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestLikeMutualPublishesEvents(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a := f.add(models.GenderMale, 30)
	b := f.add(models.GenderFemale, 28)

	res, err := f.interest.Like(ctx, a.UserID, dto.LikeRequest{LikedUserID: b.UserID})
	require.NoError(t, err)
	assert.False(t, res.IsMutual)
	assert.Equal(t, []string{mq.RoutingKeyLikeCreated, mq.RoutingKeyEmail}, f.emitter.routingKeys())

	res, err = f.interest.Like(ctx, b.UserID, dto.LikeRequest{LikedUserID: a.UserID})
	require.NoError(t, err)
	assert.True(t, res.IsMutual)

	keys := f.emitter.routingKeys()
	assert.Equal(t, []string{
		mq.RoutingKeyLikeCreated, mq.RoutingKeyEmail,
		mq.RoutingKeyLikeCreated, mq.RoutingKeyEmail, mq.RoutingKeyMutualMatch, mq.RoutingKeyEmail, mq.RoutingKeyEmail,
	}, keys)

	var match eventtypes.MutualMatchEvent
	require.NoError(t, json.Unmarshal(f.emitter.events[4].payload.Data, &match))
	assert.ElementsMatch(t, []string{a.UserID, b.UserID}, match.UserIDs)

	status, err := f.interest.Status(ctx, a.UserID, b.UserID)
	require.NoError(t, err)
	assert.Equal(t, dto.InterestStatus{UserID: b.UserID, IsLiked: true, LikedBy: true, IsMutual: true}, *status)
}

func TestLikeSucceedsWhenNotificationFails(t *testing.T) {
	f := newFixture(t)
	f.emitter.err = errors.New("broker down")
	ctx := context.Background()

	a := f.add(models.GenderMale, 30)
	b := f.add(models.GenderFemale, 28)

	res, err := f.interest.Like(ctx, a.UserID, dto.LikeRequest{LikedUserID: b.UserID})
	require.NoError(t, err)
	assert.Equal(t, b.UserID, res.LikedID)

	like, err := f.interests.GetLike(ctx, a.UserID, b.UserID)
	require.NoError(t, err)
	assert.NotNil(t, like)
}

func TestLikeErrors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a := f.add(models.GenderMale, 30)
	b := f.add(models.GenderFemale, 28)
	retired := f.add(models.GenderFemale, 28, func(p *models.Profile) { p.IsActive = false })

	_, err := f.interest.Like(ctx, a.UserID, dto.LikeRequest{LikedUserID: "not-a-uuid"})
	assert.True(t, errors.Is(err, apperr.ErrValidation))

	_, err = f.interest.Like(ctx, a.UserID, dto.LikeRequest{LikedUserID: a.UserID})
	assert.True(t, errors.Is(err, apperr.ErrValidation))

	_, err = f.interest.Like(ctx, a.UserID, dto.LikeRequest{LikedUserID: uuid.NewString()})
	assert.True(t, errors.Is(err, apperr.ErrNotFound))

	_, err = f.interest.Like(ctx, a.UserID, dto.LikeRequest{LikedUserID: retired.UserID})
	assert.True(t, errors.Is(err, apperr.ErrNotFound))

	_, err = f.interest.Like(ctx, a.UserID, dto.LikeRequest{LikedUserID: b.UserID})
	require.NoError(t, err)
	_, err = f.interest.Like(ctx, a.UserID, dto.LikeRequest{LikedUserID: b.UserID})
	assert.True(t, errors.Is(err, apperr.ErrConflict))
}

func TestShortlistLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a := f.add(models.GenderMale, 30)
	b := f.add(models.GenderFemale, 28)

	err := f.interest.RemoveShortlist(ctx, a.UserID, b.UserID)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))

	_, err = f.interest.Shortlist(ctx, a.UserID, dto.ShortlistRequest{ShortlistedUserID: b.UserID})
	require.NoError(t, err)
	_, err = f.interest.Shortlist(ctx, a.UserID, dto.ShortlistRequest{ShortlistedUserID: b.UserID})
	assert.True(t, errors.Is(err, apperr.ErrConflict))

	list, err := f.interest.Shortlists(ctx, a.UserID, firstPage)
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, b.UserID, list.Items[0].Profile.UserID)

	require.NoError(t, f.interest.RemoveShortlist(ctx, a.UserID, b.UserID))
	list, err = f.interest.Shortlists(ctx, a.UserID, firstPage)
	require.NoError(t, err)
	assert.Empty(t, list.Items)

	// 숏리스트는 알림을 보내지 않는다
	assert.Empty(t, f.emitter.routingKeys())
}

func TestInterestListings(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	me := f.add(models.GenderFemale, 28)
	fans := []models.Profile{f.add(models.GenderMale, 30), f.add(models.GenderMale, 31)}
	for _, fan := range fans {
		_, err := f.interest.Like(ctx, fan.UserID, dto.LikeRequest{LikedUserID: me.UserID})
		require.NoError(t, err)
	}
	_, err := f.interest.Like(ctx, me.UserID, dto.LikeRequest{LikedUserID: fans[1].UserID})
	require.NoError(t, err)

	likedBy, err := f.interest.LikedBy(ctx, me.UserID, firstPage)
	require.NoError(t, err)
	assert.EqualValues(t, 2, likedBy.Pagination.TotalCount)
	assert.ElementsMatch(t,
		[]string{fans[0].UserID, fans[1].UserID},
		lo.Map(likedBy.Items, func(e dto.InterestEntry, _ int) string { return e.Profile.UserID }))

	mine, err := f.interest.MyLikes(ctx, me.UserID, firstPage)
	require.NoError(t, err)
	require.Len(t, mine.Items, 1)
	assert.True(t, mine.Items[0].IsMutual)

	mutual, err := f.interest.Mutual(ctx, me.UserID, firstPage)
	require.NoError(t, err)
	require.Len(t, mutual.Items, 1)
	assert.Equal(t, fans[1].UserID, mutual.Items[0].Profile.UserID)
}
