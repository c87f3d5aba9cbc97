package service

import (
	"context"
	"sort"
	"time"

	"bandhan/pkg/apperr"
	"bandhan/pkg/config"
	"bandhan/pkg/dto"
	"bandhan/pkg/helper"
	"bandhan/pkg/metrics"
	"bandhan/pkg/models"
	"bandhan/services/match/repository"
	"bandhan/services/match/scoring"

	"github.com/samber/lo"
)

type MatchService struct {
	candidates CandidateStore
	profiles   ProfileStore
	interests  InterestStore
	scorer     *scoring.Scorer
	poolLimit  int
	now        func() time.Time
}

func NewMatchService(candidates CandidateStore, profiles ProfileStore, interests InterestStore, scorer *scoring.Scorer, poolLimit int) *MatchService {
	if poolLimit <= 0 {
		poolLimit = config.DefaultCandidatePoolLimit
	}
	return &MatchService{
		candidates: candidates,
		profiles:   profiles,
		interests:  interests,
		scorer:     scorer,
		poolLimit:  poolLimit,
		now:        time.Now,
	}
}

// Suggestions: 선호 조건에 맞고 아직 관심 표시하지 않은 후보를 궁합순으로
func (s *MatchService) Suggestions(ctx context.Context, viewerID string, page dto.PageQuery) (dto.PaginatedList[dto.MatchCandidate], error) {
	defer observeRanking("suggestions", time.Now())

	viewer, pref, err := s.loadViewer(ctx, viewerID)
	if err != nil {
		return dto.PaginatedList[dto.MatchCandidate]{}, err
	}
	filter := suggestionFilter(*viewer, pref, s.now())
	return s.rank(ctx, *viewer, pref, filter, page, true)
}

// Search: 요청 필터로 검색. 이미 관심 표시한 유저도 포함하고 isLiked/isShortlisted 표시.
func (s *MatchService) Search(ctx context.Context, viewerID string, q dto.SearchQuery) (dto.PaginatedList[dto.MatchCandidate], error) {
	defer observeRanking("search", time.Now())

	if err := validateSearch(q); err != nil {
		return dto.PaginatedList[dto.MatchCandidate]{}, err
	}
	viewer, pref, err := s.loadViewer(ctx, viewerID)
	if err != nil {
		return dto.PaginatedList[dto.MatchCandidate]{}, err
	}
	filter := searchFilter(*viewer, pref, q, s.now())
	return s.rank(ctx, *viewer, pref, filter, q.PageQuery, q.SortBy != dto.SortByNewest)
}

// KundliMatch: 두 유저의 라시/낙샤트라 궁합. 메인 점수와 별개인 참고용.
func (s *MatchService) KundliMatch(ctx context.Context, req dto.KundliRequest) (*dto.KundliResponse, error) {
	id1, err := helper.ParseUserID(req.UserID1, "userId1")
	if err != nil {
		return nil, err
	}
	id2, err := helper.ParseUserID(req.UserID2, "userId2")
	if err != nil {
		return nil, err
	}

	found, err := s.profiles.GetProfilesByIDs(ctx, []string{id1, id2})
	if err != nil {
		return nil, apperr.Wrap("failed to load profiles", err)
	}
	p1, ok1 := found[id1]
	p2, ok2 := found[id2]
	if !ok1 || !ok2 {
		return nil, apperr.NotFound("profile not found")
	}

	res := s.scorer.Kundli(scoring.ChartOf(p1), scoring.ChartOf(p2))
	return &dto.KundliResponse{
		UserID1:         id1,
		UserID2:         id2,
		Score:           res.Score,
		RashiScore:      res.Rashi,
		NakshatraScore:  res.Nakshatra,
		RashiCompatible: res.RashiCompatible,
	}, nil
}

func (s *MatchService) loadViewer(ctx context.Context, viewerID string) (*models.Profile, *models.Preference, error) {
	viewer, err := s.profiles.GetProfile(ctx, viewerID)
	if err != nil {
		return nil, nil, apperr.Wrap("failed to load viewer profile", err)
	}
	// 탈퇴한 유저는 추천/검색 불가
	if viewer == nil || !viewer.IsActive {
		return nil, nil, apperr.NotFound("profile not found")
	}
	pref, err := s.profiles.GetPreference(ctx, viewerID)
	if err != nil {
		return nil, nil, apperr.Wrap("failed to load viewer preference", err)
	}
	return viewer, pref, nil
}

// rank: byScore면 후보 풀 전체(최대 poolLimit)를 점수 계산 후 정렬하고 페이지를 자른다.
// 아니면 저장소의 최신순 페이지를 그대로 쓰고 점수만 붙인다.
func (s *MatchService) rank(ctx context.Context, viewer models.Profile, pref *models.Preference, filter repository.CandidateFilter, page dto.PageQuery, byScore bool) (dto.PaginatedList[dto.MatchCandidate], error) {
	var (
		items []dto.MatchCandidate
		total int64
	)

	if byScore {
		pool, count, err := s.candidates.FindCandidates(ctx, filter, 0, s.poolLimit)
		if err != nil {
			return dto.PaginatedList[dto.MatchCandidate]{}, apperr.Wrap("failed to load candidates", err)
		}
		scored, err := s.score(ctx, viewer, pref, pool)
		if err != nil {
			return dto.PaginatedList[dto.MatchCandidate]{}, err
		}
		// 풀은 최신순이라 같은 점수면 최신 가입자가 앞에 남는다
		sort.SliceStable(scored, func(i, j int) bool {
			return scored[i].CompatibilityScore > scored[j].CompatibilityScore
		})
		items = lo.Slice(scored, page.Offset(), page.Offset()+page.Limit)
		total = lo.Min([]int64{count, int64(s.poolLimit)})
	} else {
		rows, count, err := s.candidates.FindCandidates(ctx, filter, page.Offset(), page.Limit)
		if err != nil {
			return dto.PaginatedList[dto.MatchCandidate]{}, apperr.Wrap("failed to load candidates", err)
		}
		scored, err := s.score(ctx, viewer, pref, rows)
		if err != nil {
			return dto.PaginatedList[dto.MatchCandidate]{}, err
		}
		items, total = scored, count
	}

	if err := s.annotateInterest(ctx, viewer.UserID, items); err != nil {
		return dto.PaginatedList[dto.MatchCandidate]{}, err
	}
	return dto.NewPaginatedList(items, page, total), nil
}

// score: 후보마다 궁합 점수와 (양쪽 데이터가 있으면) 쿤들리 점수 계산
func (s *MatchService) score(ctx context.Context, viewer models.Profile, pref *models.Preference, candidates []models.Profile) ([]dto.MatchCandidate, error) {
	if len(candidates) == 0 {
		return []dto.MatchCandidate{}, nil
	}

	ids := lo.Map(candidates, func(p models.Profile, _ int) string { return p.UserID })
	prefs, err := s.profiles.GetPreferences(ctx, ids)
	if err != nil {
		return nil, apperr.Wrap("failed to load candidate preferences", err)
	}

	now := s.now()
	return lo.Map(candidates, func(c models.Profile, _ int) dto.MatchCandidate {
		res := s.scorer.Score(viewer, c, pref, prefs[c.UserID], now)
		metrics.CompatibilityScore.Observe(float64(res.Score))

		item := dto.MatchCandidate{
			Profile:            c,
			Age:                helper.AgeOn(c.DateOfBirth, now),
			CompatibilityScore: res.Score,
			Breakdown: dto.ScoreBreakdown{
				Personality: scoring.Round(res.Breakdown.Personality),
				Preference:  scoring.Round(res.Breakdown.Preference),
				Lifestyle:   scoring.Round(res.Breakdown.Lifestyle),
				Location:    scoring.Round(res.Breakdown.Location),
			},
		}
		if viewer.HasAstroData() && c.HasAstroData() {
			kundli := s.scorer.Kundli(scoring.ChartOf(viewer), scoring.ChartOf(c))
			item.KundliScore = &kundli.Score
		}
		return item
	}), nil
}

// annotateInterest: 페이지에 포함된 후보에 대해서만 좋아요/숏리스트 여부 조회
func (s *MatchService) annotateInterest(ctx context.Context, viewerID string, items []dto.MatchCandidate) error {
	if len(items) == 0 {
		return nil
	}
	ids := lo.Map(items, func(c dto.MatchCandidate, _ int) string { return c.Profile.UserID })

	liked, err := s.interests.LikedAmong(ctx, viewerID, ids)
	if err != nil {
		return apperr.Wrap("failed to load like flags", err)
	}
	shortlisted, err := s.interests.ShortlistedAmong(ctx, viewerID, ids)
	if err != nil {
		return apperr.Wrap("failed to load shortlist flags", err)
	}
	for i := range items {
		items[i].IsLiked = liked[items[i].Profile.UserID]
		items[i].IsShortlisted = shortlisted[items[i].Profile.UserID]
	}
	return nil
}

func observeRanking(mode string, start time.Time) {
	metrics.RankingDuration.WithLabelValues(mode).Observe(time.Since(start).Seconds())
}
