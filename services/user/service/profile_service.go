package service

import (
	"context"
	"strings"
	"time"

	"bandhan/pkg/apperr"
	"bandhan/pkg/dto"
	"bandhan/pkg/helper"
	"bandhan/pkg/logger"
	"bandhan/pkg/models"

	"github.com/samber/lo"
	"gorm.io/datatypes"
)

const minimumAge = 18

var (
	diets  = []string{models.DietVegetarian, models.DietNonVegetarian, models.DietEggetarian, models.DietVegan, models.DietJain}
	habits = []string{models.HabitNo, models.HabitOccasionally, models.HabitYes}
)

type ProfileStore interface {
	InsertProfile(ctx context.Context, profile *models.Profile) error
	GetProfile(ctx context.Context, userID string) (*models.Profile, error)
	SaveProfile(ctx context.Context, profile *models.Profile) error
	Deactivate(ctx context.Context, userID string) (bool, error)
}

type ProfileService struct {
	repo ProfileStore
	now  func() time.Time
}

func NewProfileService(repo ProfileStore) *ProfileService {
	return &ProfileService{repo: repo, now: time.Now}
}

// RegisterProfile: 계정 가입 시 프로필 생성. 이름, 성별, 생년월일은 필수.
func (s *ProfileService) RegisterProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*models.Profile, error) {
	if req.DisplayName == nil || req.Gender == nil || req.DateOfBirth == nil {
		return nil, apperr.Validation("displayName, gender and dateOfBirth are required")
	}

	existing, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap("failed to load profile", err)
	}
	if existing != nil {
		return nil, apperr.Conflict("profile already exists")
	}

	profile := models.Profile{UserID: userID, IsActive: true}
	if err := s.apply(&profile, req); err != nil {
		return nil, err
	}
	profile.CompletionPercentage = CompletionPercentage(profile)

	if err := s.repo.InsertProfile(ctx, &profile); err != nil {
		return nil, apperr.Wrap("failed to create profile", err)
	}
	return &profile, nil
}

// GetMyProfile: 본인 프로필 (탈퇴 여부 무관)
func (s *ProfileService) GetMyProfile(ctx context.Context, userID string) (*models.Profile, error) {
	profile, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap("failed to load profile", err)
	}
	if profile == nil {
		return nil, apperr.NotFound("profile not found")
	}
	return profile, nil
}

// GetPublicProfile: 다른 유저가 보는 프로필. 탈퇴한 유저는 NotFound.
func (s *ProfileService) GetPublicProfile(ctx context.Context, rawUserID string) (*dto.PublicProfile, error) {
	userID, err := helper.ParseUserID(rawUserID, "userId")
	if err != nil {
		return nil, err
	}
	profile, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap("failed to load profile", err)
	}
	if profile == nil || !profile.IsActive {
		return nil, apperr.NotFound("profile not found")
	}

	return &dto.PublicProfile{
		UserID:               profile.UserID,
		DisplayName:          profile.DisplayName,
		Gender:               string(profile.Gender),
		Age:                  helper.AgeOn(profile.DateOfBirth, s.now()),
		HeightCm:             profile.HeightCm,
		Religion:             profile.Religion,
		Education:            profile.Education,
		Profession:           profile.Profession,
		City:                 profile.City,
		Bio:                  profile.Bio,
		Photos:               profile.Photos,
		Rashi:                profile.Rashi,
		IsVerified:           profile.IsVerified,
		CompletionPercentage: profile.CompletionPercentage,
		CreatedAt:            profile.CreatedAt,
	}, nil
}

// UpdateProfile: 요청에 있는 항목만 바꾸고 완성도를 다시 계산한다
func (s *ProfileService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*models.Profile, error) {
	profile, err := s.GetMyProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !profile.IsActive {
		return nil, apperr.NotFound("profile not found")
	}

	if err := s.apply(profile, req); err != nil {
		return nil, err
	}
	profile.CompletionPercentage = CompletionPercentage(*profile)

	if err := s.repo.SaveProfile(ctx, profile); err != nil {
		return nil, apperr.Wrap("failed to update profile", err)
	}
	return profile, nil
}

// RetireProfile: 계정 비활성화. 좋아요 등 관계 데이터는 남긴다.
func (s *ProfileService) RetireProfile(ctx context.Context, userID string) error {
	ok, err := s.repo.Deactivate(ctx, userID)
	if err != nil {
		return apperr.Wrap("failed to retire profile", err)
	}
	if !ok {
		return apperr.NotFound("profile not found")
	}
	logger.Logger.Info().Str("user_id", userID).Msg("Profile retired")
	return nil
}

func (s *ProfileService) apply(p *models.Profile, req dto.UpdateProfileRequest) error {
	if req.DisplayName != nil {
		name := strings.TrimSpace(*req.DisplayName)
		if name == "" {
			return apperr.Validation("displayName must not be empty")
		}
		p.DisplayName = name
	}
	if req.Gender != nil {
		g := models.Gender(helper.Normalize(*req.Gender))
		if !g.Valid() {
			return apperr.Validation("gender must be one of male, female, other")
		}
		p.Gender = g
	}
	if req.DateOfBirth != nil {
		dob, err := time.Parse(time.DateOnly, strings.TrimSpace(*req.DateOfBirth))
		if err != nil {
			return apperr.Validation("dateOfBirth must be YYYY-MM-DD")
		}
		if helper.AgeOn(dob, s.now()) < minimumAge {
			return apperr.Validation("dateOfBirth must be at least 18 years ago")
		}
		p.DateOfBirth = dob
	}
	if req.HeightCm != nil {
		if *req.HeightCm <= 0 {
			return apperr.Validation("heightCm must be positive")
		}
		p.HeightCm = req.HeightCm
	}
	if req.WeightKg != nil {
		if *req.WeightKg <= 0 {
			return apperr.Validation("weightKg must be positive")
		}
		p.WeightKg = req.WeightKg
	}
	if req.Income != nil {
		if *req.Income < 0 {
			return apperr.Validation("income must not be negative")
		}
		p.Income = req.Income
	}

	var err error
	if p.Diet, err = enumValue("diet", req.Diet, p.Diet, diets); err != nil {
		return err
	}
	if p.Smoking, err = enumValue("smoking", req.Smoking, p.Smoking, habits); err != nil {
		return err
	}
	if p.Drinking, err = enumValue("drinking", req.Drinking, p.Drinking, habits); err != nil {
		return err
	}

	setString(&p.Religion, req.Religion)
	setString(&p.Caste, req.Caste)
	setString(&p.Education, req.Education)
	setString(&p.Profession, req.Profession)
	setString(&p.City, req.City)
	setString(&p.Bio, req.Bio)
	setString(&p.BirthTime, req.BirthTime)
	setString(&p.BirthPlace, req.BirthPlace)
	setString(&p.Rashi, req.Rashi)
	setString(&p.Nakshatra, req.Nakshatra)

	if req.Photos != nil {
		p.Photos = datatypes.JSONSlice[string](lo.Compact(req.Photos))
	}
	if req.PersonalityAnswers != nil {
		p.PersonalityAnswers = datatypes.NewJSONType(req.PersonalityAnswers)
	}
	return nil
}

// enumValue: 빈 문자열은 값 삭제, 그 외에는 허용 목록 검사
func enumValue(field string, v *string, current string, allowed []string) (string, error) {
	if v == nil {
		return current, nil
	}
	value := helper.Normalize(*v)
	if value == "" {
		return "", nil
	}
	if !lo.Contains(allowed, value) {
		return "", apperr.Validation(field + " must be one of " + strings.Join(allowed, ", "))
	}
	return value, nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}
