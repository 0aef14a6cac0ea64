package service

import (
	"context"
	"log/slog"

	"storyquest/internal/models"
	"storyquest/internal/repository"
)

// AchievementDef describes one entry of the fixed achievement catalog and
// the progress condition that unlocks it.
type AchievementDef struct {
	Type        string
	Name        string
	Description string
	Icon        string
	Unlocked    func(p *models.UserProgress, dailyStories int64) bool
}

func subjectMaster(subject string, threshold int) func(*models.UserProgress, int64) bool {
	return func(p *models.UserProgress, _ int64) bool {
		return p.SubjectProgress[subject].StoriesCompleted >= threshold
	}
}

// achievementCatalog is the fixed set of grantable milestones.
var achievementCatalog = []AchievementDef{
	{
		Type: models.AchievementFirstStory, Name: "First Adventure", Icon: "🎯",
		Description: "Completed your very first story!",
		Unlocked: func(p *models.UserProgress, _ int64) bool {
			return p.TotalStoriesRead >= 1
		},
	},
	{
		Type: models.AchievementMathMaster, Name: "Math Master", Icon: "🧮",
		Description: "Completed 5 stories in Math!",
		Unlocked:    subjectMaster("Math", 5),
	},
	{
		Type: models.AchievementScienceExplorer, Name: "Science Explorer", Icon: "🔬",
		Description: "Completed 5 stories in Science!",
		Unlocked:    subjectMaster("Science", 5),
	},
	{
		Type: models.AchievementEnglishMaster, Name: "Reading Champion", Icon: "📖",
		Description: "Completed 5 stories in English!",
		Unlocked:    subjectMaster("English", 5),
	},
	{
		Type: models.AchievementSocialMaster, Name: "World Explorer", Icon: "🌍",
		Description: "Completed 5 stories in Social Studies!",
		Unlocked:    subjectMaster("Social", 5),
	},
	{
		Type: models.AchievementLifeSkillsPro, Name: "Life Skills Pro", Icon: "💡",
		Description: "Completed 5 stories in Life Skills!",
		Unlocked:    subjectMaster("LifeSkills", 5),
	},
	{
		Type: models.AchievementCreativeGenius, Name: "Creative Genius", Icon: "🎨",
		Description: "Completed 5 stories in Creative Arts!",
		Unlocked:    subjectMaster("Creative", 5),
	},
	{
		Type: models.AchievementSuperLearner, Name: "Super Learner", Icon: "🌟",
		Description: "Completed 20 stories total!",
		Unlocked: func(p *models.UserProgress, _ int64) bool {
			return p.TotalStoriesRead >= 20
		},
	},
	{
		Type: models.AchievementSpeedReader, Name: "Speed Reader", Icon: "⚡",
		Description: "Read 3 stories in one day!",
		Unlocked: func(_ *models.UserProgress, dailyStories int64) bool {
			return dailyStories >= 3
		},
	},
	{
		Type: models.AchievementStreakMaster, Name: "Streak Master", Icon: "🔥",
		Description: "Maintained a 7-day learning streak!",
		Unlocked: func(p *models.UserProgress, _ int64) bool {
			return p.CurrentStreak >= 7
		},
	},
}

type AchievementService interface {
	GetByUser(ctx context.Context, userID int64) ([]models.Achievement, error)
	Grant(ctx context.Context, achievement models.Achievement) (*models.Achievement, error)
	// EvaluateAndGrant checks the catalog against the given progress and
	// grants every newly crossed milestone exactly once.
	EvaluateAndGrant(ctx context.Context, progress *models.UserProgress, dailyStories int64) ([]models.Achievement, error)
}

type achievementService struct {
	achievements repository.AchievementRepository
	logger       *slog.Logger
}

func NewAchievementService(achievements repository.AchievementRepository, logger *slog.Logger) AchievementService {
	return &achievementService{achievements: achievements, logger: logger}
}

func (s *achievementService) GetByUser(ctx context.Context, userID int64) ([]models.Achievement, error) {
	return s.achievements.GetByUser(ctx, userID)
}

func (s *achievementService) Grant(ctx context.Context, achievement models.Achievement) (*models.Achievement, error) {
	if err := s.achievements.Create(ctx, &achievement); err != nil {
		return nil, err
	}
	return &achievement, nil
}

func (s *achievementService) EvaluateAndGrant(ctx context.Context, progress *models.UserProgress, dailyStories int64) ([]models.Achievement, error) {
	existing, err := s.achievements.GetByUser(ctx, progress.UserID)
	if err != nil {
		return nil, err
	}
	granted := make(map[string]bool, len(existing))
	for _, a := range existing {
		granted[a.Type] = true
	}

	var unlocked []models.Achievement
	for _, def := range achievementCatalog {
		if granted[def.Type] || !def.Unlocked(progress, dailyStories) {
			continue
		}
		achievement := models.Achievement{
			UserID:      progress.UserID,
			Type:        def.Type,
			Name:        def.Name,
			Description: def.Description,
			Icon:        def.Icon,
		}
		if err := s.achievements.Create(ctx, &achievement); err != nil {
			return unlocked, err
		}
		s.logger.Info("achievement unlocked", "user_id", progress.UserID, "type", def.Type)
		unlocked = append(unlocked, achievement)
	}
	return unlocked, nil
}
