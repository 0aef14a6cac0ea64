package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"storyquest/internal/models"
)

// MemoryStore backs all repositories with process-local maps. It exists for
// the no-database deployment mode; handlers receive the same interfaces
// either way, so swapping Postgres in is pure substitution. Unlike the
// single-threaded runtime this mode was ported from, Go serves requests
// concurrently, so access is mutex-guarded.
type MemoryStore struct {
	mu sync.Mutex

	users        map[int64]models.User
	stories      map[int64]models.Story
	textbooks    map[int64]models.Textbook
	achievements map[int64]models.Achievement
	progress     map[int64]models.UserProgress // keyed by record id

	nextUserID        int64
	nextStoryID       int64
	nextTextbookID    int64
	nextAchievementID int64
	nextProgressID    int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:             make(map[int64]models.User),
		stories:           make(map[int64]models.Story),
		textbooks:         make(map[int64]models.Textbook),
		achievements:      make(map[int64]models.Achievement),
		progress:          make(map[int64]models.UserProgress),
		nextUserID:        1,
		nextStoryID:       1,
		nextTextbookID:    1,
		nextAchievementID: 1,
		nextProgressID:    1,
	}
}

func (s *MemoryStore) Users() UserRepository               { return &memoryUserRepo{s} }
func (s *MemoryStore) Stories() StoryRepository            { return &memoryStoryRepo{s} }
func (s *MemoryStore) Textbooks() TextbookRepository       { return &memoryTextbookRepo{s} }
func (s *MemoryStore) Achievements() AchievementRepository { return &memoryAchievementRepo{s} }
func (s *MemoryStore) Progress() ProgressRepository        { return &memoryProgressRepo{s} }

// --- users ---

type memoryUserRepo struct{ store *MemoryStore }

func (r *memoryUserRepo) Create(_ context.Context, user *models.User) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	user.ID = s.nextUserID
	s.nextUserID++
	// Gorm's autoCreateTime only runs on the Postgres path.
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	s.users[user.ID] = cloneUser(*user)
	return nil
}

func (r *memoryUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	user = cloneUser(user)
	return &user, nil
}

func (r *memoryUserRepo) GetByExternalID(_ context.Context, externalID string) (*models.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.ExternalID == externalID {
			user = cloneUser(user)
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

// --- stories ---

type memoryStoryRepo struct{ store *MemoryStore }

func (r *memoryStoryRepo) Create(_ context.Context, story *models.Story) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	story.ID = s.nextStoryID
	s.nextStoryID++
	if story.CreatedAt.IsZero() {
		story.CreatedAt = time.Now()
	}
	s.stories[story.ID] = cloneStory(*story)
	return nil
}

func (r *memoryStoryRepo) GetByID(_ context.Context, id int64) (*models.Story, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	story, ok := s.stories[id]
	if !ok {
		return nil, ErrNotFound
	}
	story = cloneStory(story)
	return &story, nil
}

func (r *memoryStoryRepo) GetByUser(_ context.Context, userID int64) ([]models.Story, error) {
	return r.filter(func(st models.Story) bool { return st.UserID == userID })
}

func (r *memoryStoryRepo) GetByUserAndSubject(_ context.Context, userID int64, subject string) ([]models.Story, error) {
	return r.filter(func(st models.Story) bool { return st.UserID == userID && st.Subject == subject })
}

func (r *memoryStoryRepo) Update(_ context.Context, story *models.Story) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.stories[story.ID]; !ok {
		return ErrNotFound
	}
	s.stories[story.ID] = cloneStory(*story)
	return nil
}

func (r *memoryStoryRepo) filter(keep func(models.Story) bool) ([]models.Story, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	stories := make([]models.Story, 0)
	for _, story := range s.stories {
		if keep(story) {
			stories = append(stories, cloneStory(story))
		}
	}
	sort.Slice(stories, func(i, j int) bool {
		return stories[i].CreatedAt.After(stories[j].CreatedAt)
	})
	return stories, nil
}

// --- textbooks ---

type memoryTextbookRepo struct{ store *MemoryStore }

func (r *memoryTextbookRepo) Create(_ context.Context, textbook *models.Textbook) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	textbook.ID = s.nextTextbookID
	s.nextTextbookID++
	if textbook.CreatedAt.IsZero() {
		textbook.CreatedAt = time.Now()
	}
	s.textbooks[textbook.ID] = cloneTextbook(*textbook)
	return nil
}

func (r *memoryTextbookRepo) GetByID(_ context.Context, id int64) (*models.Textbook, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	textbook, ok := s.textbooks[id]
	if !ok {
		return nil, ErrNotFound
	}
	textbook = cloneTextbook(textbook)
	return &textbook, nil
}

func (r *memoryTextbookRepo) GetByUser(_ context.Context, userID int64) ([]models.Textbook, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	textbooks := make([]models.Textbook, 0)
	for _, textbook := range s.textbooks {
		if textbook.UserID == userID {
			textbooks = append(textbooks, cloneTextbook(textbook))
		}
	}
	sort.Slice(textbooks, func(i, j int) bool {
		return textbooks[i].CreatedAt.After(textbooks[j].CreatedAt)
	})
	return textbooks, nil
}

func (r *memoryTextbookRepo) Update(_ context.Context, textbook *models.Textbook) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.textbooks[textbook.ID]; !ok {
		return ErrNotFound
	}
	s.textbooks[textbook.ID] = cloneTextbook(*textbook)
	return nil
}

// --- achievements ---

type memoryAchievementRepo struct{ store *MemoryStore }

func (r *memoryAchievementRepo) Create(_ context.Context, achievement *models.Achievement) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	achievement.ID = s.nextAchievementID
	s.nextAchievementID++
	if achievement.UnlockedAt.IsZero() {
		achievement.UnlockedAt = time.Now()
	}
	s.achievements[achievement.ID] = *achievement
	return nil
}

func (r *memoryAchievementRepo) GetByUser(_ context.Context, userID int64) ([]models.Achievement, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	achievements := make([]models.Achievement, 0)
	for _, achievement := range s.achievements {
		if achievement.UserID == userID {
			achievements = append(achievements, achievement)
		}
	}
	sort.Slice(achievements, func(i, j int) bool {
		return achievements[i].UnlockedAt.After(achievements[j].UnlockedAt)
	})
	return achievements, nil
}

// --- progress ---

type memoryProgressRepo struct{ store *MemoryStore }

func (r *memoryProgressRepo) Create(_ context.Context, progress *models.UserProgress) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	progress.ID = s.nextProgressID
	s.nextProgressID++
	s.progress[progress.ID] = cloneProgress(*progress)
	return nil
}

func (r *memoryProgressRepo) GetByUser(_ context.Context, userID int64) (*models.UserProgress, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, progress := range s.progress {
		if progress.UserID == userID {
			progress = cloneProgress(progress)
			return &progress, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryProgressRepo) Update(_ context.Context, progress *models.UserProgress) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if progress.ID == 0 {
		progress.ID = s.nextProgressID
		s.nextProgressID++
	}
	s.progress[progress.ID] = cloneProgress(*progress)
	return nil
}

// Copy helpers keep callers from mutating stored records through shared
// slices and maps.

func cloneUser(u models.User) models.User {
	u.FavoriteCartoons = append([]string(nil), u.FavoriteCartoons...)
	return u
}

func cloneStory(st models.Story) models.Story {
	st.Panels = append([]models.StoryPanel(nil), st.Panels...)
	return st
}

func cloneTextbook(t models.Textbook) models.Textbook {
	t.StoryIDs = append([]int64(nil), t.StoryIDs...)
	if t.Description != nil {
		desc := *t.Description
		t.Description = &desc
	}
	return t
}

func cloneProgress(p models.UserProgress) models.UserProgress {
	if p.LastActiveDate != nil {
		d := *p.LastActiveDate
		p.LastActiveDate = &d
	}
	subjects := make(map[string]models.SubjectStats, len(p.SubjectProgress))
	for name, stats := range p.SubjectProgress {
		stats.TopicsLearned = append([]string(nil), stats.TopicsLearned...)
		subjects[name] = stats
	}
	p.SubjectProgress = subjects
	return p
}
