package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"

	"github.com/nutritrack/backend/internal/domain"
)

// JournalService handles meal logging. The efficiency score is computed
// here, once, when an entry is created or edited, and stored on the entry.
type JournalService struct {
	journal  domain.JournalRepository
	profiles domain.ProfileRepository
}

// NewJournalService creates a journal service with its dependencies.
func NewJournalService(journal domain.JournalRepository, profiles domain.ProfileRepository) *JournalService {
	return &JournalService{
		journal:  journal,
		profiles: profiles,
	}
}

// LogMeal stores a new journal entry with its metabolic efficiency score
// attached. The score reflects the profile as it stands right now; later
// profile changes do not rewrite history.
func (s *JournalService) LogMeal(ctx context.Context, entry *domain.JournalEntry) error {
	if entry == nil || entry.Date == "" {
		return domain.ErrInvalidRequest
	}

	if entry.ID == "" {
		entry.ID = newEntryID()
	}

	applyFoodInsights(entry)
	profile := profileOrDefault(ctx, s.profiles)
	entry.MetabolicEfficiency = ScoreMeal(*entry, profile)

	if err := s.journal.Create(ctx, entry); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}

// EditMeal replaces an existing entry wholesale and recomputes its score.
// Partial patches are not supported.
func (s *JournalService) EditMeal(ctx context.Context, entry *domain.JournalEntry) error {
	if entry == nil || entry.ID == "" || entry.Date == "" {
		return domain.ErrInvalidRequest
	}

	if _, err := s.journal.GetByID(ctx, entry.ID); err != nil {
		return err
	}

	applyFoodInsights(entry)
	profile := profileOrDefault(ctx, s.profiles)
	entry.MetabolicEfficiency = ScoreMeal(*entry, profile)

	if err := s.journal.Update(ctx, entry); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}

// DeleteMeal removes an entry by ID.
func (s *JournalService) DeleteMeal(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidRequest
	}
	return s.journal.Delete(ctx, id)
}

// ListMeals returns every stored journal entry.
func (s *JournalService) ListMeals(ctx context.Context) ([]domain.JournalEntry, error) {
	entries, err := s.journal.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return entries, nil
}

// applyFoodInsights fills the entry's recovery benefit/caution lists from
// the food-name keyword tables when the caller recorded none. This happens
// at log/edit time so the scorer only ever reads stored lists.
func applyFoodInsights(entry *domain.JournalEntry) {
	if len(entry.LongCovidBenefits) > 0 || len(entry.LongCovidCautions) > 0 {
		return
	}
	switch ClassifyFoodName(entry.Name) {
	case FoodBeneficial:
		entry.LongCovidBenefits = []string{"recognized anti-inflammatory food"}
	case FoodCaution:
		entry.LongCovidCautions = []string{"processed or high-glycemic food"}
	}
}

// profileOrDefault fetches the stored profile, degrading to an empty
// profile when none exists. A missing profile is a valid no-data state.
func profileOrDefault(ctx context.Context, profiles domain.ProfileRepository) domain.UserProfile {
	stored, err := profiles.Get(ctx)
	if err != nil || stored == nil {
		if err != nil {
			log.Printf("[PROFILE] using defaults: %v", err)
		}
		return domain.UserProfile{}
	}
	return *stored
}

// newEntryID generates a random hex entry identifier.
func newEntryID() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "entry-fallback"
	}
	return hex.EncodeToString(buf)
}
