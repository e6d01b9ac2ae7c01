package ingredient

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pantryline/pantryline/internal/domain"
	"github.com/pantryline/pantryline/internal/event"
	"github.com/pantryline/pantryline/internal/logger"
	"github.com/pantryline/pantryline/internal/repository"
)

// Input carries the writable ingredient fields for create and update
type Input struct {
	Name       string
	Unit       string
	Quantity   float64
	Threshold  *float64
	BestBefore *time.Time
	UseBy      *time.Time
}

// Service defines the interface for ingredient lifecycle operations.
// GetByID also serves the shopping service's status derivation, so reads go
// through a short-lived LRU cache.
type Service interface {
	CreateIngredient(ctx context.Context, userID string, input Input) (*domain.Ingredient, error)
	UpdateIngredient(ctx context.Context, userID, ingredientID string, input Input) (*domain.Ingredient, error)
	DeleteIngredient(ctx context.Context, userID, ingredientID string) error
	GetByID(ctx context.Context, id domain.IngredientID) (*domain.Ingredient, error)
	ListIngredients(ctx context.Context, userID string) ([]*domain.Ingredient, error)
}

type service struct {
	repo     repository.Ingredient
	eventBus event.Bus
	cache    *ingredientCache
	titler   cases.Caser
}

// NewService creates a new ingredient service. cacheSize and cacheTTL bound
// the read cache; a zero or negative size disables caching.
func NewService(repo repository.Ingredient, eventBus event.Bus, cacheSize int, cacheTTL time.Duration) Service {
	var cache *ingredientCache
	if cacheSize > 0 {
		cache = newIngredientCache(cacheSize, cacheTTL)
	}
	return &service{
		repo:     repo,
		eventBus: eventBus,
		cache:    cache,
		titler:   cases.Title(language.English),
	}
}

// normalizeName trims and title-cases a user-provided ingredient name so
// "whole milk", "Whole milk" and " WHOLE MILK " all store identically.
func (s *service) normalizeName(raw string) string {
	return s.titler.String(strings.ToLower(strings.TrimSpace(raw)))
}

func validateInput(input Input) error {
	if strings.TrimSpace(input.Name) == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNameRequired)
	}
	if input.Quantity < 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNegativeQuantity)
	}
	if input.Threshold != nil && *input.Threshold < 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNegativeThreshold)
	}
	return nil
}

// CreateIngredient adds a new pantry ingredient. An ingredient created at or
// below its threshold emits the low stock event in the same batch as the
// created event.
func (s *service) CreateIngredient(ctx context.Context, userID string, input Input) (*domain.Ingredient, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCreateIngredientCalled, "userID", userID, "name", input.Name)

	uid, err := domain.ParseUserID(userID)
	if err != nil {
		return nil, err
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	ing := &domain.Ingredient{
		ID:         domain.NewIngredientID(),
		UserID:     uid,
		Name:       s.normalizeName(input.Name),
		Unit:       input.Unit,
		Quantity:   input.Quantity,
		Threshold:  input.Threshold,
		BestBefore: input.BestBefore,
		UseBy:      input.UseBy,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(ctx, ing); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCreateIngredient, err)
	}

	events := []event.Event{event.NewIngredientLifecycleEvent(event.IngredientCreated, ing)}
	if ing.IsLowStock() {
		log.Warn(LogMsgLowStockDetected, "ingredientID", ing.ID, "quantity", ing.Quantity)
		events = append(events, event.NewIngredientLowStockEvent(ing))
	}
	s.publish(ctx, events)

	log.Info(LogMsgIngredientCreated, "ingredientID", ing.ID, "name", ing.Name)
	return ing, nil
}

// UpdateIngredient replaces an ingredient's writable fields. Crossing the
// low stock threshold downward emits the low stock event in the same batch
// as the updated event; staying below it does not re-alert.
func (s *service) UpdateIngredient(ctx context.Context, userID, ingredientID string, input Input) (*domain.Ingredient, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgUpdateIngredientCalled, "userID", userID, "ingredientID", ingredientID)

	uid, err := domain.ParseUserID(userID)
	if err != nil {
		return nil, err
	}
	iid, err := domain.ParseIngredientID(ingredientID)
	if err != nil {
		return nil, err
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, iid)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetIngredient, err)
	}
	if existing == nil || existing.UserID != uid {
		return nil, fmt.Errorf("%w: %s", domain.ErrIngredientNotFound, ingredientID)
	}

	wasLow := existing.IsLowStock()

	updated := *existing
	updated.Name = s.normalizeName(input.Name)
	updated.Unit = input.Unit
	updated.Quantity = input.Quantity
	updated.Threshold = input.Threshold
	updated.BestBefore = input.BestBefore
	updated.UseBy = input.UseBy
	updated.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToUpdateIngredient, err)
	}
	if s.cache != nil {
		s.cache.Invalidate(iid)
	}

	events := []event.Event{event.NewIngredientLifecycleEvent(event.IngredientUpdated, &updated)}
	if !wasLow && updated.IsLowStock() {
		log.Warn(LogMsgLowStockDetected, "ingredientID", updated.ID, "quantity", updated.Quantity)
		events = append(events, event.NewIngredientLowStockEvent(&updated))
	}
	s.publish(ctx, events)

	log.Info(LogMsgIngredientUpdated, "ingredientID", updated.ID)
	return &updated, nil
}

// DeleteIngredient removes an ingredient. Checked items referencing it keep
// their snapshot; only the live ingredient goes away.
func (s *service) DeleteIngredient(ctx context.Context, userID, ingredientID string) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgDeleteIngredientCalled, "userID", userID, "ingredientID", ingredientID)

	uid, err := domain.ParseUserID(userID)
	if err != nil {
		return err
	}
	iid, err := domain.ParseIngredientID(ingredientID)
	if err != nil {
		return err
	}

	existing, err := s.repo.GetByID(ctx, iid)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToGetIngredient, err)
	}
	if existing == nil || existing.UserID != uid {
		return fmt.Errorf("%w: %s", domain.ErrIngredientNotFound, ingredientID)
	}

	if err := s.repo.Delete(ctx, iid); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToDeleteIngredient, err)
	}
	if s.cache != nil {
		s.cache.Invalidate(iid)
	}

	s.publish(ctx, []event.Event{event.NewIngredientLifecycleEvent(event.IngredientDeleted, existing)})

	log.Info(LogMsgIngredientDeleted, "ingredientID", ingredientID)
	return nil
}

// GetByID returns the ingredient snapshot, serving repeated reads from the
// cache. Returns nil when absent, matching the repository contract.
func (s *service) GetByID(ctx context.Context, id domain.IngredientID) (*domain.Ingredient, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(id); ok {
			return cached, nil
		}
	}

	ing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetIngredient, err)
	}
	if ing != nil && s.cache != nil {
		s.cache.Set(ing)
	}
	return ing, nil
}

// ListIngredients returns the user's ingredients ordered by name
func (s *service) ListIngredients(ctx context.Context, userID string) ([]*domain.Ingredient, error) {
	uid, err := domain.ParseUserID(userID)
	if err != nil {
		return nil, err
	}

	ingredients, err := s.repo.ListByUserID(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToListIngredients, err)
	}
	return ingredients, nil
}

// publish hands one command's events to the bus as a batch. Publish failures
// are logged, never surfaced: the state change has already been persisted.
func (s *service) publish(ctx context.Context, events []event.Event) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.PublishAll(ctx, events); err != nil {
		logger.FromContext(ctx).Warn("event publish failed", "error", err)
	}
}
