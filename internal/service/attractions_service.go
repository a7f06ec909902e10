package service

import (
	"context"
	"time"

	"zhejiang-tour/internal/apperror"
	"zhejiang-tour/internal/domain"
	"zhejiang-tour/internal/repository"
)

// AttractionsService serves the static catalog and the visitor's favorites.
type AttractionsService interface {
	// Fetch returns the catalog after the configured artificial delay,
	// mimicking a remote listing call.
	Fetch(ctx context.Context) ([]domain.Attraction, error)
	Get(id int64) (*domain.Attraction, error)

	FavoriteIDs(ctx context.Context) ([]int64, error)
	Favorites(ctx context.Context) ([]domain.Attraction, error)
	IsFavorite(ctx context.Context, id int64) (bool, error)
	ToggleFavorite(ctx context.Context, id int64) (bool, error)
	ClearFavorites(ctx context.Context) error
}

type attractionsService struct {
	favorites  repository.FavoritesRepository
	catalog    []domain.Attraction
	fetchDelay time.Duration
}

func NewAttractionsService(favorites repository.FavoritesRepository, fetchDelay time.Duration) AttractionsService {
	return &attractionsService{
		favorites:  favorites,
		catalog:    defaultCatalog,
		fetchDelay: fetchDelay,
	}
}

func (s *attractionsService) Fetch(ctx context.Context) ([]domain.Attraction, error) {
	if s.fetchDelay > 0 {
		select {
		case <-time.After(s.fetchDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	attractions := make([]domain.Attraction, len(s.catalog))
	copy(attractions, s.catalog)
	return attractions, nil
}

func (s *attractionsService) Get(id int64) (*domain.Attraction, error) {
	for i := range s.catalog {
		if s.catalog[i].ID == id {
			attraction := s.catalog[i]
			return &attraction, nil
		}
	}
	return nil, apperror.NotFound("attraction not found")
}

func (s *attractionsService) FavoriteIDs(ctx context.Context) ([]int64, error) {
	return s.favorites.List(ctx)
}

func (s *attractionsService) Favorites(ctx context.Context) ([]domain.Attraction, error) {
	ids, err := s.favorites.List(ctx)
	if err != nil {
		return nil, err
	}

	marked := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		marked[id] = struct{}{}
	}

	var attractions []domain.Attraction
	for _, attraction := range s.catalog {
		if _, ok := marked[attraction.ID]; ok {
			attractions = append(attractions, attraction)
		}
	}
	return attractions, nil
}

func (s *attractionsService) IsFavorite(ctx context.Context, id int64) (bool, error) {
	ids, err := s.favorites.List(ctx)
	if err != nil {
		return false, err
	}
	for _, fav := range ids {
		if fav == id {
			return true, nil
		}
	}
	return false, nil
}

// ToggleFavorite flips the favorite mark for id and reports the new state.
func (s *attractionsService) ToggleFavorite(ctx context.Context, id int64) (bool, error) {
	ids, err := s.favorites.List(ctx)
	if err != nil {
		return false, err
	}

	updated := make([]int64, 0, len(ids)+1)
	removed := false
	for _, fav := range ids {
		if fav == id {
			removed = true
			continue
		}
		updated = append(updated, fav)
	}
	if !removed {
		updated = append(updated, id)
	}

	if err := s.favorites.Save(ctx, updated); err != nil {
		return false, err
	}
	return !removed, nil
}

func (s *attractionsService) ClearFavorites(ctx context.Context) error {
	return s.favorites.Save(ctx, nil)
}
