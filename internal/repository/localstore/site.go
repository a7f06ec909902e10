package localstore

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"zhejiang-tour/internal/repository"
)

const (
	favoritesKey = "zhejiang-favorites"
	themeDarkKey = "zhejiang-theme-dark"
)

// FavoritesRepository persists the favorite attraction ids as a JSON list.
type FavoritesRepository struct {
	store repository.LocalStore
}

func NewFavoritesRepository(store repository.LocalStore) repository.FavoritesRepository {
	return &FavoritesRepository{store: store}
}

func (r *FavoritesRepository) List(ctx context.Context) ([]int64, error) {
	raw, ok, err := r.store.Get(ctx, favoritesKey)
	if err != nil {
		return nil, fmt.Errorf("read favorites: %w", err)
	}
	if !ok || raw == "" {
		return nil, nil
	}

	var ids []int64
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, fmt.Errorf("decode favorites: %w", err)
	}
	return ids, nil
}

func (r *FavoritesRepository) Save(ctx context.Context, ids []int64) error {
	if ids == nil {
		ids = []int64{}
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("encode favorites: %w", err)
	}
	if err := r.store.Set(ctx, favoritesKey, string(raw)); err != nil {
		return fmt.Errorf("write favorites: %w", err)
	}
	return nil
}

// ThemeRepository persists the dark-mode flag.
type ThemeRepository struct {
	store repository.LocalStore
}

func NewThemeRepository(store repository.LocalStore) repository.ThemeRepository {
	return &ThemeRepository{store: store}
}

func (r *ThemeRepository) DarkMode(ctx context.Context) (bool, error) {
	raw, ok, err := r.store.Get(ctx, themeDarkKey)
	if err != nil {
		return false, fmt.Errorf("read theme: %w", err)
	}
	if !ok {
		return false, nil
	}

	dark, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("decode theme: %w", err)
	}
	return dark, nil
}

func (r *ThemeRepository) SetDarkMode(ctx context.Context, dark bool) error {
	if err := r.store.Set(ctx, themeDarkKey, strconv.FormatBool(dark)); err != nil {
		return fmt.Errorf("write theme: %w", err)
	}
	return nil
}
