package repository

import "context"

// FavoritesRepository persists the visitor's favorite attraction ids.
type FavoritesRepository interface {
	List(ctx context.Context) ([]int64, error)
	Save(ctx context.Context, ids []int64) error
}

// ThemeRepository persists the dark-mode flag.
type ThemeRepository interface {
	DarkMode(ctx context.Context) (bool, error)
	SetDarkMode(ctx context.Context, dark bool) error
}
