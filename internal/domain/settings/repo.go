package settings

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("setting not found")

type Repository interface {
	Set(ctx context.Context, s *Setting) error
	Get(ctx context.Context, key string) (*Setting, error)
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) ([]*Setting, error)
}
