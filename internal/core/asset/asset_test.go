package asset_test

import (
	"context"

	"go.trai.ch/pack/internal/core/domain"
)

// memSource is an in-memory source. A non-nil err is returned from Content.
type memSource struct {
	ident domain.Ident
	data  string
	err   error
}

func (s *memSource) Ident() domain.Ident {
	return s.ident
}

func (s *memSource) Content(context.Context) (domain.Content, error) {
	if s.err != nil {
		return domain.Content{}, s.err
	}
	return domain.NewContentString(s.data), nil
}
