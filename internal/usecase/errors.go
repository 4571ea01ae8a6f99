package usecase

import (
	stderrors "errors"

	"github.com/event-dashboard/internal/domain"
	"github.com/event-dashboard/internal/pkg/errors"
)

// toAppError maps domain failures onto the API error envelope.
func toAppError(err error) error {
	switch {
	case err == nil:
		return nil
	case stderrors.Is(err, domain.ErrSessionNotFound):
		return errors.ErrSessionNotFound
	case stderrors.Is(err, domain.ErrUnknownCategory):
		return errors.ErrInvalidCategory
	case stderrors.Is(err, domain.ErrNoActiveCategory),
		stderrors.Is(err, domain.ErrNotSupported):
		return errors.ErrInvalidRequest.WithMessage(err.Error())
	case stderrors.Is(err, domain.ErrDataFetch):
		return errors.ErrDataSource
	default:
		return err
	}
}
