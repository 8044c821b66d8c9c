package contract

import (
	"context"
	"errors"

	"recruai-web/internal/model"
)

var ErrDuplicateEntry = errors.New("waitlist: email already registered")

type WaitlistRepository interface {
	// Create returns ErrDuplicateEntry when the email is already on the list.
	Create(ctx context.Context, entry *model.WaitlistEntry) error
	FindByEmail(ctx context.Context, email string) (*model.WaitlistEntry, error)
	Count(ctx context.Context) (int64, error)
}
