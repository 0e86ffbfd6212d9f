package pages

import (
	"context"
	"errors"
)

var ErrCancelled = errors.New("cancelled")

// Confirmer asks the user to approve a destructive action.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

type ConfirmFunc func(ctx context.Context, prompt string) (bool, error)

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) (bool, error) {
	return f(ctx, prompt)
}

// confirm returns nil only when the user agreed. No confirmer means no.
func confirm(ctx context.Context, c Confirmer, prompt string) error {
	if c == nil {
		return ErrCancelled
	}
	ok, err := c.Confirm(ctx, prompt)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCancelled
	}
	return nil
}
