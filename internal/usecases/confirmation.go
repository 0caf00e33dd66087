package usecases

import (
	"context"
	"fmt"

	"tradedesk.backend/internal/domain/entities"
	domainerrors "tradedesk.backend/internal/domain/errors"
	"tradedesk.backend/internal/domain/repositories"
	"tradedesk.backend/pkg/crypto"
)

var newConfirmationToken = crypto.GenerateConfirmationToken

// Confirmer issues and checks the tokens of two-step deletes
type Confirmer struct {
	store repositories.ConfirmationStore
}

func NewConfirmer(store repositories.ConfirmationStore) *Confirmer {
	return &Confirmer{store: store}
}

// Request issues a single-use token for deleting resource/id, with the prompt to show.
func (c *Confirmer) Request(ctx context.Context, resource, id, label string) (*entities.DeleteConfirmation, error) {
	token, err := newConfirmationToken()
	if err != nil {
		return nil, err
	}
	if err := c.store.Issue(ctx, resource, id, token, ConfirmationTTL); err != nil {
		return nil, err
	}
	return &entities.DeleteConfirmation{
		Resource:  resource,
		ID:        id,
		Token:     token,
		Prompt:    fmt.Sprintf("Are you sure you want to delete %s? This cannot be undone.", label),
		ExpiresIn: int(ConfirmationTTL.Seconds()),
	}, nil
}

// Confirm consumes the token. A missing, wrong or expired token is ConfirmationRequired.
func (c *Confirmer) Confirm(ctx context.Context, resource, id, token string) error {
	if token == "" {
		return domainerrors.ConfirmationRequired("Request a delete confirmation first.")
	}
	ok, err := c.store.Consume(ctx, resource, id, token)
	if err != nil {
		return err
	}
	if !ok {
		return domainerrors.ConfirmationRequired("The confirmation token is invalid or has expired.")
	}
	return nil
}
