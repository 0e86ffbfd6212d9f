package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/salesdesk/internal/client/models"
	"github.com/dmitrijs2005/salesdesk/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/salesdesk/internal/dbx"
)

const (
	keyToken = "token"
	keyUser  = "user"
)

// Credentials is the typed view over the metadata table used by the
// session store and the HTTP client.
type Credentials struct {
	db   *sql.DB
	repo metadata.Repository
}

func NewCredentials(db *sql.DB) *Credentials {
	return &Credentials{db: db, repo: metadata.NewSQLiteRepository(db)}
}

// Token returns the stored bearer credential, or "" when none is stored.
func (c *Credentials) Token(ctx context.Context) (string, error) {
	v, err := c.repo.Get(ctx, keyToken)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// Identity returns the stored user, or nil when none is stored.
func (c *Credentials) Identity(ctx context.Context) (*models.User, error) {
	v, err := c.repo.Get(ctx, keyUser)
	if err != nil || v == nil {
		return nil, err
	}
	var u models.User
	if err := json.Unmarshal(v, &u); err != nil {
		return nil, fmt.Errorf("decode stored identity: %w", err)
	}
	return &u, nil
}

// Save writes the credential and the identity in one transaction.
func (c *Credentials) Save(ctx context.Context, token string, user models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode identity: %w", err)
	}
	return dbx.WithTx(ctx, c.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if token == "" {
			if err := repo.Delete(ctx, keyToken); err != nil {
				return err
			}
		} else if err := repo.Set(ctx, keyToken, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, keyUser, raw)
	})
}

// Clear removes everything the client persisted.
func (c *Credentials) Clear(ctx context.Context) error {
	return c.repo.Clear(ctx)
}
