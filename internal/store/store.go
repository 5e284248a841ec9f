package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

const defaultTimeout = 10 * time.Second

// base carries the collection handle and per-operation timeout shared by
// every store.
type base struct {
	coll    *mongo.Collection
	timeout time.Duration
}

func newBase(coll *mongo.Collection, timeout time.Duration) base {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return base{coll: coll, timeout: timeout}
}

func (b base) ctx(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, b.timeout)
}

// translate maps driver errors onto the package sentinels.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return ErrDuplicate
	}
	return err
}
