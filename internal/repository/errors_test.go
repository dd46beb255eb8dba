package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	assert.NoError(t, translate(nil))

	assert.ErrorIs(t, translate(sql.ErrNoRows), ErrNotFound)
	assert.ErrorIs(t, translate(fmt.Errorf("get: %w", sql.ErrNoRows)), ErrNotFound)

	uniq := &pq.Error{Code: "23505", Constraint: "subscribers_email_key"}
	err := translate(uniq)
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.Contains(t, err.Error(), "subscribers_email_key")

	// Other constraint violations pass through untranslated.
	fk := &pq.Error{Code: "23503"}
	err = translate(fk)
	assert.False(t, errors.Is(err, ErrDuplicate))
	assert.False(t, errors.Is(err, ErrNotFound))

	plain := errors.New("connection reset")
	assert.Equal(t, plain, translate(plain))
}
