package usecase

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCanAccess(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	assert.True(t, CanAccess(a, a))
	assert.False(t, CanAccess(a, b))
	assert.False(t, CanAccess(uuid.Nil, uuid.Nil))
	assert.False(t, CanAccess(uuid.Nil, a))
}
