package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampPosition(t *testing.T) {
	tests := []struct {
		pos, max, want int
	}{
		{0, 3, 3},
		{-1, 3, 3},
		{1, 3, 1},
		{3, 3, 3},
		{4, 3, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, clampPosition(tt.pos, tt.max), "clampPosition(%d, %d)", tt.pos, tt.max)
	}
}

func TestOrderScope_LockKeySeparatesParents(t *testing.T) {
	a := itemScope("00000000-0000-0000-0000-000000000001")
	b := itemScope("00000000-0000-0000-0000-000000000002")
	assert.NotEqual(t, a.lockKey(), b.lockKey())
	assert.NotEqual(t, itemScope("x").lockKey(), benefitScope("x").lockKey())
	assert.Equal(t, "hero_slides:", heroSlideScope.lockKey())
}

func TestOrderScope_Filter(t *testing.T) {
	where, args := heroSlideScope.filter(1)
	assert.Equal(t, "TRUE", where)
	assert.Empty(t, args)

	where, args = itemScope("svc").filter(3)
	assert.Equal(t, "service_id = $3", where)
	assert.Equal(t, []any{"svc"}, args)
}
