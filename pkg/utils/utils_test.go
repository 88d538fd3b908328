package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/learnkeep/learnkeep/pkg/utils"
)

func TestRandomStr(t *testing.T) {
	got := utils.RandomStr(21)
	assert.Len(t, got, 21)

	for _, r := range got {
		ok := (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		assert.True(t, ok, "unexpected character %q", r)
	}
}

func TestRandomStrUniqueAcrossRapidCalls(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		key := utils.RandomStr(21)
		assert.False(t, seen[key], "duplicate key %s", key)
		seen[key] = true
	}
}

func TestGenUniqIDStr(t *testing.T) {
	utils.SetupIDWorker(1)

	a := utils.GenUniqIDStr()
	b := utils.GenUniqIDStr()

	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
