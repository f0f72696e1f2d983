package vocabulary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreReplace(t *testing.T) {
	s := NewStore([]string{"sex"}, EmbeddedSource)
	first := s.Words()
	loadedAt := s.LoadedAt()

	s.Replace([]string{"anal", "bum"}, "/tmp/words.txt")

	assert.Equal(t, []string{"sex"}, first)
	assert.Equal(t, []string{"anal", "bum"}, s.Words())
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, "/tmp/words.txt", s.Source())
	assert.False(t, s.LoadedAt().Before(loadedAt))
}
