package finder

import "strings"

// Pool is the set of input fragments still available while building one
// flagged word. It is mutated in place by FindAndConsume and must not be
// shared between words.
type Pool struct {
	fragments []string
}

func NewPool(tokens []string) *Pool {
	fragments := make([]string, len(tokens))
	copy(fragments, tokens)

	return &Pool{fragments: fragments}
}

// FindAndConsume takes needle out of the first fragment that contains it.
// The unused prefix and suffix of that fragment, when non-empty, are
// appended back to the pool in that order.
func (p *Pool) FindAndConsume(needle string) bool {
	for i, fragment := range p.fragments {
		idx := strings.Index(fragment, needle)
		if idx < 0 {
			continue
		}

		p.fragments = append(p.fragments[:i], p.fragments[i+1:]...)

		if prefix := fragment[:idx]; prefix != "" {
			p.fragments = append(p.fragments, prefix)
		}
		if suffix := fragment[idx+len(needle):]; suffix != "" {
			p.fragments = append(p.fragments, suffix)
		}

		return true
	}

	return false
}

func (p *Pool) Fragments() []string {
	out := make([]string, len(p.fragments))
	copy(out, p.fragments)
	return out
}

func (p *Pool) Len() int {
	return len(p.fragments)
}
