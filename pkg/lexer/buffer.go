package lexer

const minBuffer = 32

// save appends c to the scratch buffer, doubling its capacity when full.
// An element longer than cfg.MaxTokenLen bytes fails the chunk, and the
// capacity never grows past that limit.
func (l *Lexer) save(c int) {
	if len(l.buf)+1 > l.cfg.MaxTokenLen {
		l.fail(ErrTooLong, "lexical element too long", 0)
	}
	if len(l.buf) == cap(l.buf) {
		grown := make([]byte, len(l.buf), min(cap(l.buf)*2, l.cfg.MaxTokenLen))
		copy(grown, l.buf)
		l.buf = grown
	}
	l.buf = append(l.buf, byte(c))
}

func (l *Lexer) saveAndNext() {
	l.save(l.current)
	l.next()
}

func (l *Lexer) resetBuffer() { l.buf = l.buf[:0] }

// checkNext consumes and saves the current byte if it is in set.
func (l *Lexer) checkNext(set string) bool {
	if l.current <= 0 {
		return false
	}
	for i := 0; i < len(set); i++ {
		if int(set[i]) == l.current {
			l.saveAndNext()
			return true
		}
	}
	return false
}

