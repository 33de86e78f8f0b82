package domain

import (
	m "res2cpp.dev/pkg/res2cpp/internal/model"
)

// lineScanner is a cursor over one immutable manifest line. Scans never
// move past end, which shrinks once the content region is known.
type lineScanner struct {
	line string
	pos  int
	end  int
}

func (s *lineScanner) atEnd() bool {
	return s.pos >= s.end
}

func (s *lineScanner) skipSpace() {
	for !s.atEnd() && isSpace(s.line[s.pos]) {
		s.pos++
	}
}

func (s *lineScanner) skip(c byte) bool {
	if !s.atEnd() && s.line[s.pos] == c {
		s.pos++
		return true
	}

	return false
}

func (s *lineScanner) matches(chars string) bool {
	c := s.line[s.pos]
	for i := 0; i < len(chars); i++ {
		if c == chars[i] {
			return true
		}
	}

	return false
}

// skipUntil moves to the first of chars. The position is left unchanged
// when none is found.
func (s *lineScanner) skipUntil(chars string) bool {
	begin := s.pos
	for ; !s.atEnd(); s.pos++ {
		if s.matches(chars) {
			return true
		}
	}

	s.pos = begin

	return false
}

// skipString skips a single or double quoted string starting at the cursor.
func (s *lineScanner) skipString() (bool, error) {
	if s.atEnd() || (s.line[s.pos] != '"' && s.line[s.pos] != '\'') {
		return false, nil
	}

	quote := s.line[s.pos : s.pos+1]
	s.pos++

	if !s.skipUntil(quote) {
		return false, grammarError(MsgUnterminatedString)
	}

	s.pos++

	return true, nil
}

// skipUntilNotInString is skipUntil ignoring matches inside quotes.
func (s *lineScanner) skipUntilNotInString(chars string) (bool, error) {
	begin := s.pos

	for ; ; s.pos++ {
		if _, err := s.skipString(); err != nil {
			return false, err
		}

		if s.atEnd() {
			break
		}

		if s.matches(chars) {
			return true, nil
		}
	}

	s.pos = begin

	return false, nil
}

// ParseDefinition parses one manifest line. It returns nil without error
// for blank and comment-only lines. Errors are *GrammarError without a
// line number.
func ParseDefinition(line string) (*m.Definition, error) {
	s := &lineScanner{line: line, end: len(line)}
	def := &m.Definition{}

	s.skipSpace()
	begin := s.pos

	if s.skip('[') {
		s.skipSpace()
		begin = s.pos

		found, err := s.skipUntilNotInString("]#")
		if err != nil {
			return nil, err
		}

		if !found {
			return nil, grammarError(MsgMissingBracket)
		}

		// comments may only follow the closing bracket
		if s.line[s.pos] == '#' {
			return nil, grammarError(MsgInvalidDefinition)
		}

		def.IsHeader = true
		s.end = s.pos
	} else {
		found, err := s.skipUntilNotInString("]#")
		if err != nil {
			return nil, err
		}

		if found {
			if s.line[s.pos] == ']' {
				return nil, grammarError(MsgInvalidDefinition)
			}

			s.end = s.pos
		}
	}

	s.pos = begin
	if s.atEnd() && !def.IsHeader {
		return nil, nil
	}

	if err := s.parseContent(def, begin); err != nil {
		return nil, err
	}

	s.skipSpace()

	if !s.atEnd() {
		return nil, grammarError(MsgInvalidDefinition)
	}

	if def.IsHeader {
		s.pos = s.end + 1
		s.end = len(s.line)
		s.skipSpace()

		if !s.atEnd() && s.line[s.pos] != '#' {
			return nil, grammarError(MsgInvalidDefinition)
		}
	} else if def.ID == "" {
		return nil, grammarError(MsgMissingID)
	}

	return def, nil
}

// parseContent reads either a single (optionally quoted) path or an
// "id = path" pair where only the path may be quoted.
func (s *lineScanner) parseContent(def *m.Definition, begin int) error {
	quoted, err := s.skipString()
	if err != nil {
		return err
	}

	switch {
	case quoted:
		def.Path = NormalizePath(s.line[begin+1 : s.pos-1])
		def.ID = DeduceID(def.IsHeader, def.Path)

	case s.skipUntil("="):
		def.ID = NormalizeID(trimSpace(s.line[begin:s.pos]))
		if def.ID != "" && !IsValidID(def.ID) {
			return grammarError(MsgInvalidIdentifier)
		}

		s.pos++
		s.skipSpace()
		begin = s.pos

		quoted, err = s.skipString()
		if err != nil {
			return err
		}

		if quoted {
			def.Path = NormalizePath(s.line[begin+1 : s.pos-1])
		} else {
			def.Path = NormalizePath(trimSpace(s.line[begin:s.end]))
			s.pos = s.end
		}

	default:
		def.Path = NormalizePath(trimSpace(s.line[begin:s.end]))
		def.ID = DeduceID(def.IsHeader, def.Path)
		s.pos = s.end
	}

	return nil
}
