package planner

import (
	"encoding/json"
	"strings"
)

// extractPartial attempts to decode a decision from an incomplete JSON
// stream by repairing the open tail. Returns nil when the buffer does not
// yet contain a decodable object prefix.
func extractPartial(buf string) *Decision {
	repaired, ok := repairJSON(buf)
	if !ok {
		return nil
	}
	var d Decision
	if err := json.Unmarshal([]byte(repaired), &d); err != nil {
		return nil
	}
	return &d
}

// repairJSON closes an incomplete JSON object: it drops a trailing partial
// literal or dangling key, terminates an open string, and closes open
// brackets. Good enough for progressive decision extraction — the final
// buffer is validated properly by ValidateDecision.
func repairJSON(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}
	s = s[start:]

	var stack []byte
	inString := false
	escaped := false
	danglingLiteral := false
	lastComplete := 0 // index just past the last structurally complete token

	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			if escaped {
				escaped = false
				continue
			}
			switch c {
			case '\\':
				escaped = true
			case '"':
				inString = false
				lastComplete = i + 1
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{', '[':
			stack = append(stack, c)
			lastComplete = i + 1
		case '}', ']':
			if len(stack) == 0 {
				return "", false
			}
			stack = stack[:len(stack)-1]
			lastComplete = i + 1
		case ',', ':':
			lastComplete = i + 1
		case 't', 'f', 'n': // true / false / null
			if end, ok := literalEnd(s, i); ok {
				lastComplete = end
				i = end - 1
			} else {
				danglingLiteral = true
				i = len(s)
			}
		case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			j := i
			for j < len(s) && strings.IndexByte("-+.eE0123456789", s[j]) >= 0 {
				j++
			}
			// A number at end-of-buffer may still be streaming; treat it as
			// complete only when a delimiter follows.
			if j < len(s) {
				lastComplete = j
			}
			i = j - 1
		}
	}

	if len(stack) == 0 && !inString && !danglingLiteral {
		return s, true
	}

	// Truncate to the last complete token, then strip a dangling key or
	// separator so the closers produce valid JSON.
	out := s
	if inString || danglingLiteral {
		out = s[:lastComplete]
	}
	out = strings.TrimRight(out, " \t\r\n")
	out = strings.TrimRight(out, ",:")
	out = trimDanglingKey(out)

	// Recompute the open bracket stack for the truncated prefix.
	stack = stack[:0]
	inString = false
	escaped = false
	for i := 0; i < len(out); i++ {
		c := out[i]
		if inString {
			if escaped {
				escaped = false
			} else if c == '\\' {
				escaped = true
			} else if c == '"' {
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{', '[':
			stack = append(stack, c)
		case '}', ']':
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}
	if inString {
		return "", false
	}

	var b strings.Builder
	b.WriteString(out)
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i] == '{' {
			b.WriteByte('}')
		} else {
			b.WriteByte(']')
		}
	}
	return b.String(), true
}

// trimDanglingKey removes a trailing `"key"` that has no value yet, along
// with the comma before it.
func trimDanglingKey(s string) string {
	t := strings.TrimRight(s, " \t\r\n")
	if !strings.HasSuffix(t, `"`) {
		return s
	}
	// Find the opening quote of the trailing string.
	i := len(t) - 2
	for i >= 0 {
		if t[i] == '"' && (i == 0 || t[i-1] != '\\') {
			break
		}
		i--
	}
	if i < 0 {
		return s
	}
	before := strings.TrimRight(t[:i], " \t\r\n")
	if strings.HasSuffix(before, ":") {
		// `"key": "complete-value"` — the string is a value, keep it.
		return s
	}
	before = strings.TrimRight(before, ",")
	return strings.TrimRight(before, " \t\r\n")
}

// literalEnd returns the index past a true/false/null literal starting at i,
// or false when the buffer ends mid-literal.
func literalEnd(s string, i int) (int, bool) {
	for _, lit := range []string{"true", "false", "null"} {
		if strings.HasPrefix(s[i:], lit) {
			return i + len(lit), true
		}
		if strings.HasPrefix(lit, s[i:]) {
			return 0, false
		}
	}
	return i + 1, true
}
