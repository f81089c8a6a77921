// Package alias translates logical Eyesight socket names into the socket
// keys expected by the corresponding Blender node.
//
// Two static tables are keyed first by node kind (see ir.KindOf) and then by
// logical socket name: one for destination (input) sockets and one for
// source (output) sockets. Names without an entry pass through unchanged.
// The tables are never mutated.
package alias

import (
	"strconv"
	"strings"
)

// Key is a resolved socket key: either a positional index or a socket name.
type Key string

// Index returns the positional index of the key, if it is one.
// Only non-negative decimal integers are indexes.
func (k Key) Index() (int, bool) {
	if k == "" {
		return 0, false
	}
	for _, r := range k {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(string(k))
	if err != nil {
		return 0, false
	}
	return n, true
}

// Python renders the key as a Python subscript: a bare integer for an index,
// an escaped string literal otherwise.
func (k Key) Python() string {
	if n, ok := k.Index(); ok {
		return strconv.Itoa(n)
	}
	return Quote(string(k))
}

// Quote returns s as a double-quoted Python string literal.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 || r == 0x7f {
				b.WriteString(`\x`)
				b.WriteString(strconv.FormatInt(int64(r)|0x100, 16)[1:])
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// Input resolves the destination socket name of a node kind.
func Input(kind, socket string) Key {
	return lookup(inputAliases, kind, socket)
}

// Output resolves the source socket name of a node kind.
func Output(kind, socket string) Key {
	return lookup(outputAliases, kind, socket)
}

func lookup(table map[string]map[string]string, kind, socket string) Key {
	if byName, ok := table[kind]; ok {
		if key, ok := byName[socket]; ok {
			return Key(key)
		}
	}
	return Key(socket)
}
