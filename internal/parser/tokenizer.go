package parser

import (
	"sort"
	"strings"
)

// Prefix introduces an argument value, e.g. "m/" in "m/2024-01".
type Prefix string

const (
	PrefixName    Prefix = "n/"
	PrefixPhone   Prefix = "p/"
	PrefixEmail   Prefix = "e/"
	PrefixAddress Prefix = "a/"
	PrefixFees    Prefix = "f/"
	PrefixClassID Prefix = "c/"
	PrefixMonth   Prefix = "m/"
	PrefixTag     Prefix = "t/"
)

// Arguments holds the text before the first prefix and every value per prefix,
// in the order they were written.
type Arguments struct {
	Preamble string
	values   map[Prefix][]string
}

// Value returns the last value given for p.
func (a Arguments) Value(p Prefix) (string, bool) {
	vs := a.values[p]
	if len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

func (a Arguments) All(p Prefix) []string {
	return a.values[p]
}

// Duplicated returns the prefixes among ps that were given more than once.
func (a Arguments) Duplicated(ps ...Prefix) []Prefix {
	var out []Prefix
	for _, p := range ps {
		if len(a.values[p]) > 1 {
			out = append(out, p)
		}
	}
	return out
}

type position struct {
	at     int
	prefix Prefix
}

// Tokenize splits args on the given prefixes. A prefix only counts when it
// starts the string or follows a space; "x/c/d" is a single value.
func Tokenize(args string, prefixes ...Prefix) Arguments {
	var found []position
	for _, p := range prefixes {
		from := 0
		for {
			i := strings.Index(args[from:], string(p))
			if i < 0 {
				break
			}
			at := from + i
			if at == 0 || args[at-1] == ' ' {
				found = append(found, position{at: at, prefix: p})
			}
			from = at + 1
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i].at < found[j].at })

	out := Arguments{values: make(map[Prefix][]string)}
	end := len(args)
	if len(found) > 0 {
		end = found[0].at
	}
	out.Preamble = strings.TrimSpace(args[:end])

	for i, pos := range found {
		end := len(args)
		if i+1 < len(found) {
			end = found[i+1].at
		}
		value := strings.TrimSpace(args[pos.at+len(pos.prefix) : end])
		out.values[pos.prefix] = append(out.values[pos.prefix], value)
	}
	return out
}
