package elm

import (
	"bufio"
	"bytes"
	"errors"
	"regexp"
	"strings"
)

var (
	moduleDecl  = regexp.MustCompile(`^module\s+(\S+)\s+exposing\s+\((.*)\)\s*$`)
	annotation  = regexp.MustCompile(`^([a-z][A-Za-z0-9_]*)\s+:`)
	typeDecl    = regexp.MustCompile(`^type\s+(?:alias\s+)?([A-Z][A-Za-z0-9_]*)`)
	constructor = regexp.MustCompile(`^\s+[=|]\s+([A-Z][A-Za-z0-9_]*)\s*$`)
	docsDecl    = regexp.MustCompile(`^@docs\s+(.*)$`)
)

// scanned is what the export check needs to know about an Elm module. It
// is read from the rendered text, not from the data the text was rendered
// from.
type scanned struct {
	module       string
	exposing     []string
	open         bool // a type is exposed with its constructors
	docs         []string
	definitions  []string
	constructors []string
}

// scan reads the top-level declarations of a generated Elm module. It only
// understands the layout the templates produce: declarations start at
// column zero and constructors are listed one per line.
func scan(src []byte) (*scanned, error) {
	var (
		s         = &scanned{}
		inComment bool
		inType    bool
		sc        = bufio.NewScanner(bytes.NewReader(src))
	)
	sc.Buffer(make([]byte, 0, 64*1024), len(src)+1)
	for sc.Scan() {
		line := sc.Text()
		switch {
		case inComment:
			if m := docsDecl.FindStringSubmatch(line); m != nil {
				s.docs = append(s.docs, splitList(m[1])...)
			}
			if strings.Contains(line, "-}") {
				inComment = false
			}
			continue
		case strings.HasPrefix(line, "{-"):
			inComment = !strings.Contains(line, "-}")
			inType = false
			continue
		}
		if m := moduleDecl.FindStringSubmatch(line); m != nil && s.module == "" {
			s.module = m[1]
			for _, item := range splitList(m[2]) {
				if name, ok := strings.CutSuffix(item, "(..)"); ok {
					item = name
					s.open = true
				}
				s.exposing = append(s.exposing, item)
			}
			continue
		}
		if inType {
			if m := constructor.FindStringSubmatch(line); m != nil {
				s.constructors = append(s.constructors, m[1])
				continue
			}
			inType = false
		}
		if m := typeDecl.FindStringSubmatch(line); m != nil {
			s.definitions = append(s.definitions, m[1])
			inType = !strings.Contains(line, "alias")
			continue
		}
		if m := annotation.FindStringSubmatch(line); m != nil {
			s.definitions = append(s.definitions, m[1])
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if s.module == "" {
		return nil, errors.New("missing module declaration")
	}
	return s, nil
}

func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
