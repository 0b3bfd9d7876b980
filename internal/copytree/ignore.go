package copytree

import (
	"fmt"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
	"github.com/spf13/afero"
)

// scope is one compiled ignore file and the directory that holds it.
// Its patterns are evaluated relative to that directory.
type scope struct {
	dir     string
	matcher *ignore.GitIgnore
}

// scopes is the list of ignore files active for a directory, outermost
// first. It is passed by value down the recursion; with never mutates the
// receiver, so a child's scopes vanish when the child returns.
type scopes []scope

func (sc scopes) with(s scope) scopes {
	next := make(scopes, len(sc), len(sc)+1)
	copy(next, sc)
	return append(next, s)
}

// matches reports whether any active scope excludes path. Directories are
// matched with a trailing slash so directory-only patterns ("build/") apply.
func (sc scopes) matches(path string, isDir bool) bool {
	for _, s := range sc {
		rel, err := filepath.Rel(s.dir, path)
		if err != nil {
			continue
		}
		rel = filepath.ToSlash(rel)
		if isDir {
			rel += "/"
		}
		if s.matcher.MatchesPath(rel) {
			return true
		}
	}
	return false
}

// loadScope compiles the ignore file at path, which lives in dir.
func loadScope(fsys afero.Fs, dir, path string) (scope, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return scope{}, fmt.Errorf("reading ignore file %s: %w", path, err)
	}
	return compileScope(dir, data), nil
}

func compileScope(dir string, data []byte) scope {
	lines := strings.Split(string(data), "\n")
	for i, line := range lines {
		lines[i] = normalizePattern(line)
	}
	return scope{dir: dir, matcher: ignore.CompileIgnoreLines(lines...)}
}

// normalizePattern rewrites one ignore line into the dialect the matcher
// understands while keeping gitignore semantics:
//   - a slash anywhere but the end anchors the pattern to the ignore file's
//     directory, so such patterns get a leading slash;
//   - "?" matches one character other than "/", and "\?" a literal "?";
//   - "[!...]" is a negated bracket expression.
func normalizePattern(line string) string {
	line = strings.TrimSpace(strings.TrimRight(line, "\r"))
	if line == "" || strings.HasPrefix(line, "#") {
		return line
	}

	negate := ""
	if strings.HasPrefix(line, "!") {
		negate, line = "!", line[1:]
	}

	if !strings.HasPrefix(line, "/") && strings.Contains(strings.TrimSuffix(line, "/"), "/") {
		line = "/" + line
	}

	var b strings.Builder
	for i := 0; i < len(line); i++ {
		switch {
		case line[i] == '\\' && i+1 < len(line) && line[i+1] == '?':
			b.WriteString("[?]")
			i++
		case line[i] == '?':
			b.WriteString(`[^\x2f]`)
		case line[i] == '[' && i+1 < len(line) && line[i+1] == '!':
			b.WriteString("[^")
			i++
		default:
			b.WriteByte(line[i])
		}
	}
	return negate + b.String()
}
