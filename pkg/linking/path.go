package linking

import (
	"errors"
	"net/url"
	"sort"
	"strings"

	"github.com/navsync-dev/navsync/pkg/navstate"
)

// CanonicalizePath normalizes a URL path for parsing and comparison.
// It splits off the query string, rejects backslashes and null bytes,
// ensures a leading slash, collapses duplicate slashes, and strips the
// trailing slash (except for the root).
func CanonicalizePath(path string) (canonPath, query string, changed bool, err error) {
	if path == "" {
		return "/", "", true, nil
	}

	canonPath, query, _ = strings.Cut(path, "?")

	if strings.Contains(canonPath, "\\") {
		return "", "", false, errors.New("path contains backslash")
	}
	if strings.Contains(canonPath, "\x00") {
		return "", "", false, errors.New("path contains null byte")
	}

	original := canonPath

	if !strings.HasPrefix(canonPath, "/") {
		canonPath = "/" + canonPath
	}

	for strings.Contains(canonPath, "//") {
		canonPath = strings.ReplaceAll(canonPath, "//", "/")
	}

	if len(canonPath) > 1 && strings.HasSuffix(canonPath, "/") {
		canonPath = strings.TrimSuffix(canonPath, "/")
	}

	return canonPath, query, canonPath != original, nil
}

// StateFromPath is the default path parser. Each path segment becomes a
// focused route one navigator deeper; the query string becomes the leaf
// route's params. Returns nil for the root path and unparseable input.
func StateFromPath(path string, _ *Config) *navstate.NavigationState {
	canonPath, query, _, err := CanonicalizePath(path)
	if err != nil {
		return nil
	}
	if canonPath == "/" {
		return nil
	}

	segments := strings.Split(strings.TrimPrefix(canonPath, "/"), "/")
	names := make([]string, 0, len(segments))
	for _, seg := range segments {
		name, err := url.PathUnescape(seg)
		if err != nil || name == "" {
			return nil
		}
		names = append(names, name)
	}

	var params map[string]string
	if query != "" {
		values, err := url.ParseQuery(query)
		if err != nil {
			return nil
		}
		params = make(map[string]string, len(values))
		for k := range values {
			params[k] = values.Get(k)
		}
	}

	// Build the chain leaf-up so each level wraps the one below.
	state := &navstate.NavigationState{
		Routes: []navstate.Route{{Name: names[len(names)-1], Params: params}},
	}
	for i := len(names) - 2; i >= 0; i-- {
		state = &navstate.NavigationState{
			Routes: []navstate.Route{{Name: names[i], State: state}},
		}
	}
	return state
}

// PathFromState is the default path serializer. It walks the chain of
// focused routes, joining escaped route names as path segments and encoding
// the leaf route's params as the query string. Stale nested states are
// excluded: the walk stops at the route owning them.
func PathFromState(state *navstate.NavigationState, _ *Config) string {
	if state == nil {
		return "/"
	}

	var names []string
	var leaf *navstate.Route
	for current := state; current != nil; {
		route := current.FocusedRoute()
		if route == nil {
			break
		}
		names = append(names, url.PathEscape(route.Name))
		leaf = route
		if route.State == nil || route.State.Stale {
			break
		}
		current = route.State
	}
	if len(names) == 0 {
		return "/"
	}

	path := "/" + strings.Join(names, "/")
	if leaf != nil && len(leaf.Params) > 0 {
		path += "?" + encodeParams(leaf.Params)
	}
	return path
}

// encodeParams encodes params with sorted keys so derived paths are
// deterministic and comparable.
func encodeParams(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(k))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(params[k]))
	}
	return b.String()
}
