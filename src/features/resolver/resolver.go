package resolver

import (
	"net/url"
	"strings"

	"cuebox/src/dj"
)

// Marker is the scheme+host prefix rekordbox uses for local-filesystem
// locations.
const Marker = "file://localhost"

// Normalize converts any of the path forms rekordbox produces (bare path,
// marker-prefixed path, percent-encoded variants of either) into one
// canonical encoded form: marker + decode-then-re-encode of the path
// component, with path separators left unescaped.
//
// Normalize never fails: a path component with malformed percent sequences
// is passed through as received.
func Normalize(path string) string {
	if !strings.HasPrefix(path, Marker) {
		if strings.HasPrefix(path, "/") {
			path = Marker + path
		} else {
			path = Marker + "/" + path
		}
	}

	part := path[len(Marker):]
	decoded, err := url.PathUnescape(part)
	if err != nil {
		return Marker + part
	}
	u := url.URL{Path: decoded}
	return Marker + u.EscapedPath()
}

// DecodedPath fully percent-decodes a location and strips the marker prefix,
// yielding the plain filesystem path. Malformed percent sequences degrade to
// the raw string. This is the form handed to file-reading collaborators.
func DecodedPath(path string) string {
	decoded, err := url.PathUnescape(path)
	if err != nil {
		decoded = path
	}
	return strings.TrimPrefix(decoded, Marker)
}

// Resolve scans the listing in order and returns the first track whose
// location denotes the same file as target, or nil when none does.
//
// Each track is checked two ways: canonical-form equality first, then a
// decode-and-strip comparison of the raw strings. The second pass is kept
// separate from the normalizer on purpose; it catches encodings the
// canonical form does not round-trip exactly.
func Resolve(target string, tracks []*dj.Track) *dj.Track {
	normalizedTarget := Normalize(target)
	decodedTarget := DecodedPath(target)

	for _, t := range tracks {
		if t.Location == "" {
			continue
		}
		if Normalize(t.Location) == normalizedTarget {
			return t
		}
		if DecodedPath(t.Location) == decodedTarget {
			return t
		}
	}
	return nil
}
