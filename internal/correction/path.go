package correction

import (
	"strconv"
	"strings"
)

// segment is one dotted component of a correction path, with an optional
// list index ("experience[0]" has name "experience", index 0).
type segment struct {
	name     string
	index    int
	hasIndex bool
}

// parsePath splits a correction path into segments. It validates shape only;
// whether each segment resolves against a profile is the applier's job.
func parsePath(path string) ([]segment, error) {
	if strings.TrimSpace(path) == "" {
		return nil, invalidPath(path, "path is empty")
	}

	parts := strings.Split(path, ".")
	segments := make([]segment, 0, len(parts))
	for _, part := range parts {
		seg, err := parseSegment(path, part)
		if err != nil {
			return nil, err
		}
		segments = append(segments, seg)
	}
	return segments, nil
}

func parseSegment(path, part string) (segment, error) {
	if part == "" {
		return segment{}, invalidPath(path, "empty path segment")
	}

	open := strings.Index(part, "[")
	if open < 0 {
		if strings.Contains(part, "]") {
			return segment{}, invalidPath(path, "unmatched ] in %q", part)
		}
		return segment{name: part}, nil
	}

	if open == 0 {
		return segment{}, invalidPath(path, "segment %q has no field name", part)
	}
	if !strings.HasSuffix(part, "]") {
		return segment{}, invalidPath(path, "unterminated index in %q", part)
	}

	idx, err := strconv.Atoi(part[open+1 : len(part)-1])
	if err != nil || idx < 0 {
		return segment{}, invalidPath(path, "bad index in %q", part)
	}
	return segment{name: part[:open], index: idx, hasIndex: true}, nil
}
