package spec

import (
	"errors"
	"fmt"
	"strings"
)

// PathSeparator joins relationship names into included paths ("posts.comments").
const PathSeparator = "."

// SplitPath splits an included path into its first relationship name and the
// remaining path. The remainder is empty for single-segment paths.
func SplitPath(path string) (head, rest string) {
	head, rest, _ = strings.Cut(path, PathSeparator)
	return head, rest
}

// JoinPath joins relationship names into an included path, skipping empty parts.
func JoinPath(parts ...string) string {
	var sb strings.Builder

	for _, part := range parts {
		if part == "" {
			continue
		}

		if sb.Len() > 0 {
			sb.WriteString(PathSeparator)
		}

		sb.WriteString(part)
	}

	return sb.String()
}

// ValidatePath checks that an included path has no empty segments.
func ValidatePath(path string) error {
	if path == "" {
		return errors.New("empty path")
	}

	for segment := range strings.SplitSeq(path, PathSeparator) {
		if segment == "" {
			return fmt.Errorf("invalid path %q: empty segment", path)
		}

		if strings.TrimSpace(segment) != segment {
			return fmt.Errorf("invalid path %q: segment %q has surrounding spaces", path, segment)
		}
	}

	return nil
}
