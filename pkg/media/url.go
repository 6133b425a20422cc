package media

import (
	"fmt"
	"regexp"
)

// Stored URLs look like .../upload/[v123/]<publicId>.ext. The version
// segment is optional and the public ID may contain folder slashes.
var publicIDPattern = regexp.MustCompile(`/upload/(?:v\d+/)?(.+)\.[^./?#]+$`)

// PublicIDFromURL extracts the public ID from a stored media URL.
func PublicIDFromURL(rawURL string) (string, error) {
	matches := publicIDPattern.FindStringSubmatch(rawURL)
	if len(matches) != 2 {
		return "", fmt.Errorf("url %q does not match the media host upload format", rawURL)
	}
	return matches[1], nil
}
