package league

import (
	"fmt"
	"net/url"
	"strings"
)

// PlaceholderImage is shown on score cards submitted without a photo
const PlaceholderImage = "/images/bg.png"

// DriveFileID extracts the Google Drive file id from a shared photo link
// such as "https://drive.google.com/open?id=abc123". It returns "" when the
// link carries no id.
func DriveFileID(link string) string {
	idx := strings.Index(link, "id=")
	if idx < 0 {
		return ""
	}
	id := link[idx+len("id="):]
	if end := strings.IndexAny(id, "&#"); end >= 0 {
		id = id[:end]
	}
	return strings.TrimSpace(id)
}

// ThumbnailURL converts a shared Drive link into a directly loadable image
// URL, or returns "" when the link has no file id.
func ThumbnailURL(link string) string {
	id := DriveFileID(link)
	if id == "" {
		return ""
	}
	return fmt.Sprintf("https://drive.google.com/thumbnail?id=%s&sz=w1000", url.QueryEscape(id))
}
