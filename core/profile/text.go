// ABOUTME: String helpers for building lookup queries and map links
// ABOUTME: Sanitizes college names for geocoding and constructs the fallback map URL

package profile

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"college-profile-api/core/domain"
)

const (
	mapZoom          = 18
	osmBaseURL       = "https://www.openstreetmap.org/"
	mapsSearchURL    = "https://www.google.com/maps/search/?api=1&query="
	mapsSiteFilter   = " location site:maps.google.com"
	campusTourSuffix = " campus tour"
)

var (
	// Word characters are Unicode letters, digits and underscore
	nonQueryChars = regexp.MustCompile(`[^\p{L}\p{N}_\s\v\p{Z},]`)
	whitespaceRun = regexp.MustCompile(`[\s\v\p{Z}]+`)

	institutionalWords = regexp.MustCompile(`(?i)\b(?:society|institute|college|campus|ltd|pvt|unitech|trust)\b`)
)

// sanitizeQuery keeps word characters, whitespace and commas, then collapses whitespace
func sanitizeQuery(name string) string {
	sanitized := nonQueryChars.ReplaceAllString(name, "")
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(sanitized, " "))
}

// fallbackQuery strips institutional suffix words and apostrophes from a college name
func fallbackQuery(name string) string {
	stripped := institutionalWords.ReplaceAllString(name, "")
	stripped = strings.ReplaceAll(stripped, "'", "")
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(stripped, " "))
}

// fallbackMapsURL builds a map search link from the college name. It never fails.
func fallbackMapsURL(name string) string {
	escaped := strings.ReplaceAll(url.QueryEscape(fallbackQuery(name)), "+", "%20")
	return mapsSearchURL + escaped
}

// geocodeMapsURL builds a map link pinned at the given coordinates
func geocodeMapsURL(c domain.Coordinates) string {
	lat := c.LatitudeText
	if lat == "" {
		lat = strconv.FormatFloat(c.Latitude, 'f', -1, 64)
	}
	lon := c.LongitudeText
	if lon == "" {
		lon = strconv.FormatFloat(c.Longitude, 'f', -1, 64)
	}
	return fmt.Sprintf("%s?mlat=%s&mlon=%s#map=%d/%s/%s", osmBaseURL, lat, lon, mapZoom, lat, lon)
}

// shouldReplaceDescription reports whether candidate is strictly longer than current
func shouldReplaceDescription(current, candidate string) bool {
	return utf8.RuneCountInString(candidate) > utf8.RuneCountInString(current)
}

func mapsSearchQuery(name string) string {
	return name + mapsSiteFilter
}

func campusTourQuery(name string) string {
	return name + campusTourSuffix
}
