// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package landing

import (
	"fmt"
	"strconv"
	"strings"
)

// Video hosting platforms the player knows how to embed.
const (
	PlatformVimeo   = "vimeo"
	PlatformYouTube = "youtube"
	PlatformWistia  = "wistia"
	PlatformVturb   = "vturb"
	PlatformOther   = "other"
)

// DefaultAspectRatio is used when none is configured or it can't be parsed.
const DefaultAspectRatio = "16:9"

// Video describes the sales letter video.
type Video struct {
	URL          string `json:"url"`
	Platform     string `json:"platform"`
	Thumbnail    string `json:"thumbnail,omitempty"`
	AspectRatio  string `json:"aspectRatio"`
	AspectClass  string `json:"aspectClass"`
	DurationSecs int    `json:"durationSeconds,omitempty"`
}

// DetectPlatform guesses the hosting platform from a video URL.
func DetectPlatform(url string) string {
	switch {
	case strings.Contains(url, "vimeo.com"):
		return PlatformVimeo
	case strings.Contains(url, "youtube.com"), strings.Contains(url, "youtu.be"):
		return PlatformYouTube
	case strings.Contains(url, "wistia.com"):
		return PlatformWistia
	case strings.Contains(url, "vturb.com.br"):
		return PlatformVturb
	default:
		return PlatformOther
	}
}

// AspectClass maps an "w:h" ratio to the utility class that sizes the
// player container. Unparseable ratios use the 16:9 class.
func AspectClass(ratio string) string {
	switch ratio {
	case "16:9":
		return "aspect-video"
	case "1:1":
		return "aspect-square"
	case "9:16":
		return "aspect-[9/16]"
	case "4:3":
		return "aspect-[4/3]"
	}

	w, h, ok := strings.Cut(ratio, ":")
	if !ok {
		return "aspect-video"
	}
	wi, errW := strconv.Atoi(strings.TrimSpace(w))
	hi, errH := strconv.Atoi(strings.TrimSpace(h))
	if errW != nil || errH != nil || wi <= 0 || hi <= 0 {
		return "aspect-video"
	}
	return fmt.Sprintf("aspect-[%d/%d]", wi, hi)
}

// NewVideo fills in the platform and aspect class for a configured video.
func NewVideo(url, platform, thumbnail, ratio string) Video {
	if platform == "" {
		platform = DetectPlatform(url)
	}
	if ratio == "" {
		ratio = DefaultAspectRatio
	}
	return Video{
		URL:         url,
		Platform:    platform,
		Thumbnail:   thumbnail,
		AspectRatio: ratio,
		AspectClass: AspectClass(ratio),
	}
}
