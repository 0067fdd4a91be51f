// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package landing

import "testing"

func TestAspectClass(t *testing.T) {
	tests := map[string]string{
		"16:9":  "aspect-video",
		"1:1":   "aspect-square",
		"9:16":  "aspect-[9/16]",
		"4:3":   "aspect-[4/3]",
		"21:9":  "aspect-[21/9]",
		"":      "aspect-video",
		"wide":  "aspect-video",
		"0:1":   "aspect-video",
		"-4:3":  "aspect-video",
		"3:x":   "aspect-video",
		" 5:4 ": "aspect-[5/4]",
	}
	for in, want := range tests {
		if got := AspectClass(in); got != want {
			t.Errorf("AspectClass(%q): got %q, want %q", in, got, want)
		}
	}
}

func TestDetectPlatform(t *testing.T) {
	tests := map[string]string{
		"https://vimeo.com/1078670896/0dc58ff6ce":      PlatformVimeo,
		"https://www.youtube.com/watch?v=abc":          PlatformYouTube,
		"https://youtu.be/abc":                         PlatformYouTube,
		"https://fast.wistia.com/embed/medias/x":       PlatformWistia,
		"https://scripts.converteai.vturb.com.br/x.js": PlatformVturb,
		"https://cdn.example.com/video.mp4":            PlatformOther,
	}
	for url, want := range tests {
		if got := DetectPlatform(url); got != want {
			t.Errorf("DetectPlatform(%q): got %q, want %q", url, got, want)
		}
	}
}

func TestNewVideo(t *testing.T) {
	v := NewVideo("https://youtu.be/abc", "", "/thumb.png", "")
	if v.Platform != PlatformYouTube || v.AspectRatio != "16:9" || v.AspectClass != "aspect-video" {
		t.Errorf("unexpected defaults: %+v", v)
	}

	v = NewVideo("https://cdn.example.com/v.mp4", PlatformVimeo, "", "9:16")
	if v.Platform != PlatformVimeo {
		t.Errorf("explicit platform should win, got %q", v.Platform)
	}
	if v.AspectClass != "aspect-[9/16]" {
		t.Errorf("AspectClass: got %q", v.AspectClass)
	}
}
