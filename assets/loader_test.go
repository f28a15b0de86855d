package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"log"
	"strings"
	"testing"
	"testing/fstest"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.White)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut, prevFlags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
	})
	return &buf
}

func TestLoadReportsMissingWithoutAborting(t *testing.T) {
	logs := captureLog(t)

	fsys := fstest.MapFS{
		"npc.png":      {Data: pngBytes(t, 40, 60)},
		"hitSound.mp3": {Data: []byte("not decoded until played")},
		"broken.png":   {Data: []byte("nope")},
	}
	manifest := Manifest{
		{Kind: KindImage, Key: "npc", Path: "assets/npc.png"},
		{Kind: KindImage, Key: "background", Path: "background.png"},
		{Kind: KindImage, Key: "leftHit", Path: "broken.png"},
		{Kind: KindAudio, Key: "hitSound", Path: "hitSound.mp3"},
		{Kind: KindAudio, Key: "buttonSound", Path: "button_voice.mp3"},
		{Kind: "video", Key: "intro", Path: "npc.png"},
	}

	lib := NewLoader(fsys).Load(manifest)

	if !lib.Has(KindImage, "npc") || !lib.Has(KindAudio, "hitSound") {
		t.Fatal("expected npc image and hit sound to resolve")
	}
	w, h, ok := lib.ImageSize("npc")
	if !ok || w != 40 || h != 60 {
		t.Fatalf("expected 40x60 npc, got %dx%d ok=%v", w, h, ok)
	}

	missing := map[string]bool{}
	for _, e := range lib.Missing() {
		missing[e.Key] = true
	}
	for _, key := range []string{"background", "leftHit", "buttonSound", "intro"} {
		if !missing[key] {
			t.Fatalf("expected %q to be reported missing, got %v", key, lib.Missing())
		}
		if !strings.Contains(logs.String(), `"`+key+`"`) {
			t.Fatalf("expected a warning naming %q, log was:\n%s", key, logs.String())
		}
	}
	if len(lib.Missing()) != 4 {
		t.Fatalf("expected 4 missing entries, got %d", len(lib.Missing()))
	}
}

func TestLoaderSourceOrder(t *testing.T) {
	first := fstest.MapFS{"npc.png": {Data: pngBytes(t, 10, 10)}}
	second := fstest.MapFS{
		"npc.png":        {Data: pngBytes(t, 20, 20)},
		"background.png": {Data: pngBytes(t, 30, 30)},
	}
	lib := NewLoader(nil, first, second).Load(Manifest{
		{Kind: KindImage, Key: "npc", Path: "npc.png"},
		{Kind: KindImage, Key: "background", Path: "background.png"},
	})

	if w, _, _ := lib.ImageSize("npc"); w != 10 {
		t.Fatalf("expected first source to win, got width %d", w)
	}
	if w, _, _ := lib.ImageSize("background"); w != 30 {
		t.Fatalf("expected fallback to second source, got width %d", w)
	}
	if len(lib.Missing()) != 0 {
		t.Fatalf("expected nothing missing, got %v", lib.Missing())
	}
}

func TestPlayerForMissingClip(t *testing.T) {
	lib := NewLoader(fstest.MapFS{}).Load(nil)
	if _, err := lib.Player("hitSound"); err == nil {
		t.Fatal("expected error for missing clip")
	}
	var nilLib *Library
	if nilLib.Has(KindImage, "npc") || nilLib.Missing() != nil {
		t.Fatal("nil library should report nothing")
	}
}

func TestCleanAssetPath(t *testing.T) {
	tests := map[string]string{
		"":                          "",
		"npc.png":                   "npc.png",
		"assets/npc.png":            "npc.png",
		"/home/u/game/assets/a.png": "a.png",
		"/tmp/b.png":                "b.png",
	}
	for in, want := range tests {
		if got := cleanAssetPath(in); got != want {
			t.Fatalf("cleanAssetPath(%q) = %q, want %q", in, got, want)
		}
	}
}
