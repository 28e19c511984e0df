package transcript

import "testing"

func TestKey(t *testing.T) {
	tests := []struct {
		name     string
		videoRef string
		want     string
	}{
		{"windows path", `C:\vids\a.mp4`, "C__vids_a.mp4.txt"},
		{"posix path", "/home/me/talk.mkv", "_home_me_talk.mkv.txt"},
		{"relative", "clips/intro.mov", "clips_intro.mov.txt"},
		{"bare name", "a.mp4", "a.mp4.txt"},
		{"spaces kept", "/v/my talk.avi", "_v_my talk.avi.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Key(tt.videoRef); got != tt.want {
				t.Errorf("Key(%q) = %q, want %q", tt.videoRef, got, tt.want)
			}
		})
	}
}

func TestKeyDistinctForDistinctPaths(t *testing.T) {
	refs := []string{
		"/vids/a.mp4",
		"/vids/b.mp4",
		"/vid/sa.mp4",
		"/vids/a.mkv",
		"C:/vids/a.mp4",
		"/vids/a.mp4.bak",
	}

	seen := make(map[string]string)
	for _, ref := range refs {
		key := Key(ref)
		if other, ok := seen[key]; ok {
			t.Errorf("Key(%q) collides with Key(%q) = %q", ref, other, key)
		}
		seen[key] = ref
	}
}

func TestKeySeparatorStyleCollides(t *testing.T) {
	// documented ambiguity: only separator style differs
	if Key(`C:\vids\a.mp4`) != Key("C:/vids/a.mp4") {
		t.Error("separator styles of the same path should share a key")
	}
}
