package shared

import "testing"

func TestDisplayName(t *testing.T) {
	tc := []struct {
		name     string
		filename string
		want     string
	}{
		{
			name:     "mp3 extension stripped",
			filename: "zeybek.mp3",
			want:     "zeybek",
		},
		{
			name:     "mp4 extension stripped",
			filename: "onuncu_yil.mp4",
			want:     "onuncu_yil",
		},
		{
			name:     "only final extension stripped",
			filename: "hucum.marsi.mp3",
			want:     "hucum.marsi",
		},
		{
			name:     "no extension",
			filename: "gençlik",
			want:     "gençlik",
		},
		{
			name:     "path components dropped",
			filename: "/tmp/media/izmir.mp3",
			want:     "izmir",
		},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got := DisplayName(tt.filename)
			if got != tt.want {
				t.Errorf("DisplayName() = %v, want %v", got, tt.want)
			}
		})
	}
}
