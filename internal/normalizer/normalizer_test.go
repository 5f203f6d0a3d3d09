package normalizer

import "testing"

func TestSplitExtension(t *testing.T) {
	tests := []struct {
		name string
		body string
		ext  string
	}{
		{"blah.txt", "blah", ".txt"},
		{"blah.tar.gz", "blah.tar", ".gz"},
		{"blah", "blah", ""},
		{".bashrc", ".bashrc", ""},
		{".hidden.txt", ".hidden", ".txt"},
		{"", "", ""},
		{"trailing.", "trailing", "."},
	}
	for _, tt := range tests {
		body, ext := SplitExtension(tt.name)
		if body != tt.body || ext != tt.ext {
			t.Errorf("SplitExtension(%q) = (%q, %q), want (%q, %q)",
				tt.name, body, ext, tt.body, tt.ext)
		}
	}
}

func TestAssemble(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		ext       string
		lowercase bool
		isDir     bool
		want      string
	}{
		{"lowercases extension", "2020-03-15-Report", ".TXT", true, false, "2020-03-15-Report.txt"},
		{"keeps extension case", "2020-03-15-Report", ".TXT", false, false, "2020-03-15-Report.TXT"},
		{"directory keeps case", "2020-03-15-Photos", ".BAK", true, true, "2020-03-15-Photos.BAK"},
		{"trims whitespace", " 2015-01-01-blah ", ".txt", true, false, "2015-01-01-blah.txt"},
		{"no extension", "2015-01-01-blah", "", true, false, "2015-01-01-blah"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Assemble(tt.body, tt.ext, tt.lowercase, tt.isDir)
			if got != tt.want {
				t.Errorf("Assemble = %q, want %q", got, tt.want)
			}
		})
	}
}
