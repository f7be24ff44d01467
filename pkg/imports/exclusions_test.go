package imports

import (
	"slices"
	"testing"
)

func TestParseExclusions(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Exclusions
	}{
		{"empty", "", nil},
		{"single", "java", Exclusions{"java"}},
		{"multiple", "java,javax,org.slf4j", Exclusions{"java", "javax", "org.slf4j"}},
		{"empty entries dropped", "java,,javax,", Exclusions{"java", "javax"}},
		{"no trimming", "java, javax", Exclusions{"java", " javax"}},
		{"no dedup", "java,java", Exclusions{"java", "java"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseExclusions(tt.input)
			if !slices.Equal(got, tt.want) {
				t.Errorf("ParseExclusions(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExcludes(t *testing.T) {
	tests := []struct {
		name string
		excl Exclusions
		pkg  string
		want bool
	}{
		{"longer dotted match", Exclusions{"com.example"}, "com.example.internal", true},
		{"exact match", Exclusions{"com.example"}, "com.example", true},
		{"other prefix", Exclusions{"com.other"}, "com.example.internal", false},
		{"plain prefix match", Exclusions{"java"}, "javax.swing", true},
		{"any entry matches", Exclusions{"org", "java"}, "java.util", true},
		{"order irrelevant", Exclusions{"java", "org"}, "java.util", true},
		{"no exclusions", nil, "java.util", false},
		{"empty package", Exclusions{"java"}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.excl.Excludes(tt.pkg); got != tt.want {
				t.Errorf("%v.Excludes(%q) = %v, want %v", tt.excl, tt.pkg, got, tt.want)
			}
		})
	}
}
