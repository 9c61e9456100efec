package form

import "testing"

func TestSuggestEmailDomain(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  string
		ok    bool
	}{
		{"transposed gmail", "ann@gmial.com", "ann@gmail.com", true},
		{"missing letter", "ann@gmai.com", "ann@gmail.com", true},
		{"exact match", "ann@gmail.com", "", false},
		{"far miss", "ann@example.com", "", false},
		{"case folded", "ann@GMIAL.COM", "ann@gmail.com", true},
		{"no at sign", "gmial.com", "", false},
		{"empty domain", "ann@", "", false},
		{"hotmail typo", "bob@hotmial.com", "bob@hotmail.com", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SuggestEmailDomain(tt.email)
			if ok != tt.ok || got != tt.want {
				t.Fatalf("SuggestEmailDomain(%q) = (%q, %v), want (%q, %v)",
					tt.email, got, ok, tt.want, tt.ok)
			}
		})
	}
}
