package web

import (
	"bytes"
	"testing"
)

func TestPlaceURL(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Cafe", "/Cafe"},
		{"Cafe A", "/Cafe%20A"},
		{"Joe's #1", "/Joe%27s%20%231"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PlaceURL(tt.name); got != tt.want {
				t.Errorf("PlaceURL() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTemplates(t *testing.T) {
	tmpl := Templates()
	for _, name := range []string{"index.tmpl", "signup.tmpl", "signin.tmpl", "account.tmpl", "places.tmpl",
		"place.tmpl", "newplace.tmpl", "newreview.tmpl", "outings.tmpl", "not_found.tmpl", "error.tmpl"} {
		if tmpl.Lookup(name) == nil {
			t.Errorf("template %s not loaded", name)
		}
	}
	var buf bytes.Buffer
	err := tmpl.ExecuteTemplate(&buf, "place.tmpl", map[string]interface{}{
		"placeName":   "<b>Cafe</b>",
		"placeRating": 3.0,
		"placeBudget": 15.0,
		"reviews":     []struct{}{},
	})
	if err != nil {
		t.Fatalf("rendering place.tmpl: %v", err)
	}
	if bytes.Contains(buf.Bytes(), []byte("<b>Cafe</b>")) {
		t.Errorf("place name was not escaped")
	}
	if !bytes.Contains(buf.Bytes(), []byte("Average rating: 3.00")) {
		t.Errorf("missing formatted rating: %s", buf.String())
	}
}
