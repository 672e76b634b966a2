package core_test

import (
	"reflect"
	"testing"

	"github.com/lorekeep/lorekeep/pkg/core"
)

func TestExtractLinks(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"None", "plain text, no markers", nil},
		{"Single", "ask [[Captain Merrow]] about it", []string{"Captain Merrow"}},
		{"Order Preserved", "[[B]] then [[A]] then [[C]]", []string{"B", "A", "C"}},
		{"Duplicates Dropped", "[[Ashford]] and again [[Ashford]]", []string{"Ashford"}},
		{"Inner Whitespace Trimmed", "[[  Missing lanterns ]]", []string{"Missing lanterns"}},
		{"Empty Marker Dropped", "[[  ]] and [[Real]]", []string{"Real"}},
		{"Adjacent Markers", "[[One]][[Two]]", []string{"One", "Two"}},
		{"Unclosed Ignored", "[[dangling", nil},
		{"Multiline", "line one [[A]]\nline two [[B]]", []string{"A", "B"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := core.ExtractLinks(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("ExtractLinks(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
