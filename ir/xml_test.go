package ir

import "testing"

func TestValidName(t *testing.T) {
	tests := map[string]bool{
		"A":            true,
		"_a.b-c1":      true,
		"p:Compile":    true,
		"Ünïcode":      true,
		"Target\u0301": true,
		"":             false,
		"1A":           false,
		"-a":           false,
		"a b":          false,
		"a>b":          false,
	}
	for s, want := range tests {
		if got := ValidName(s); got != want {
			t.Errorf("ValidName(%q) = %v", s, got)
		}
	}
}

func TestValidComment(t *testing.T) {
	tests := map[string]bool{
		" ok ":    true,
		"a - b":   true,
		"\n x \n": true,
		"a--b":    false,
		"a-":      false,
		"a\r\nb":  false,
		"\x00":    false,
	}
	for s, want := range tests {
		if got := ValidComment(s); got != want {
			t.Errorf("ValidComment(%q) = %v", s, got)
		}
	}
}

func TestValidListEntry(t *testing.T) {
	for _, v := range []string{"", "a;b", " a", "b\t"} {
		if ValidListEntry(v) {
			t.Errorf("%q accepted", v)
		}
	}
	if !ValidListEntry("Build") {
		t.Errorf("Build rejected")
	}
}

func TestReservedAttrs(t *testing.T) {
	for _, n := range []string{"Include", "Remove", "Update", "Exclude", "Condition"} {
		if !IsItemAttr(n) {
			t.Errorf("%s is not an item attribute", n)
		}
	}
	if IsItemAttr("Link") || IsTaskAttr("Command") {
		t.Errorf("metadata or parameter name reported as reserved")
	}
	if !IsTaskAttr("ContinueOnError") {
		t.Errorf("ContinueOnError is not a task attribute")
	}
}
