package pattern

import (
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in      string
		ns      string
		path    string
		wantErr bool
	}{
		{"core:sand", "core", "sand", false},
		{"core:*", "core", "*", false},
		{"*:anvil", "*", "anvil", false},
		{"*", "*", "*", false},
		{" core:sand ", "core", "sand", false},
		{"", "", "", true},
		{"core", "", "", true},
		{"core:sand:extra", "", "", true},
		{":sand", "", "", true},
		{"core:", "", "", true},
		{"Core:sand", "", "", true},
		{"core:sa nd", "", "", true},
	}

	for _, c := range cases {
		p, err := Parse(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("Parse(%q): ожидалась ошибка, получен %v", c.in, p)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q): неожиданная ошибка %v", c.in, err)
			continue
		}
		if p.Namespace != c.ns || p.Path != c.path {
			t.Errorf("Parse(%q) = %v, ожидалось %s:%s", c.in, p, c.ns, c.path)
		}
	}
}

func TestMatch(t *testing.T) {
	cases := []struct {
		pattern string
		id      string
		want    bool
	}{
		{"core:sand", "core:sand", true},
		{"core:sand", "core:gravel", false},
		{"core:*", "core:gravel", true},
		{"core:*", "mod:gravel", false},
		{"*:anvil", "mod:anvil", true},
		{"*:anvil", "mod:sand", false},
		{"*", "anything:at_all", true},
		{"core:sand", "malformed", false},
	}

	for _, c := range cases {
		p, err := Parse(c.pattern)
		if err != nil {
			t.Fatalf("Parse(%q): %v", c.pattern, err)
		}
		if got := p.Match(c.id); got != c.want {
			t.Errorf("%q.Match(%q) = %v, ожидалось %v", c.pattern, c.id, got, c.want)
		}
	}
}

func TestMatchAny(t *testing.T) {
	patterns, err := ParseList([]string{"core:fence", "mod:*"})
	if err != nil {
		t.Fatalf("ParseList: %v", err)
	}

	if !MatchAny(patterns, "core:fence") {
		t.Error("Ожидалось совпадение core:fence")
	}
	if !MatchAny(patterns, "mod:pillar") {
		t.Error("Ожидалось совпадение mod:pillar")
	}
	if MatchAny(patterns, "core:sand") {
		t.Error("core:sand не должен совпадать")
	}
}

func TestValidateReference(t *testing.T) {
	if err := ValidateReference("core:block_fall"); err != nil {
		t.Errorf("Валидная ссылка отклонена: %v", err)
	}
	for _, bad := range []string{"", "core", "core:*", "*:sound", "core:"} {
		if err := ValidateReference(bad); err == nil {
			t.Errorf("Ссылка %q должна быть отклонена", bad)
		}
	}
}
