package nolint

import (
	"testing"

	"github.com/gnoswap-labs/idxloop/internal/java/parser"
	"github.com/gnoswap-labs/idxloop/internal/java/token"
)

func TestParseNolintRules(t *testing.T) {
	t.Parallel()
	input := "rule1, rule2,rule3,"
	expected := []string{"rule1", "rule2", "rule3"}
	result := parseIgnoreRuleNames(input)
	if len(result) != len(expected) {
		t.Errorf("Expected %d rules, got %d", len(expected), len(result))
	}
	for _, rule := range expected {
		if _, exists := result[rule]; !exists {
			t.Errorf("Expected rule %s not found", rule)
		}
	}
}

func TestParseComment(t *testing.T) {
	t.Parallel()
	tests := []struct {
		text    string
		rules   int
		wantErr bool
	}{
		{"//nolint", 0, false},
		{"//nolint:foreach-to-index", 1, false},
		{"//nolint:a,b", 2, false},
		{"//nolint:", 0, true},
		{"//nolintfoo", 0, true},
		{"// nolint", 0, true},
		{"/* nolint */", 0, true},
	}
	for _, test := range tests {
		rules, err := parseComment(test.text)
		if (err != nil) != test.wantErr {
			t.Errorf("parseComment(%q): unexpected error %v", test.text, err)
			continue
		}
		if err == nil && len(rules) != test.rules {
			t.Errorf("parseComment(%q): expected %d rules, got %d", test.text, test.rules, len(rules))
		}
	}
}

func TestFileScope(t *testing.T) {
	t.Parallel()
	src := `//nolint:rule1
package p;

class T {
    void f() {
        int x = 1;
    }
}
`
	f, err := parser.ParseFile("T.java", []byte(src))
	if err != nil {
		t.Fatalf("Failed to parse file: %v", err)
	}

	manager := ParseComments(f)
	if !manager.IsNolint(positionAtLine(6), "rule1") {
		t.Errorf("Expected line 6 to be nolinted for rule1")
	}
	if manager.IsNolint(positionAtLine(6), "rule2") {
		t.Errorf("Expected line 6 not to be nolinted for rule2")
	}
}

func TestMethodScope(t *testing.T) {
	t.Parallel()
	src := `class T {
    //nolint
    void f() {
        int x = 1;
    }

    void g() {
        int y = 2;
    }
}
`
	f, err := parser.ParseFile("T.java", []byte(src))
	if err != nil {
		t.Fatalf("Failed to parse file: %v", err)
	}

	manager := ParseComments(f)
	if !manager.IsNolint(positionAtLine(4), "anyrule") {
		t.Errorf("Expected method body to be nolinted")
	}
	if manager.IsNolint(positionAtLine(8), "anyrule") {
		t.Errorf("Expected following method not to be nolinted")
	}
}

func TestIsNolint(t *testing.T) {
	t.Parallel()
	source := `class T {
    void f() {
        //nolint
        System.out.println("Line 4");
        System.out.println("Line 5");
        System.out.println("Line 6"); //nolint:rule1
        //nolint:rule2
        for (String s : xs) {
            System.out.println(s);
        }
        System.out.println("Line 11");
    }
}
`
	f, err := parser.ParseFile("T.java", []byte(source))
	if err != nil {
		t.Fatalf("Failed to parse source: %v", err)
	}

	manager := ParseComments(f)

	tests := []struct {
		rule     string
		line     int
		expected bool
	}{
		{"anyrule", 4, true},
		{"anyrule", 5, false},
		{"rule1", 6, true},
		{"rule2", 6, false},
		{"rule2", 8, true},
		{"rule2", 9, true},
		{"rule3", 8, false},
		{"rule2", 11, false},
	}

	for _, test := range tests {
		result := manager.IsNolint(positionAtLine(test.line), test.rule)
		if result != test.expected {
			t.Errorf("IsNolint at line %d for rule '%s': expected %v, got %v", test.line, test.rule, test.expected, result)
		}
	}
}

func TestNilFile(t *testing.T) {
	t.Parallel()
	if ParseComments(nil).IsNolint(positionAtLine(1), "rule") {
		t.Errorf("Expected empty manager")
	}
}

func positionAtLine(line int) token.Pos {
	return token.Pos{Line: line, Column: 1}
}
