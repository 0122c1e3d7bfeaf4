package field

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want *Field
	}{
		{
			name: "hyperlink",
			in:   ` HYPERLINK "https://example.com/a b" \o "Tip" `,
			want: &Field{
				Name:     Hyperlink,
				Args:     []string{"https://example.com/a b"},
				Switches: []Switch{{Name: "o", Value: "Tip", HasValue: true}},
			},
		},
		{
			name: "form checkbox",
			in:   "FORMCHECKBOX",
			want: &Field{Name: FormCheckBox},
		},
		{
			name: "lower case name",
			in:   `page \* MERGEFORMAT`,
			want: &Field{
				Name:     Page,
				Switches: []Switch{{Name: "*", Value: "MERGEFORMAT", HasValue: true}},
			},
		},
		{
			name: "escaped path",
			in:   `INCLUDEPICTURE "C:\\img\\a.png" \d`,
			want: &Field{
				Name:     IncludePic,
				Args:     []string{`C:\img\a.png`},
				Switches: []Switch{{Name: "d"}},
			},
		},
		{
			name: "unterminated string",
			in:   `HYPERLINK "http://x`,
			want: &Field{Name: Hyperlink, Args: []string{"http://x"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.in, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestParseEmpty(t *testing.T) {
	if _, err := Parse("  "); !errors.Is(err, ErrEmpty) {
		t.Errorf("error = %v, want ErrEmpty", err)
	}
}

func TestTarget(t *testing.T) {
	f, err := Parse(`HYPERLINK "doc.rtf" \l "sec2"`)
	if err != nil {
		t.Fatal(err)
	}
	if got := f.Target(); got != "doc.rtf#sec2" {
		t.Errorf("Target = %q", got)
	}
	if !(&Field{Name: FormText}).IsFormField() {
		t.Error("FORMTEXT not a form field")
	}
	if (&Field{Name: Page}).Target() != "" {
		t.Error("PAGE has a target")
	}
}
