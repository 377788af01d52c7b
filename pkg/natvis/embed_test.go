package natvis

import (
	"io/fs"
	"strings"
	"testing"
)

func TestTemplatesFSContainsNatvisTemplate(t *testing.T) {
	data, err := fs.ReadFile(TemplatesFS(), TemplateName+".j2")
	if err != nil {
		t.Fatalf("expected natvis template to be readable: %v", err)
	}
	if !strings.Contains(string(data), "{{ namespace }}") {
		t.Fatalf("expected natvis template to reference the namespace placeholder")
	}
	if !strings.HasSuffix(string(data), "</AutoVisualizer>\n") {
		t.Fatalf("expected natvis template to end with a closing tag and newline")
	}
}
