package standards

import "testing"

func TestParseJSONArray(t *testing.T) {
	content := []byte(`[
	  {"control_id": "ACME-1", "title": "Central auth", "description": "SSO everywhere", "category": "Authentication"},
	  {"id": "ACME-2", "name": "Backups", "description": "Daily backups"}
	]`)
	controls, err := ParseJSON(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(controls) != 2 {
		t.Fatalf("expected 2 controls, got %d", len(controls))
	}
	if controls[0].ID != "ACME-1" || controls[0].Category != "Authentication" {
		t.Errorf("unexpected first control: %+v", controls[0])
	}
	// Loose spellings: id for control_id, name for title, default category.
	if controls[1].ID != "ACME-2" || controls[1].Title != "Backups" || controls[1].Category != "General" {
		t.Errorf("normalization failed: %+v", controls[1])
	}
}

func TestParseJSONWrapped(t *testing.T) {
	content := []byte(`{"controls": [{"control_id": "X-1", "title": "X"}]}`)
	controls, err := ParseJSON(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(controls) != 1 || controls[0].ID != "X-1" {
		t.Errorf("unexpected controls: %+v", controls)
	}
}

func TestParseJSONInvalid(t *testing.T) {
	if _, err := ParseJSON([]byte(`{"not_controls": true}`)); err == nil {
		t.Error("expected error for object without controls key")
	}
	if _, err := ParseJSON([]byte(`garbage`)); err == nil {
		t.Error("expected error for non-JSON input")
	}
}

func TestParseCSV(t *testing.T) {
	content := []byte("Control ID,Title,Description,Category\nACME-1,Central auth,SSO everywhere,Authentication\nACME-2,Backups,Daily backups,\n")
	controls, err := ParseCSV(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(controls) != 2 {
		t.Fatalf("expected 2 controls, got %d", len(controls))
	}
	if controls[0].ID != "ACME-1" || controls[0].Title != "Central auth" {
		t.Errorf("unexpected first control: %+v", controls[0])
	}
	if controls[1].Category != "General" {
		t.Errorf("empty category should default to General, got %q", controls[1].Category)
	}
}

func TestParseCSVWithBOM(t *testing.T) {
	content := []byte("\uFEFFcontrol_id,title\nB-1,BOM control\n")
	controls, err := ParseCSV(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if controls[0].ID != "B-1" {
		t.Errorf("BOM not stripped from header: %+v", controls[0])
	}
}

func TestParseCSVHeaderOnly(t *testing.T) {
	if _, err := ParseCSV([]byte("control_id,title\n")); err == nil {
		t.Error("expected error for CSV without data rows")
	}
}

func TestParseYAML(t *testing.T) {
	content := []byte(`controls:
  - control_id: Y-1
    title: YAML control
    category: Audit Logging
`)
	controls, err := ParseYAML(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(controls) != 1 || controls[0].ID != "Y-1" || controls[0].Category != "Audit Logging" {
		t.Errorf("unexpected controls: %+v", controls)
	}
}

func TestParseFileDispatch(t *testing.T) {
	jsonContent := []byte(`[{"control_id": "J-1", "title": "J"}]`)
	if _, err := ParseFile(jsonContent, "standard.json"); err != nil {
		t.Errorf("json dispatch failed: %v", err)
	}
	if _, err := ParseFile(jsonContent, "standard.pdf"); err == nil {
		t.Error("expected error for unsupported extension")
	}
	if _, err := ParseFile(jsonContent, "noextension"); err == nil {
		t.Error("expected error for missing extension")
	}
}

func TestParseMissingID(t *testing.T) {
	controls, err := ParseJSON([]byte(`[{"title": "No id"}]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if controls[0].ID != "N/A" {
		t.Errorf("missing id should normalize to N/A, got %q", controls[0].ID)
	}
}
