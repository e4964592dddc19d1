package scene

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"two-spheres", "Two Spheres"},
		{"glass_cube", "Glass Cube"},
		{"simple", "Simple"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			if result := titleCase(tc.input); result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestParseSceneMetadata(t *testing.T) {
	testCases := []struct {
		name     string
		content  string
		expected SceneInfo
	}{
		{
			name: "full_header.scn",
			content: `# Scene: Glass Box
# Description: A glass sphere inside a cube

0 0 5  0 0 0  0 1 0  60
`,
			expected: SceneInfo{
				Name:        "full_header",
				DisplayName: "Glass Box",
				Description: "A glass sphere inside a cube",
				Type:        "file",
			},
		},
		{
			name:    "no-header.scn",
			content: "0 0 5  0 0 0  0 1 0  60\n# Scene: ignored after data\n",
			expected: SceneInfo{
				Name:        "no-header",
				DisplayName: "No Header",
				Type:        "file",
			},
		},
	}

	dir := t.TempDir()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name)
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("Failed to write test file: %v", err)
			}

			info, err := ParseSceneMetadata(path)
			if err != nil {
				t.Fatalf("ParseSceneMetadata failed: %v", err)
			}
			tc.expected.FilePath = path
			if info != tc.expected {
				t.Errorf("Expected %+v, got %+v", tc.expected, info)
			}
		})
	}
}

func TestListSceneFiles(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"b.scn":     "# Scene: Alpha\n",
		"a.scn":     "# Scene: Beta\n",
		"notes.txt": "# Scene: Not a scene\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}

	scenes, err := ListSceneFiles(dir)
	if err != nil {
		t.Fatalf("ListSceneFiles failed: %v", err)
	}
	if len(scenes) != 2 {
		t.Fatalf("Expected 2 scenes, got %d", len(scenes))
	}
	if scenes[0].DisplayName != "Alpha" || scenes[1].DisplayName != "Beta" {
		t.Errorf("Expected scenes sorted by display name, got %q, %q", scenes[0].DisplayName, scenes[1].DisplayName)
	}

	missing, err := ListSceneFiles(filepath.Join(dir, "missing"))
	if err != nil || len(missing) != 0 {
		t.Errorf("Expected no scenes and no error for missing dir, got %v, %v", missing, err)
	}
}
