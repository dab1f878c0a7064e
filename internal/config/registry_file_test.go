package config

import (
	"path/filepath"
	"testing"
)

func TestRegistryFile_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", RegistryFileName)

	reg := NewRegistryFile()
	reg.Organizations["acme"] = Organization{Name: "Acme Corp", Description: "Test org"}
	reg.Repositories["https://github.com/acme/widgets"] = RepositoryEntry{
		Organization: "acme",
		Name:         "widgets",
		Description:  "Widget service",
	}

	if err := reg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := LoadRegistryFile(path)
	if err != nil {
		t.Fatalf("LoadRegistryFile failed: %v", err)
	}
	if len(loaded.Organizations) != 1 || loaded.Organizations["acme"].Name != "Acme Corp" {
		t.Errorf("organizations = %+v", loaded.Organizations)
	}
	entry, ok := loaded.Repositories["https://github.com/acme/widgets"]
	if !ok {
		t.Fatalf("repository entry missing: %+v", loaded.Repositories)
	}
	if entry.Name != "widgets" || entry.Organization != "acme" || entry.Description != "Widget service" {
		t.Errorf("repository entry = %+v", entry)
	}
}

func TestLoadRegistryFile_Missing(t *testing.T) {
	reg, err := LoadRegistryFile(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("LoadRegistryFile failed: %v", err)
	}
	if len(reg.Organizations) != 0 || len(reg.Repositories) != 0 {
		t.Errorf("expected empty registry, got %+v", reg)
	}
}
