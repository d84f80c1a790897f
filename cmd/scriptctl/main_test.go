package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"scriptctl/internal/document"
	"scriptctl/internal/roundtrip"
	"scriptctl/internal/testsupport"
)

func TestRootWithoutCommandFails(t *testing.T) {
	cfgPath := setupCLITestEnv(t)

	out, _, err := runCLI(t, cfgPath)
	if !errors.Is(err, errNoCommand) {
		t.Fatalf("expected errNoCommand, got %v", err)
	}
	requireContains(t, out, "extract-dir")
	requireContains(t, out, "update-dir")
}

func TestUnknownCommandFails(t *testing.T) {
	cfgPath := setupCLITestEnv(t)

	if _, _, err := runCLI(t, cfgPath, "convert"); err == nil {
		t.Fatal("expected error for unknown command")
	}
}

func TestExtractThenUpdate(t *testing.T) {
	cfgPath := setupCLITestEnv(t)
	root := testsupport.NewTree(t)
	docPath := filepath.Join(root, "xml", "main.xml")
	testsupport.WriteFile(t, docPath, `<panel><shape Name="Button1"><script name="onClick">x = 1 &lt; 2</script></shape></panel>`)

	out, stderr, err := runCLI(t, cfgPath, "extract", docPath)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	requireContains(t, out, "Found 1 scripts in main.xml")
	requireContains(t, out, "- Button1::onClick")
	requireContains(t, stderr, "run_id=")

	ctlPath := filepath.Join(root, "ctl", "main.ctl")
	content := testsupport.ReadFile(t, ctlPath)
	testsupport.WriteFile(t, ctlPath, strings.Replace(content, "x = 1 < 2", "x = 2 < 3", 1))

	out, _, err = runCLI(t, cfgPath, "update", ctlPath)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	requireContains(t, out, "Updated 1 scripts in main.xml")
	requireContains(t, testsupport.ReadFile(t, docPath), "<![CDATA[x = 2 &lt; 3]]>")
}

func TestUpdateMissingDocumentFails(t *testing.T) {
	cfgPath := setupCLITestEnv(t)
	root := testsupport.NewTree(t)
	ctlPath := filepath.Join(root, "ctl", "orphan.ctl")
	testsupport.WriteFile(t, ctlPath, "//START_SCRIPT: a\nx\n//END_SCRIPT: a\n")

	_, _, err := runCLI(t, cfgPath, "update", ctlPath)
	if !errors.Is(err, document.ErrNotFound) {
		t.Fatalf("expected document.ErrNotFound, got %v", err)
	}
}

func TestExtractDirReportsFailures(t *testing.T) {
	cfgPath := setupCLITestEnv(t)
	root := testsupport.NewTree(t)
	xmlDir := filepath.Join(root, "xml")
	testsupport.WriteFile(t, filepath.Join(xmlDir, "a.xml"), `<panel><script name="a">a()</script></panel>`)
	testsupport.WriteFile(t, filepath.Join(xmlDir, "bad.xml"), `<panel>`)

	out, stderr, err := runCLI(t, cfgPath, "extract-dir", xmlDir)
	if err == nil || !strings.Contains(err.Error(), "1 of 2 files failed") {
		t.Fatalf("expected batch failure error, got %v", err)
	}
	requireContains(t, out, "[OK] 1 extracted")
	requireContains(t, out, "[ERROR] parse_failure")
	requireContains(t, out, "== Summary ==")
	requireContains(t, out, "Succeeded")
	requireContains(t, stderr, "file failed")
	if !testsupport.Exists(t, filepath.Join(root, "ctl", "a.ctl")) {
		t.Fatal("expected sidecar for the valid document")
	}
}

func TestExtractDirEmpty(t *testing.T) {
	cfgPath := setupCLITestEnv(t)
	dir := t.TempDir()

	out, _, err := runCLI(t, cfgPath, "extract-dir", dir)
	if err != nil {
		t.Fatalf("extract-dir: %v", err)
	}
	requireContains(t, out, "No XML files found in "+dir)
}

func TestUpdateDirJSONSummary(t *testing.T) {
	cfgPath := setupCLITestEnv(t)
	root := testsupport.NewTree(t)
	testsupport.WriteFile(t, filepath.Join(root, "xml", "a.xml"), `<panel><script name="a">old()</script></panel>`)
	testsupport.WriteFile(t, filepath.Join(root, "ctl", "a.ctl"), "//START_SCRIPT: a\nnew()\n//END_SCRIPT: a\n")

	out, _, err := runCLI(t, cfgPath, "update-dir", "--json", filepath.Join(root, "ctl"))
	if err != nil {
		t.Fatalf("update-dir: %v", err)
	}
	var summary roundtrip.Summary
	if err := json.Unmarshal([]byte(out), &summary); err != nil {
		t.Fatalf("decode summary: %v\n%s", err, out)
	}
	if summary.Succeeded != 1 || summary.Total != 1 || summary.Outcomes[0].Scripts != 1 {
		t.Fatalf("unexpected summary %+v", summary)
	}
}

func TestBackupFromConfigFile(t *testing.T) {
	cfgPath := setupCLITestEnv(t)
	testsupport.WriteFile(t, cfgPath, "[update]\nbackup = true\n")
	root := testsupport.NewTree(t)
	docPath := filepath.Join(root, "xml", "a.xml")
	testsupport.WriteFile(t, docPath, `<panel><script name="a">old()</script></panel>`)
	testsupport.WriteFile(t, filepath.Join(root, "ctl", "a.ctl"), "//START_SCRIPT: a\nnew()\n//END_SCRIPT: a\n")

	out, _, err := runCLI(t, cfgPath, "update", filepath.Join(root, "ctl", "a.ctl"))
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	requireContains(t, out, "Backup written to "+docPath+".bak")
	requireContains(t, testsupport.ReadFile(t, docPath+".bak"), "old()")
}

func TestLogFlagsValidated(t *testing.T) {
	cfgPath := setupCLITestEnv(t)
	dir := t.TempDir()

	if _, _, err := runCLI(t, cfgPath, "--log-level", "trace", "extract-dir", dir); err == nil {
		t.Fatal("expected error for unsupported log level")
	}
	if _, _, err := runCLI(t, cfgPath, "--log-format", "xml", "extract-dir", dir); err == nil {
		t.Fatal("expected error for unsupported log format")
	}

	_, stderr, err := runCLI(t, cfgPath, "--log-format", "json", "--log-level", "debug", "extract-dir", dir)
	if err != nil {
		t.Fatalf("extract-dir: %v", err)
	}
	requireContains(t, stderr, `"msg":"command started"`)
}

func TestConfigInitAndValidate(t *testing.T) {
	setupCLITestEnv(t)
	target := filepath.Join(t.TempDir(), "config.toml")

	out, _, err := runCLI(t, "", "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, _, err := runCLI(t, "", "config", "init", "--path", target); err == nil {
		t.Fatal("expected error when config already exists")
	}

	out, _, err = runCLI(t, target, "config", "validate")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Config path: "+target)
	requireContains(t, out, "Configuration valid")
}

func TestConfigValidateReportsErrors(t *testing.T) {
	cfgPath := setupCLITestEnv(t)
	testsupport.WriteFile(t, cfgPath, "[logging]\nformat = \"xml\"\n")

	if _, _, err := runCLI(t, cfgPath, "config", "validate"); err == nil {
		t.Fatal("expected validation error")
	}
}
