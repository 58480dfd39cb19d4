package hook

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/vimrelay/internal/plan"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hook.lua")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func testPlan() plan.Plan {
	return plan.Plan{
		Kind:     plan.KindSend,
		Target:   "VIM",
		SendKeys: `<C-\><C-N>`,
		Files:    []string{"a.txt"},
	}
}

func TestRunEmptyPathNoOp(t *testing.T) {
	o, err := Run("", testPlan())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !o.IsZero() {
		t.Errorf("overrides = %+v, want zero", o)
	}
}

func TestRunServerOverride(t *testing.T) {
	path := writeScript(t, `
function on_plan(plan)
    if plan.server == "VIM" then
        return {server = "WORK"}
    end
end
`)

	o, err := Run(path, testPlan())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if o.Server != "WORK" {
		t.Errorf("Server = %q, want WORK", o.Server)
	}
	if o.ForceLocal {
		t.Error("ForceLocal unexpectedly set")
	}
}

func TestRunForceLocal(t *testing.T) {
	path := writeScript(t, `
function on_plan(plan)
    return {force_local = true}
end
`)

	o, err := Run(path, testPlan())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !o.ForceLocal {
		t.Error("ForceLocal not set")
	}
}

func TestRunSeesPlanFields(t *testing.T) {
	path := writeScript(t, `
seen = nil
function on_plan(plan)
    seen = plan.kind .. "/" .. plan.server .. "/" .. plan.files[1]
    return {server = seen}
end
`)

	o, err := Run(path, testPlan())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := "remote-send/VIM/a.txt"
	if o.Server != want {
		t.Errorf("script saw %q, want %q", o.Server, want)
	}
}

func TestRunNoOnPlanFunction(t *testing.T) {
	path := writeScript(t, `x = 1`)

	o, err := Run(path, testPlan())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !o.IsZero() {
		t.Errorf("overrides = %+v, want zero", o)
	}
}

func TestRunNilReturn(t *testing.T) {
	path := writeScript(t, `function on_plan(plan) end`)

	o, err := Run(path, testPlan())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !o.IsZero() {
		t.Errorf("overrides = %+v, want zero", o)
	}
}

func TestRunScriptError(t *testing.T) {
	path := writeScript(t, `this is not lua`)

	if _, err := Run(path, testPlan()); err == nil {
		t.Fatal("expected error for malformed script")
	}
}

func TestRunRuntimeError(t *testing.T) {
	path := writeScript(t, `
function on_plan(plan)
    error("boom")
end
`)

	if _, err := Run(path, testPlan()); err == nil {
		t.Fatal("expected error from failing on_plan")
	}
}
