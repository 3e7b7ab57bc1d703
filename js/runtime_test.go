package js

import "testing"

func TestExecute(t *testing.T) {
	rt := NewRuntime()
	v, err := rt.Execute("1 + 2")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if v.ToInteger() != 3 {
		t.Errorf("Expected 3, got %v", v)
	}
}

func TestExecute_ErrorCollected(t *testing.T) {
	rt := NewRuntime()
	_, err := rt.Execute("this is not javascript")
	if err == nil {
		t.Fatal("Expected a syntax error")
	}
	if len(rt.Errors()) != 1 {
		t.Errorf("Expected 1 collected error, got %d", len(rt.Errors()))
	}
}

func TestExecute_ErrorDoesNotStopLaterScripts(t *testing.T) {
	rt := NewRuntime()
	rt.Execute("throw new Error('boom')")
	v, err := rt.Execute("40 + 2")
	if err != nil {
		t.Fatalf("Expected later script to run, got %v", err)
	}
	if v.ToInteger() != 42 {
		t.Errorf("Expected 42, got %v", v)
	}
}

func TestSetOnError(t *testing.T) {
	rt := NewRuntime()
	var seen error
	rt.SetOnError(func(err error) { seen = err })
	rt.Execute("undefinedFunction()")
	if seen == nil {
		t.Error("Expected the error callback to fire")
	}
}

func TestConsole(t *testing.T) {
	rt := NewRuntime()
	if _, err := rt.Execute("console.log('hello', 42)"); err != nil {
		t.Errorf("Expected console.log to work, got %v", err)
	}
	if _, err := rt.Execute("console.warn('careful')"); err != nil {
		t.Errorf("Expected console.warn to work, got %v", err)
	}
}
