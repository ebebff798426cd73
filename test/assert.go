package test

import "testing"

// AssertEqual fails the test when a != b.
func AssertEqual(t *testing.T, expected, actual any) bool {
	t.Helper()

	if expected != actual {
		t.Errorf(""+
			"Not equal: \n"+
			"Expected: %v\n"+
			"Actual: %v", expected, actual)
		return false
	}

	return true
}

// AssertOutput fails the test when the rendered bytes differ from the
// expected JSON text.
func AssertOutput(t *testing.T, expected string, actual []byte) bool {
	t.Helper()

	if expected != string(actual) {
		t.Errorf(""+
			"Output mismatch: \n"+
			"Expected: %s\n"+
			"Actual: %s", expected, actual)
		return false
	}

	return true
}
