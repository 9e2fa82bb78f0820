package model

import "testing"

func TestCommit(t *testing.T) {
	cmt := &Commit{SHA: "deadbeefdeadbeef"}
	short := cmt.ShortID()
	expect := "deadbeef"
	if short != expect {
		t.Fatal("expected", expect, "got", short)
	}
}

func TestCommitSubject(t *testing.T) {
	tcs := []struct {
		name    string
		message string
		expect  string
	}{
		{name: "single", message: "cool subject", expect: "cool subject"},
		{name: "multi", message: "cool subject\n\nbody", expect: "cool subject"},
		{name: "crlf", message: "cool subject\r\nbody", expect: "cool subject"},
		{name: "empty", message: "", expect: ""},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			cmt := &Commit{Message: tc.message}
			if s := cmt.Subject(); s != tc.expect {
				t.Errorf("expected subject %q, got %q", tc.expect, s)
			}
		})
	}
}

func TestEntryHasMeta(t *testing.T) {
	if (&Entry{}).HasMeta() {
		t.Error("expected empty entry not to have metadata")
	}
	if !(&Entry{Duration: 5}).HasMeta() {
		t.Error("expected entry with duration to have metadata")
	}
	if !(&Entry{Status: "wip"}).HasMeta() {
		t.Error("expected entry with status to have metadata")
	}
}
