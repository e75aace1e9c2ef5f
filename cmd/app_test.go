package cmd

import "testing"

func TestDataFile(t *testing.T) {
	// Flag beats environment beats default.
	*dataFileFlag = ""
	t.Setenv("PTRACK_DATA_FILE", "")
	if got := DataFile(); got != defaultDataFile {
		t.Errorf("got %q, want %q", got, defaultDataFile)
	}

	t.Setenv("PTRACK_DATA_FILE", "env.json")
	if got := DataFile(); got != "env.json" {
		t.Errorf("got %q, want env.json", got)
	}

	*dataFileFlag = "flag.json"
	defer func() { *dataFileFlag = "" }()
	if got := DataFile(); got != "flag.json" {
		t.Errorf("got %q, want flag.json", got)
	}
}
