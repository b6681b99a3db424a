// Package uatable loads acceptance tables of user agents and expands them into
// classification test cases.
//
// A table is a JSON or YAML list of rows, each row a three-element list:
//
//	[
//	  ["Mozilla/5.0 (iPad; CPU OS 14_4 like Mac OS X)", "tablet", "i"],
//	  ["Mozilla/5.0 (Windows NT 6.1; WOW64)", "desktop", "s"]
//	]
//
// The third cell is the case mode: "s" checks the agent as given, "i" also
// checks its lower-cased and upper-cased forms.
//
// Rows of the wrong shape are rejected with ErrMalformedRow, unknown modes with
// ErrUnknownMode and unknown categories with categorizr.ErrUnknownCategory.
//
// Usage in a test:
//
//	table, err := uatable.LoadFile("testdata/agents.json")
//	require.NoError(t, err)
//	for _, c := range table.Cases() {
//	    t.Run(c.Name, func(t *testing.T) {
//	        assert.Equal(t, c.Expected, engine.Detect(c.Agent).Category())
//	    })
//	}
package uatable
