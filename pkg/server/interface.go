/*
Package server implements msgpack IPC for spell checking.

Clients such as editor plugins write msgpack maps to the server's stdin and
read one msgpack map per request from stdout. Requests are handled
synchronously and in order, with timing info included in check responses.

# IPC

Every request carries an ID and an optional action, "check" when omitted.
A single word is checked with "w":

	{"id": "req_001", "w": "helo"}

and answered with its verdict and ranked suggestions:

	{"id": "req_001", "r": [{"w": "helo", "ok": false, "s": [{"w": "hello", "r": 1}, {"w": "help", "r": 2}]}], "c": 1, "t": 85}

A block of text goes in "t". Only misspelled tokens come back, and setting
"ln" adds 1-based line and column numbers:

	{"id": "req_002", "t": "helo\nwrold", "ln": true}
	{"id": "req_002", "r": [{"w": "helo", "ok": false, "s": [...], "ln": 1, "col": 1}, ...], "c": 2, "t": 140}

The word list and ignore set can be changed at runtime:

	{"id": "a1", "action": "add_word", "w": "kubectl"}
	{"id": "a2", "action": "ignore", "w": "lgtm"}
	{"id": "a3", "action": "unignore", "w": "lgtm"}
	{"id": "a4", "action": "stats"}
	{"id": "a5", "action": "health"}

which answer with a status and, for stats, the checker counters.

Failed requests get an error map with an HTTP-like code, 400 for bad
input and 500 for internal faults:

	{"id": "req_003", "e": "word exceeds maximum length of 60 characters", "c": 400}

Requests without an ID are assigned a random UUID so responses can still be
correlated in logs.
*/
package server

// Request is any client message. Fields unused by the action are ignored.
type Request struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"action,omitempty"` // "check" (default), "add_word", "ignore", "unignore", "stats", "health"
	Word   string `msgpack:"w,omitempty"`
	Text   string `msgpack:"t,omitempty"`
	Lines  bool   `msgpack:"ln,omitempty"` // report line/column for text checks
}

// Suggestion - one ranked correction
type Suggestion struct {
	Word string `msgpack:"w"`
	Rank uint16 `msgpack:"r"`
}

// CheckResult - verdict for one token
type CheckResult struct {
	Word        string       `msgpack:"w"`
	Correct     bool         `msgpack:"ok"`
	Suggestions []Suggestion `msgpack:"s"`
	Line        int          `msgpack:"ln,omitempty"`
	Column      int          `msgpack:"col,omitempty"`
}

// CheckResponse - check response
type CheckResponse struct {
	ID        string        `msgpack:"id"`
	Results   []CheckResult `msgpack:"r"`
	Count     int           `msgpack:"c"`
	TimeTaken int64         `msgpack:"t"` // microseconds
}

// ActionResponse answers dictionary, ignore, stats and health requests
type ActionResponse struct {
	ID      string         `msgpack:"id"`
	Status  string         `msgpack:"status"`
	Changed bool           `msgpack:"changed,omitempty"`
	Stats   map[string]int `msgpack:"stats,omitempty"`
}

// CheckError holds basic error information for failed requests
type CheckError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
