package models

// DefaultRefsPath is where the reference table lives inside a snapshot document
const DefaultRefsPath = "data.refs"

// StdinPath makes the snapshot be read from standard input
const StdinPath = "-"

// Ref is a single entry of the snapshot's reference table
type Ref struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Role string `json:"role,omitempty"`
}
