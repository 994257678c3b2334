package model

// Snapshot is the self-contained backup document: the scalar settings plus
// the full ordered shortcut map. Serialization lives in the store package,
// which preserves command order across the round trip.
type Snapshot struct {
	Theme        string
	TabBehavior  string
	SearchEngine string
	Commands     []Entry
}
