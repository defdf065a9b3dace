package model

// Task is the domain model for a to-do entry.
// ID is assigned once by the store and never changes.
type Task struct {
	ID    string `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
	Done  bool   `json:"done" yaml:"done"`
}
