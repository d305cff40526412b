package service

// State represents the lifecycle state of the generation service.
// It is owned exclusively by the Service; no other component mutates it.
type State string

const (
	StateUninitialized State = "uninitialized"
	StateInitializing  State = "initializing"
	StateReady         State = "ready"
	StateFailed        State = "failed"
	StateShuttingDown  State = "shutting_down"
)
