package usecase

// outcome is the result of the part of a turn that runs after input filtering.
// A non-nil err means the turn failed at stage and nothing was stored.
type outcome struct {
	reply string
	err   error
	stage string
}
