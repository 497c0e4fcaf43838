package services

import "context"

// FailurePolicy selects what happens to the local step of a two-phase
// command when its remote confirmation fails.
type FailurePolicy int

const (
	// RollbackOnFailure undoes the local step (settings toggles).
	RollbackOnFailure FailurePolicy = iota

	// WarnOnly keeps the local step and surfaces a non-blocking warning
	// (feedback verdicts).
	WarnOnly
)

// Command is an optimistic two-phase mutation: apply locally, confirm
// remotely, and on confirmation failure either roll back or warn according
// to the declared policy.
type Command struct {
	Policy   FailurePolicy
	Apply    func() error
	Confirm  func(ctx context.Context) error
	Rollback func()
	Warn     func(err error)
}

// Run executes the command. With WarnOnly, a confirmation failure is
// reported through Warn and not returned; the local step stands.
func (c Command) Run(ctx context.Context) error {
	if c.Apply != nil {
		if err := c.Apply(); err != nil {
			return err
		}
	}

	if c.Confirm == nil {
		return nil
	}

	if err := c.Confirm(ctx); err != nil {
		switch c.Policy {
		case RollbackOnFailure:
			if c.Rollback != nil {
				c.Rollback()
			}
			return err
		case WarnOnly:
			if c.Warn != nil {
				c.Warn(err)
			}
		}
	}
	return nil
}
