package command

import (
	"sync"

	"go.uber.org/zap"

	"github.com/khimalex/shoedryer/pkg/cancel"
	"github.com/khimalex/shoedryer/pkg/notify"
)

// CancelCommand requests cancellation of the execution of its parent command.
type CancelCommand struct {
	name    string
	ctrl    *cancel.Controller
	changed *notify.Notifier

	mu        sync.Mutex
	executing bool
	run       uint64
}

func newCancelCommand(parent string, ctrl *cancel.Controller) *CancelCommand {
	name := parent + ".cancel"
	return &CancelCommand{
		name:    name,
		ctrl:    ctrl,
		changed: notify.New(name),
	}
}

// CanExecute reports whether an execution is running and has not been asked to stop.
func (c *CancelCommand) CanExecute() bool {
	c.mu.Lock()
	executing := c.executing
	c.mu.Unlock()
	return executing && !c.ctrl.IsRequested()
}

// Execute requests cancellation of the active signal.
func (c *CancelCommand) Execute() {
	zap.S().Named("command").Debugw("cancellation requested", "command", c.name)
	c.ctrl.RequestCancel()
	c.changed.Notify(PropCanExecute)
}

func (c *CancelCommand) CanExecuteChanged() *notify.Notifier {
	return c.changed
}

// Controller returns the controller whose signal Execute requests.
func (c *CancelCommand) Controller() *cancel.Controller {
	return c.ctrl
}

func (c *CancelCommand) notifyStarting() uint64 {
	c.mu.Lock()
	c.executing = true
	c.run++
	run := c.run
	c.mu.Unlock()

	c.ctrl.PrepareNewRun()
	c.changed.Notify(PropCanExecute)
	return run
}

// notifyFinished clears the executing flag unless a newer run already started.
func (c *CancelCommand) notifyFinished(run uint64) {
	c.mu.Lock()
	if c.run == run {
		c.executing = false
	}
	c.mu.Unlock()
	c.changed.Notify(PropCanExecute)
}
