// Package command implements gated asynchronous commands with a companion cancel
// command.
//
// A Command runs an operation that returns a future. While the latest execution is
// not terminal, or the optional gate rejects the parameter, the command cannot
// execute. Each execution receives the active cancel.Signal of the command's
// controller; the companion CancelCommand requests it.
//
//	cmd := command.New(command.FromFunc(func(ctx context.Context, sig *cancel.Signal) (struct{}, error) {
//	    for !sig.IsRequested() {
//	        // one iteration
//	    }
//	    return struct{}{}, sig.Err()
//	}))
//
//	obs, err := cmd.ExecuteAsync(struct{}{})
//	...
//	cmd.CancelCommand().Execute()
//	<-obs.Completion() // obs.IsCanceled() == true
//
// Both commands raise PropCanExecute on their CanExecuteChanged notifier whenever the
// outcome of CanExecute may have changed. Command raises PropExecution on its
// PropertyChanged notifier when a new execution is installed and when it completes.
package command
