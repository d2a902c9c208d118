// Package task wires a dataset, a reward metric and a token library
// into one regression search task.
//
// The task owns the closures the evolutionary loop calls per candidate:
//
//	Reward   — metric score of the candidate's predictions on the
//	           training rows (evaluation failures surface as an error;
//	           the caller maps them to a worst-case reward)
//	Evaluate — test-set report: NMSE and whether it beat the success
//	           threshold
//
// The library and all constraints travel explicitly with the Task;
// there is no ambient "current task" state anywhere in this module.
package task
