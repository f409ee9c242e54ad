// Package execution tracks the per-instruction outcome produced by the CPU
// dispatch loop.
//
// The dispatch loop doesn't call into the exception engine directly from
// inside an executor; instead each executor returns a small tagged
// Outcome (Continue, Branched or Raise) and the loop applies PC advance
// or exception entry uniformly. This keeps the executors free of
// knowledge about how PC advance or exception entry actually work, and
// makes each one testable against its return value alone.
//
// Result carries the rest of the per-instruction bookkeeping: what the
// loop observed at entry, whether the condition passed, and whether a
// reserved-unpredictable path (see Unpredictable) was taken. Result.IsValid
// can be used in tests and debugging tools to check internal consistency;
// the dispatch loop itself never calls it, to keep the hot path free of an
// extra branch per instruction.
package execution
