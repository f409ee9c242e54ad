// Package registers models the ARMv4 register file and status registers.
//
// The architectural view "r0..r15 in mode M" is never stored directly;
// instead a flat 31-slot physical array backs every mode, and two small
// lookup tables (mode to bank, bank+index to physical slot) resolve any
// register access. See bank.go for the tables.
//
// CPSR and each SPSR are represented by the PSR type, a uint32 with named
// accessors for the NZCV flags, the I/F disable bits and the mode field.
// PSR values are immutable: every mutator returns a new PSR rather than
// updating in place, which keeps the staged-commit discipline used
// throughout the cpu package (compute the new state, only assign it once
// the instruction is known to complete) natural to express.
package registers
