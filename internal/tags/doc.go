// Package tags holds the encoding tables of the RelAlg dialect: the mapping
// from the planner's type and operator spellings to the spellings and
// fixed-point precisions the execution engine expects.
//
// Every table is a closed enumeration with an explicit Unrecognized member.
// Unrecognized tags keep their original spelling and map to themselves, so a
// name the tables do not know is never an error.
//
// All functions are pure and safe for concurrent use.
package tags
