// Package diag holds the diagnostic model shared by the lexer, the array
// declaration engine and the fix engine.
//
// Codes are grouped by numeric range and rendered with a prefix by Code.ID:
//
//	LEX1000-1999  lexical problems
//	ARR2000-2999  array declaration violations
//	IO4000-4999   file system problems
//	FIX5000-5999  fix runtime problems
//
// Every array violation also has a stable Code.Name (e.g. "SpaceInEmptyArray")
// that callers may use to track or suppress it.
package diag
