// Package arraydecl checks the layout of PHP array literals, both the short
// `[...]` form and the long `array(...)` form.
//
// A visit on an opening token runs the pipeline
//
//	literal -> Classify -> Extract -> single-line or multi-line checks
//
// and reports every violation through a diag.Reporter, each with an atomic
// fix. The package keeps no state between visits apart from the tab width
// resolved once per Sniff, so a Sniff may be shared by concurrent lint runs.
// Repeated fix passes are the caller's business; every check here is written
// so that the output of its own fix is accepted on the next pass.
package arraydecl
