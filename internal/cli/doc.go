// Package cli implements the interactive admin console for the Doorspital
// marketplace: a REPL that signs the operator in and drives one table page
// per resource, with search, pagination, inline edits, and confirmed deletes.
package cli
