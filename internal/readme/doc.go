// Package readme renders the stats block and splices it into the managed
// region of a README file. The region is delimited by literal HTML-comment
// markers; everything outside the markers is left byte-identical.
package readme
