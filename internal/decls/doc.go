// Package decls parses decoded payload text written in the declaration
// style: one configuration assignment per line, in keyworded
// (var/const/let), member (this.NAME), or bare NAME = VALUE form.
//
// Parsing is line oriented and forgiving: blank lines, comment lines, and
// lines matching none of the three grammars produce no record and no error.
// Each record keeps the original source line so serialization can reproduce
// the declaration style it arrived in. Value types and categories are
// inferred, never user-set; a rename takes effect on the next parse only.
package decls
