// Package table renders the ports and generics of an [entity.Entity] as
// Markdown or DokuWiki tables.
//
// Which columns appear, their headings, and the captions used for
// directions and polarities are controlled by [Options]. The port table is
// followed by a separate generic table when [Options.ExportGenerics] is set
// and the entity declares generics.
package table
