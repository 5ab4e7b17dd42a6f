// Package booking holds the domain of public booking pages: the
// persisted Page record, slug allocation, and the writer that turns a
// validated submission into a stored page.
//
// A page's lifecycle is create-then-read. Slugs are derived from the
// business name, made unique by numeric suffixes ("jays-barbershop",
// "jays-barbershop-1", ...), and guarded against concurrent allocation by
// a unique index in the MongoDB repository.
package booking
