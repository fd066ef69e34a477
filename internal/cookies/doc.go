// Package cookies reads site cookies out of the default Firefox profile.
//
// The browser's cookies.sqlite must never be opened while Firefox may be
// writing to it, so the Store copies the database to a private temporary file,
// queries the copy read-only, and removes it on every exit path. Domain
// candidates for a host are computed by DomainCandidates, which understands
// multi-label public suffixes such as org.uk.
package cookies
