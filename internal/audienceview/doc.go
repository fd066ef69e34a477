// Package audienceview fetches and decodes the server-rendered search pages of
// an AudienceView ticketing site.
//
// Each day's page embeds a loosely formatted searchResults array literal in a
// script block. ExtractRows repairs that literal into strict JSON, DecodeRow
// maps one positional row onto a screening record, and Scraper drives the
// day-by-day fetch loop, folding results into a deduplicated collection.
//
// The positional column layout lives in schema.go; when the site shifts its
// layout, that table is the only place to update.
package audienceview
