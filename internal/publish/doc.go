// Package publish runs one note through the publishing pipeline: resolve its
// original date, normalize escapes, heal the vault copy in place, then write
// the site copy. Targets classified as asset-bearing also get their image
// embeds rewritten and the referenced images copied into the site.
//
// Every step writes eagerly and nothing is rolled back. A failure partway
// through a publish leaves the earlier writes on disk, and a batch stops at
// the first failing mapping.
package publish
