// Package models defines domain entities for the bando media archive client.
//
// The package contains two categories of types:
//
// 1. Backend records, decoded from the archive REST API:
//   - [MediaFile] : an uploaded audio/video asset
//   - [FavoriteTrack] : a curated, backend-seeded entry
//
// 2. Client-side configuration:
//   - [Category] : the "march" / "music" tag scoping every listing
//   - [Page] : the parameterization of the two archive pages
//
// Backend records are never mutated locally; every change goes through a
// request followed by a refetch of the listing.
package models
