// Package services implements the HTTP client for the media archive backend.
//
// The backend owns file storage, favorites persistence and delete semantics;
// this package only dispatches the four REST operations and decodes their
// responses:
//
//	GET    /api/music-files?type={march|music}
//	POST   /api/music-files            (multipart: file, name, type)
//	DELETE /api/music-files/{id}
//	GET    /api/favorite-marches | /api/favorite-musics
//
// [ArchiveClient] is the concrete implementation. It deliberately applies no
// retry and no timeout: request failures surface to the caller with local
// state left at the last known-good server state, and a hung request stays
// pending until the user moves on.
package services
