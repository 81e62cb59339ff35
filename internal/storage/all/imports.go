// Package all wires every built-in storage backend into the driver
// registry. Importing it (blank) from the CLI makes the "mysql",
// "postgres", "sqlite", and "mssql" drivers available; binaries that need
// only a subset can import the individual backend packages instead.
package all

import (
	_ "github.com/jarretjeter/Spotify-Data-Loader/internal/storage/mssql"
	_ "github.com/jarretjeter/Spotify-Data-Loader/internal/storage/mysql"
	_ "github.com/jarretjeter/Spotify-Data-Loader/internal/storage/postgres"
	_ "github.com/jarretjeter/Spotify-Data-Loader/internal/storage/sqlite"
)
