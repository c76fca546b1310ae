// Package data embeds the MariaDB init scripts used by the container tooling
// to bootstrap the portal schema (submissions, users, document_sequences).
package data

import (
	_ "embed"
)

//go:embed initdb/mariadb/002-ddl-tables.sql
var InitdbMariaDBTables string

//go:embed initdb/mariadb/003-ddl-privileges.sql
var InitdbMariaDBPrivileges string
