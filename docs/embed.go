// Copyright © 2026 The curage-lang authors

// Package docs embeds the curage language reference for use by the CLI.
package docs

import _ "embed"

//go:embed language.md
var LangGuide string
