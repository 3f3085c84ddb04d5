// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package tsconfig reads TypeScript configuration documents and expands
// their extends chains into alias sets. Only the three fields that
// participate in path-alias resolution are consumed: compilerOptions.baseUrl,
// compilerOptions.paths and extends. Everything else in the document,
// including malformed unrelated fields, is ignored. Documents may carry
// JSONC comments and trailing commas.
package tsconfig
