// Package docindex loads the search-index payloads that static
// documentation generators ship alongside their HTML (for example the
// search_index.js file written by Documenter.jl) and answers keyword queries
// and anchor lookups over them.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, bloom/, gemini/).
package docindex
