// Package level implements the Level JSON/YAML schema (spec §6): loading
// with integer-only enforcement, structural validation, and the canonical
// JSON level hash used by replay header validation (spec §4.9).
package level
