// Package models defines the core domain types for the supermarket POS.
//
// Two record kinds are persisted as comma-delimited lines in flat text
// files: Item (the catalog) and User (accounts). Bills exist in memory
// while a seller composes them; only the rendered receipt is persisted,
// appended to the bill log.
//
// Model types are plain values. Identity is the ID field for items and
// the username for users; no pointer identity anywhere.
package models
