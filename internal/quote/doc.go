// Package quote defines the quote record types shared by all of quotectl.
//
// This package contains type definitions and the static category table
// only. All other internal packages import quote; quote imports nothing
// internal. JSON field names are lowercase to stay compatible with the
// corpus files the SpringKeys trainer reads at startup.
package quote
