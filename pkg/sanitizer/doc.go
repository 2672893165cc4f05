// Package sanitizer normalizes user input before validation and storage.
package sanitizer
