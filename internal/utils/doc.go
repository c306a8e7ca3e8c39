// Package utils provides general-purpose helper utilities used across the
// console and the sandbox server: type-safe context keys, HTTP response
// writing, the resty client wrapper, JWT helpers and id generation.
package utils
