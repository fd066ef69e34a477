// Package testsupport provides shared helpers for package tests: temporary
// configs, fixture Firefox cookie databases, and searchResults row builders.
package testsupport
