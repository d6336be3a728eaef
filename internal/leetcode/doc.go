// Package leetcode fetches a user's solve and contest statistics from the
// public LeetCode GraphQL endpoint. Responses are validated against an
// embedded JSON Schema before parsing so that upstream shape changes surface
// as a single clear error instead of zeroed fields.
package leetcode
