// Package analysis is the analytical core of tabstat: type inference,
// descriptive statistics, pairwise correlation, missing-value accounting and
// dataset comparison. Every function reads a dataset immutably and returns
// fresh value records; degenerate input yields NaN, zero or empty results
// rather than errors.
package analysis
