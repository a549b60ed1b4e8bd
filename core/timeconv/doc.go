// Package timeconv turns participant timestamps into the scalar hour values
// used as the clustering feature.
//
// Two bases exist. The month basis counts hours from the day-of-month
// counter and wraps every month, so timestamps exactly one month apart map
// to the same value; the grouping pipeline uses it by default. The year
// basis counts from the day-of-year counter and only wraps at new year.
package timeconv
